package courseRoutes

import (
	controllers "olms/controllers/course"
	"olms/middleware"
	"olms/models"
	validators "olms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up catalog management routes for admins
// and approved instructors.
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleInstructor))

	adminGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	adminGroup.Put("/:id", validators.IDParam(), validators.CreateCourse(), controllers.UpdateCourse)
	adminGroup.Delete("/:id", validators.IDParam(), controllers.DeleteCourse)

	adminGroup.Post("/module", validators.CreateModule(), controllers.CreateModule)
	adminGroup.Put("/module/:id", validators.IDParam(), validators.CreateModule(), controllers.UpdateModule)
	adminGroup.Delete("/module/:id", validators.IDParam(), controllers.DeleteModule)

	adminGroup.Post("/lesson", validators.CreateLesson(), controllers.CreateLesson)
	adminGroup.Delete("/lesson/:id", validators.IDParam(), controllers.DeleteLesson)
}
