package adminRoutes

import (
	adminControllers "olms/controllers/admin"
	"olms/middleware"
	"olms/models"
	validators "olms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up platform administration routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/dashboard", adminControllers.Dashboard)
	adminGroup.Get("/instructors/pending", adminControllers.PendingInstructors)
	adminGroup.Patch("/instructors/:id/approve", validators.IDParam(), adminControllers.ApproveInstructor)
	adminGroup.Patch("/instructors/:id/reject", validators.IDParam(), adminControllers.RejectInstructor)
}
