package feedbackRoutes

import (
	feedbackControllers "olms/controllers/feedback"
	"olms/middleware"
	"olms/models"
	validators "olms/validators/course"
	feedbackValidators "olms/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

// SetupFeedbackRoutes sets up course and lesson feedback routes
func SetupFeedbackRoutes(app *fiber.App) {
	feedbackGroup := app.Group("/feedback", middleware.JWTMiddleware)

	feedbackGroup.Post("/", feedbackValidators.Submit(), feedbackControllers.SubmitFeedback)
	feedbackGroup.Get("/mine", feedbackControllers.MyFeedback)
	feedbackGroup.Get("/analytics", feedbackControllers.MyFeedbackAnalytics)
	feedbackGroup.Get("/:type/:id", validators.IDParam(), feedbackControllers.TargetFeedback)
	feedbackGroup.Put("/:id", validators.IDParam(), feedbackValidators.Update(), feedbackControllers.UpdateFeedback)
	feedbackGroup.Delete("/:id", validators.IDParam(), feedbackControllers.DeleteFeedback)

	instructorGroup := app.Group("/instructor/feedback",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin))
	instructorGroup.Get("/analytics", feedbackControllers.InstructorFeedbackAnalytics)
}
