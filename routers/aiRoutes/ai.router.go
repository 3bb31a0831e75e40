package aiRoutes

import (
	aiControllers "olms/controllers/ai"
	"olms/middleware"
	validators "olms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAIRoutes sets up the recommendation endpoints
func SetupAIRoutes(app *fiber.App) {
	aiGroup := app.Group("/ai", middleware.JWTMiddleware)

	aiGroup.Get("/recommendations", aiControllers.GetRecommendations)
	aiGroup.Get("/learning-path/:id", validators.IDParam(), aiControllers.GetLearningPath)
	aiGroup.Get("/course-insights/:id", validators.IDParam(), aiControllers.GetCourseInsights)
}
