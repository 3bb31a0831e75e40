package courseRoutes

import (
	controllers "olms/controllers/course"
	"olms/middleware"
	validators "olms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.List(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.IDParam(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.IDParam(), controllers.EnrollCourse)
	courseGroup.Post("/:id/drop", middleware.JWTMiddleware, validators.IDParam(), controllers.DropCourse)
	courseGroup.Post("/:id/complete", middleware.JWTMiddleware, validators.IDParam(), controllers.CompleteCourse)

	// Progress tracking
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.IDParam(), controllers.GetCourseProgress)

	progressGroup := app.Group("/progress")
	progressGroup.Put("/update", middleware.JWTMiddleware, validators.UpdateProgress(), controllers.UpdateProgress)
	progressGroup.Put("/lesson", middleware.JWTMiddleware, validators.LessonProgress(), controllers.UpdateLessonProgress)
	progressGroup.Get("/lesson/:id", middleware.JWTMiddleware, validators.IDParam(), controllers.GetLessonProgress)
	progressGroup.Post("/session/start", middleware.JWTMiddleware, validators.StartSession(), controllers.StartStudySession)
	progressGroup.Post("/session/end", middleware.JWTMiddleware, validators.EndSession(), controllers.EndStudySession)
	progressGroup.Get("/analytics", middleware.JWTMiddleware, controllers.GetAnalytics)

	// Quizzes
	quizGroup := app.Group("/quiz")
	quizGroup.Post("/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuiz)
	quizGroup.Get("/history", middleware.JWTMiddleware, controllers.QuizHistory)
	quizGroup.Get("/stats", middleware.JWTMiddleware, controllers.QuizStats)

	// Enrollments and certificates
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, validators.List(), controllers.MyEnrollments)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.MyCertificates)

	// Public certificate verification
	app.Get("/certificate/verify/:number", controllers.VerifyCertificate)
}
