package authRoutes

import (
	authControllers "olms/controllers/auth"
	"olms/middleware"
	authValidators "olms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/instructor/signup", authValidators.Signup(), authControllers.InstructorSignup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/profile", middleware.JWTMiddleware, authControllers.Profile)
	authGroup.Put("/profile", middleware.JWTMiddleware, authValidators.UpdateProfile(), authControllers.UpdateProfile)
	authGroup.Put("/change/password", middleware.JWTMiddleware, authValidators.ChangePassword(), authControllers.ChangePassword)
}
