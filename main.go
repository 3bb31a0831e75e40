package main

import (
	"log"

	"olms/config"
	"olms/database"
	adminRoutes "olms/routers/adminRoutes"
	aiRoutes "olms/routers/aiRoutes"
	authRoutes "olms/routers/authRoutes"
	courseRoutes "olms/routers/courseRoutes"
	feedbackRoutes "olms/routers/feedbackRoutes"
	messageRoutes "olms/routers/messageRoutes"
	"olms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded lesson files
	app.Static("/uploads", "./uploads")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	aiRoutes.SetupAIRoutes(app)
	feedbackRoutes.SetupFeedbackRoutes(app)
	messageRoutes.SetupMessageRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Background job closing abandoned study sessions
	utils.InitializeSessionSweeper()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
