package messageRoutes

import (
	messageControllers "olms/controllers/message"
	"olms/middleware"
	messageValidators "olms/validators/message"

	"github.com/gofiber/fiber/v2"
)

// SetupMessageRoutes sets up user-to-user messaging routes
func SetupMessageRoutes(app *fiber.App) {
	messageGroup := app.Group("/message", middleware.JWTMiddleware)

	messageGroup.Post("/send", messageValidators.Send(), messageControllers.SendMessage)
	messageGroup.Get("/inbox", messageControllers.Inbox)
	messageGroup.Get("/sent", messageControllers.Sent)
	messageGroup.Get("/unread/count", messageControllers.UnreadCount)
	messageGroup.Get("/:id", messageValidators.IDParam(), messageControllers.ReadMessage)
	messageGroup.Post("/:id/reply", messageValidators.IDParam(), messageValidators.Reply(), messageControllers.ReplyMessage)
	messageGroup.Delete("/:id", messageValidators.IDParam(), messageControllers.DeleteMessage)
}
