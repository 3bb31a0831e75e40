package messageValidator

import (
	"strconv"
	"strings"

	"olms/middleware"
	"olms/models"

	"github.com/gofiber/fiber/v2"
)

// SendRequest is the body for sending a message to another user
type SendRequest struct {
	ReceiverID  uint   `json:"receiver_id"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	MessageType string `json:"message_type"`
}

// ReplyRequest is the body for replying within a thread
type ReplyRequest struct {
	Body string `json:"body"`
}

func validMessageType(messageType string) bool {
	switch messageType {
	case models.MessageTypeIssue, models.MessageTypeQuestion, models.MessageTypeGeneral:
		return true
	}
	return false
}

// IDParam validates the :id path parameter and stores it as a uint
func IDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
		}
		c.Locals("paramId", uint(id))
		return c.Next()
	}
}

func Send() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SendRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Subject = strings.TrimSpace(reqData.Subject)
		reqData.Body = strings.TrimSpace(reqData.Body)

		if reqData.ReceiverID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Receiver id is required!", nil)
		}
		if reqData.Subject == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Subject is required!", nil)
		}
		if reqData.Body == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Message body is required!", nil)
		}
		if reqData.MessageType == "" {
			reqData.MessageType = models.MessageTypeGeneral
		}
		if !validMessageType(reqData.MessageType) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Message type must be issue, question or general!", nil)
		}

		c.Locals("validatedMessage", reqData)
		return c.Next()
	}
}

func Reply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReplyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Body = strings.TrimSpace(reqData.Body)
		if reqData.Body == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reply body is required!", nil)
		}

		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}
