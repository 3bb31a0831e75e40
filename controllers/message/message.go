package messageController

import (
	"log"

	"olms/database"
	"olms/middleware"
	"olms/models"
	"olms/utils"
	messageValidator "olms/validators/message"

	"github.com/gofiber/fiber/v2"
)

// SendMessage delivers a message from the authenticated user to
// another user and notifies the receiver by email.
func SendMessage(c *fiber.Ctx) error {
	senderID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedMessage").(*messageValidator.SendRequest)

	db := database.Database.Db

	var receiver models.User
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ReceiverID, false).
		First(&receiver).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Receiver not found!", nil)
	}

	message := models.Message{
		SenderID:    senderID,
		ReceiverID:  reqData.ReceiverID,
		Subject:     reqData.Subject,
		Body:        reqData.Body,
		MessageType: reqData.MessageType,
		Status:      models.MessageUnread,
	}
	if err := db.Create(&message).Error; err != nil {
		log.Printf("Error sending message from user %d: %v", senderID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	var sender models.User
	if db.Select("name").First(&sender, senderID).Error == nil && receiver.Email != "" {
		utils.SendNewMessageEmail(receiver.Email, receiver.Name, sender.Name, message.Subject)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully.", message)
}

// Inbox lists messages received by the authenticated user
func Inbox(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var messages []models.Message
	if err := database.Database.Db.
		Where("receiver_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		log.Printf("Error fetching inbox for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inbox fetched successfully.", messages)
}

// Sent lists messages sent by the authenticated user
func Sent(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var messages []models.Message
	if err := database.Database.Db.
		Where("sender_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		log.Printf("Error fetching sent messages for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sent messages fetched successfully.", messages)
}

// ReadMessage returns one received message and marks it read
func ReadMessage(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	messageID := c.Locals("paramId").(uint)

	db := database.Database.Db

	var message models.Message
	if err := db.Where("id = ? AND receiver_id = ? AND is_deleted = ?", messageID, userID, false).
		First(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found!", nil)
	}

	if message.Status == models.MessageUnread {
		message.Status = models.MessageRead
		if err := db.Save(&message).Error; err != nil {
			log.Printf("Error marking message %d read: %v", messageID, err)
		}
	}

	var replies []models.Message
	db.Where("parent_message_id = ? AND is_deleted = ?", messageID, false).
		Order("created_at asc").
		Find(&replies)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message fetched successfully.", fiber.Map{
		"message": message,
		"replies": replies,
	})
}

// ReplyMessage answers a message in its thread. Only the original
// receiver can reply; the root message is marked replied.
func ReplyMessage(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	messageID := c.Locals("paramId").(uint)
	reqData := c.Locals("validatedReply").(*messageValidator.ReplyRequest)

	db := database.Database.Db

	var parent models.Message
	if err := db.Where("id = ? AND receiver_id = ? AND is_deleted = ?", messageID, userID, false).
		First(&parent).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found!", nil)
	}

	reply := models.Message{
		SenderID:        userID,
		ReceiverID:      parent.SenderID,
		Subject:         "Re: " + parent.Subject,
		Body:            reqData.Body,
		MessageType:     models.MessageTypeReply,
		Status:          models.MessageUnread,
		ParentMessageID: &parent.ID,
	}
	if err := db.Create(&reply).Error; err != nil {
		log.Printf("Error replying to message %d: %v", messageID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send reply!", nil)
	}

	parent.Status = models.MessageReplied
	if err := db.Save(&parent).Error; err != nil {
		log.Printf("Error updating message %d status: %v", messageID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reply sent successfully.", reply)
}

// UnreadCount returns how many unread messages the user has
func UnreadCount(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var count int64
	database.Database.Db.Model(&models.Message{}).
		Where("receiver_id = ? AND status = ? AND is_deleted = ?", userID, models.MessageUnread, false).
		Count(&count)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unread count fetched successfully.", fiber.Map{
		"unread_count": count,
	})
}

// DeleteMessage soft-deletes a message the user received
func DeleteMessage(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	messageID := c.Locals("paramId").(uint)

	result := database.Database.Db.Model(&models.Message{}).
		Where("id = ? AND receiver_id = ? AND is_deleted = ?", messageID, userID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		log.Printf("Error deleting message %d: %v", messageID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete message!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message deleted successfully.", nil)
}
