package models

import "gorm.io/gorm"

// Message types
const (
	MessageTypeIssue    = "issue"
	MessageTypeQuestion = "question"
	MessageTypeGeneral  = "general"
	MessageTypeReply    = "reply"
)

// Message statuses
const (
	MessageUnread  = "unread"
	MessageRead    = "read"
	MessageReplied = "replied"
)

// Message is a single message in a student/admin conversation thread.
// Replies reference the root message through ParentMessageID.
type Message struct {
	gorm.Model
	SenderID        uint   `json:"sender_id" gorm:"index;not null"`
	ReceiverID      uint   `json:"receiver_id" gorm:"index;not null"`
	Subject         string `json:"subject" gorm:"not null"`
	Body            string `json:"body" gorm:"type:text;not null"`
	MessageType     string `json:"message_type" gorm:"default:'general'"`
	Status          string `json:"status" gorm:"index;default:'unread'"`
	ParentMessageID *uint  `json:"parent_message_id" gorm:"index"`
	IsDeleted       bool   `gorm:"default:false"`
}
