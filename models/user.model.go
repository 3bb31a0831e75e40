package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

// Instructor approval statuses
const (
	ApprovalPending  = "PENDING"
	ApprovalApproved = "APPROVED"
	ApprovalRejected = "REJECTED"
)

type User struct {
	gorm.Model
	Name     string     `json:"name" gorm:"default:''"`
	Username string     `json:"username" gorm:"unique;not null"`
	Email    string     `json:"email" gorm:"unique;not null"`
	Password string     `json:"-" gorm:"not null"`
	Role     string     `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	Gender   string     `json:"gender" gorm:"default:''"`
	Phone    string     `json:"phone" gorm:"default:''"`
	Address  string     `json:"address" gorm:"default:''"`
	DOB      *time.Time `json:"dob"`

	// Instructor approval flow; students and admins stay APPROVED
	ApprovalStatus string     `json:"approval_status" gorm:"default:'APPROVED'"`
	ApprovedBy     *uint      `json:"approved_by"`
	ApprovedAt     *time.Time `json:"approved_at"`

	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted bool      `gorm:"default:false"`
}
