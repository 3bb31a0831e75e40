package course

import "gorm.io/gorm"

// Module represents a section within a course
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	Status      string `json:"status" gorm:"default:'Active'"`
	IsDeleted   bool   `gorm:"default:false"`
}
