package course

import "gorm.io/gorm"

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course statuses
const (
	CourseActive   = "Active"
	CourseInactive = "Inactive"
)

// Course represents a learning course in the catalog
type Course struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text"`
	Category     string `json:"category" gorm:"default:'General'"`
	Level        string `json:"level" gorm:"default:'Beginner'"` // Beginner, Intermediate, Advanced
	Difficulty   int    `json:"difficulty" gorm:"default:1"`
	Duration     string `json:"duration"`
	Status       string `json:"status" gorm:"default:'Active'"`
	InstructorID *uint  `json:"instructor_id" gorm:"index"`
	IsDeleted    bool   `gorm:"default:false"`
}
