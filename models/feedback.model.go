package models

import "gorm.io/gorm"

// Feedback targets
const (
	FeedbackTypeCourse = "course"
	FeedbackTypeLesson = "lesson"
)

// Feedback categories
const (
	FeedbackCategoryContent    = "content"
	FeedbackCategoryDifficulty = "difficulty"
	FeedbackCategoryInstructor = "instructor"
	FeedbackCategoryTechnical  = "technical"
	FeedbackCategoryGeneral    = "general"
)

// Feedback is a 1-5 rating with an optional comment for a course or
// lesson. One row per (student, type, target).
type Feedback struct {
	gorm.Model
	StudentID    uint   `json:"student_id" gorm:"index;not null;uniqueIndex:uniq_feedback"`
	FeedbackType string `json:"feedback_type" gorm:"not null;uniqueIndex:uniq_feedback"`
	TargetID     uint   `json:"target_id" gorm:"index;not null;uniqueIndex:uniq_feedback"`
	Rating       int    `json:"rating" gorm:"not null"`
	Comment      string `json:"comment" gorm:"type:text"`
	Category     string `json:"category" gorm:"default:'general'"`
	IsDeleted    bool   `gorm:"default:false"`
}
