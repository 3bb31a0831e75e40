package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentActive    = "Active"
	EnrollmentCompleted = "Completed"
	EnrollmentDropped   = "Dropped"
)

// Enrollment tracks a student's enrollment in a course with progress.
// ProgressPercentage is derived from CompletedModules against the
// course's module count and stays within [0,100]. TotalStudyTime only
// ever grows; deltas are added server-side.
type Enrollment struct {
	gorm.Model
	StudentID          uint       `json:"student_id" gorm:"index;not null;uniqueIndex:uniq_enrollment"`
	CourseID           uint       `json:"course_id" gorm:"index;not null;uniqueIndex:uniq_enrollment"`
	Status             string     `json:"status" gorm:"default:'Active'"` // Active, Completed, Dropped
	ProgressPercentage float64    `json:"progress_percentage" gorm:"default:0"`
	CompletedModules   int        `json:"completed_modules" gorm:"default:0"`
	TotalStudyTime     int        `json:"total_study_time" gorm:"default:0"` // minutes
	EnrolledAt         time.Time  `json:"enrolled_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	IsDeleted          bool       `gorm:"default:false"`
	Course             Course     `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
