package course

import (
	"time"

	"gorm.io/gorm"
)

// StudySession is a bounded interval of recorded study activity.
// A session is open while EndTime is null; once closed it is
// immutable history.
type StudySession struct {
	gorm.Model
	StudentID      uint       `json:"student_id" gorm:"index;not null"`
	CourseID       uint       `json:"course_id" gorm:"index;not null"`
	LessonID       *uint      `json:"lesson_id" gorm:"index"`
	StartTime      time.Time  `json:"start_time" gorm:"index;not null"`
	EndTime        *time.Time `json:"end_time"`
	StudyTime      int        `json:"study_time" gorm:"default:0"` // minutes
	CompletedPages int        `json:"completed_pages" gorm:"default:0"`
}
