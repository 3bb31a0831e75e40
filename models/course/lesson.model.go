package course

import (
	"time"

	"gorm.io/gorm"
)

// Lesson represents a single lesson document inside a module. The file
// itself lives under the uploads directory; only metadata is stored.
type Lesson struct {
	gorm.Model
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	FilePath    string `json:"file_path"`
	FileName    string `json:"file_name"`
	FileType    string `json:"file_type"`
	FileSize    int64  `json:"file_size"`
	TotalPages  int    `json:"total_pages" gorm:"default:10"`
	Status      string `json:"status" gorm:"default:'Active'"`
	IsDeleted   bool   `gorm:"default:false"`
}

// LessonProgress tracks how far a student has read into a lesson.
// One row per (student, lesson), upserted on every page turn.
type LessonProgress struct {
	gorm.Model
	StudentID          uint      `json:"student_id" gorm:"index;not null;uniqueIndex:uniq_lesson_progress"`
	LessonID           uint      `json:"lesson_id" gorm:"index;not null;uniqueIndex:uniq_lesson_progress"`
	CurrentPage        int       `json:"current_page" gorm:"default:1"`
	TotalPages         int       `json:"total_pages" gorm:"default:1"`
	ProgressPercentage float64   `json:"progress_percentage" gorm:"default:0"`
	LastViewedAt       time.Time `json:"last_viewed_at"`
}
