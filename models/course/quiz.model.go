package course

import (
	"time"

	"gorm.io/gorm"
)

// QuizResult stores the outcome of one quiz attempt for a lesson
type QuizResult struct {
	gorm.Model
	StudentID        uint      `json:"student_id" gorm:"index;not null"`
	LessonID         uint      `json:"lesson_id" gorm:"index;not null"`
	ModuleID         uint      `json:"module_id" gorm:"index;not null"`
	CourseID         uint      `json:"course_id" gorm:"index;not null"`
	TotalQuestions   int       `json:"total_questions" gorm:"not null"`
	CorrectAnswers   int       `json:"correct_answers" gorm:"not null"`
	ScorePercentage  float64   `json:"score_percentage" gorm:"not null"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
	CompletedAt      time.Time `json:"completed_at"`
}

// QuizQuestionResponse stores a per-question answer within an attempt
type QuizQuestionResponse struct {
	gorm.Model
	QuizResultID   uint   `json:"quiz_result_id" gorm:"index;not null"`
	QuestionNumber int    `json:"question_number" gorm:"not null"`
	StudentAnswer  string `json:"student_answer" gorm:"not null"`
	CorrectAnswer  string `json:"correct_answer" gorm:"not null"`
	IsCorrect      bool   `json:"is_correct" gorm:"not null"`
}
