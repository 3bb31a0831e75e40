package courseController

import (
	"log"
	"time"

	"olms/database"
	"olms/middleware"
	courseModels "olms/models/course"
	courseValidator "olms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz records a quiz attempt and its per-question responses
func SubmitQuiz(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedQuiz").(*courseValidator.QuizSubmitRequest)

	db := database.Database.Db

	score := float64(reqData.CorrectAnswers) / float64(reqData.TotalQuestions) * 100

	result := courseModels.QuizResult{
		StudentID:        studentID,
		LessonID:         reqData.LessonID,
		ModuleID:         reqData.ModuleID,
		CourseID:         reqData.CourseID,
		TotalQuestions:   reqData.TotalQuestions,
		CorrectAnswers:   reqData.CorrectAnswers,
		ScorePercentage:  score,
		TimeTakenSeconds: reqData.TimeTakenSeconds,
		CompletedAt:      time.Now(),
	}
	if err := db.Create(&result).Error; err != nil {
		log.Printf("Error saving quiz result for student %d lesson %d: %v", studentID, reqData.LessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz result!", nil)
	}

	for _, response := range reqData.Responses {
		record := courseModels.QuizQuestionResponse{
			QuizResultID:   result.ID,
			QuestionNumber: response.QuestionNumber,
			StudentAnswer:  response.StudentAnswer,
			CorrectAnswer:  response.CorrectAnswer,
			IsCorrect:      response.IsCorrect,
		}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("Error saving quiz response for result %d: %v", result.ID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz submitted successfully.", result)
}

// QuizHistory lists the student's quiz attempts, newest first
func QuizHistory(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)

	var results []courseModels.QuizResult
	if err := database.Database.Db.
		Where("student_id = ?", studentID).
		Order("completed_at desc").
		Find(&results).Error; err != nil {
		log.Printf("Error fetching quiz history for student %d: %v", studentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz history fetched successfully.", results)
}

// QuizStats aggregates the student's quiz performance
func QuizStats(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)

	db := database.Database.Db

	var totalAttempts int64
	db.Model(&courseModels.QuizResult{}).Where("student_id = ?", studentID).Count(&totalAttempts)

	var avgScore, bestScore float64
	row := db.Model(&courseModels.QuizResult{}).
		Where("student_id = ?", studentID).
		Select("COALESCE(AVG(score_percentage), 0), COALESCE(MAX(score_percentage), 0)").
		Row()
	if err := row.Scan(&avgScore, &bestScore); err != nil {
		log.Printf("Error aggregating quiz stats for student %d: %v", studentID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz stats fetched successfully.", fiber.Map{
		"total_attempts": totalAttempts,
		"average_score":  avgScore,
		"best_score":     bestScore,
	})
}
