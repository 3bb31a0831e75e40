package feedbackController

import (
	"log"

	"olms/database"
	"olms/middleware"
	"olms/models"
	courseModels "olms/models/course"
	feedbackValidator "olms/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

func targetExists(feedbackType string, targetID uint) bool {
	db := database.Database.Db
	if feedbackType == models.FeedbackTypeCourse {
		return db.Where("id = ? AND is_deleted = ?", targetID, false).
			First(&courseModels.Course{}).Error == nil
	}
	return db.Where("id = ? AND is_deleted = ?", targetID, false).
		First(&courseModels.Lesson{}).Error == nil
}

// SubmitFeedback posts a rating and comment for a course or lesson.
// One feedback row per (student, type, target); resubmitting returns 409.
func SubmitFeedback(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedFeedback").(*feedbackValidator.SubmitRequest)

	if !targetExists(reqData.FeedbackType, reqData.TargetID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback target not found!", nil)
	}

	db := database.Database.Db

	if err := db.Where("student_id = ? AND feedback_type = ? AND target_id = ?",
		studentID, reqData.FeedbackType, reqData.TargetID).
		First(&models.Feedback{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Feedback already submitted for this target!", nil)
	}

	feedback := models.Feedback{
		StudentID:    studentID,
		FeedbackType: reqData.FeedbackType,
		TargetID:     reqData.TargetID,
		Rating:       reqData.Rating,
		Comment:      reqData.Comment,
		Category:     reqData.Category,
	}
	if err := db.Create(&feedback).Error; err != nil {
		log.Printf("Error saving feedback from student %d: %v", studentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback submitted successfully.", feedback)
}

// MyFeedback lists the authenticated student's feedback entries
func MyFeedback(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)

	var feedback []models.Feedback
	if err := database.Database.Db.
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&feedback).Error; err != nil {
		log.Printf("Error fetching feedback for student %d: %v", studentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched successfully.", feedback)
}

// TargetFeedback lists all feedback for a course or lesson along with
// the average rating.
func TargetFeedback(c *fiber.Ctx) error {
	feedbackType := c.Params("type")
	if feedbackType != models.FeedbackTypeCourse && feedbackType != models.FeedbackTypeLesson {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Feedback type must be course or lesson!", nil)
	}
	targetID := c.Locals("paramId").(uint)

	db := database.Database.Db

	var feedback []models.Feedback
	if err := db.Where("feedback_type = ? AND target_id = ?", feedbackType, targetID).
		Order("created_at desc").
		Find(&feedback).Error; err != nil {
		log.Printf("Error fetching feedback for %s %d: %v", feedbackType, targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	var avgRating float64
	row := db.Model(&models.Feedback{}).
		Where("feedback_type = ? AND target_id = ?", feedbackType, targetID).
		Select("COALESCE(AVG(rating), 0)").
		Row()
	if err := row.Scan(&avgRating); err != nil {
		log.Printf("Error averaging rating for %s %d: %v", feedbackType, targetID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched successfully.", fiber.Map{
		"feedback":       feedback,
		"average_rating": avgRating,
		"total":          len(feedback),
	})
}

// feedbackOverallStats aggregates a set of feedback rows. Positive is
// rating >= 4, negative rating <= 2.
type feedbackOverallStats struct {
	TotalFeedback    int64   `json:"total_feedback"`
	AvgRating        float64 `json:"avg_rating"`
	PositiveFeedback int64   `json:"positive_feedback"`
	NegativeFeedback int64   `json:"negative_feedback"`
}

type categoryFeedbackStats struct {
	Category  string  `json:"category"`
	Count     int64   `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

type courseFeedbackStats struct {
	CourseID      uint    `json:"course_id"`
	CourseName    string  `json:"course_name"`
	FeedbackCount int64   `json:"feedback_count"`
	AvgRating     float64 `json:"avg_rating"`
}

type ratingBucket struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

const overallStatsSelect = "COUNT(*), COALESCE(AVG(rating), 0), " +
	"COALESCE(SUM(CASE WHEN rating >= 4 THEN 1 ELSE 0 END), 0), " +
	"COALESCE(SUM(CASE WHEN rating <= 2 THEN 1 ELSE 0 END), 0)"

// MyFeedbackAnalytics summarises the authenticated student's feedback:
// overall stats, per-category breakdown and the ten most recent entries.
func MyFeedbackAnalytics(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)

	db := database.Database.Db

	var overall feedbackOverallStats
	row := db.Model(&models.Feedback{}).
		Where("student_id = ?", studentID).
		Select(overallStatsSelect).
		Row()
	if err := row.Scan(&overall.TotalFeedback, &overall.AvgRating,
		&overall.PositiveFeedback, &overall.NegativeFeedback); err != nil {
		log.Printf("Error aggregating feedback for student %d: %v", studentID, err)
	}

	var byCategory []categoryFeedbackStats
	db.Model(&models.Feedback{}).
		Select("category, COUNT(*) as count, COALESCE(AVG(rating), 0) as avg_rating").
		Where("student_id = ?", studentID).
		Group("category").
		Order("count desc").
		Scan(&byCategory)

	var recent []models.Feedback
	db.Where("student_id = ?", studentID).
		Order("created_at desc").
		Limit(10).
		Find(&recent)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback analytics fetched successfully.", fiber.Map{
		"overall_stats":   overall,
		"category_stats":  byCategory,
		"recent_feedback": recent,
	})
}

// InstructorFeedbackAnalytics aggregates course feedback across the
// instructor's courses: overall stats, per-course averages and the
// rating distribution.
func InstructorFeedbackAnalytics(c *fiber.Ctx) error {
	instructorID := c.Locals("userId").(uint)

	db := database.Database.Db

	var overall feedbackOverallStats
	row := db.Model(&models.Feedback{}).
		Joins("JOIN courses ON feedbacks.feedback_type = ? AND courses.id = feedbacks.target_id", models.FeedbackTypeCourse).
		Where("courses.instructor_id = ? AND courses.is_deleted = ?", instructorID, false).
		Select(overallStatsSelect).
		Row()
	if err := row.Scan(&overall.TotalFeedback, &overall.AvgRating,
		&overall.PositiveFeedback, &overall.NegativeFeedback); err != nil {
		log.Printf("Error aggregating feedback for instructor %d: %v", instructorID, err)
	}

	var byCourse []courseFeedbackStats
	db.Model(&courseModels.Course{}).
		Select("courses.id as course_id, courses.name as course_name, "+
			"COUNT(feedbacks.id) as feedback_count, COALESCE(AVG(feedbacks.rating), 0) as avg_rating").
		Joins("LEFT JOIN feedbacks ON feedbacks.feedback_type = ? AND feedbacks.target_id = courses.id", models.FeedbackTypeCourse).
		Where("courses.instructor_id = ? AND courses.is_deleted = ?", instructorID, false).
		Group("courses.id, courses.name").
		Order("feedback_count desc").
		Scan(&byCourse)

	var distribution []ratingBucket
	db.Model(&models.Feedback{}).
		Select("feedbacks.rating as rating, COUNT(*) as count").
		Joins("JOIN courses ON feedbacks.feedback_type = ? AND courses.id = feedbacks.target_id", models.FeedbackTypeCourse).
		Where("courses.instructor_id = ? AND courses.is_deleted = ?", instructorID, false).
		Group("feedbacks.rating").
		Order("rating desc").
		Scan(&distribution)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor feedback analytics fetched successfully.", fiber.Map{
		"overall_stats":       overall,
		"course_stats":        byCourse,
		"rating_distribution": distribution,
	})
}

// UpdateFeedback edits the student's own feedback entry
func UpdateFeedback(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	feedbackID := c.Locals("paramId").(uint)
	reqData := c.Locals("validatedFeedbackUpdate").(*feedbackValidator.UpdateRequest)

	db := database.Database.Db

	var feedback models.Feedback
	if err := db.Where("id = ? AND student_id = ?", feedbackID, studentID).
		First(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found!", nil)
	}

	if reqData.Rating != 0 {
		feedback.Rating = reqData.Rating
	}
	if reqData.Comment != "" {
		feedback.Comment = reqData.Comment
	}

	if err := db.Save(&feedback).Error; err != nil {
		log.Printf("Error updating feedback %d: %v", feedbackID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback updated successfully.", feedback)
}

// DeleteFeedback removes the student's own feedback entry. Hard delete
// so the (student, type, target) slot frees up for a new submission.
func DeleteFeedback(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	feedbackID := c.Locals("paramId").(uint)

	result := database.Database.Db.Unscoped().
		Where("id = ? AND student_id = ?", feedbackID, studentID).
		Delete(&models.Feedback{})
	if result.Error != nil {
		log.Printf("Error deleting feedback %d: %v", feedbackID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete feedback!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback deleted successfully.", nil)
}
