package courseController

import (
	"olms/database"
	"olms/middleware"
	courseModels "olms/models/course"
	"olms/services"
	courseValidator "olms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress records a student's progress report for a course
func UpdateProgress(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedProgress").(*courseValidator.ProgressUpdateRequest)

	tracker := services.NewProgressTracker(database.Database.Db)
	if !tracker.UpdateProgress(studentID, reqData.CourseID, reqData.CompletedModules, reqData.StudyTime, reqData.Status) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var enrollment courseModels.Enrollment
	database.Database.Db.
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, reqData.CourseID, false).
		First(&enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", enrollment)
}

// GetCourseProgress returns the student's enrollment progress for one course
func GetCourseProgress(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	courseID := c.Locals("paramId").(uint)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Preload("Course").
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", enrollment)
}

// UpdateLessonProgress records the page position within a lesson
func UpdateLessonProgress(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedLessonProgress").(*courseValidator.LessonProgressRequest)

	tracker := services.NewProgressTracker(database.Database.Db)
	if !tracker.UpdateLessonProgress(studentID, reqData.LessonID, reqData.CurrentPage, reqData.TotalPages) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson progress!", nil)
	}

	var progress courseModels.LessonProgress
	database.Database.Db.
		Where("student_id = ? AND lesson_id = ?", studentID, reqData.LessonID).
		First(&progress)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson progress updated successfully.", progress)
}

// GetLessonProgress returns the student's saved position in a lesson
func GetLessonProgress(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	lessonID := c.Locals("paramId").(uint)

	var progress courseModels.LessonProgress
	if err := database.Database.Db.
		Where("student_id = ? AND lesson_id = ?", studentID, lessonID).
		First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson progress not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson progress fetched successfully.", progress)
}

// StartStudySession opens a study session
func StartStudySession(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedSessionStart").(*courseValidator.SessionStartRequest)

	tracker := services.NewProgressTracker(database.Database.Db)
	sessionID, ok := tracker.StartSession(studentID, reqData.CourseID, reqData.LessonID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start study session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Study session started.", fiber.Map{
		"session_id": sessionID,
	})
}

// EndStudySession closes an open study session. Sessions belong to
// their student; closing someone else's returns 404.
func EndStudySession(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedSessionEnd").(*courseValidator.SessionEndRequest)

	var session courseModels.StudySession
	if err := database.Database.Db.
		Where("id = ? AND student_id = ?", reqData.SessionID, studentID).
		First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Study session not found!", nil)
	}

	tracker := services.NewProgressTracker(database.Database.Db)
	if !tracker.EndSession(reqData.SessionID, reqData.StudyTime, reqData.CompletedPages) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Study session already ended!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study session ended.", nil)
}

// GetAnalytics returns the student's aggregated progress report
func GetAnalytics(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)

	tracker := services.NewProgressTracker(database.Database.Db)
	analytics := tracker.Analytics(studentID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully.", analytics)
}
