package courseController

import (
	"log"

	"olms/database"
	"olms/middleware"
	courseModels "olms/models/course"
	"olms/services"
	courseValidator "olms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse adds a course to the catalog. Missing category, level
// and difficulty fall back to catalog defaults.
func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CoursePayload)

	course := services.NormalizeCourse(courseModels.Course{
		Name:         reqData.Name,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Level:        reqData.Level,
		Difficulty:   reqData.Difficulty,
		Duration:     reqData.Duration,
		Status:       reqData.Status,
		InstructorID: reqData.InstructorID,
	})
	if course.Status == "" {
		course.Status = courseModels.CourseActive
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

// UpdateCourse edits an existing course
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("paramId").(uint)
	reqData := c.Locals("validatedCourse").(*courseValidator.CoursePayload)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Name = reqData.Name
	course.Description = reqData.Description
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Difficulty != 0 {
		course.Difficulty = reqData.Difficulty
	}
	if reqData.Duration != "" {
		course.Duration = reqData.Duration
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}
	if reqData.InstructorID != nil {
		course.InstructorID = reqData.InstructorID
	}

	if err := db.Save(&course).Error; err != nil {
		log.Printf("Error updating course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}

// DeleteCourse soft-deletes a course and hides it from the catalog
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("paramId").(uint)

	result := database.Database.Db.Model(&courseModels.Course{}).
		Where("id = ? AND is_deleted = ?", courseID, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"status":     courseModels.CourseInactive,
		})
	if result.Error != nil {
		log.Printf("Error deleting course %d: %v", courseID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully.", nil)
}
