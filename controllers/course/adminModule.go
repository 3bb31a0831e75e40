package courseController

import (
	"log"

	"olms/database"
	"olms/middleware"
	courseModels "olms/models/course"
	courseValidator "olms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateModule adds a module to a course
func CreateModule(c *fiber.Ctx) error {
	reqData := c.Locals("validatedModule").(*courseValidator.ModulePayload)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	module := courseModels.Module{
		CourseID:    reqData.CourseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}
	if err := db.Create(&module).Error; err != nil {
		log.Printf("Error creating module for course %d: %v", reqData.CourseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully.", module)
}

// UpdateModule edits a module's title, description or ordering
func UpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("paramId").(uint)
	reqData := c.Locals("validatedModule").(*courseValidator.ModulePayload)

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.Title = reqData.Title
	module.Description = reqData.Description
	module.OrderIndex = reqData.OrderIndex

	if err := db.Save(&module).Error; err != nil {
		log.Printf("Error updating module %d: %v", moduleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully.", module)
}

// DeleteModule soft-deletes a module and its lessons
func DeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("paramId").(uint)

	db := database.Database.Db

	result := db.Model(&courseModels.Module{}).
		Where("id = ? AND is_deleted = ?", moduleID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		log.Printf("Error deleting module %d: %v", moduleID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	db.Model(&courseModels.Lesson{}).
		Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully.", nil)
}

// CreateLesson adds a lesson to a module
func CreateLesson(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLesson").(*courseValidator.LessonPayload)

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	lesson := courseModels.Lesson{
		ModuleID:    reqData.ModuleID,
		Title:       reqData.Title,
		Description: reqData.Description,
		FilePath:    reqData.FilePath,
		FileName:    reqData.FileName,
		FileType:    reqData.FileType,
		FileSize:    reqData.FileSize,
		TotalPages:  reqData.TotalPages,
	}
	if lesson.TotalPages == 0 {
		lesson.TotalPages = 10
	}

	if err := db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson for module %d: %v", reqData.ModuleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully.", lesson)
}

// DeleteLesson soft-deletes a lesson
func DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("paramId").(uint)

	result := database.Database.Db.Model(&courseModels.Lesson{}).
		Where("id = ? AND is_deleted = ?", lessonID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		log.Printf("Error deleting lesson %d: %v", lessonID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully.", nil)
}
