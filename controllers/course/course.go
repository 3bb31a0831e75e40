package courseController

import (
	"log"

	"olms/database"
	"olms/middleware"
	courseModels "olms/models/course"
	courseValidator "olms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the active catalog with pagination and optional
// category/level/search filters.
func GetAllCourses(c *fiber.Ctx) error {
	reqData := c.Locals("validatedList").(*courseValidator.ListRequest)

	offset := (reqData.Page - 1) * reqData.Limit

	query := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ? AND status = ?", false, courseModels.CourseActive)

	if reqData.Category != "" {
		query = query.Where("category = ?", reqData.Category)
	}
	if reqData.Level != "" {
		query = query.Where("level = ?", reqData.Level)
	}
	if reqData.Search != "" {
		query = query.Where("name LIKE ?", "%"+reqData.Search+"%")
	}

	var total int64
	query.Count(&total)

	var courses []courseModels.Course
	if err := query.Offset(offset).Limit(reqData.Limit).Order("created_at desc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// GetCourseDetails returns one course with its modules and lessons
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("paramId").(uint)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").
		Find(&modules).Error; err != nil {
		log.Printf("Error fetching modules for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course details!", nil)
	}

	type moduleWithLessons struct {
		courseModels.Module
		Lessons []courseModels.Lesson `json:"lessons"`
	}

	detailed := make([]moduleWithLessons, 0, len(modules))
	for _, module := range modules {
		var lessons []courseModels.Lesson
		db.Where("module_id = ? AND is_deleted = ?", module.ID, false).
			Order("id asc").
			Find(&lessons)
		detailed = append(detailed, moduleWithLessons{Module: module, Lessons: lessons})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully.", fiber.Map{
		"course":  course,
		"modules": detailed,
	})
}
