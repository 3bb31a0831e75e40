package courseValidator

import (
	"strconv"
	"strings"

	"olms/middleware"
	courseModels "olms/models/course"

	"github.com/gofiber/fiber/v2"
)

// ListRequest carries normalized pagination and catalog filters
type ListRequest struct {
	Page     int
	Limit    int
	Category string
	Level    string
	Search   string
}

// CoursePayload is the create/update body for a course
type CoursePayload struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Level        string `json:"level"`
	Difficulty   int    `json:"difficulty"`
	Duration     string `json:"duration"`
	Status       string `json:"status"`
	InstructorID *uint  `json:"instructor_id"`
}

// ModulePayload is the create/update body for a course module
type ModulePayload struct {
	CourseID    uint   `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

// LessonPayload is the create/update body for a lesson
type LessonPayload struct {
	ModuleID    uint   `json:"module_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FilePath    string `json:"file_path"`
	FileName    string `json:"file_name"`
	FileType    string `json:"file_type"`
	FileSize    int64  `json:"file_size"`
	TotalPages  int    `json:"total_pages"`
}

func validLevel(level string) bool {
	switch level {
	case courseModels.LevelBeginner, courseModels.LevelIntermediate, courseModels.LevelAdvanced:
		return true
	}
	return false
}

// IDParam validates the :id path parameter and stores it as a uint
func IDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
		}
		c.Locals("paramId", uint(id))
		return c.Next()
	}
}

// List validates pagination and filter query parameters, defaulting to
// page 1 / limit 10.
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)

		if page < 1 || limit < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Page and limit must be positive!", nil)
		}
		if limit > 100 {
			limit = 100
		}

		level := strings.TrimSpace(c.Query("level"))
		if level != "" && !validLevel(level) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Level must be Beginner, Intermediate or Advanced!", nil)
		}

		c.Locals("validatedList", &ListRequest{
			Page:     page,
			Limit:    limit,
			Category: strings.TrimSpace(c.Query("category")),
			Level:    level,
			Search:   strings.TrimSpace(c.Query("search")),
		})
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course name is required!", nil)
		}
		if reqData.Level != "" && !validLevel(reqData.Level) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Level must be Beginner, Intermediate or Advanced!", nil)
		}
		if reqData.Difficulty < 0 || reqData.Difficulty > 10 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Difficulty must be between 0 and 10!", nil)
		}
		if reqData.Status != "" && reqData.Status != courseModels.CourseActive && reqData.Status != courseModels.CourseInactive {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be Active or Inactive!", nil)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModulePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
		}
		if reqData.Title == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module title is required!", nil)
		}
		if reqData.OrderIndex < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Order index cannot be negative!", nil)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LessonPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.ModuleID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module id is required!", nil)
		}
		if reqData.Title == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson title is required!", nil)
		}
		if reqData.TotalPages < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Total pages cannot be negative!", nil)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
