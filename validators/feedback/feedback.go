package feedbackValidator

import (
	"strings"

	"olms/middleware"
	"olms/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitRequest is the body for posting feedback on a course or lesson
type SubmitRequest struct {
	FeedbackType string `json:"feedback_type"`
	TargetID     uint   `json:"target_id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Category     string `json:"category"`
}

// UpdateRequest is the body for editing previously posted feedback
type UpdateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func validFeedbackType(feedbackType string) bool {
	return feedbackType == models.FeedbackTypeCourse || feedbackType == models.FeedbackTypeLesson
}

func validCategory(category string) bool {
	switch category {
	case models.FeedbackCategoryContent, models.FeedbackCategoryDifficulty,
		models.FeedbackCategoryInstructor, models.FeedbackCategoryTechnical,
		models.FeedbackCategoryGeneral:
		return true
	}
	return false
}

func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Comment = strings.TrimSpace(reqData.Comment)
		if !validFeedbackType(reqData.FeedbackType) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Feedback type must be course or lesson!", nil)
		}
		if reqData.TargetID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Target id is required!", nil)
		}
		if reqData.Rating < 1 || reqData.Rating > 5 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5!", nil)
		}
		if reqData.Category == "" {
			reqData.Category = models.FeedbackCategoryGeneral
		}
		if !validCategory(reqData.Category) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid feedback category!", nil)
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}

func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Rating != 0 && (reqData.Rating < 1 || reqData.Rating > 5) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5!", nil)
		}
		reqData.Comment = strings.TrimSpace(reqData.Comment)

		c.Locals("validatedFeedbackUpdate", reqData)
		return c.Next()
	}
}
