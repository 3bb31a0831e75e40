package courseValidator

import (
	"olms/middleware"
	courseModels "olms/models/course"

	"github.com/gofiber/fiber/v2"
)

// ProgressUpdateRequest is the body for reporting course progress
type ProgressUpdateRequest struct {
	CourseID         uint   `json:"course_id"`
	CompletedModules int    `json:"completed_modules"`
	StudyTime        int    `json:"study_time"`
	Status           string `json:"status"`
}

// LessonProgressRequest is the body for reporting a page position
type LessonProgressRequest struct {
	LessonID    uint `json:"lesson_id"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
}

// SessionStartRequest opens a study session
type SessionStartRequest struct {
	CourseID uint  `json:"course_id"`
	LessonID *uint `json:"lesson_id"`
}

// SessionEndRequest closes a study session
type SessionEndRequest struct {
	SessionID      uint `json:"session_id"`
	StudyTime      int  `json:"study_time"`
	CompletedPages int  `json:"completed_pages"`
}

// QuizSubmitRequest records a completed quiz attempt
type QuizSubmitRequest struct {
	LessonID         uint           `json:"lesson_id"`
	ModuleID         uint           `json:"module_id"`
	CourseID         uint           `json:"course_id"`
	TotalQuestions   int            `json:"total_questions"`
	CorrectAnswers   int            `json:"correct_answers"`
	TimeTakenSeconds int            `json:"time_taken_seconds"`
	Responses        []QuizResponse `json:"responses"`
}

// QuizResponse is one answered question inside a quiz submission
type QuizResponse struct {
	QuestionNumber int    `json:"question_number"`
	StudentAnswer  string `json:"student_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

func validEnrollmentStatus(status string) bool {
	switch status {
	case courseModels.EnrollmentActive, courseModels.EnrollmentCompleted, courseModels.EnrollmentDropped:
		return true
	}
	return false
}

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressUpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
		}
		if reqData.CompletedModules < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Completed modules cannot be negative!", nil)
		}
		if reqData.StudyTime < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Study time cannot be negative!", nil)
		}
		if reqData.Status == "" {
			reqData.Status = courseModels.EnrollmentActive
		}
		if !validEnrollmentStatus(reqData.Status) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be Active, Completed or Dropped!", nil)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

func LessonProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LessonProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.LessonID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson id is required!", nil)
		}
		if reqData.CurrentPage < 0 || reqData.TotalPages < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Pages cannot be negative!", nil)
		}

		c.Locals("validatedLessonProgress", reqData)
		return c.Next()
	}
}

func StartSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SessionStartRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
		}

		c.Locals("validatedSessionStart", reqData)
		return c.Next()
	}
}

func EndSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SessionEndRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.SessionID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Session id is required!", nil)
		}
		if reqData.StudyTime < 0 || reqData.CompletedPages < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Study time and pages cannot be negative!", nil)
		}

		c.Locals("validatedSessionEnd", reqData)
		return c.Next()
	}
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizSubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.LessonID == 0 || reqData.ModuleID == 0 || reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson, module and course ids are required!", nil)
		}
		if reqData.TotalQuestions < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Total questions must be positive!", nil)
		}
		if reqData.CorrectAnswers < 0 || reqData.CorrectAnswers > reqData.TotalQuestions {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Correct answers out of range!", nil)
		}
		if reqData.TimeTakenSeconds < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Time taken cannot be negative!", nil)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
