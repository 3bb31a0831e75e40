package authValidator

import (
	"strings"

	"olms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SignupRequest is the registration payload for students and instructors
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Gender   string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
	Address  string `json:"address" validate:"max=500"`
}

// LoginRequest is the credentials payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest carries a password rotation
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// UpdateProfileRequest carries editable profile fields
type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone   string `json:"phone" validate:"omitempty,min=7,max=20"`
	Address string `json:"address" validate:"max=500"`
}

// fieldErrors maps validator failures to per-field messages
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			errors[field] = field + " is required!"
		case "email":
			errors[field] = "Invalid email address!"
		case "min":
			errors[field] = field + " must be at least " + fieldErr.Param() + " characters long!"
		case "max":
			errors[field] = field + " must be at most " + fieldErr.Param() + " characters long!"
		case "oneof":
			errors[field] = field + " must be one of: " + fieldErr.Param()
		case "alphanum":
			errors[field] = field + " may only contain letters and digits!"
		default:
			errors[field] = field + " is invalid!"
		}
	}
	return errors
}

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Username = strings.TrimSpace(reqData.Username)
		reqData.Email = strings.TrimSpace(reqData.Email)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChangePasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
