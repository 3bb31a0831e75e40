package authController

import (
	"log"
	"time"

	"olms/config"
	"olms/database"
	"olms/middleware"
	"olms/models"
	"olms/utils"
	authValidator "olms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// registerUser creates an account with the given role and approval
// status. Students are approved immediately; instructors wait for an
// admin decision.
func registerUser(c *fiber.Ctx, role, approvalStatus string) error {
	reqData := c.Locals("validatedSignup").(*authValidator.SignupRequest)

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already registered!", nil)
	}

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:           reqData.Name,
		Username:       reqData.Username,
		Email:          reqData.Email,
		Password:       string(hashedPassword),
		Role:           role,
		Gender:         reqData.Gender,
		Phone:          reqData.Phone,
		Address:        reqData.Address,
		ApprovalStatus: approvalStatus,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	message := "User registered successfully."
	if approvalStatus == models.ApprovalPending {
		message = "Instructor registered successfully. Your account is pending admin approval."
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, message, newUser)
}

// Signup registers a student account
func Signup(c *fiber.Ctx) error {
	return registerUser(c, models.RoleStudent, models.ApprovalApproved)
}

// InstructorSignup registers an instructor account pending approval
func InstructorSignup(c *fiber.Ctx) error {
	return registerUser(c, models.RoleInstructor, models.ApprovalPending)
}

func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

	var user models.User
	result := database.Database.Db.
		Where("username = ? AND is_deleted = ?", reqData.Username, false).
		First(&user)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Instructors cannot log in until an admin approves them
	if user.Role == models.RoleInstructor && user.ApprovalStatus != models.ApprovalApproved {
		if user.ApprovalStatus == models.ApprovalRejected {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your instructor application was rejected.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your instructor account is pending admin approval.", nil)
	}

	// Update last login time
	user.LastLogin = time.Now()
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Profile returns the authenticated user's account details
func Profile(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", userID, false).
		First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", user)
}

// UpdateProfile edits the authenticated user's editable fields
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedProfile").(*authValidator.UpdateProfileRequest)

	var user models.User
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", userID, false).
		First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Phone != "" {
		user.Phone = reqData.Phone
	}
	if reqData.Address != "" {
		user.Address = reqData.Address
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating profile for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", user)
}

// ChangePassword rotates the authenticated user's password
func ChangePassword(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedChangePassword").(*authValidator.ChangePasswordRequest)

	var user models.User
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", userID, false).
		First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.CurrentPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Current password is incorrect!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = string(hashedPassword)
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating password for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to change password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully.", nil)
}
