package adminController

import (
	"log"
	"time"

	"olms/database"
	"olms/middleware"
	"olms/models"
	courseModels "olms/models/course"
	"olms/utils"

	"github.com/gofiber/fiber/v2"
)

// PendingInstructors lists instructor accounts awaiting approval
func PendingInstructors(c *fiber.Ctx) error {
	var instructors []models.User
	if err := database.Database.Db.
		Where("role = ? AND approval_status = ? AND is_deleted = ?", models.RoleInstructor, models.ApprovalPending, false).
		Order("created_at asc").
		Find(&instructors).Error; err != nil {
		log.Printf("Error fetching pending instructors: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending instructors fetched successfully.", instructors)
}

func decideInstructor(c *fiber.Ctx, approve bool) error {
	adminID := c.Locals("userId").(uint)
	instructorID := c.Locals("paramId").(uint)

	db := database.Database.Db

	var instructor models.User
	if err := db.
		Where("id = ? AND role = ? AND is_deleted = ?", instructorID, models.RoleInstructor, false).
		First(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	if instructor.ApprovalStatus != models.ApprovalPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Instructor application already decided!", nil)
	}

	now := time.Now()
	instructor.ApprovedBy = &adminID
	instructor.ApprovedAt = &now
	if approve {
		instructor.ApprovalStatus = models.ApprovalApproved
	} else {
		instructor.ApprovalStatus = models.ApprovalRejected
	}

	if err := db.Save(&instructor).Error; err != nil {
		log.Printf("Error deciding instructor %d: %v", instructorID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update instructor!", nil)
	}

	if approve {
		utils.SendInstructorApprovedEmail(instructor.Email, instructor.Name)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor approved successfully.", instructor)
	}

	reason := "Application did not meet the current requirements"
	if body := struct {
		Reason string `json:"reason"`
	}{}; c.BodyParser(&body) == nil && body.Reason != "" {
		reason = body.Reason
	}
	utils.SendInstructorRejectedEmail(instructor.Email, instructor.Name, reason)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor rejected.", instructor)
}

// ApproveInstructor approves a pending instructor application
func ApproveInstructor(c *fiber.Ctx) error {
	return decideInstructor(c, true)
}

// RejectInstructor rejects a pending instructor application
func RejectInstructor(c *fiber.Ctx) error {
	return decideInstructor(c, false)
}

// Dashboard returns platform-wide aggregate counts
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalStudents, totalInstructors, totalCourses, totalEnrollments, completedEnrollments, openMessages int64

	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleStudent, false).Count(&totalStudents)
	db.Model(&models.User{}).Where("role = ? AND approval_status = ? AND is_deleted = ?", models.RoleInstructor, models.ApprovalApproved, false).Count(&totalInstructors)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("status = ? AND is_deleted = ?", courseModels.EnrollmentCompleted, false).Count(&completedEnrollments)
	db.Model(&models.Message{}).Where("status = ? AND is_deleted = ?", models.MessageUnread, false).Count(&openMessages)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", fiber.Map{
		"total_students":        totalStudents,
		"total_instructors":     totalInstructors,
		"total_courses":         totalCourses,
		"total_enrollments":     totalEnrollments,
		"completed_enrollments": completedEnrollments,
		"unread_messages":       openMessages,
	})
}
