package courseController

import (
	"log"
	"time"

	"olms/database"
	"olms/middleware"
	"olms/models"
	courseModels "olms/models/course"
	"olms/services"
	"olms/utils"
	courseValidator "olms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse enrolls the authenticated student in a course. One
// enrollment per (student, course); re-enrolling returns 409.
func EnrollCourse(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	courseID := c.Locals("paramId").(uint)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, courseModels.CourseActive).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		First(&courseModels.Enrollment{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		Status:     courseModels.EnrollmentActive,
		EnrolledAt: time.Now(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		log.Printf("Error enrolling student %d in course %d: %v", studentID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	var student models.User
	if err := db.Select("name, email").First(&student, studentID).Error; err == nil && student.Email != "" {
		utils.SendEnrollmentEmail(student.Email, student.Name, course.Name)
	}

	enrollment.Course = course
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully.", enrollment)
}

// MyEnrollments lists the authenticated student's enrollments with
// their course details.
func MyEnrollments(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedList").(*courseValidator.ListRequest)

	offset := (reqData.Page - 1) * reqData.Limit

	query := database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND is_deleted = ?", studentID, false)

	var total int64
	query.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := query.Preload("Course").
		Offset(offset).Limit(reqData.Limit).
		Order("enrolled_at desc").
		Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments for student %d: %v", studentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type enrollmentWithCounts struct {
		courseModels.Enrollment
		TotalModules int64 `json:"total_modules"`
	}

	listed := make([]enrollmentWithCounts, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var moduleCount int64
		database.Database.Db.Model(&courseModels.Module{}).
			Where("course_id = ? AND is_deleted = ?", enrollment.CourseID, false).
			Count(&moduleCount)
		listed = append(listed, enrollmentWithCounts{Enrollment: enrollment, TotalModules: moduleCount})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", fiber.Map{
		"enrollments": listed,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// DropCourse marks an active enrollment as dropped
func DropCourse(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	courseID := c.Locals("paramId").(uint)

	result := database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
			studentID, courseID, courseModels.EnrollmentActive, false).
		Update("status", courseModels.EnrollmentDropped)
	if result.Error != nil {
		log.Printf("Error dropping course %d for student %d: %v", courseID, studentID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to drop course!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Active enrollment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course dropped successfully.", nil)
}

// CompleteCourse marks the enrollment completed and issues a
// certificate when one has not been issued yet.
func CompleteCourse(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	courseID := c.Locals("paramId").(uint)

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	tracker := services.NewProgressTracker(db)
	if !tracker.UpdateProgress(studentID, courseID, enrollment.CompletedModules, 0, courseModels.EnrollmentCompleted) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete course!", nil)
	}

	var certificate courseModels.Certificate
	err := db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		First(&certificate).Error
	if err != nil {
		certificate = courseModels.Certificate{
			StudentID:         studentID,
			CourseID:          courseID,
			CertificateNumber: utils.GenerateCertificateNumber(),
			IssuedAt:          time.Now(),
		}
		if err := db.Create(&certificate).Error; err != nil {
			log.Printf("Error issuing certificate for student %d course %d: %v", studentID, courseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Course completed but certificate issuance failed!", nil)
		}

		var student models.User
		var course courseModels.Course
		if db.Select("name, email").First(&student, studentID).Error == nil &&
			db.Select("name").First(&course, courseID).Error == nil && student.Email != "" {
			utils.SendCertificateEmail(student.Email, student.Name, course.Name, certificate.CertificateNumber)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course completed successfully.", fiber.Map{
		"certificate": certificate,
	})
}
