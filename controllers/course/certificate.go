package courseController

import (
	"log"

	"olms/database"
	"olms/middleware"
	courseModels "olms/models/course"

	"github.com/gofiber/fiber/v2"
)

// MyCertificates lists the authenticated student's certificates
func MyCertificates(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)

	var certificates []courseModels.Certificate
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = ?", studentID, false).
		Order("issued_at desc").
		Find(&certificates).Error; err != nil {
		log.Printf("Error fetching certificates for student %d: %v", studentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully.", certificates)
}

// VerifyCertificate looks up a certificate by its public number. No
// authentication; employers use this to check a claimed certificate.
func VerifyCertificate(c *fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate number is required!", nil)
	}

	db := database.Database.Db

	var certificate courseModels.Certificate
	if err := db.Where("certificate_number = ? AND is_deleted = ?", number, false).
		First(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	var course courseModels.Course
	db.Select("name, category, level").First(&course, certificate.CourseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified.", fiber.Map{
		"certificate": certificate,
		"course":      course,
	})
}
