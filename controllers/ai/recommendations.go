package aiController

import (
	"log"

	"olms/database"
	"olms/middleware"
	courseModels "olms/models/course"
	"olms/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// studentHistory loads the enrolled (still active) and completed
// courses for a student.
func studentHistory(db *gorm.DB, studentID uint) (enrolled, completed []courseModels.Course, err error) {
	var enrollments []courseModels.Enrollment
	if err := db.Preload("Course").
		Where("student_id = ? AND is_deleted = ?", studentID, false).
		Find(&enrollments).Error; err != nil {
		return nil, nil, err
	}

	for _, enrollment := range enrollments {
		if enrollment.Status == courseModels.EnrollmentCompleted {
			completed = append(completed, enrollment.Course)
		} else if enrollment.Status == courseModels.EnrollmentActive {
			enrolled = append(enrolled, enrollment.Course)
		}
	}
	return enrolled, completed, nil
}

// loadCatalog loads the active course catalog
func loadCatalog(db *gorm.DB) ([]courseModels.Course, error) {
	var catalog []courseModels.Course
	err := db.Where("is_deleted = ? AND status = ?", false, courseModels.CourseActive).
		Order("id asc").
		Find(&catalog).Error
	return catalog, err
}

func courseIDs(courses []courseModels.Course) []uint {
	ids := make([]uint, 0, len(courses))
	for _, course := range courses {
		ids = append(ids, course.ID)
	}
	return ids
}

// GetRecommendations scores the catalog against the student's learning
// history and returns the top courses. Students with no history get
// beginner-friendly defaults.
func GetRecommendations(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	limit := c.QueryInt("limit", services.DefaultRecommendationLimit)

	db := database.Database.Db

	catalog, err := loadCatalog(db)
	if err != nil {
		log.Printf("Error loading catalog: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build recommendations!", nil)
	}

	enrolled, completed, err := studentHistory(db, studentID)
	if err != nil {
		log.Printf("Error loading history for student %d: %v", studentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build recommendations!", nil)
	}

	profile := services.AnalyzeLearningProfile(enrolled, completed)

	engine := services.NewRecommendationEngine(catalog)
	recommendations := engine.Recommend(profile, courseIDs(enrolled), courseIDs(completed), limit)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations generated successfully.", fiber.Map{
		"recommendations": recommendations,
		"student_profile": fiber.Map{
			"skill_level":         profile.PreferredLevel,
			"completion_rate":     profile.CompletionRate,
			"total_courses_taken": len(enrolled) + len(completed),
		},
	})
}

// GetLearningPath plans the ordered course sequence toward a target
// course, prepending prerequisites a beginner still needs.
func GetLearningPath(c *fiber.Ctx) error {
	studentID := c.Locals("userId").(uint)
	targetCourseID := c.Locals("paramId").(uint)

	db := database.Database.Db

	catalog, err := loadCatalog(db)
	if err != nil {
		log.Printf("Error loading catalog: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build learning path!", nil)
	}

	_, completed, err := studentHistory(db, studentID)
	if err != nil {
		log.Printf("Error loading history for student %d: %v", studentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build learning path!", nil)
	}

	engine := services.NewRecommendationEngine(catalog)
	path := engine.PlanPath(targetCourseID, completed)
	if len(path) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Target course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path generated successfully.", fiber.Map{
		"learning_path": path,
		"student_level": services.StudentLevel(completed),
		"total_courses": len(path),
	})
}

// GetCourseInsights returns difficulty analysis, estimated completion
// time, prerequisites and study tips for a course.
func GetCourseInsights(c *fiber.Ctx) error {
	courseID := c.Locals("paramId").(uint)

	catalog, err := loadCatalog(database.Database.Db)
	if err != nil {
		log.Printf("Error loading catalog: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build course insights!", nil)
	}

	engine := services.NewRecommendationEngine(catalog)
	insights, ok := engine.Insights(courseID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course insights generated successfully.", insights)
}
