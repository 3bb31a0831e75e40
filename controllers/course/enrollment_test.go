package courseController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"olms/config"
	"olms/database"
	"olms/middleware"
	"olms/models"
	courseModels "olms/models/course"
	courseValidator "olms/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // keep the in-memory database on one connection

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Enrollment{},
		&courseModels.Certificate{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/course/:id/enroll", middleware.JWTMiddleware, courseValidator.IDParam(), EnrollCourse)
	app.Post("/course/:id/complete", middleware.JWTMiddleware, courseValidator.IDParam(), CompleteCourse)
	app.Get("/user/certificates", middleware.JWTMiddleware, MyCertificates)
	return app
}

func seedStudent(t *testing.T) (models.User, string) {
	t.Helper()

	student := models.User{
		Name:     "Test Student",
		Username: "student1",
		Email:    "student1@example.com",
		Password: "hashed",
		Role:     models.RoleStudent,
	}
	require.NoError(t, database.Database.Db.Create(&student).Error)

	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Role, student.Email)
	require.NoError(t, err)
	return student, token
}

func seedActiveCourse(t *testing.T, name string) courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Name:     name,
		Category: "Programming",
		Level:    courseModels.LevelBeginner,
		Status:   courseModels.CourseActive,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func authedRequest(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestEnrollCourse(t *testing.T) {
	app := setupApp(t)
	_, token := seedStudent(t)
	course := seedActiveCourse(t, "Go Basics")

	resp, err := app.Test(authedRequest("POST", "/course/1/enroll", token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.
		Where("course_id = ?", course.ID).First(&enrollment).Error)
	assert.Equal(t, courseModels.EnrollmentActive, enrollment.Status)
}

func TestEnrollCourseTwiceConflicts(t *testing.T) {
	app := setupApp(t)
	_, token := seedStudent(t)
	seedActiveCourse(t, "Go Basics")

	resp, err := app.Test(authedRequest("POST", "/course/1/enroll", token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(authedRequest("POST", "/course/1/enroll", token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["status"])
}

func TestEnrollUnknownCourse(t *testing.T) {
	app := setupApp(t)
	_, token := seedStudent(t)

	resp, err := app.Test(authedRequest("POST", "/course/99/enroll", token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEnrollRequiresAuth(t *testing.T) {
	app := setupApp(t)
	seedActiveCourse(t, "Go Basics")

	resp, err := app.Test(httptest.NewRequest("POST", "/course/1/enroll", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCompleteCourseIssuesCertificate(t *testing.T) {
	app := setupApp(t)
	student, token := seedStudent(t)
	course := seedActiveCourse(t, "Go Basics")

	resp, err := app.Test(authedRequest("POST", "/course/1/enroll", token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(authedRequest("POST", "/course/1/complete", token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.
		Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		First(&enrollment).Error)
	assert.Equal(t, courseModels.EnrollmentCompleted, enrollment.Status)
	assert.Equal(t, 100.0, enrollment.ProgressPercentage)

	var certificate courseModels.Certificate
	require.NoError(t, database.Database.Db.
		Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		First(&certificate).Error)
	assert.NotEmpty(t, certificate.CertificateNumber)

	// Completing again must not issue a second certificate
	resp, err = app.Test(authedRequest("POST", "/course/1/complete", token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&courseModels.Certificate{}).
		Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestMyCertificates(t *testing.T) {
	app := setupApp(t)
	_, token := seedStudent(t)
	seedActiveCourse(t, "Go Basics")

	resp, err := app.Test(authedRequest("POST", "/course/1/enroll", token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, err = app.Test(authedRequest("POST", "/course/1/complete", token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authedRequest("GET", "/user/certificates", token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	certificates, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, certificates, 1)
}
