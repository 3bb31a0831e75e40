package services

import (
	"fmt"
	"testing"

	courseModels "olms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // keep the in-memory database on one connection

	require.NoError(t, db.AutoMigrate(
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.LessonProgress{},
		&courseModels.Enrollment{},
		&courseModels.StudySession{},
	))
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, name string, moduleCount int) courseModels.Course {
	t.Helper()

	course := courseModels.Course{Name: name, Category: "Programming", Level: courseModels.LevelBeginner}
	require.NoError(t, db.Create(&course).Error)

	for i := 1; i <= moduleCount; i++ {
		module := courseModels.Module{CourseID: course.ID, Title: fmt.Sprintf("Module %d", i), OrderIndex: i}
		require.NoError(t, db.Create(&module).Error)
	}
	return course
}

func seedEnrollment(t *testing.T, db *gorm.DB, studentID, courseID uint) courseModels.Enrollment {
	t.Helper()

	enrollment := courseModels.Enrollment{StudentID: studentID, CourseID: courseID, Status: courseModels.EnrollmentActive}
	require.NoError(t, db.Create(&enrollment).Error)
	return enrollment
}

func fetchEnrollment(t *testing.T, db *gorm.DB, studentID, courseID uint) courseModels.Enrollment {
	t.Helper()

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&enrollment).Error)
	return enrollment
}

func TestUpdateProgressComputesPercentage(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "Go Basics", 6)
	seedEnrollment(t, db, 5, course.ID)

	tracker := NewProgressTracker(db)
	ok := tracker.UpdateProgress(5, course.ID, 3, 30, courseModels.EnrollmentActive)
	require.True(t, ok)

	enrollment := fetchEnrollment(t, db, 5, course.ID)
	assert.InDelta(t, 50.0, enrollment.ProgressPercentage, 1e-9)
	assert.Equal(t, 3, enrollment.CompletedModules)
	assert.Equal(t, 30, enrollment.TotalStudyTime)
	assert.Equal(t, courseModels.EnrollmentActive, enrollment.Status)
}

func TestUpdateProgressZeroModulesCourse(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "Empty Course", 0)
	seedEnrollment(t, db, 1, course.ID)

	tracker := NewProgressTracker(db)
	require.True(t, tracker.UpdateProgress(1, course.ID, 4, 0, courseModels.EnrollmentActive))

	enrollment := fetchEnrollment(t, db, 1, course.ID)
	assert.Zero(t, enrollment.ProgressPercentage)
}

func TestUpdateProgressClampsAtHundred(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "Short Course", 2)
	seedEnrollment(t, db, 1, course.ID)

	tracker := NewProgressTracker(db)
	require.True(t, tracker.UpdateProgress(1, course.ID, 5, 0, courseModels.EnrollmentActive))

	enrollment := fetchEnrollment(t, db, 1, course.ID)
	assert.InDelta(t, 100.0, enrollment.ProgressPercentage, 1e-9)
}

func TestUpdateProgressFullCompletionIsExactlyHundred(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "Go Basics", 3)
	seedEnrollment(t, db, 1, course.ID)

	tracker := NewProgressTracker(db)
	require.True(t, tracker.UpdateProgress(1, course.ID, 3, 0, courseModels.EnrollmentActive))

	enrollment := fetchEnrollment(t, db, 1, course.ID)
	assert.Equal(t, 100.0, enrollment.ProgressPercentage)
}

func TestUpdateProgressAccumulatesStudyTime(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "Go Basics", 4)
	seedEnrollment(t, db, 1, course.ID)

	tracker := NewProgressTracker(db)
	require.True(t, tracker.UpdateProgress(1, course.ID, 1, 30, courseModels.EnrollmentActive))
	require.True(t, tracker.UpdateProgress(1, course.ID, 2, 15, courseModels.EnrollmentActive))

	enrollment := fetchEnrollment(t, db, 1, course.ID)
	assert.Equal(t, 45, enrollment.TotalStudyTime)
	assert.Equal(t, 2, enrollment.CompletedModules)
}

func TestUpdateProgressMissingEnrollment(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "Go Basics", 4)

	tracker := NewProgressTracker(db)
	assert.False(t, tracker.UpdateProgress(99, course.ID, 1, 10, courseModels.EnrollmentActive))
}

func TestUpdateProgressCompletedStatusForcesFullProgress(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "Go Basics", 8)
	seedEnrollment(t, db, 1, course.ID)

	tracker := NewProgressTracker(db)
	require.True(t, tracker.UpdateProgress(1, course.ID, 2, 0, courseModels.EnrollmentCompleted))

	enrollment := fetchEnrollment(t, db, 1, course.ID)
	assert.Equal(t, courseModels.EnrollmentCompleted, enrollment.Status)
	assert.Equal(t, 100.0, enrollment.ProgressPercentage)
	assert.Equal(t, 8, enrollment.CompletedModules)
	assert.NotNil(t, enrollment.CompletedAt)
}

func TestStudySessionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "Go Basics", 4)

	tracker := NewProgressTracker(db)
	lessonID := uint(7)
	sessionID, ok := tracker.StartSession(1, course.ID, &lessonID)
	require.True(t, ok)
	require.NotZero(t, sessionID)

	var session courseModels.StudySession
	require.NoError(t, db.First(&session, sessionID).Error)
	assert.Nil(t, session.EndTime)
	assert.False(t, session.StartTime.IsZero())

	require.True(t, tracker.EndSession(sessionID, 25, 12))

	require.NoError(t, db.First(&session, sessionID).Error)
	require.NotNil(t, session.EndTime)
	assert.Equal(t, 25, session.StudyTime)
	assert.Equal(t, 12, session.CompletedPages)
}

func TestEndSessionTwiceFails(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "Go Basics", 4)

	tracker := NewProgressTracker(db)
	sessionID, ok := tracker.StartSession(1, course.ID, nil)
	require.True(t, ok)

	require.True(t, tracker.EndSession(sessionID, 25, 12))
	assert.False(t, tracker.EndSession(sessionID, 99, 99))

	// Closed sessions stay unchanged
	var session courseModels.StudySession
	require.NoError(t, db.First(&session, sessionID).Error)
	assert.Equal(t, 25, session.StudyTime)
	assert.Equal(t, 12, session.CompletedPages)
}

func TestEndSessionUnknownID(t *testing.T) {
	db := setupTestDB(t)

	tracker := NewProgressTracker(db)
	assert.False(t, tracker.EndSession(424242, 10, 0))
}

func TestUpdateLessonProgressUpserts(t *testing.T) {
	db := setupTestDB(t)

	tracker := NewProgressTracker(db)
	require.True(t, tracker.UpdateLessonProgress(1, 10, 2, 8))
	require.True(t, tracker.UpdateLessonProgress(1, 10, 6, 8))

	var count int64
	db.Model(&courseModels.LessonProgress{}).Where("student_id = ? AND lesson_id = ?", 1, 10).Count(&count)
	assert.Equal(t, int64(1), count)

	var progress courseModels.LessonProgress
	require.NoError(t, db.Where("student_id = ? AND lesson_id = ?", 1, 10).First(&progress).Error)
	assert.Equal(t, 6, progress.CurrentPage)
	assert.InDelta(t, 75.0, progress.ProgressPercentage, 1e-9)
}

func TestUpdateLessonProgressZeroPages(t *testing.T) {
	db := setupTestDB(t)

	tracker := NewProgressTracker(db)
	require.True(t, tracker.UpdateLessonProgress(1, 10, 3, 0))

	var progress courseModels.LessonProgress
	require.NoError(t, db.Where("student_id = ? AND lesson_id = ?", 1, 10).First(&progress).Error)
	assert.Zero(t, progress.ProgressPercentage)
}

func TestAnalytics(t *testing.T) {
	db := setupTestDB(t)
	courseA := seedCourse(t, db, "Go Basics", 4)
	courseB := seedCourse(t, db, "SQL Basics", 2)
	seedEnrollment(t, db, 1, courseA.ID)
	seedEnrollment(t, db, 1, courseB.ID)

	tracker := NewProgressTracker(db)
	require.True(t, tracker.UpdateProgress(1, courseA.ID, 2, 60, courseModels.EnrollmentActive))
	require.True(t, tracker.UpdateProgress(1, courseB.ID, 2, 20, courseModels.EnrollmentCompleted))

	sessionID, ok := tracker.StartSession(1, courseA.ID, nil)
	require.True(t, ok)
	require.True(t, tracker.EndSession(sessionID, 60, 5))

	analytics := tracker.Analytics(1)

	assert.Equal(t, int64(2), analytics.OverallStats.TotalEnrollments)
	assert.Equal(t, int64(1), analytics.OverallStats.CompletedCourses)
	assert.Equal(t, int64(1), analytics.OverallStats.ActiveCourses)
	assert.Equal(t, int64(80), analytics.OverallStats.TotalStudyTime)
	assert.InDelta(t, 75.0, analytics.OverallStats.AvgProgress, 1e-9) // (50 + 100) / 2

	require.Len(t, analytics.StudyTimeByCourse, 2)
	assert.Equal(t, "Go Basics", analytics.StudyTimeByCourse[0].CourseName)
	assert.Equal(t, 60, analytics.StudyTimeByCourse[0].TotalStudyTime)

	require.Len(t, analytics.RecentSessions, 1)
	assert.Equal(t, courseA.ID, analytics.RecentSessions[0].CourseID)
}
