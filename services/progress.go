package services

import (
	"log"
	"time"

	courseModels "olms/models/course"

	"gorm.io/gorm"
)

// ProgressTracker maintains enrollment progress and study session
// bookkeeping. It takes its store explicitly; construct one wherever a
// handler needs it.
type ProgressTracker struct {
	db *gorm.DB
}

func NewProgressTracker(db *gorm.DB) *ProgressTracker {
	return &ProgressTracker{db: db}
}

// UpdateProgress recomputes and persists a student's progress in a
// course. The percentage is derived from completedModules against the
// course's module count (0 when the course has no modules), clamped to
// [0,100]. studyTimeDelta is added to the accumulated total in the
// same UPDATE so concurrent reports don't lose minutes. Marking the
// enrollment Completed forces 100% and a full module count.
// Returns false when no matching enrollment row exists.
func (t *ProgressTracker) UpdateProgress(studentID, courseID uint, completedModules, studyTimeDelta int, status string) bool {
	if completedModules < 0 {
		completedModules = 0
	}
	if studyTimeDelta < 0 {
		studyTimeDelta = 0
	}

	var totalModules int64
	if err := t.db.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&totalModules).Error; err != nil {
		log.Printf("Error counting modules for course %d: %v", courseID, err)
		return false
	}

	progress := 0.0
	if totalModules > 0 {
		progress = float64(completedModules) / float64(totalModules) * 100
		if progress > 100 {
			progress = 100
		}
	}

	updates := map[string]interface{}{
		"completed_modules":   completedModules,
		"progress_percentage": progress,
		"total_study_time":    gorm.Expr("total_study_time + ?", studyTimeDelta),
		"status":              status,
	}

	if status == courseModels.EnrollmentCompleted {
		updates["progress_percentage"] = 100.0
		updates["completed_modules"] = int(totalModules)
		updates["completed_at"] = time.Now()
	}

	result := t.db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		Updates(updates)
	if result.Error != nil {
		log.Printf("Error updating progress for student %d course %d: %v", studentID, courseID, result.Error)
		return false
	}

	return result.RowsAffected > 0
}

// StartSession opens a study session for a student/course (and
// optionally a lesson) with start time now. Returns the new session id.
func (t *ProgressTracker) StartSession(studentID, courseID uint, lessonID *uint) (uint, bool) {
	session := courseModels.StudySession{
		StudentID: studentID,
		CourseID:  courseID,
		LessonID:  lessonID,
		StartTime: time.Now(),
	}
	if err := t.db.Create(&session).Error; err != nil {
		log.Printf("Error starting study session for student %d: %v", studentID, err)
		return 0, false
	}
	return session.ID, true
}

// EndSession closes an open session, stamping end time and the
// reported duration and pages. A session already closed is immutable
// history, so ending it again returns false. Enrollment totals are NOT
// touched here; callers report the session's minutes through a
// separate UpdateProgress call.
func (t *ProgressTracker) EndSession(sessionID uint, studyTimeMinutes, completedPages int) bool {
	if studyTimeMinutes < 0 {
		studyTimeMinutes = 0
	}
	if completedPages < 0 {
		completedPages = 0
	}

	result := t.db.Model(&courseModels.StudySession{}).
		Where("id = ? AND end_time IS NULL", sessionID).
		Updates(map[string]interface{}{
			"end_time":        time.Now(),
			"study_time":      studyTimeMinutes,
			"completed_pages": completedPages,
		})
	if result.Error != nil {
		log.Printf("Error ending study session %d: %v", sessionID, result.Error)
		return false
	}
	return result.RowsAffected > 0
}

// UpdateLessonProgress upserts a student's page position in a lesson.
// The derived percentage guards against zero total pages.
func (t *ProgressTracker) UpdateLessonProgress(studentID, lessonID uint, currentPage, totalPages int) bool {
	progress := 0.0
	if totalPages > 0 {
		progress = float64(currentPage) / float64(totalPages) * 100
		if progress > 100 {
			progress = 100
		}
	}

	var existing courseModels.LessonProgress
	err := t.db.Where("student_id = ? AND lesson_id = ?", studentID, lessonID).First(&existing).Error
	if err == nil {
		existing.CurrentPage = currentPage
		existing.TotalPages = totalPages
		existing.ProgressPercentage = progress
		existing.LastViewedAt = time.Now()
		return t.db.Save(&existing).Error == nil
	}

	record := courseModels.LessonProgress{
		StudentID:          studentID,
		LessonID:           lessonID,
		CurrentPage:        currentPage,
		TotalPages:         totalPages,
		ProgressPercentage: progress,
		LastViewedAt:       time.Now(),
	}
	if err := t.db.Create(&record).Error; err != nil {
		log.Printf("Error recording lesson progress for student %d lesson %d: %v", studentID, lessonID, err)
		return false
	}
	return true
}

// OverallStats aggregates a student's enrollments
type OverallStats struct {
	TotalEnrollments int64   `json:"total_enrollments"`
	CompletedCourses int64   `json:"completed_courses"`
	ActiveCourses    int64   `json:"active_courses"`
	AvgProgress      float64 `json:"avg_progress"`
	TotalStudyTime   int64   `json:"total_study_time"`
}

// CourseStudyTime is per-course accumulated study time
type CourseStudyTime struct {
	CourseName         string  `json:"course_name"`
	TotalStudyTime     int     `json:"total_study_time"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// ProgressAnalytics is the student progress report
type ProgressAnalytics struct {
	OverallStats      OverallStats                `json:"overall_stats"`
	StudyTimeByCourse []CourseStudyTime           `json:"study_time_by_course"`
	RecentSessions    []courseModels.StudySession `json:"recent_sessions"`
}

// Analytics builds the progress report for a student: aggregate
// enrollment stats, per-course study time, and the ten most recent
// study sessions.
func (t *ProgressTracker) Analytics(studentID uint) ProgressAnalytics {
	var analytics ProgressAnalytics

	t.db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND is_deleted = ?", studentID, false).
		Count(&analytics.OverallStats.TotalEnrollments)

	t.db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND is_deleted = ? AND status = ?", studentID, false, courseModels.EnrollmentCompleted).
		Count(&analytics.OverallStats.CompletedCourses)
	t.db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND is_deleted = ? AND status = ?", studentID, false, courseModels.EnrollmentActive).
		Count(&analytics.OverallStats.ActiveCourses)

	row := t.db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND is_deleted = ?", studentID, false).
		Select("COALESCE(AVG(progress_percentage), 0), COALESCE(SUM(total_study_time), 0)").
		Row()
	if err := row.Scan(&analytics.OverallStats.AvgProgress, &analytics.OverallStats.TotalStudyTime); err != nil {
		log.Printf("Error aggregating enrollments for student %d: %v", studentID, err)
	}

	t.db.Model(&courseModels.Enrollment{}).
		Select("courses.name as course_name, enrollments.total_study_time, enrollments.progress_percentage").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("enrollments.student_id = ? AND enrollments.is_deleted = ?", studentID, false).
		Order("enrollments.total_study_time desc").
		Scan(&analytics.StudyTimeByCourse)

	t.db.Where("student_id = ?", studentID).
		Order("start_time desc").
		Limit(10).
		Find(&analytics.RecentSessions)

	return analytics
}
