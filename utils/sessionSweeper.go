package utils

import (
	"log"
	"time"

	"olms/config"
	"olms/database"
	courseModels "olms/models/course"

	"github.com/robfig/cron/v3"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[SESSION-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sweepStaleSessions closes study sessions left open past the cutoff.
// The credited study time is the cutoff itself: a session abandoned
// without an explicit end reports no reliable duration, so it gets the
// maximum a single session is allowed to run.
func sweepStaleSessions() {
	db := database.Database.Db
	cutoff := time.Now().Add(-time.Duration(config.AppConfig.SessionCutoffMinute) * time.Minute)

	result := db.Model(&courseModels.StudySession{}).
		Where("end_time IS NULL AND start_time <= ?", cutoff).
		Updates(map[string]interface{}{
			"end_time":   time.Now(),
			"study_time": config.AppConfig.SessionCutoffMinute,
		})
	if result.Error != nil {
		logSweeper("Error closing stale sessions: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logSweeper("Closed stale study sessions")
	}
}

// InitializeSessionSweeper starts the background job that closes
// abandoned study sessions.
func InitializeSessionSweeper() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.SessionSweepSpec, sweepStaleSessions); err != nil {
		logSweeper("Invalid sweep schedule, sweeper disabled: " + err.Error())
		return c
	}

	c.Start()
	logSweeper("Session sweeper started")
	return c
}
