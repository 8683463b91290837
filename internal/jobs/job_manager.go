package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	uploadSweepJob *UploadSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(uploadDir, sweepSchedule string, sweepMaxAge time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		uploadSweepJob: NewUploadSweepJob(uploadDir, sweepSchedule, sweepMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.uploadSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start upload sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.uploadSweepJob.Stop()
}
