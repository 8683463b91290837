// Package jobs provides scheduled background tasks for the delivery service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. UploadSweepJob - Removes stale dot-prefixed pending files that interrupted
// photo writes left in the upload directory. Processed photos are never removed.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(cfg.UploadDir, cfg.UploadSweepSchedule, time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with seconds (cron.WithSeconds).
// The default "0 */10 * * * *" sweeps every ten minutes.
package jobs
