package jobs

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"deliveryproof/internal/adapters/out/imageproc"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultSweepSchedule runs the sweep every ten minutes.
	DefaultSweepSchedule = "0 */10 * * * *"

	// DefaultSweepMaxAge is how old a temp file must be before it is removed.
	DefaultSweepMaxAge = time.Hour
)

// UploadSweepJob removes temp files left in the upload directory by image
// writes that were interrupted before the final rename.
type UploadSweepJob struct {
	dir      string
	schedule string
	maxAge   time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewUploadSweepJob creates a sweeper for dir. An empty schedule selects
// DefaultSweepSchedule, a non-positive maxAge selects DefaultSweepMaxAge.
func NewUploadSweepJob(dir, schedule string, maxAge time.Duration, logger *slog.Logger) *UploadSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	if maxAge <= 0 {
		maxAge = DefaultSweepMaxAge
	}

	return &UploadSweepJob{
		dir:      dir,
		schedule: schedule,
		maxAge:   maxAge,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "upload_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *UploadSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		removed, err := j.Sweep(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Upload sweep job failed", "error", err)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Removed stale temp files", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Upload sweep job started", "schedule", j.schedule, "dir", j.dir)
	return nil
}

// Stop stops the sweep job and waits for a running sweep to finish.
func (j *UploadSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Upload sweep job stopped")
}

// Sweep removes temp files older than the configured age and returns how
// many were removed. A missing directory is not an error. Processed photos are
// never touched.
func (j *UploadSweepJob) Sweep(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := j.now().Add(-j.maxAge)
	removed := 0
	var errList []error

	for _, entry := range entries {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if !entry.Type().IsRegular() || !imageproc.IsPendingWrite(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err = os.Remove(filepath.Join(j.dir, entry.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errList = append(errList, err)
			continue
		}
		removed++
	}

	return removed, errors.Join(errList...)
}
