package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/utils/fsutil"
	"github.com/robfig/cron/v3"
)

// BackupScheduler periodically writes the backup export to a directory.
type BackupScheduler struct {
	BaseService
	cronScheduler *cron.Cron
	export        portssvc.ExportService
	dir           string
	schedule      string
	jobID         cron.EntryID
}

// NewBackupScheduler creates a scheduler for the given six-field cron expression
// (seconds first), e.g. "0 0 21 * * *" for every day at 21:00.
func NewBackupScheduler(export portssvc.ExportService, dir, schedule string) *BackupScheduler {
	return &BackupScheduler{
		cronScheduler: cron.New(cron.WithSeconds()),
		export:        export,
		dir:           dir,
		schedule:      schedule,
	}
}

// Start registers the backup job and starts the scheduler. ctx only carries the logger for job runs.
func (s *BackupScheduler) Start(ctx context.Context) error {
	jobCtx := context.WithoutCancel(ctx)
	var err error
	s.jobID, err = s.cronScheduler.AddFunc(s.schedule, func() {
		s.LogInfo(jobCtx, "Running scheduled backup")
		if _, err := s.RunOnce(jobCtx); err != nil {
			s.LogError(jobCtx, err, "Scheduled backup failed")
		}
	})
	if err != nil {
		return fmt.Errorf("error scheduling backup job: %w", err)
	}

	s.cronScheduler.Start()
	s.LogInfo(ctx, "Backup scheduler started", slog.String("schedule", s.schedule), slog.String("dir", s.dir))
	return nil
}

// Stop halts the scheduler and waits for a running backup to finish or ctx to end.
func (s *BackupScheduler) Stop(ctx context.Context) {
	done := s.cronScheduler.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	s.LogInfo(ctx, "Backup scheduler stopped")
}

// RunOnce writes one backup file and returns its path.
func (s *BackupScheduler) RunOnce(ctx context.Context) (string, error) {
	name, data, err := s.export.Backup(ctx)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, name)
	if err := fsutil.WriteFileAtomic(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	s.LogInfo(ctx, "Backup written", slog.String("path", path))
	return path, nil
}
