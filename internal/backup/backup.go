// Package backup periodically writes the application snapshot to disk in the
// same format as the user-facing export.
package backup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Spigel00/work-force-matchup/internal/models"
	"github.com/Spigel00/work-force-matchup/internal/persistence"
)

// Source provides the snapshot to back up.
type Source interface {
	Snapshot() models.Snapshot
}

// Scheduler wraps robfig/cron and writes one backup file per tick.
type Scheduler struct {
	cron *cron.Cron
	src  Source
	dir  string
	spec string
	now  func() time.Time
	log  *slog.Logger
}

// New creates a Scheduler that writes into dir on the cron spec, e.g.
// "@every 6h" or "0 3 * * *".
func New(src Source, dir, spec string, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron: cron.New(),
		src:  src,
		dir:  dir,
		spec: spec,
		now:  time.Now,
		log:  logger.With("component", "backup"),
	}
}

// Start registers the backup job and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if _, err := s.RunOnce(ctx); err != nil {
			s.log.Error("backup failed", "err", err)
		}
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	s.log.Info("backup scheduler started", "spec", s.spec, "dir", s.dir)
	return nil
}

// Stop stops the scheduler and waits for a running backup to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("backup scheduler stopped")
}

// RunOnce writes a backup now and returns its path.
func (s *Scheduler) RunOnce(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	path := filepath.Join(s.dir, FileName(s.now()))
	tmp, err := os.CreateTemp(s.dir, ".appData-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := persistence.WriteSnapshot(tmp, s.src.Snapshot()); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename backup: %w", err)
	}

	s.log.Info("backup written", "path", path)
	return path, nil
}

// FileName is the backup file name for a point in time.
func FileName(t time.Time) string {
	return "appData-" + t.UTC().Format("20060102T150405Z") + ".json"
}
