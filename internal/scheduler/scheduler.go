package scheduler

import (
	"context"
	"log/slog"
	"time"

	"tenement_hub/internal/domain"
)

//go:generate mockgen -source=scheduler.go -destination=mocks/mocks.go -package=mocks

// Syncer runs a sync of every configured jurisdiction.
type Syncer interface {
	SyncAll(ctx context.Context) ([]*domain.SyncResult, error)
}

type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With("component", "scheduler"),
	}
}

// Start runs a sync immediately and then once per interval until ctx is
// canceled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "timeout", s.timeout)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results, err := s.syncer.SyncAll(syncCtx)

	imported := 0
	for _, r := range results {
		imported += r.Imported
	}
	s.logger.Info("scheduled sync finished", "jurisdictions", len(results), "imported", imported)

	if err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}
