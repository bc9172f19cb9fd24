package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"tenement_hub/internal/domain"
)

// StatsService counts tenements per jurisdiction.
type StatsService struct {
	counter        TenementCounter
	maxConcurrency int
	logger         *slog.Logger
}

func NewStatsService(counter TenementCounter, maxConcurrency int, logger *slog.Logger) *StatsService {
	return &StatsService{
		counter:        counter,
		maxConcurrency: maxConcurrency,
		logger:         logger.With("component", "stats"),
	}
}

// Snapshot returns a count for every jurisdiction. A failed count is
// logged and reported as zero; only an unavailable datastore fails the
// whole snapshot.
func (s *StatsService) Snapshot(ctx context.Context) (domain.StatsSnapshot, error) {
	if err := s.counter.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect datastore: %w", err)
	}

	counts := make([]int64, len(domain.Jurisdictions))

	g, gctx := errgroup.WithContext(ctx)
	if s.maxConcurrency > 0 {
		g.SetLimit(s.maxConcurrency)
	}

	for i, j := range domain.Jurisdictions {
		g.Go(func() error {
			n, err := s.counter.CountByJurisdiction(gctx, j)
			if err != nil {
				s.logger.Error("failed to count tenements", "jurisdiction", j, "error", err)
				return nil
			}
			if n < 0 {
				n = 0
			}
			counts[i] = n
			return nil
		})
	}

	// Workers never fail; errors were handled above.
	_ = g.Wait()

	snapshot := make(domain.StatsSnapshot, len(domain.Jurisdictions))
	for i, j := range domain.Jurisdictions {
		snapshot[j] = counts[i]
	}

	return snapshot, nil
}
