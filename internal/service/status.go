package service

import (
	"context"
	"fmt"
	"time"

	"tenement_hub/internal/domain"
)

const (
	CheckActive        = "Active"
	CheckNotConfigured = "Not configured"
)

// SourceRegistry reports which jurisdictions can be synced.
type SourceRegistry interface {
	HasSource(j domain.Jurisdiction) bool
}

type StatusService struct {
	counter TenementCounter
	sources SourceRegistry
}

func NewStatusService(counter TenementCounter, sources SourceRegistry) *StatusService {
	return &StatusService{counter: counter, sources: sources}
}

func (s *StatusService) Check(ctx context.Context) (*domain.StatusReport, error) {
	if err := s.counter.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect datastore: %w", err)
	}

	checks := make(map[domain.Jurisdiction]string, len(domain.Jurisdictions))
	active := 0
	for _, j := range domain.Jurisdictions {
		if s.sources.HasSource(j) {
			checks[j] = CheckActive
			active++
		} else {
			checks[j] = CheckNotConfigured
		}
	}

	return &domain.StatusReport{
		Status:    "operational",
		Message:   fmt.Sprintf("%d of %d data sources active", active, len(domain.Jurisdictions)),
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	}, nil
}
