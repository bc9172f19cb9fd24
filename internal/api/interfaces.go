package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"tenement_hub/internal/domain"
)

// Syncer runs an import of one jurisdiction's register.
type Syncer interface {
	SyncJurisdiction(ctx context.Context, j domain.Jurisdiction) (*domain.SyncResult, error)
}

type StatsProvider interface {
	Snapshot(ctx context.Context) (domain.StatsSnapshot, error)
}

type StatusChecker interface {
	Check(ctx context.Context) (*domain.StatusReport, error)
}

type TenementLister interface {
	ListByJurisdiction(ctx context.Context, j domain.Jurisdiction, limit int) ([]domain.Tenement, error)
}
