package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"tenement_hub/internal/domain"
)

type TenementStore interface {
	Upsert(ctx context.Context, tenement *domain.Tenement) (int64, error)
	GetExistingByExternalIDs(ctx context.Context, j domain.Jurisdiction, ids []string) (map[string]time.Time, error)
}

// TenementCounter is the read side used by stats and status checks.
type TenementCounter interface {
	Connect(ctx context.Context) error
	CountByJurisdiction(ctx context.Context, j domain.Jurisdiction) (int64, error)
}

type HolderStore interface {
	UpsertBatch(ctx context.Context, holders []domain.Holder) error
	LinkToTenement(ctx context.Context, tenementID int64, holderIDs []string) error
}

type SyncStateStore interface {
	Get(ctx context.Context, j domain.Jurisdiction) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

// Source is a government tenement register for a single jurisdiction.
type Source interface {
	ID() string
	Name() string
	Jurisdiction() domain.Jurisdiction
	FetchTenements(ctx context.Context, maxPages int) ([]domain.Tenement, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, tenement *domain.Tenement, isNew bool) error
	Close() error
}
