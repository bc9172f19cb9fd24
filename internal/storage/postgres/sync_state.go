package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"tenement_hub/internal/domain"
)

type SyncStateStore struct {
	client *Client
}

func NewSyncStateStore(client *Client) *SyncStateStore {
	return &SyncStateStore{client: client}
}

func (s *SyncStateStore) Get(ctx context.Context, j domain.Jurisdiction) (*domain.SyncState, error) {
	exec, err := s.client.executor(ctx)
	if err != nil {
		return nil, err
	}

	var state domain.SyncState
	query := `
		SELECT id, jurisdiction, last_synced_at, total_imported
		FROM sync_state
		WHERE jurisdiction = $1`

	err = sqlx.GetContext(ctx, exec, &state, query, string(j))
	if errors.Is(err, sql.ErrNoRows) {
		// Never synced.
		return &domain.SyncState{Jurisdiction: j}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SyncStateStore) Update(ctx context.Context, state *domain.SyncState) error {
	exec, err := s.client.executor(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sync_state (jurisdiction, last_synced_at, total_imported)
		VALUES ($1, $2, $3)
		ON CONFLICT (jurisdiction) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			total_imported = EXCLUDED.total_imported`

	_, err = exec.ExecContext(ctx, query,
		string(state.Jurisdiction),
		state.LastSyncedAt,
		state.TotalImported,
	)
	return err
}
