package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tenement_hub/internal/domain"
)

type TenementStore struct {
	client *Client
}

func NewTenementStore(client *Client) *TenementStore {
	return &TenementStore{client: client}
}

type tenementRow struct {
	ID           int64      `db:"id"`
	Jurisdiction string     `db:"jurisdiction"`
	ExternalID   string     `db:"external_id"`
	Type         string     `db:"type"`
	Status       string     `db:"status"`
	AreaHectares *float64   `db:"area_ha"`
	GrantedAt    *time.Time `db:"granted_at"`
	ExpiresAt    *time.Time `db:"expires_at"`
	LastModified time.Time  `db:"last_modified"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r tenementRow) toDomain() domain.Tenement {
	return domain.Tenement{
		ID:           r.ID,
		Jurisdiction: domain.Jurisdiction(r.Jurisdiction),
		ExternalID:   r.ExternalID,
		Type:         r.Type,
		Status:       r.Status,
		AreaHectares: r.AreaHectares,
		GrantedAt:    r.GrantedAt,
		ExpiresAt:    r.ExpiresAt,
		LastModified: r.LastModified,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Connect makes sure the datastore handle is available.
func (s *TenementStore) Connect(ctx context.Context) error {
	_, err := s.client.DB(ctx)
	return err
}

// Upsert inserts the tenement or updates it when the incoming record is
// newer. It returns the row id either way.
func (s *TenementStore) Upsert(ctx context.Context, t *domain.Tenement) (int64, error) {
	exec, err := s.client.executor(ctx)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO tenements (
			jurisdiction, external_id, type, status, area_ha,
			granted_at, expires_at, last_modified
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (jurisdiction, external_id) DO UPDATE SET
			type = EXCLUDED.type,
			status = EXCLUDED.status,
			area_ha = EXCLUDED.area_ha,
			granted_at = EXCLUDED.granted_at,
			expires_at = EXCLUDED.expires_at,
			last_modified = EXCLUDED.last_modified,
			updated_at = NOW()
		WHERE tenements.last_modified < EXCLUDED.last_modified
		RETURNING id`

	var id int64
	err = exec.QueryRowxContext(ctx, query,
		string(t.Jurisdiction),
		t.ExternalID,
		t.Type,
		t.Status,
		t.AreaHectares,
		t.GrantedAt,
		t.ExpiresAt,
		t.LastModified,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		err = exec.QueryRowxContext(ctx,
			"SELECT id FROM tenements WHERE jurisdiction = $1 AND external_id = $2",
			string(t.Jurisdiction), t.ExternalID,
		).Scan(&id)
	}

	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *TenementStore) GetExistingByExternalIDs(ctx context.Context, j domain.Jurisdiction, ids []string) (map[string]time.Time, error) {
	if len(ids) == 0 {
		return make(map[string]time.Time), nil
	}

	exec, err := s.client.executor(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT external_id, last_modified FROM tenements WHERE jurisdiction = $1 AND external_id = ANY($2)`

	rows, err := exec.QueryContext(ctx, query, string(j), pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]time.Time)
	for rows.Next() {
		var extID string
		var lastMod time.Time
		if err := rows.Scan(&extID, &lastMod); err != nil {
			return nil, err
		}
		result[extID] = lastMod
	}

	return result, rows.Err()
}

func (s *TenementStore) CountByJurisdiction(ctx context.Context, j domain.Jurisdiction) (int64, error) {
	exec, err := s.client.executor(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	err = sqlx.GetContext(ctx, exec, &count, "SELECT COUNT(*) FROM tenements WHERE jurisdiction = $1", string(j))
	return count, err
}

// ListByJurisdiction returns the most recently modified tenements of j
// with their holders.
func (s *TenementStore) ListByJurisdiction(ctx context.Context, j domain.Jurisdiction, limit int) ([]domain.Tenement, error) {
	exec, err := s.client.executor(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, jurisdiction, external_id, type, status, area_ha,
			granted_at, expires_at, last_modified, created_at, updated_at
		FROM tenements
		WHERE jurisdiction = $1
		ORDER BY last_modified DESC, id DESC
		LIMIT $2`

	var rows []tenementRow
	if err := sqlx.SelectContext(ctx, exec, &rows, query, string(j), limit); err != nil {
		return nil, err
	}

	tenements := make([]domain.Tenement, len(rows))
	ids := make([]int64, len(rows))
	index := make(map[int64]int, len(rows))
	for i, r := range rows {
		tenements[i] = r.toDomain()
		ids[i] = r.ID
		index[r.ID] = i
	}

	if len(ids) == 0 {
		return tenements, nil
	}

	var links []holderLinkRow
	err = sqlx.SelectContext(ctx, exec, &links, `
		SELECT th.tenement_id, h.id, h.name
		FROM holders h
		INNER JOIN tenement_holders th ON th.holder_id = h.id
		WHERE th.tenement_id = ANY($1)
		ORDER BY th.tenement_id, h.name`, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	for _, l := range links {
		i := index[l.TenementID]
		tenements[i].Holders = append(tenements[i].Holders, domain.Holder{ID: l.ID, Name: l.Name})
	}

	return tenements, nil
}
