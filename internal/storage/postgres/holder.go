package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"tenement_hub/internal/domain"
)

type HolderStore struct {
	client *Client
}

func NewHolderStore(client *Client) *HolderStore {
	return &HolderStore{client: client}
}

type holderLinkRow struct {
	TenementID int64  `db:"tenement_id"`
	ID         string `db:"id"`
	Name       string `db:"name"`
}

func (s *HolderStore) UpsertBatch(ctx context.Context, holders []domain.Holder) error {
	holders = uniqueHolders(holders)
	if len(holders) == 0 {
		return nil
	}

	exec, err := s.client.executor(ctx)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO holders (id, name) VALUES ")
	valueArgs := make([]interface{}, 0, len(holders)*2)

	for i, h := range holders {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(i*2 + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*2 + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, h.ID, h.Name)
	}
	sb.WriteString(" ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name")

	_, err = exec.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// LinkToTenement replaces the holders linked to a tenement.
func (s *HolderStore) LinkToTenement(ctx context.Context, tenementID int64, holderIDs []string) error {
	exec, err := s.client.executor(ctx)
	if err != nil {
		return err
	}

	_, err = exec.ExecContext(ctx,
		"DELETE FROM tenement_holders WHERE tenement_id = $1",
		tenementID,
	)
	if err != nil {
		return err
	}

	if len(holderIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO tenement_holders (tenement_id, holder_id) VALUES ")
	valueArgs := make([]interface{}, 0, len(holderIDs)+1)
	valueArgs = append(valueArgs, tenementID)

	for i, holderID := range holderIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, holderID)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err = exec.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

func (s *HolderStore) GetByTenementID(ctx context.Context, tenementID int64) ([]domain.Holder, error) {
	exec, err := s.client.executor(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT h.id, h.name
		FROM holders h
		INNER JOIN tenement_holders th ON th.holder_id = h.id
		WHERE th.tenement_id = $1
		ORDER BY h.name`

	var holders []domain.Holder
	err = sqlx.SelectContext(ctx, exec, &holders, query, tenementID)
	return holders, err
}

// uniqueHolders drops repeated ids; the last name seen wins.
func uniqueHolders(holders []domain.Holder) []domain.Holder {
	seen := make(map[string]int, len(holders))
	out := make([]domain.Holder, 0, len(holders))
	for _, h := range holders {
		if h.ID == "" {
			continue
		}
		if i, ok := seen[h.ID]; ok {
			out[i].Name = h.Name
			continue
		}
		seen[h.ID] = len(out)
		out = append(out, h)
	}
	return out
}
