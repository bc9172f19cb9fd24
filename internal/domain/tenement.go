package domain

import "time"

type Tenement struct {
	ID           int64        `json:"id,omitempty"`
	Jurisdiction Jurisdiction `json:"jurisdiction"`
	ExternalID   string       `json:"external_id"` // registry identifier, e.g. "E 45/1234"
	Type         string       `json:"type"`
	Status       string       `json:"status"`
	AreaHectares *float64     `json:"area_ha,omitempty"`
	GrantedAt    *time.Time   `json:"granted_at,omitempty"`
	ExpiresAt    *time.Time   `json:"expires_at,omitempty"`
	LastModified time.Time    `json:"last_modified"`
	Holders      []Holder     `json:"holders,omitempty"`
	CreatedAt    time.Time    `json:"created_at,omitempty"`
	UpdatedAt    time.Time    `json:"updated_at,omitempty"`
}

type Holder struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type SyncState struct {
	ID            int64        `db:"id"`
	Jurisdiction  Jurisdiction `db:"jurisdiction"`
	LastSyncedAt  time.Time    `db:"last_synced_at"`
	TotalImported int64        `db:"total_imported"`
}
