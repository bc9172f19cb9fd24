package domain

import (
	"fmt"
	"time"
)

const UnknownErrorMessage = "Unknown error"

// SyncResult is the outcome of one jurisdiction sync. It is returned to
// API callers as-is.
type SyncResult struct {
	Success      bool         `json:"success"`
	Imported     int          `json:"imported"`
	Errors       []string     `json:"errors"`
	Jurisdiction Jurisdiction `json:"jurisdiction"`
	Timestamp    time.Time    `json:"timestamp"`
	Message      string       `json:"message"`
	Details      *SyncDetails `json:"details,omitempty"`
}

// SyncDetails breaks down a successful run.
type SyncDetails struct {
	Fetched    int   `json:"fetched"`
	New        int   `json:"new"`
	Updated    int   `json:"updated"`
	Skipped    int   `json:"skipped"`
	Published  int   `json:"published"`
	DurationMS int64 `json:"duration_ms"`
}

// NewFailedSyncResult builds the result reported when a sync could not run.
func NewFailedSyncResult(j Jurisdiction, reason string, now time.Time) *SyncResult {
	if reason == "" {
		reason = UnknownErrorMessage
	}
	return &SyncResult{
		Success:      false,
		Imported:     0,
		Errors:       []string{reason},
		Jurisdiction: j,
		Timestamp:    now.UTC(),
		Message:      FailedSyncMessage(j),
	}
}

func FailedSyncMessage(j Jurisdiction) string {
	return fmt.Sprintf("Failed to sync %s data from real APIs", j)
}

// StatsSnapshot maps every jurisdiction to its tenement count.
type StatsSnapshot map[Jurisdiction]int64

// StatusReport describes data source availability.
type StatusReport struct {
	Status    string                  `json:"status"`
	Message   string                  `json:"message"`
	Timestamp time.Time               `json:"timestamp"`
	Checks    map[Jurisdiction]string `json:"checks"`
}
