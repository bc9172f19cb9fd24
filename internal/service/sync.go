package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tenement_hub/internal/config"
	"tenement_hub/internal/domain"
)

var ErrSourceNotConfigured = errors.New("no data source configured")

// SyncService imports tenements from government registers into the
// datastore, one jurisdiction at a time.
type SyncService struct {
	sources   map[domain.Jurisdiction]Source
	tenements TenementStore
	holders   HolderStore
	syncState SyncStateStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.SyncConfig
}

func NewSyncService(
	sources []Source,
	tenements TenementStore,
	holders HolderStore,
	syncState SyncStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	bySource := make(map[domain.Jurisdiction]Source, len(sources))
	for _, src := range sources {
		bySource[src.Jurisdiction()] = src
	}

	return &SyncService{
		sources:   bySource,
		tenements: tenements,
		holders:   holders,
		syncState: syncState,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "sync"),
		config:    cfg,
	}
}

// HasSource reports whether j has a registered data source.
func (s *SyncService) HasSource(j domain.Jurisdiction) bool {
	_, ok := s.sources[j]
	return ok
}

// SyncJurisdiction pulls the register of j and imports new or changed
// tenements. Per-record failures are collected in the result; an error is
// returned only when the run as a whole could not proceed.
func (s *SyncService) SyncJurisdiction(ctx context.Context, j domain.Jurisdiction) (*domain.SyncResult, error) {
	source, ok := s.sources[j]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotConfigured, j)
	}

	startTime := time.Now()
	logger := s.logger.With("jurisdiction", j, "run_id", uuid.NewString())
	logger.Info("starting sync",
		"source", source.ID(),
		"source_name", source.Name(),
		"max_pages", s.config.MaxPagesPerSync,
	)

	tenements, err := source.FetchTenements(ctx, s.config.MaxPagesPerSync)
	if err != nil {
		return nil, fmt.Errorf("fetch tenements: %w", err)
	}

	logger.Info("fetched tenements from source", "count", len(tenements))

	valid := s.filterValid(logger, j, tenements)

	toSync, existing, err := s.filterForSync(ctx, j, valid)
	if err != nil {
		return nil, fmt.Errorf("filter for sync: %w", err)
	}

	logger.Info("tenements to sync", "count", len(toSync))

	details := &domain.SyncDetails{
		Fetched: len(tenements),
		Skipped: len(tenements) - len(toSync),
	}
	result := &domain.SyncResult{
		Jurisdiction: j,
		Errors:       []string{},
		Details:      details,
	}

	for i := range toSync {
		tenement := &toSync[i]
		_, exists := existing[tenement.ExternalID]
		isNew := !exists

		if err := s.saveTenement(ctx, tenement); err != nil {
			logger.Warn("failed to save tenement", "external_id", tenement.ExternalID, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", tenement.ExternalID, err))
			continue
		}

		if isNew {
			details.New++
		} else {
			details.Updated++
		}

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, tenement, isNew); err != nil {
				logger.Warn("failed to publish tenement", "external_id", tenement.ExternalID, "error", err)
				result.Errors = append(result.Errors, fmt.Sprintf("publish %s: %v", tenement.ExternalID, err))
			} else {
				details.Published++
			}
		}
	}

	result.Imported = details.New + details.Updated
	result.Success = len(toSync) == 0 || result.Imported > 0
	result.Message = syncMessage(j, result)

	if err := s.updateSyncState(ctx, j, result.Imported); err != nil {
		result.Timestamp = time.Now().UTC()
		return result, fmt.Errorf("update sync state: %w", err)
	}

	details.DurationMS = time.Since(startTime).Milliseconds()
	result.Timestamp = time.Now().UTC()

	logger.Info("sync completed",
		"new", details.New,
		"updated", details.Updated,
		"skipped", details.Skipped,
		"errors", len(result.Errors),
		"published", details.Published,
		"duration", time.Since(startTime),
	)

	return result, nil
}

// SyncAll syncs every jurisdiction with a registered source, in canonical
// order. A failed jurisdiction does not stop the others.
func (s *SyncService) SyncAll(ctx context.Context) ([]*domain.SyncResult, error) {
	var results []*domain.SyncResult
	var errs []error

	for _, j := range domain.Jurisdictions {
		if !s.HasSource(j) {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		result, err := s.SyncJurisdiction(ctx, j)
		if result != nil {
			results = append(results, result)
		}
		if err != nil {
			s.logger.Error("sync failed", "jurisdiction", j, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", j, err))
		}
	}

	return results, errors.Join(errs...)
}

func syncMessage(j domain.Jurisdiction, result *domain.SyncResult) string {
	switch {
	case !result.Success:
		return domain.FailedSyncMessage(j)
	case len(result.Errors) > 0:
		return fmt.Sprintf("Synced %d %s tenements with %d errors", result.Imported, j, len(result.Errors))
	default:
		return fmt.Sprintf("Successfully synced %d %s tenements from real APIs", result.Imported, j)
	}
}

// filterValid drops records that cannot be keyed in j. When the register
// repeats an id, the most recently modified copy is kept.
func (s *SyncService) filterValid(logger *slog.Logger, j domain.Jurisdiction, tenements []domain.Tenement) []domain.Tenement {
	index := make(map[string]int, len(tenements))
	var valid []domain.Tenement

	for _, t := range tenements {
		if t.ExternalID == "" || t.Jurisdiction != j {
			logger.Warn("skipping invalid tenement",
				"external_id", t.ExternalID,
				"record_jurisdiction", t.Jurisdiction,
			)
			continue
		}
		if i, ok := index[t.ExternalID]; ok {
			if t.LastModified.After(valid[i].LastModified) {
				valid[i] = t
			}
			continue
		}
		index[t.ExternalID] = len(valid)
		valid = append(valid, t)
	}

	return valid
}

func (s *SyncService) filterForSync(ctx context.Context, j domain.Jurisdiction, tenements []domain.Tenement) ([]domain.Tenement, map[string]time.Time, error) {
	if len(tenements) == 0 {
		return nil, map[string]time.Time{}, nil
	}

	externalIDs := make([]string, len(tenements))
	for i, t := range tenements {
		externalIDs[i] = t.ExternalID
	}

	existing, err := s.tenements.GetExistingByExternalIDs(ctx, j, externalIDs)
	if err != nil {
		return nil, nil, err
	}

	var toSync []domain.Tenement
	for _, tenement := range tenements {
		existingLastMod, exists := existing[tenement.ExternalID]

		if !exists || tenement.LastModified.After(existingLastMod) {
			toSync = append(toSync, tenement)
		}
	}

	return toSync, existing, nil
}

func (s *SyncService) saveTenement(ctx context.Context, tenement *domain.Tenement) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		tenementID, err := s.tenements.Upsert(txCtx, tenement)
		if err != nil {
			return fmt.Errorf("upsert tenement: %w", err)
		}

		ids := holderIDs(tenement.Holders)
		if len(ids) > 0 {
			if err := s.holders.UpsertBatch(txCtx, tenement.Holders); err != nil {
				return fmt.Errorf("upsert holders: %w", err)
			}
		}

		if err := s.holders.LinkToTenement(txCtx, tenementID, ids); err != nil {
			return fmt.Errorf("link holders: %w", err)
		}

		return nil
	})
}

func (s *SyncService) updateSyncState(ctx context.Context, j domain.Jurisdiction, imported int) error {
	state, err := s.syncState.Get(ctx, j)
	if err != nil {
		return err
	}

	state.Jurisdiction = j
	state.LastSyncedAt = time.Now()
	state.TotalImported += int64(imported)

	return s.syncState.Update(ctx, state)
}

func holderIDs(holders []domain.Holder) []string {
	seen := make(map[string]struct{}, len(holders))
	ids := make([]string, 0, len(holders))
	for _, h := range holders {
		if h.ID == "" {
			continue
		}
		if _, ok := seen[h.ID]; ok {
			continue
		}
		seen[h.ID] = struct{}{}
		ids = append(ids, h.ID)
	}
	return ids
}
