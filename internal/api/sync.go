package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tenement_hub/internal/domain"
)

var errUnknown = errors.New(domain.UnknownErrorMessage)

// syncJurisdiction handles POST /data-sources/sync/{jurisdiction}.
//
// A result from the syncer is forwarded untouched with 200. Any failure,
// including a panic in the syncer, becomes a failed SyncResult with 500.
// An unknown jurisdiction is rejected with 400 before the syncer runs.
func (h *handler) syncJurisdiction(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "jurisdiction")
	logger := h.logger.With(
		"jurisdiction", raw,
		"request_id", middleware.GetReqID(r.Context()),
	)

	j, err := domain.ParseJurisdiction(raw)
	if err != nil {
		logger.Warn("rejected sync request", "error", err)
		writeJSON(w, domain.NewFailedSyncResult(domain.Jurisdiction(raw), err.Error(), time.Now()), http.StatusBadRequest)
		return
	}

	logger.Info("starting sync")

	ctx := r.Context()
	if h.syncTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.syncTimeout)
		defer cancel()
	}

	result, err := h.runSync(ctx, j)
	if err != nil {
		logger.Error("sync failed", "error", err)
		writeJSON(w, domain.NewFailedSyncResult(j, err.Error(), time.Now()), http.StatusInternalServerError)
		return
	}

	logger.Info("sync finished",
		"success", result.Success,
		"imported", result.Imported,
		"errors", len(result.Errors),
	)
	writeJSON(w, result, http.StatusOK)
}

func (h *handler) runSync(ctx context.Context, j domain.Jurisdiction) (result *domain.SyncResult, err error) {
	if h.syncSlots != nil {
		if err := h.syncSlots.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("wait for sync slot: %w", err)
		}
		defer h.syncSlots.Release(1)
	}

	defer func() {
		if p := recover(); p != nil {
			h.logger.Error("syncer panicked", "jurisdiction", j, "panic", p)
			result = nil
			if e, ok := p.(error); ok {
				err = e
			} else {
				err = errUnknown
			}
		}
	}()

	result, err = h.services.Syncer.SyncJurisdiction(ctx, j)
	if err == nil && result == nil {
		err = errUnknown
	}
	return result, err
}
