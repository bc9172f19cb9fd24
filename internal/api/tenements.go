package api

import (
	"errors"
	"net/http"
	"strconv"

	"tenement_hub/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

var errInvalidLimit = errors.New("limit must be an integer between 1 and 500")

type tenementList struct {
	Jurisdiction domain.Jurisdiction `json:"jurisdiction"`
	Count        int                 `json:"count"`
	Tenements    []domain.Tenement   `json:"tenements"`
}

// listTenements handles GET /tenements?jurisdiction=J&limit=N.
func (h *handler) listTenements(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	j, err := domain.ParseJurisdiction(query.Get("jurisdiction"))
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tenements, err := h.services.Tenements.ListByJurisdiction(r.Context(), j, limit)
	if err != nil {
		h.logger.Error("failed to list tenements", "jurisdiction", j, "error", err)
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if tenements == nil {
		tenements = []domain.Tenement{}
	}

	writeJSON(w, tenementList{
		Jurisdiction: j,
		Count:        len(tenements),
		Tenements:    tenements,
	}, http.StatusOK)
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultListLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxListLimit {
		return 0, errInvalidLimit
	}
	return limit, nil
}
