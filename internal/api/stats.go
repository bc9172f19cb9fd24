package api

import "net/http"

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.services.Stats.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("failed to build tenement stats", "error", err)
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, snapshot, http.StatusOK)
}

func (h *handler) statusCheck(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.Status.Check(r.Context())
	if err != nil {
		h.logger.Error("status check failed", "error", err)
		writeError(w, "Status check failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, report, http.StatusOK)
}
