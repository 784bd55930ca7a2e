package handlers

import (
	"net/http"
)

func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.PortalStats(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, stats, http.StatusOK)
}
