package handler

import (
	"log"
	"net/http"

	"bloglist/internal/httputil"
	"bloglist/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Get handles GET /api/blogs/stats.
// Serves the aggregation snapshot over the whole blog collection.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.statsService.Get(r.Context())
	if err != nil {
		log.Printf("[StatsHandler] get stats: %v", err)
		httputil.WriteError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, snap)
}
