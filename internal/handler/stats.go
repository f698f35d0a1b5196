package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shopfront/shopfront/internal/model"
)

// StatsProvider reports store-wide counters.
type StatsProvider interface {
	Stats(ctx context.Context) (model.Stats, error)
}

// StatsHandler serves GET /stats.
type StatsHandler struct {
	stats  StatsProvider
	logger *slog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(stats StatsProvider, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		logger: logger,
	}
}

// Stats handles GET /stats.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
