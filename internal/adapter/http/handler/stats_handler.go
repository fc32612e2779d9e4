package handler

import (
	"context"
	"net/http"

	"github.com/jokobim12/tefanote/internal/adapter/http/dto"
	"github.com/jokobim12/tefanote/internal/usecase"
)

// StatsService defines the behavior needed by StatsHandler.
type StatsService interface {
	StatsFor(date string) usecase.Stats
}

// StatsResetter resets the archive aggregates.
type StatsResetter interface {
	ResetStats(ctx context.Context)
}

// StatsHandler handles aggregate HTTP requests.
type StatsHandler struct {
	statsUC  StatsService
	resetter StatsResetter
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsUC StatsService, resetter StatsResetter) *StatsHandler {
	return &StatsHandler{statsUC: statsUC, resetter: resetter}
}

// Get returns the aggregates for the date in the query, defaulting to
// today.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats := h.statsUC.StatsFor(r.URL.Query().Get("date"))

	writeJSON(w, http.StatusOK, dto.StatsFromUseCase(stats))
}

// Reset zeroes the archived aggregates. Live transactions are untouched.
func (h *StatsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.resetter.ResetStats(r.Context())

	writeJSON(w, http.StatusOK, dto.StatsFromUseCase(h.statsUC.StatsFor("")))
}
