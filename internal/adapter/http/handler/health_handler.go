package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports state backend reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	backend Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(backend Pinger) *HealthHandler {
	return &HealthHandler{backend: backend}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the state backend is reachable. The in-memory
// ledger keeps serving reads either way; readiness only signals whether
// writes are being persisted.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.backend.Ping(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "state backend unhealthy", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"backend": "ok",
	})
}
