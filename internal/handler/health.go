package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// readinessTimeout bounds all dependency checks of one /readyz call.
const readinessTimeout = 5 * time.Second

// HealthChecker defines an interface for checking service health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type dependency struct {
	name    string
	checker HealthChecker
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	deps   []dependency
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
// Pass nil for cache when Redis is not configured.
func NewHealthHandler(store, cache HealthChecker, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		deps: []dependency{
			{name: "store", checker: store},
			{name: "redis", checker: cache},
		},
		logger: logger,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe. It never touches dependencies.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz reports 200 only when every configured dependency answers.
// Unconfigured dependencies are listed but do not fail the probe. Failure
// details are logged, never returned: the endpoint is unauthenticated.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	response := HealthResponse{
		Status: "ok",
		Checks: make(map[string]string, len(h.deps)),
	}
	statusCode := http.StatusOK

	for _, dep := range h.deps {
		if dep.checker == nil {
			response.Checks[dep.name] = "not configured"
			continue
		}
		if err := dep.checker.Ping(ctx); err != nil {
			h.logger.WarnContext(ctx, "readiness_check_failed", "dependency", dep.name, "error", err)
			response.Checks[dep.name] = "error"
			response.Status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
			continue
		}
		response.Checks[dep.name] = "ok"
	}

	writeJSON(w, statusCode, response)
}
