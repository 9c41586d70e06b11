package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fitflow/fitflow/internal/domain"
)

// HealthEngine is the slice of the engine the health handler needs.
type HealthEngine interface {
	HealthCheck(ctx context.Context) domain.EngineHealth
}

type HealthHandler struct {
	engine HealthEngine
}

func NewHealthHandler(engine HealthEngine) *HealthHandler {
	return &HealthHandler{engine: engine}
}

// EngineHealth handles GET /v1/health/analysis
// @Summary Analysis engine health
// @Description Run every analyzer and the generator against a fixed synthetic dataset and report per-subsystem status. Always 200; broken subsystems report degraded or error.
// @Tags health
// @Produce json
// @Success 200 {object} domain.EngineHealth
// @Router /health/analysis [get]
func (h *HealthHandler) EngineHealth(w http.ResponseWriter, r *http.Request) {
	health := h.engine.HealthCheck(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
