package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/users/api/http/presenter"
	"github.com/artem13815/users/pkg/health"
)

const readyTimeout = time.Second

type statusResponse struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, statusResponse{Status: "ok"})
}

// Ready: readiness check against the store.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), readyTimeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return presenter.JSON(c, http.StatusServiceUnavailable, statusResponse{Status: "not_ready", Details: err.Error()})
	}
	return presenter.JSON(c, http.StatusOK, statusResponse{Status: "ready"})
}
