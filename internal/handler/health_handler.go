package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/aida-chat/internal/domain"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	backend domain.BackendClient
}

// NewHealthHandler creates a health handler
func NewHealthHandler(backend domain.BackendClient) *HealthHandler {
	return &HealthHandler{
		backend: backend,
	}
}

// Ping basic health check
//
//	@Summary	Ping
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/ping [get]
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Readiness reports whether the chat backend is reachable
//
//	@Summary	Readiness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Failure	503	{object}	map[string]interface{}
//	@Router		/health/ready [get]
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	if err := h.backend.Health(ctx); err != nil {
		c.JSON(consts.StatusServiceUnavailable, utils.H{
			"status":  "not_ready",
			"backend": "unhealthy",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(consts.StatusOK, utils.H{
		"status":  "ready",
		"backend": "healthy",
	})
}

// Liveness probe
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health/live [get]
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{
		"status": "alive",
	})
}
