package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gezi/internal/backend"
	"gezi/internal/models/response_models"
	"gezi/pkg/utils"
)

type HealthController struct {
	backend backend.Client
	logger  *zap.Logger
}

func NewHealthController(client backend.Client, logger *zap.Logger) *HealthController {
	return &HealthController{backend: client, logger: logger}
}

// HealthHandler reports this service as up even when the planner backend is
// not; the backend state is informational.
func (h *HealthController) HealthHandler(c *gin.Context) {
	resp := response_models.HealthResponse{Status: "ok", Backend: "ok"}
	if err := h.backend.Health(c.Request.Context()); err != nil {
		h.logger.Warn("Planner backend health check failed", zap.Error(err))
		resp.Backend = "unavailable"
	}
	utils.RespondSuccess(c, resp, "")
}
