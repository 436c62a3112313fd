package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulsegym/internal/application/retention/dto"
	"pulsegym/internal/shared/logger"
	"pulsegym/internal/shared/utils"
)

type HealthHandler struct {
	getGymHealthUC getGymHealthUseCase
	logger         logger.Interface
}

func NewHealthHandler(getGymHealthUC getGymHealthUseCase, logger logger.Interface) *HealthHandler {
	return &HealthHandler{
		getGymHealthUC: getGymHealthUC,
		logger:         logger,
	}
}

// GetGymHealth handles GET /gym/health
func (h *HealthHandler) GetGymHealth(c *gin.Context) {
	health, err := h.getGymHealthUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.FromGymHealth(health))
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
