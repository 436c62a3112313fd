package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulsegym/internal/application/retention/usecases"
	"pulsegym/internal/shared/logger"
	"pulsegym/internal/shared/utils"
)

type WebhookHandler struct {
	recordBillingEventUC recordBillingEventUseCase
	logger               logger.Interface
}

func NewWebhookHandler(recordBillingEventUC recordBillingEventUseCase, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		recordBillingEventUC: recordBillingEventUC,
		logger:               logger,
	}
}

// HandleBillingEvent handles POST /webhooks/billing
func (h *WebhookHandler) HandleBillingEvent(c *gin.Context) {
	var cmd usecases.RecordBillingEventCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid billing webhook payload", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.recordBillingEventUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "billing event accepted", nil)
}
