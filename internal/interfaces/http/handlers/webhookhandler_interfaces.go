package handlers

import (
	"context"

	"pulsegym/internal/application/retention/usecases"
)

// Use case interfaces for WebhookHandler

type recordBillingEventUseCase interface {
	Execute(ctx context.Context, cmd usecases.RecordBillingEventCommand) error
}
