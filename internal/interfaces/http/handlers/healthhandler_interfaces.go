package handlers

import (
	"context"

	"pulsegym/internal/domain/retention"
)

// Use case interfaces for HealthHandler

type getGymHealthUseCase interface {
	Execute(ctx context.Context) (*retention.GymHealthScore, error)
}
