package usecases

import (
	"context"

	"pulsegym/internal/application/retention/services"
	"pulsegym/internal/domain/retention"
	"pulsegym/internal/shared/logger"
)

// HealthBaselineStore keeps the trailing overall score the trend label is
// computed against. Backed by Redis in production.
type HealthBaselineStore interface {
	GetBaseline(ctx context.Context) (*float64, error)
	SetBaseline(ctx context.Context, overall float64) error
}

// GetGymHealthUseCase computes the roster-wide health score.
type GetGymHealthUseCase struct {
	assembler *services.ContextAssembler
	baseline  HealthBaselineStore
	logger    logger.Interface
}

func NewGetGymHealthUseCase(
	assembler *services.ContextAssembler,
	baseline HealthBaselineStore,
	logger logger.Interface,
) *GetGymHealthUseCase {
	return &GetGymHealthUseCase{
		assembler: assembler,
		baseline:  baseline,
		logger:    logger,
	}
}

func (uc *GetGymHealthUseCase) Execute(ctx context.Context) (*retention.GymHealthScore, error) {
	compute, err := uc.assembler.Assemble(ctx)
	if err != nil {
		return nil, mapContextError(err)
	}

	assessments, err := retention.ComputeAllAssessments(compute)
	if err != nil {
		return nil, mapContextError(err)
	}

	var baseline *float64
	if uc.baseline != nil {
		baseline, err = uc.baseline.GetBaseline(ctx)
		if err != nil {
			// Trend degrades to stable without a baseline; not fatal.
			uc.logger.Warnw("failed to load health baseline", "error", err)
			baseline = nil
		}
	}

	health := retention.ComputeGymHealth(compute, assessments, baseline)

	if uc.baseline != nil {
		if err := uc.baseline.SetBaseline(ctx, float64(health.Overall)); err != nil {
			uc.logger.Warnw("failed to store health baseline", "error", err)
		}
	}

	uc.logger.Infow("gym health computed",
		"overall", health.Overall,
		"trend", health.Trend,
		"members", len(assessments),
	)

	return &health, nil
}
