package usecases

import (
	"context"

	"pulsegym/internal/application/retention/services"
	"pulsegym/internal/domain/retention"
	"pulsegym/internal/shared/logger"
)

// AssessmentRecorder persists assessment snapshots for trend history. The
// engine never stores results itself; this use case does it on the way out.
type AssessmentRecorder interface {
	SaveAssessments(ctx context.Context, assessments map[string]retention.RiskAssessment) error
}

// AssessRosterUseCase assesses every member and records the snapshots.
type AssessRosterUseCase struct {
	assembler *services.ContextAssembler
	recorder  AssessmentRecorder
	logger    logger.Interface
}

func NewAssessRosterUseCase(
	assembler *services.ContextAssembler,
	recorder AssessmentRecorder,
	logger logger.Interface,
) *AssessRosterUseCase {
	return &AssessRosterUseCase{
		assembler: assembler,
		recorder:  recorder,
		logger:    logger,
	}
}

func (uc *AssessRosterUseCase) Execute(ctx context.Context) (map[string]retention.RiskAssessment, error) {
	compute, err := uc.assembler.Assemble(ctx)
	if err != nil {
		return nil, mapContextError(err)
	}

	assessments, err := retention.ComputeAllAssessments(compute)
	if err != nil {
		return nil, mapContextError(err)
	}

	if uc.recorder != nil {
		if err := uc.recorder.SaveAssessments(ctx, assessments); err != nil {
			// Snapshots feed trend history only; the computed results are
			// still good.
			uc.logger.Warnw("failed to record assessment snapshots", "error", err)
		}
	}

	uc.logger.Infow("roster assessed", "members", len(assessments))
	return assessments, nil
}

// ExecuteWithContext runs the batch over a caller-supplied snapshot. Import
// and webhook adapters use this to score fabricated members with the same
// rules as persisted ones.
func (uc *AssessRosterUseCase) ExecuteWithContext(compute *retention.ComputeContext) (map[string]retention.RiskAssessment, error) {
	assessments, err := retention.ComputeAllAssessments(compute)
	if err != nil {
		return nil, mapContextError(err)
	}
	return assessments, nil
}
