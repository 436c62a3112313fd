// Package usecases contains the retention application use cases. Each use
// case loads what it needs, invokes the pure engine, and leaves persistence
// of results to its own discretion; the engine itself never stores anything.
package usecases

import (
	"context"
	"fmt"

	"pulsegym/internal/application/retention/services"
	"pulsegym/internal/domain/retention"
	"pulsegym/internal/shared/errors"
	"pulsegym/internal/shared/logger"
)

// AssessmentCache short-circuits repeated single-member lookups. Entries
// expire on their own; a miss just means a fresh computation.
type AssessmentCache interface {
	Get(ctx context.Context, memberID string) (*retention.RiskAssessment, error)
	Set(ctx context.Context, assessment *retention.RiskAssessment) error
}

// AssessMemberUseCase computes the risk assessment for one member.
type AssessMemberUseCase struct {
	members   services.MemberRepository
	assembler *services.ContextAssembler
	notifier  *services.InterventionNotifier
	cache     AssessmentCache
	logger    logger.Interface
}

func NewAssessMemberUseCase(
	members services.MemberRepository,
	assembler *services.ContextAssembler,
	notifier *services.InterventionNotifier,
	cache AssessmentCache,
	logger logger.Interface,
) *AssessMemberUseCase {
	return &AssessMemberUseCase{
		members:   members,
		assembler: assembler,
		notifier:  notifier,
		cache:     cache,
		logger:    logger,
	}
}

func (uc *AssessMemberUseCase) Execute(ctx context.Context, memberID string) (*retention.RiskAssessment, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, memberID)
		if err != nil {
			uc.logger.Warnw("assessment cache read failed", "error", err, "member_id", memberID)
		} else if cached != nil {
			return cached, nil
		}
	}

	member, err := uc.members.GetByID(ctx, memberID)
	if err != nil {
		uc.logger.Errorw("failed to get member", "error", err, "member_id", memberID)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, errors.NewNotFoundError("member not found", memberID)
	}

	compute, err := uc.assembler.Assemble(ctx)
	if err != nil {
		return nil, mapContextError(err)
	}

	assessment := retention.ComputeRiskAssessment(member, compute)

	if uc.notifier != nil {
		uc.notifier.NotifyIfNeeded(member, &assessment)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, &assessment); err != nil {
			uc.logger.Warnw("assessment cache write failed", "error", err, "member_id", memberID)
		}
	}

	uc.logger.Debugw("member assessed",
		"member_id", memberID,
		"score", assessment.Score,
		"level", assessment.Level,
	)

	return &assessment, nil
}

// mapContextError turns engine context violations into boundary errors; any
// other failure stays an internal error.
func mapContextError(err error) error {
	if retention.IsInvalidContext(err) {
		return errors.NewValidationError("roster data is inconsistent", err.Error())
	}
	return err
}
