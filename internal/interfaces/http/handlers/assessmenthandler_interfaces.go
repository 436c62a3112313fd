package handlers

import (
	"context"

	"pulsegym/internal/application/retention/usecases"
	"pulsegym/internal/domain/retention"
)

// Use case interfaces for AssessmentHandler

type assessMemberUseCase interface {
	Execute(ctx context.Context, memberID string) (*retention.RiskAssessment, error)
}

type listAssessmentsUseCase interface {
	Execute(ctx context.Context, query usecases.ListAssessmentsQuery) ([]retention.RiskAssessment, int64, error)
}

type assessRosterUseCase interface {
	Execute(ctx context.Context) (map[string]retention.RiskAssessment, error)
}
