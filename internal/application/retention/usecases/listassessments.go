package usecases

import (
	"context"

	"pulsegym/internal/domain/retention"
	"pulsegym/internal/shared/errors"
	"pulsegym/internal/shared/logger"
)

// AssessmentReader pages over the latest stored snapshot per member.
type AssessmentReader interface {
	ListLatest(ctx context.Context, level string, offset, limit int) ([]retention.RiskAssessment, int64, error)
}

// ListAssessmentsQuery filters and pages the snapshot listing.
type ListAssessmentsQuery struct {
	Level    string
	Page     int
	PageSize int
}

// ListAssessmentsUseCase serves the stored assessment snapshots. It reads
// whatever the last roster run wrote; it never recomputes.
type ListAssessmentsUseCase struct {
	reader AssessmentReader
	logger logger.Interface
}

func NewListAssessmentsUseCase(reader AssessmentReader, logger logger.Interface) *ListAssessmentsUseCase {
	return &ListAssessmentsUseCase{reader: reader, logger: logger}
}

func (uc *ListAssessmentsUseCase) Execute(ctx context.Context, query ListAssessmentsQuery) ([]retention.RiskAssessment, int64, error) {
	if query.Level != "" && !retention.RiskLevel(query.Level).IsValid() {
		return nil, 0, errors.NewValidationError("invalid risk level", query.Level)
	}

	offset := (query.Page - 1) * query.PageSize
	assessments, total, err := uc.reader.ListLatest(ctx, query.Level, offset, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list assessment snapshots", "error", err)
		return nil, 0, err
	}

	return assessments, total, nil
}
