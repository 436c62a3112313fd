package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pulsegym/internal/domain/retention"
	"pulsegym/internal/infrastructure/persistence/mappers"
	"pulsegym/internal/infrastructure/persistence/models"
	"pulsegym/internal/shared/id"
	"pulsegym/internal/shared/logger"
)

// AssessmentRepositoryImpl stores one snapshot row per member, overwritten on
// every roster run. It backs both the recorder and the reader interfaces of
// the assessment use cases.
type AssessmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AssessmentMapper
	logger logger.Interface
}

func NewAssessmentRepository(db *gorm.DB, logger logger.Interface) *AssessmentRepositoryImpl {
	return &AssessmentRepositoryImpl{
		db:     db,
		mapper: mappers.NewAssessmentMapper(),
		logger: logger,
	}
}

func (r *AssessmentRepositoryImpl) SaveAssessments(ctx context.Context, assessments map[string]retention.RiskAssessment) error {
	if len(assessments) == 0 {
		return nil
	}

	snapshotModels := make([]*models.AssessmentSnapshotModel, 0, len(assessments))
	for memberID, assessment := range assessments {
		model, err := r.mapper.ToModel(&assessment)
		if err != nil {
			r.logger.Errorw("failed to convert assessment to model", "error", err, "member_id", memberID)
			return fmt.Errorf("failed to convert assessment to model: %w", err)
		}

		sid, err := id.NewAssessmentID()
		if err != nil {
			return fmt.Errorf("failed to generate assessment ID: %w", err)
		}
		model.SID = sid

		snapshotModels = append(snapshotModels, model)
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "member_sid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"score", "level", "factors", "explanation", "interventions",
			"computed_at", "updated_at",
		}),
	}).CreateInBatches(snapshotModels, 100).Error

	if err != nil {
		r.logger.Errorw("failed to save assessment snapshots", "error", err, "count", len(snapshotModels))
		return fmt.Errorf("failed to save assessment snapshots: %w", err)
	}

	return nil
}

func (r *AssessmentRepositoryImpl) ListLatest(ctx context.Context, level string, offset, limit int) ([]retention.RiskAssessment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AssessmentSnapshotModel{})
	if level != "" {
		query = query.Where("level = ?", level)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count assessment snapshots", "error", err)
		return nil, 0, fmt.Errorf("failed to count assessment snapshots: %w", err)
	}

	var snapshotModels []models.AssessmentSnapshotModel
	err := query.
		Order("score DESC").
		Offset(offset).
		Limit(limit).
		Find(&snapshotModels).Error
	if err != nil {
		r.logger.Errorw("failed to list assessment snapshots", "error", err)
		return nil, 0, fmt.Errorf("failed to list assessment snapshots: %w", err)
	}

	assessments, err := r.mapper.ToEntities(snapshotModels)
	if err != nil {
		return nil, 0, err
	}

	return assessments, total, nil
}
