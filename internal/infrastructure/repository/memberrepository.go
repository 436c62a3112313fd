package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pulsegym/internal/application/retention/services"
	"pulsegym/internal/domain/retention"
	"pulsegym/internal/infrastructure/persistence/mappers"
	"pulsegym/internal/infrastructure/persistence/models"
	"pulsegym/internal/shared/logger"
)

type MemberRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MemberMapper
	logger logger.Interface
}

func NewMemberRepository(db *gorm.DB, logger logger.Interface) services.MemberRepository {
	return &MemberRepositoryImpl{
		db:     db,
		mapper: mappers.NewMemberMapper(),
		logger: logger,
	}
}

func (r *MemberRepositoryImpl) ListAll(ctx context.Context) ([]retention.Member, error) {
	var memberModels []models.MemberModel
	if err := r.db.WithContext(ctx).Find(&memberModels).Error; err != nil {
		r.logger.Errorw("failed to list members", "error", err)
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return r.mapper.ToEntities(memberModels)
}

func (r *MemberRepositoryImpl) GetByID(ctx context.Context, id string) (*retention.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).Where("sid = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get member by ID", "error", err, "member_id", id)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MemberRepositoryImpl) Upsert(ctx context.Context, m *retention.Member) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		r.logger.Errorw("failed to convert member to model", "error", err, "member_id", m.ID)
		return fmt.Errorf("failed to convert member to model: %w", err)
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "sid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "email", "phone", "plan_sid", "subscription_sid", "status",
			"check_in_history", "member_since", "cancelled_at", "paused_until",
			"tags", "updated_at",
		}),
	}).Create(model).Error

	if err != nil {
		r.logger.Errorw("failed to upsert member", "error", err, "member_id", m.ID)
		return fmt.Errorf("failed to upsert member: %w", err)
	}

	return nil
}
