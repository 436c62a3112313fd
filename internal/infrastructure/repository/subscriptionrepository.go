package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pulsegym/internal/application/retention/services"
	"pulsegym/internal/domain/retention"
	"pulsegym/internal/infrastructure/persistence/mappers"
	"pulsegym/internal/infrastructure/persistence/models"
	"pulsegym/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db         *gorm.DB
	mapper     mappers.SubscriptionMapper
	planMapper mappers.PlanMapper
	logger     logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) services.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:         db,
		mapper:     mappers.NewSubscriptionMapper(),
		planMapper: mappers.NewPlanMapper(),
		logger:     logger,
	}
}

func (r *SubscriptionRepositoryImpl) ListAll(ctx context.Context) ([]retention.Subscription, error) {
	var subModels []models.SubscriptionModel
	if err := r.db.WithContext(ctx).Find(&subModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subModels)
}

func (r *SubscriptionRepositoryImpl) ListPlans(ctx context.Context) ([]retention.Plan, error) {
	var planModels []models.PlanModel
	if err := r.db.WithContext(ctx).Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.planMapper.ToEntities(planModels), nil
}
