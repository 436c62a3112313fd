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

type BookingRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ClassBookingMapper
	logger logger.Interface
}

func NewBookingRepository(db *gorm.DB, logger logger.Interface) services.BookingRepository {
	return &BookingRepositoryImpl{
		db:     db,
		mapper: mappers.NewClassBookingMapper(),
		logger: logger,
	}
}

func (r *BookingRepositoryImpl) ListAll(ctx context.Context) ([]retention.ClassBooking, error) {
	var bookingModels []models.ClassBookingModel
	if err := r.db.WithContext(ctx).Find(&bookingModels).Error; err != nil {
		r.logger.Errorw("failed to list class bookings", "error", err)
		return nil, fmt.Errorf("failed to list class bookings: %w", err)
	}

	return r.mapper.ToEntities(bookingModels), nil
}
