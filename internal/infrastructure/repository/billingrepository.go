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

type BillingRepositoryImpl struct {
	db            *gorm.DB
	invoiceMapper mappers.InvoiceMapper
	txMapper      mappers.TransactionMapper
	logger        logger.Interface
}

func NewBillingRepository(db *gorm.DB, logger logger.Interface) services.BillingRepository {
	return &BillingRepositoryImpl{
		db:            db,
		invoiceMapper: mappers.NewInvoiceMapper(),
		txMapper:      mappers.NewTransactionMapper(),
		logger:        logger,
	}
}

func (r *BillingRepositoryImpl) ListInvoices(ctx context.Context) ([]retention.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).Find(&invoiceModels).Error; err != nil {
		r.logger.Errorw("failed to list invoices", "error", err)
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return r.invoiceMapper.ToEntities(invoiceModels), nil
}

func (r *BillingRepositoryImpl) ListTransactions(ctx context.Context) ([]retention.Transaction, error) {
	var txModels []models.TransactionModel
	if err := r.db.WithContext(ctx).Find(&txModels).Error; err != nil {
		r.logger.Errorw("failed to list transactions", "error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return r.txMapper.ToEntities(txModels)
}

// RecordTransaction inserts a billing transaction. Replays of the same
// provider event ID are ignored so webhook retries stay idempotent.
func (r *BillingRepositoryImpl) RecordTransaction(ctx context.Context, tx *retention.Transaction) error {
	model, err := r.txMapper.ToModel(tx)
	if err != nil {
		r.logger.Errorw("failed to convert transaction to model", "error", err, "transaction_id", tx.ID)
		return fmt.Errorf("failed to convert transaction to model: %w", err)
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sid"}},
		DoNothing: true,
	}).Create(model).Error

	if err != nil {
		r.logger.Errorw("failed to record transaction", "error", err, "transaction_id", tx.ID)
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	return nil
}
