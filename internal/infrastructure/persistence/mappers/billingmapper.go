package mappers

import (
	"fmt"

	"pulsegym/internal/domain/retention"
	"pulsegym/internal/infrastructure/persistence/models"
)

// InvoiceMapper handles the conversion between domain records and persistence
// models.
type InvoiceMapper interface {
	ToEntity(model *models.InvoiceModel) *retention.Invoice
	ToEntities(models []models.InvoiceModel) []retention.Invoice
}

type invoiceMapper struct{}

// NewInvoiceMapper creates a new invoice mapper
func NewInvoiceMapper() InvoiceMapper {
	return &invoiceMapper{}
}

func (m *invoiceMapper) ToEntity(model *models.InvoiceModel) *retention.Invoice {
	if model == nil {
		return nil
	}
	return &retention.Invoice{
		ID:             model.SID,
		MemberID:       model.MemberSID,
		SubscriptionID: model.SubscriptionSID,
		AmountCents:    model.AmountCents,
		Status:         retention.InvoiceStatus(model.Status),
		IssuedAt:       model.IssuedAt,
	}
}

func (m *invoiceMapper) ToEntities(mods []models.InvoiceModel) []retention.Invoice {
	entities := make([]retention.Invoice, 0, len(mods))
	for i := range mods {
		entities = append(entities, *m.ToEntity(&mods[i]))
	}
	return entities
}

// TransactionMapper handles the conversion between domain records and
// persistence models.
type TransactionMapper interface {
	ToEntity(model *models.TransactionModel) (*retention.Transaction, error)
	ToModel(entity *retention.Transaction) (*models.TransactionModel, error)
	ToEntities(models []models.TransactionModel) ([]retention.Transaction, error)
}

type transactionMapper struct{}

// NewTransactionMapper creates a new transaction mapper
func NewTransactionMapper() TransactionMapper {
	return &transactionMapper{}
}

func (m *transactionMapper) ToEntity(model *models.TransactionModel) (*retention.Transaction, error) {
	if model == nil {
		return nil, nil
	}
	return &retention.Transaction{
		ID:          model.SID,
		MemberID:    model.MemberSID,
		AmountCents: model.AmountCents,
		Type:        retention.TransactionType(model.Type),
		Status:      retention.TransactionStatus(model.Status),
		OccurredAt:  model.OccurredAt,
	}, nil
}

func (m *transactionMapper) ToModel(entity *retention.Transaction) (*models.TransactionModel, error) {
	if entity == nil {
		return nil, nil
	}
	if entity.Type != retention.TransactionTypeCharge && entity.Type != retention.TransactionTypeRefund {
		return nil, fmt.Errorf("invalid transaction type %q", entity.Type)
	}
	return &models.TransactionModel{
		SID:         entity.ID,
		MemberSID:   entity.MemberID,
		AmountCents: entity.AmountCents,
		Type:        string(entity.Type),
		Status:      string(entity.Status),
		OccurredAt:  entity.OccurredAt,
	}, nil
}

func (m *transactionMapper) ToEntities(mods []models.TransactionModel) ([]retention.Transaction, error) {
	entities := make([]retention.Transaction, 0, len(mods))
	for i := range mods {
		entity, err := m.ToEntity(&mods[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map transaction at index %d (SID %s): %w", i, mods[i].SID, err)
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}
