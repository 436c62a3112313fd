package mappers

import (
	"fmt"

	"pulsegym/internal/domain/retention"
	"pulsegym/internal/infrastructure/persistence/models"
)

// SubscriptionMapper handles the conversion between domain records and
// persistence models.
type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*retention.Subscription, error)
	ToModel(entity *retention.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []models.SubscriptionModel) ([]retention.Subscription, error)
}

type subscriptionMapper struct{}

// NewSubscriptionMapper creates a new subscription mapper
func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) (*retention.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	status := retention.SubscriptionStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status %q", model.Status)
	}

	return &retention.Subscription{
		ID:                model.SID,
		MemberID:          model.MemberSID,
		PlanID:            model.PlanSID,
		BillingCycle:      retention.BillingCycle(model.BillingCycle),
		AmountCents:       model.AmountCents,
		Status:            status,
		CancelAtPeriodEnd: model.CancelAtPeriodEnd,
		StartedAt:         model.StartedAt,
	}, nil
}

func (m *subscriptionMapper) ToModel(entity *retention.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		SID:               entity.ID,
		MemberSID:         entity.MemberID,
		PlanSID:           entity.PlanID,
		BillingCycle:      string(entity.BillingCycle),
		AmountCents:       entity.AmountCents,
		Status:            entity.Status.String(),
		CancelAtPeriodEnd: entity.CancelAtPeriodEnd,
		StartedAt:         entity.StartedAt,
	}, nil
}

func (m *subscriptionMapper) ToEntities(mods []models.SubscriptionModel) ([]retention.Subscription, error) {
	entities := make([]retention.Subscription, 0, len(mods))
	for i := range mods {
		entity, err := m.ToEntity(&mods[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map subscription at index %d (SID %s): %w", i, mods[i].SID, err)
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}
