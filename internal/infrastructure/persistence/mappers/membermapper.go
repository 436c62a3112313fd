package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"pulsegym/internal/domain/retention"
	"pulsegym/internal/infrastructure/persistence/models"
)

// MemberMapper handles the conversion between domain records and persistence
// models.
type MemberMapper interface {
	// ToEntity converts a persistence model to a domain record
	ToEntity(model *models.MemberModel) (*retention.Member, error)

	// ToModel converts a domain record to a persistence model
	ToModel(entity *retention.Member) (*models.MemberModel, error)

	// ToEntities converts multiple persistence models to domain records
	ToEntities(models []models.MemberModel) ([]retention.Member, error)
}

type memberMapper struct{}

// NewMemberMapper creates a new member mapper
func NewMemberMapper() MemberMapper {
	return &memberMapper{}
}

func (m *memberMapper) ToEntity(model *models.MemberModel) (*retention.Member, error) {
	if model == nil {
		return nil, nil
	}

	var checkIns []time.Time
	if len(model.CheckInHistory) > 0 {
		if err := json.Unmarshal(model.CheckInHistory, &checkIns); err != nil {
			return nil, fmt.Errorf("failed to unmarshal check-in history: %w", err)
		}
	}

	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}

	return &retention.Member{
		ID:             model.SID,
		Name:           model.Name,
		Email:          model.Email,
		Phone:          model.Phone,
		PlanID:         model.PlanSID,
		SubscriptionID: model.SubscriptionSID,
		Status:         retention.MemberStatus(model.Status),
		CheckInHistory: checkIns,
		MemberSince:    model.MemberSince,
		CancelledAt:    model.CancelledAt,
		PausedUntil:    model.PausedUntil,
		Tags:           tags,
	}, nil
}

func (m *memberMapper) ToModel(entity *retention.Member) (*models.MemberModel, error) {
	if entity == nil {
		return nil, nil
	}

	var checkInsJSON datatypes.JSON
	if len(entity.CheckInHistory) > 0 {
		data, err := json.Marshal(entity.CheckInHistory)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal check-in history: %w", err)
		}
		checkInsJSON = data
	}

	var tagsJSON datatypes.JSON
	if len(entity.Tags) > 0 {
		data, err := json.Marshal(entity.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tags: %w", err)
		}
		tagsJSON = data
	}

	return &models.MemberModel{
		SID:             entity.ID,
		Name:            entity.Name,
		Email:           entity.Email,
		Phone:           entity.Phone,
		PlanSID:         entity.PlanID,
		SubscriptionSID: entity.SubscriptionID,
		Status:          entity.Status.String(),
		CheckInHistory:  checkInsJSON,
		MemberSince:     entity.MemberSince,
		CancelledAt:     entity.CancelledAt,
		PausedUntil:     entity.PausedUntil,
		Tags:            tagsJSON,
	}, nil
}

func (m *memberMapper) ToEntities(mods []models.MemberModel) ([]retention.Member, error) {
	entities := make([]retention.Member, 0, len(mods))
	for i := range mods {
		entity, err := m.ToEntity(&mods[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map member at index %d (SID %s): %w", i, mods[i].SID, err)
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}
