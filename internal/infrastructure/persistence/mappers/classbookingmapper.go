package mappers

import (
	"pulsegym/internal/domain/retention"
	"pulsegym/internal/infrastructure/persistence/models"
)

// ClassBookingMapper handles the conversion between domain records and
// persistence models.
type ClassBookingMapper interface {
	ToEntity(model *models.ClassBookingModel) *retention.ClassBooking
	ToEntities(models []models.ClassBookingModel) []retention.ClassBooking
}

type classBookingMapper struct{}

// NewClassBookingMapper creates a new class booking mapper
func NewClassBookingMapper() ClassBookingMapper {
	return &classBookingMapper{}
}

func (m *classBookingMapper) ToEntity(model *models.ClassBookingModel) *retention.ClassBooking {
	if model == nil {
		return nil
	}
	return &retention.ClassBooking{
		ID:       model.SID,
		MemberID: model.MemberSID,
		ClassID:  model.ClassSID,
		Status:   retention.BookingStatus(model.Status),
		StartsAt: model.StartsAt,
	}
}

func (m *classBookingMapper) ToEntities(mods []models.ClassBookingModel) []retention.ClassBooking {
	entities := make([]retention.ClassBooking, 0, len(mods))
	for i := range mods {
		entities = append(entities, *m.ToEntity(&mods[i]))
	}
	return entities
}
