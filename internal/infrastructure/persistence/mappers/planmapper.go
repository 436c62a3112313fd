package mappers

import (
	"pulsegym/internal/domain/retention"
	"pulsegym/internal/infrastructure/persistence/models"
)

// PlanMapper handles the conversion between domain records and persistence
// models.
type PlanMapper interface {
	ToEntity(model *models.PlanModel) *retention.Plan
	ToModel(entity *retention.Plan) *models.PlanModel
	ToEntities(models []models.PlanModel) []retention.Plan
}

type planMapper struct{}

// NewPlanMapper creates a new plan mapper
func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) *retention.Plan {
	if model == nil {
		return nil
	}
	return &retention.Plan{
		ID:                model.SID,
		Name:              model.Name,
		MonthlyPriceCents: model.MonthlyPriceCents,
	}
}

func (m *planMapper) ToModel(entity *retention.Plan) *models.PlanModel {
	if entity == nil {
		return nil
	}
	return &models.PlanModel{
		SID:               entity.ID,
		Name:              entity.Name,
		MonthlyPriceCents: entity.MonthlyPriceCents,
	}
}

func (m *planMapper) ToEntities(mods []models.PlanModel) []retention.Plan {
	entities := make([]retention.Plan, 0, len(mods))
	for i := range mods {
		entities = append(entities, *m.ToEntity(&mods[i]))
	}
	return entities
}
