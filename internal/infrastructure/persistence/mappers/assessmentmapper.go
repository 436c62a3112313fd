package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"pulsegym/internal/domain/retention"
	"pulsegym/internal/infrastructure/persistence/models"
)

// persistedFactor is the stored shape of a risk factor. Kept separate from
// the domain struct so snapshot rows survive domain field renames.
type persistedFactor struct {
	Kind        string  `json:"kind"`
	Score       float64 `json:"score"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// AssessmentMapper handles the conversion between risk assessments and
// snapshot persistence models.
type AssessmentMapper interface {
	ToEntity(model *models.AssessmentSnapshotModel) (*retention.RiskAssessment, error)
	ToModel(entity *retention.RiskAssessment) (*models.AssessmentSnapshotModel, error)
	ToEntities(models []models.AssessmentSnapshotModel) ([]retention.RiskAssessment, error)
}

type assessmentMapper struct{}

// NewAssessmentMapper creates a new assessment snapshot mapper
func NewAssessmentMapper() AssessmentMapper {
	return &assessmentMapper{}
}

func (m *assessmentMapper) ToEntity(model *models.AssessmentSnapshotModel) (*retention.RiskAssessment, error) {
	if model == nil {
		return nil, nil
	}

	factors, err := unmarshalFactors(model.Factors)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal factors: %w", err)
	}

	explanation, err := unmarshalFactors(model.Explanation)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal explanation: %w", err)
	}

	var interventions []retention.Intervention
	if len(model.Interventions) > 0 {
		if err := json.Unmarshal(model.Interventions, &interventions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal interventions: %w", err)
		}
	}

	return &retention.RiskAssessment{
		MemberID:      model.MemberSID,
		Score:         model.Score,
		Level:         retention.RiskLevel(model.Level),
		Factors:       factors,
		Explanation:   explanation,
		Interventions: interventions,
		ComputedAt:    model.ComputedAt,
	}, nil
}

func (m *assessmentMapper) ToModel(entity *retention.RiskAssessment) (*models.AssessmentSnapshotModel, error) {
	if entity == nil {
		return nil, nil
	}

	factorsJSON, err := marshalFactors(entity.Factors)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal factors: %w", err)
	}

	explanationJSON, err := marshalFactors(entity.Explanation)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal explanation: %w", err)
	}

	var interventionsJSON datatypes.JSON
	if len(entity.Interventions) > 0 {
		data, err := json.Marshal(entity.Interventions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal interventions: %w", err)
		}
		interventionsJSON = data
	}

	return &models.AssessmentSnapshotModel{
		MemberSID:     entity.MemberID,
		Score:         entity.Score,
		Level:         entity.Level.String(),
		Factors:       factorsJSON,
		Explanation:   explanationJSON,
		Interventions: interventionsJSON,
		ComputedAt:    entity.ComputedAt,
	}, nil
}

func (m *assessmentMapper) ToEntities(mods []models.AssessmentSnapshotModel) ([]retention.RiskAssessment, error) {
	entities := make([]retention.RiskAssessment, 0, len(mods))
	for i := range mods {
		entity, err := m.ToEntity(&mods[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map assessment at index %d (SID %s): %w", i, mods[i].SID, err)
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

func marshalFactors(factors []retention.RiskFactor) (datatypes.JSON, error) {
	if len(factors) == 0 {
		return nil, nil
	}
	stored := make([]persistedFactor, 0, len(factors))
	for _, f := range factors {
		stored = append(stored, persistedFactor{
			Kind:        string(f.Kind),
			Score:       f.Score,
			Weight:      f.Weight,
			Description: f.Description,
		})
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func unmarshalFactors(data datatypes.JSON) ([]retention.RiskFactor, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var stored []persistedFactor
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	factors := make([]retention.RiskFactor, 0, len(stored))
	for _, f := range stored {
		factors = append(factors, retention.RiskFactor{
			Kind:        retention.FactorKind(f.Kind),
			Score:       f.Score,
			Weight:      f.Weight,
			Description: f.Description,
		})
	}
	return factors, nil
}
