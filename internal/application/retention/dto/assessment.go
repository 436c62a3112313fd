// Package dto defines wire-facing shapes for retention results. The engine
// emits domain values; these are what handlers serialize.
package dto

import (
	"time"

	"pulsegym/internal/domain/retention"
)

// RiskFactorDTO is one explained risk signal.
type RiskFactorDTO struct {
	Kind        string  `json:"kind"`
	Score       float64 `json:"score"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// AssessmentDTO is one member's risk assessment.
type AssessmentDTO struct {
	MemberID      string          `json:"member_id"`
	Score         int             `json:"score"`
	Level         string          `json:"level"`
	Explanation   []RiskFactorDTO `json:"explanation"`
	Interventions []string        `json:"interventions"`
	ComputedAt    time.Time       `json:"computed_at"`
}

// GymHealthDTO is the roster-wide health score.
type GymHealthDTO struct {
	Retention  int       `json:"retention"`
	Revenue    int       `json:"revenue"`
	Engagement int       `json:"engagement"`
	Growth     int       `json:"growth"`
	Overall    int       `json:"overall"`
	Trend      string    `json:"trend"`
	ComputedAt time.Time `json:"computed_at"`
}

// FromAssessment maps a domain assessment to its DTO.
func FromAssessment(a *retention.RiskAssessment) AssessmentDTO {
	explanation := make([]RiskFactorDTO, 0, len(a.Explanation))
	for _, f := range a.Explanation {
		explanation = append(explanation, RiskFactorDTO{
			Kind:        f.Kind.String(),
			Score:       f.Score,
			Weight:      f.Weight,
			Description: f.Description,
		})
	}

	interventions := make([]string, 0, len(a.Interventions))
	for _, iv := range a.Interventions {
		interventions = append(interventions, iv.String())
	}

	return AssessmentDTO{
		MemberID:      a.MemberID,
		Score:         a.Score,
		Level:         a.Level.String(),
		Explanation:   explanation,
		Interventions: interventions,
		ComputedAt:    a.ComputedAt,
	}
}

// FromGymHealth maps a domain health score to its DTO.
func FromGymHealth(h *retention.GymHealthScore) GymHealthDTO {
	return GymHealthDTO{
		Retention:  h.Retention,
		Revenue:    h.Revenue,
		Engagement: h.Engagement,
		Growth:     h.Growth,
		Overall:    h.Overall,
		Trend:      string(h.Trend),
		ComputedAt: h.ComputedAt,
	}
}
