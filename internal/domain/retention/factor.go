package retention

import "time"

// FactorKind names one independent risk signal.
type FactorKind string

const (
	FactorAttendanceDecline FactorKind = "attendance_decline"
	FactorPaymentHealth     FactorKind = "payment_health"
	FactorEngagementTrend   FactorKind = "engagement_trend"
	FactorTenureStage       FactorKind = "tenure_stage"
	FactorSubscriptionState FactorKind = "subscription_state"
)

func (k FactorKind) String() string {
	return string(k)
}

// RiskFactor is one scored signal feeding the composite. Score is always
// within [0,100]; Weight is the fixed share this factor holds in the
// composite sum.
type RiskFactor struct {
	Kind        FactorKind `json:"kind"`
	Score       float64    `json:"score"`
	Weight      float64    `json:"weight"`
	Description string     `json:"description"`
}

// Contribution is the factor's weighted share of the composite score.
func (f RiskFactor) Contribution() float64 {
	return f.Weight * f.Score
}

// RiskLevel is the discrete band a composite score falls into.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelElevated RiskLevel = "elevated"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

func (l RiskLevel) String() string {
	return string(l)
}

// IsValid checks if the risk level value is valid.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelModerate, RiskLevelElevated, RiskLevelHigh, RiskLevelCritical:
		return true
	}
	return false
}

// Rank orders risk levels: low < moderate < elevated < high < critical.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLevelLow:
		return 0
	case RiskLevelModerate:
		return 1
	case RiskLevelElevated:
		return 2
	case RiskLevelHigh:
		return 3
	case RiskLevelCritical:
		return 4
	}
	return -1
}

// AtLeast reports whether l is at or above other in the risk ordering.
func (l RiskLevel) AtLeast(other RiskLevel) bool {
	return l.Rank() >= other.Rank()
}

// Intervention is a recommended retention action type. Presentation
// (icons, copy) belongs to consumers; the engine only emits the tag.
type Intervention string

const (
	InterventionEmail               Intervention = "email"
	InterventionPhoneCall           Intervention = "phone_call"
	InterventionClassRecommendation Intervention = "class_recommendation"
	InterventionStaffTask           Intervention = "staff_task"
	InterventionDiscountOffer       Intervention = "discount_offer"
)

func (i Intervention) String() string {
	return string(i)
}

// RiskAssessment is the engine output for one member. Factors holds every
// computed signal; Explanation is the ranked, materiality-filtered subset.
// Assessments are created fresh on every run and never persisted by the
// engine itself.
type RiskAssessment struct {
	MemberID      string         `json:"member_id"`
	Score         int            `json:"score"`
	Level         RiskLevel      `json:"level"`
	Factors       []RiskFactor   `json:"factors"`
	Explanation   []RiskFactor   `json:"explanation"`
	Interventions []Intervention `json:"interventions"`
	ComputedAt    time.Time      `json:"computed_at"`
}
