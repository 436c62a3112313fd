package retention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExplanation_SortedByContribution(t *testing.T) {
	factors := []RiskFactor{
		{Kind: FactorTenureStage, Score: 40, Weight: 0.10},        // 4.0
		{Kind: FactorAttendanceDecline, Score: 90, Weight: 0.35},  // 31.5
		{Kind: FactorPaymentHealth, Score: 70, Weight: 0.25},      // 17.5
	}

	explanation := buildExplanation(factors)

	require.Len(t, explanation, 3)
	assert.Equal(t, FactorAttendanceDecline, explanation[0].Kind)
	assert.Equal(t, FactorPaymentHealth, explanation[1].Kind)
	assert.Equal(t, FactorTenureStage, explanation[2].Kind)

	for i := 1; i < len(explanation); i++ {
		assert.GreaterOrEqual(t,
			explanation[i-1].Contribution(), explanation[i].Contribution())
	}
}

func TestBuildExplanation_FiltersImmaterialFactors(t *testing.T) {
	factors := []RiskFactor{
		{Kind: FactorAttendanceDecline, Score: 90, Weight: 0.35},
		{Kind: FactorPaymentHealth, Score: 10, Weight: 0.25},
		{Kind: FactorEngagementTrend, Score: 25, Weight: 0.15}, // at threshold, excluded
	}

	explanation := buildExplanation(factors)

	require.Len(t, explanation, 1)
	assert.Equal(t, FactorAttendanceDecline, explanation[0].Kind)
}

func TestRecommendInterventions_DedupesPreservingPriority(t *testing.T) {
	explanation := []RiskFactor{
		{Kind: FactorAttendanceDecline, Score: 90, Weight: 0.35},
		{Kind: FactorEngagementTrend, Score: 80, Weight: 0.15},
	}

	interventions := recommendInterventions(explanation)

	// class_recommendation appears under both factors but only once here,
	// at its first (attendance) position.
	assert.Equal(t, []Intervention{
		InterventionPhoneCall,
		InterventionClassRecommendation,
		InterventionEmail,
	}, interventions)
}

func TestRecommendInterventions_EmptyExplanation(t *testing.T) {
	assert.Empty(t, recommendInterventions(nil))
}
