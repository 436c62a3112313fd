package retention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assessmentWithLevel(memberID string, level RiskLevel, attendanceScore float64) RiskAssessment {
	return RiskAssessment{
		MemberID: memberID,
		Score:    50,
		Level:    level,
		Factors: []RiskFactor{
			{Kind: FactorAttendanceDecline, Score: attendanceScore, Weight: weightAttendance},
		},
		ComputedAt: testNow(),
	}
}

func TestHealthWeightsSumToOne(t *testing.T) {
	sum := healthWeightRetention + healthWeightRevenue + healthWeightEngagement + healthWeightGrowth
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestComputeGymHealth_EmptyMappingIsNeutral(t *testing.T) {
	score := ComputeGymHealth(nil, map[string]RiskAssessment{}, nil)

	assert.Equal(t, neutralComponent, score.Retention)
	assert.Equal(t, neutralComponent, score.Revenue)
	assert.Equal(t, neutralComponent, score.Engagement)
	assert.Equal(t, neutralComponent, score.Growth)
	assert.Equal(t, neutralComponent, score.Overall)
	assert.Equal(t, TrendStable, score.Trend)
}

func TestComputeGymHealth_RetentionDropsWithHighRiskShare(t *testing.T) {
	members := []Member{
		testMember("m1", 400, checkIns(5)),
		testMember("m2", 400, checkIns(5)),
		testMember("m3", 400, checkIns(5)),
		testMember("m4", 400, checkIns(5)),
		testMember("m5", 400, checkIns(5)),
	}
	subs := make([]Subscription, 0, len(members))
	for _, m := range members {
		subs = append(subs, activeSubscription(m.ID))
	}
	ctx := newTestContext(t, members, subs)

	healthyRoster := map[string]RiskAssessment{
		"m1": assessmentWithLevel("m1", RiskLevelLow, 10),
		"m2": assessmentWithLevel("m2", RiskLevelLow, 10),
		"m3": assessmentWithLevel("m3", RiskLevelModerate, 20),
		"m4": assessmentWithLevel("m4", RiskLevelLow, 10),
		"m5": assessmentWithLevel("m5", RiskLevelModerate, 20),
	}
	riskyRoster := map[string]RiskAssessment{
		"m1": assessmentWithLevel("m1", RiskLevelCritical, 90),
		"m2": assessmentWithLevel("m2", RiskLevelHigh, 80),
		"m3": assessmentWithLevel("m3", RiskLevelCritical, 95),
		"m4": assessmentWithLevel("m4", RiskLevelLow, 10),
		"m5": assessmentWithLevel("m5", RiskLevelModerate, 20),
	}

	healthy := ComputeGymHealth(ctx, healthyRoster, nil)
	risky := ComputeGymHealth(ctx, riskyRoster, nil)

	assert.Equal(t, 100, healthy.Retention)
	assert.Equal(t, 40, risky.Retention)
	assert.Less(t, risky.Overall, healthy.Overall)
}

func TestComputeGymHealth_RevenueWeightsByPlanAmount(t *testing.T) {
	members := []Member{
		testMember("m1", 400, checkIns(5)),
		testMember("m2", 400, checkIns(5)),
	}
	premium := Subscription{
		ID: "sub_m1", MemberID: "m1", PlanID: "plan_premium",
		BillingCycle: BillingCycleMonthly, AmountCents: 12000,
		Status: SubscriptionStatusActive, CancelAtPeriodEnd: true,
		StartedAt: daysAgo(400),
	}
	basic := activeSubscription("m2")
	ctx := newTestContext(t, members, []Subscription{premium, basic})

	assessments := map[string]RiskAssessment{
		"m1": assessmentWithLevel("m1", RiskLevelHigh, 50),
		"m2": assessmentWithLevel("m2", RiskLevelLow, 10),
	}

	score := ComputeGymHealth(ctx, assessments, nil)

	// Only the 5000c basic plan is healthy out of 17000c total: ~29%.
	// A headcount split would have said 50%.
	assert.Equal(t, 29, score.Revenue)
}

func TestComputeGymHealth_EngagementInvertsAttendanceRisk(t *testing.T) {
	members := []Member{testMember("m1", 400, checkIns(5))}
	ctx := newTestContext(t, members, []Subscription{activeSubscription("m1")})

	low := map[string]RiskAssessment{"m1": assessmentWithLevel("m1", RiskLevelLow, 10)}
	high := map[string]RiskAssessment{"m1": assessmentWithLevel("m1", RiskLevelHigh, 90)}

	assert.Equal(t, 90, ComputeGymHealth(ctx, low, nil).Engagement)
	assert.Equal(t, 10, ComputeGymHealth(ctx, high, nil).Engagement)
}

func TestComputeGymHealth_GrowthTracksCohortRetention(t *testing.T) {
	// Two members joined 60 days ago (inside the cohort window), one of
	// them churned. One member is too new, one too old for the cohort.
	joiner1 := testMember("m1", 60, checkIns(5))
	joiner2 := testMember("m2", 60, nil)
	joiner2.Status = MemberStatusChurned
	tooNew := testMember("m3", 5, checkIns(1))
	veteran := testMember("m4", 500, checkIns(5))

	ctx := newTestContext(t,
		[]Member{joiner1, joiner2, tooNew, veteran},
		[]Subscription{activeSubscription("m1"), activeSubscription("m4")},
	)

	assessments := map[string]RiskAssessment{
		"m1": assessmentWithLevel("m1", RiskLevelLow, 10),
		"m2": assessmentWithLevel("m2", RiskLevelCritical, 100),
		"m3": assessmentWithLevel("m3", RiskLevelLow, 10),
		"m4": assessmentWithLevel("m4", RiskLevelLow, 10),
	}

	score := ComputeGymHealth(ctx, assessments, nil)

	assert.Equal(t, 50, score.Growth)
}

func TestComputeGymHealth_Trend(t *testing.T) {
	members := []Member{testMember("m1", 400, checkIns(5))}
	ctx := newTestContext(t, members, []Subscription{activeSubscription("m1")})
	assessments := map[string]RiskAssessment{
		"m1": assessmentWithLevel("m1", RiskLevelLow, 10),
	}

	current := ComputeGymHealth(ctx, assessments, nil)
	require.Equal(t, TrendStable, current.Trend)

	lowBaseline := float64(current.Overall) - 10
	highBaseline := float64(current.Overall) + 10
	flatBaseline := float64(current.Overall)

	assert.Equal(t, TrendImproving, ComputeGymHealth(ctx, assessments, &lowBaseline).Trend)
	assert.Equal(t, TrendDeclining, ComputeGymHealth(ctx, assessments, &highBaseline).Trend)
	assert.Equal(t, TrendStable, ComputeGymHealth(ctx, assessments, &flatBaseline).Trend)
}

func TestComputeGymHealth_AllComponentsDefined(t *testing.T) {
	members := []Member{testMember("m1", 400, nil)}
	ctx := newTestContext(t, members, nil)

	assessments, err := ComputeAllAssessments(ctx)
	require.NoError(t, err)

	score := ComputeGymHealth(ctx, assessments, nil)

	for _, v := range []int{score.Retention, score.Revenue, score.Engagement, score.Growth, score.Overall} {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 100)
	}
}
