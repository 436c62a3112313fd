package retention

import (
	"math"
	"time"
)

// Gym health component weights. They must sum to 1.0.
const (
	healthWeightRetention  = 0.35
	healthWeightRevenue    = 0.25
	healthWeightEngagement = 0.25
	healthWeightGrowth     = 0.15
)

// Trend thresholds: the overall score must move more than this many points
// against the baseline to leave "stable".
const trendThreshold = 2.0

// Growth cohort bounds: members who joined between growthCohortMaxDays and
// growthCheckpointDays ago have passed the early-churn checkpoint.
const (
	growthCheckpointDays = 30
	growthCohortMaxDays  = 120
)

// neutralComponent is the midpoint used when a component has no data.
const neutralComponent = 50

// HealthTrend labels the direction of the overall score against a trailing
// baseline.
type HealthTrend string

const (
	TrendImproving HealthTrend = "improving"
	TrendStable    HealthTrend = "stable"
	TrendDeclining HealthTrend = "declining"
)

// GymHealthScore is the roster-wide aggregate: four component scores, a
// fixed weighted overall, and a trend label.
type GymHealthScore struct {
	Retention  int         `json:"retention"`
	Revenue    int         `json:"revenue"`
	Engagement int         `json:"engagement"`
	Growth     int         `json:"growth"`
	Overall    int         `json:"overall"`
	Trend      HealthTrend `json:"trend"`
	ComputedAt time.Time   `json:"computed_at"`
}

// ComputeGymHealth rolls the full assessment mapping up into one health
// score. baseline is the previous overall score, used only for the trend;
// pass nil when none exists and the trend defaults to stable. An empty
// mapping yields a defined neutral score rather than an error.
func ComputeGymHealth(ctx *ComputeContext, assessments map[string]RiskAssessment, baseline *float64) GymHealthScore {
	if len(assessments) == 0 {
		return GymHealthScore{
			Retention:  neutralComponent,
			Revenue:    neutralComponent,
			Engagement: neutralComponent,
			Growth:     neutralComponent,
			Overall:    neutralComponent,
			Trend:      TrendStable,
			ComputedAt: healthClock(ctx),
		}
	}

	retention := retentionComponent(assessments)
	revenue := revenueComponent(ctx)
	engagement := engagementComponent(assessments)
	growth := growthComponent(ctx)

	overall := float64(retention)*healthWeightRetention +
		float64(revenue)*healthWeightRevenue +
		float64(engagement)*healthWeightEngagement +
		float64(growth)*healthWeightGrowth

	score := GymHealthScore{
		Retention:  retention,
		Revenue:    revenue,
		Engagement: engagement,
		Growth:     growth,
		Overall:    roundComponent(overall),
		Trend:      TrendStable,
		ComputedAt: healthClock(ctx),
	}

	if baseline != nil {
		delta := float64(score.Overall) - *baseline
		switch {
		case delta > trendThreshold:
			score.Trend = TrendImproving
		case delta < -trendThreshold:
			score.Trend = TrendDeclining
		}
	}

	return score
}

// retentionComponent drops as the share of high/critical members grows.
func retentionComponent(assessments map[string]RiskAssessment) int {
	var highRisk int
	for _, a := range assessments {
		if a.Level.AtLeast(RiskLevelHigh) {
			highRisk++
		}
	}
	ratio := float64(highRisk) / float64(len(assessments))
	return roundComponent(100 * (1 - ratio))
}

// revenueComponent is the plan-amount-weighted share of healthy
// subscriptions: a cancelling whale hurts more than a cancelling starter.
func revenueComponent(ctx *ComputeContext) int {
	if ctx == nil || len(ctx.Subscriptions) == 0 {
		return neutralComponent
	}

	idx := buildIndex(ctx)

	var healthy, total float64
	for _, sub := range ctx.Subscriptions {
		amount := float64(sub.AmountCents)
		if plan := idx.planFor(sub.PlanID); plan != nil && plan.MonthlyPriceCents > 0 {
			amount = float64(plan.MonthlyPriceCents)
		}
		total += amount
		if sub.Status == SubscriptionStatusActive && !sub.CancelAtPeriodEnd {
			healthy += amount
		}
	}

	if total == 0 {
		return neutralComponent
	}
	return roundComponent(100 * healthy / total)
}

// engagementComponent inverts the average attendance sub-score: higher
// attendance risk across the roster means lower engagement.
func engagementComponent(assessments map[string]RiskAssessment) int {
	var sum float64
	var n int
	for _, a := range assessments {
		for _, f := range a.Factors {
			if f.Kind == FactorAttendanceDecline {
				sum += f.Score
				n++
			}
		}
	}
	if n == 0 {
		return neutralComponent
	}
	return roundComponent(100 - sum/float64(n))
}

// growthComponent is the share of the recent-joiner cohort still active past
// the early-churn checkpoint.
func growthComponent(ctx *ComputeContext) int {
	if ctx == nil || len(ctx.Members) == 0 {
		return neutralComponent
	}

	idx := buildIndex(ctx)
	checkpoint := ctx.Now.AddDate(0, 0, -growthCheckpointDays)
	cohortStart := ctx.Now.AddDate(0, 0, -growthCohortMaxDays)

	var cohort, retained int
	for i := range ctx.Members {
		m := &ctx.Members[i]
		if m.MemberSince.Before(cohortStart) || m.MemberSince.After(checkpoint) {
			continue
		}
		cohort++
		if m.Status == MemberStatusChurned {
			continue
		}
		if sub := idx.subscriptionFor(m.ID); sub != nil && sub.Status == SubscriptionStatusCancelled {
			continue
		}
		retained++
	}

	if cohort == 0 {
		return neutralComponent
	}
	return roundComponent(100 * float64(retained) / float64(cohort))
}

func healthClock(ctx *ComputeContext) time.Time {
	if ctx != nil {
		return ctx.Now
	}
	return time.Time{}
}

func roundComponent(v float64) int {
	return int(math.Round(math.Min(100, math.Max(0, v))))
}
