package retention

import "math"

// Fixed factor weights. They must sum to 1.0; see TestWeightsSumToOne.
const (
	weightAttendance   = 0.35
	weightPayment      = 0.25
	weightEngagement   = 0.15
	weightSubscription = 0.15
	weightTenure       = 0.10
)

// Risk level bands over the composite score. Lower bounds are inclusive.
const (
	thresholdCritical = 80
	thresholdHigh     = 60
	thresholdElevated = 40
	thresholdModerate = 20
)

// Composite floors forced by subscription overrides. Applied after
// weighting so a hard cancellation signal cannot be diluted by soft ones.
const (
	floorCancelled         = 80
	floorCancelAtPeriodEnd = 60
	floorPaused            = 40
)

// compositeScore combines factor sub-scores into a single 0-100 score.
// floor is the minimum imposed by override rules (0 when none apply).
func compositeScore(factors []RiskFactor, floor int) int {
	var sum float64
	for _, f := range factors {
		sum += f.Contribution()
	}

	score := int(math.Round(math.Min(100, math.Max(0, sum))))
	if score < floor {
		score = floor
	}
	return score
}

// overrideFloor returns the composite floor the member's subscription state
// imposes. A member already cancelling can never be scored low risk.
func overrideFloor(m *Member, idx *rosterIndex) int {
	sub := idx.subscriptionFor(m.ID)
	if sub == nil {
		return 0
	}

	switch {
	case sub.Status == SubscriptionStatusCancelled:
		return floorCancelled
	case sub.CancelAtPeriodEnd:
		return floorCancelAtPeriodEnd
	case sub.Status == SubscriptionStatusPaused:
		return floorPaused
	}
	return 0
}

// LevelForScore maps a composite score to its risk band.
func LevelForScore(score int) RiskLevel {
	switch {
	case score >= thresholdCritical:
		return RiskLevelCritical
	case score >= thresholdHigh:
		return RiskLevelHigh
	case score >= thresholdElevated:
		return RiskLevelElevated
	case score >= thresholdModerate:
		return RiskLevelModerate
	default:
		return RiskLevelLow
	}
}
