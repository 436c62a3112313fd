package retention

import "sort"

// materialityThreshold filters near-zero signals out of explanations. The
// omitted factors still count toward the composite score.
const materialityThreshold = 25.0

// interventionsByFactor maps each factor to its retention actions, in
// priority order within the factor.
var interventionsByFactor = map[FactorKind][]Intervention{
	FactorAttendanceDecline: {InterventionPhoneCall, InterventionClassRecommendation},
	FactorPaymentHealth:     {InterventionStaffTask},
	FactorEngagementTrend:   {InterventionEmail, InterventionClassRecommendation},
	FactorTenureStage:       {InterventionEmail},
	FactorSubscriptionState: {InterventionPhoneCall, InterventionDiscountOffer},
}

// buildExplanation ranks material factors by weighted contribution,
// descending. Ties keep the input (composite) order, which is stable.
func buildExplanation(factors []RiskFactor) []RiskFactor {
	explanation := make([]RiskFactor, 0, len(factors))
	for _, f := range factors {
		if f.Score > materialityThreshold {
			explanation = append(explanation, f)
		}
	}

	sort.SliceStable(explanation, func(i, j int) bool {
		return explanation[i].Contribution() > explanation[j].Contribution()
	})
	return explanation
}

// recommendInterventions collects intervention tags for the explained
// factors, deduplicated, preserving the priority order of the originating
// factor.
func recommendInterventions(explanation []RiskFactor) []Intervention {
	seen := make(map[Intervention]struct{})
	out := make([]Intervention, 0, len(explanation))

	for _, f := range explanation {
		for _, iv := range interventionsByFactor[f.Kind] {
			if _, dup := seen[iv]; dup {
				continue
			}
			seen[iv] = struct{}{}
			out = append(out, iv)
		}
	}
	return out
}
