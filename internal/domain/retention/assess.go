package retention

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ComputeRiskAssessment runs every factor calculator for one member, scores
// the composite, and builds the explanation. Pure: identical inputs produce
// identical assessments, and nothing is persisted here.
func ComputeRiskAssessment(m *Member, ctx *ComputeContext) RiskAssessment {
	return assessWithIndex(m, buildIndex(ctx))
}

func assessWithIndex(m *Member, idx *rosterIndex) RiskAssessment {
	factors := make([]RiskFactor, 0, len(calculators))
	for _, calc := range calculators {
		factors = append(factors, calc(m, idx))
	}

	score := compositeScore(factors, overrideFloor(m, idx))
	explanation := buildExplanation(factors)

	return RiskAssessment{
		MemberID:      m.ID,
		Score:         score,
		Level:         LevelForScore(score),
		Factors:       factors,
		Explanation:   explanation,
		Interventions: recommendInterventions(explanation),
		ComputedAt:    idx.now,
	}
}

// ComputeAllAssessments assesses every member in the context. Returns one
// assessment per member keyed by member ID; no member is silently dropped.
// Fails fast on a structurally invalid context.
//
// Members are independent, so the roster is fanned out across workers. The
// result is byte-for-byte identical to sequential execution.
func ComputeAllAssessments(ctx *ComputeContext) (map[string]RiskAssessment, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	idx := buildIndex(ctx)
	results := make(map[string]RiskAssessment, len(ctx.Members))

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range ctx.Members {
		m := &ctx.Members[i]
		g.Go(func() error {
			assessment := assessWithIndex(m, idx)
			mu.Lock()
			results[m.ID] = assessment
			mu.Unlock()
			return nil
		})
	}

	// Calculators are total; the group exists for the limit, not for errors.
	_ = g.Wait()

	return results, nil
}
