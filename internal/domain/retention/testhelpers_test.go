package retention

import (
	"testing"
	"time"
)

// --- fixtures ---

func testNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func daysAgo(n int) time.Time {
	return testNow().AddDate(0, 0, -n)
}

// checkIns builds a history with one check-in per given day offset.
func checkIns(daysBack ...int) []time.Time {
	out := make([]time.Time, 0, len(daysBack))
	for _, d := range daysBack {
		out = append(out, daysAgo(d))
	}
	return out
}

func activeSubscription(memberID string) Subscription {
	return Subscription{
		ID:           "sub_" + memberID,
		MemberID:     memberID,
		PlanID:       "plan_basic",
		BillingCycle: BillingCycleMonthly,
		AmountCents:  5000,
		Status:       SubscriptionStatusActive,
		StartedAt:    daysAgo(400),
	}
}

func testMember(id string, memberSinceDaysAgo int, history []time.Time) Member {
	return Member{
		ID:             id,
		Name:           "Member " + id,
		Email:          id + "@example.com",
		PlanID:         "plan_basic",
		Status:         MemberStatusActive,
		CheckInHistory: history,
		MemberSince:    daysAgo(memberSinceDaysAgo),
	}
}

// newTestContext assembles a valid context around the given members and
// their subscriptions.
func newTestContext(t *testing.T, members []Member, subs []Subscription) *ComputeContext {
	t.Helper()
	ctx := &ComputeContext{
		Now:           testNow(),
		Members:       members,
		Subscriptions: subs,
		Plans: []Plan{
			{ID: "plan_basic", Name: "Basic", MonthlyPriceCents: 5000},
			{ID: "plan_premium", Name: "Premium", MonthlyPriceCents: 12000},
		},
	}
	if err := ctx.Validate(); err != nil {
		t.Fatalf("fixture context invalid: %v", err)
	}
	return ctx
}

func indexFor(t *testing.T, ctx *ComputeContext) *rosterIndex {
	t.Helper()
	return buildIndex(ctx)
}
