package retention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================================================================
// TestAttendanceDecline_*
// =====================================================================

func TestAttendanceDecline_NoCheckInsEver(t *testing.T) {
	m := testMember("m1", 400, nil)
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := attendanceDecline(&m, indexFor(t, ctx))

	assert.Equal(t, float64(noCheckInsScore), f.Score)
	assert.Equal(t, FactorAttendanceDecline, f.Kind)
	assert.Contains(t, f.Description, "No check-ins")
}

func TestAttendanceDecline_SharpDrop(t *testing.T) {
	// 8 check-ins in the prior window, 3 in the recent one: ~62% drop.
	history := checkIns(2, 10, 20, 32, 35, 38, 42, 46, 50, 55, 58)
	m := testMember("m1", 400, history)
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := attendanceDecline(&m, indexFor(t, ctx))

	require.Greater(t, f.Score, 50.0)
	assert.LessOrEqual(t, f.Score, 100.0)
	assert.Contains(t, f.Description, "down")
}

func TestAttendanceDecline_SteadyFrequency(t *testing.T) {
	history := checkIns(2, 9, 16, 23, 33, 40, 47, 54)
	m := testMember("m1", 400, history)
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := attendanceDecline(&m, indexFor(t, ctx))

	assert.Equal(t, 5.0, f.Score)
}

func TestAttendanceDecline_UnsortedHistory(t *testing.T) {
	// Producers do not guarantee order; most recent first here.
	m := testMember("m1", 400, checkIns(2, 40, 10, 55, 33))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := attendanceDecline(&m, indexFor(t, ctx))

	assert.GreaterOrEqual(t, f.Score, 0.0)
	assert.LessOrEqual(t, f.Score, 100.0)
}

func TestAttendanceDecline_NewMemberUsesGapNotBaseline(t *testing.T) {
	m := testMember("m1", 10, checkIns(2, 5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := attendanceDecline(&m, indexFor(t, ctx))

	// A 10-day-old member cannot have a 60-day baseline; risk comes from
	// the gap since the last check-in and stays moderate.
	assert.LessOrEqual(t, f.Score, 60.0)
	assert.Contains(t, f.Description, "New member")
}

// =====================================================================
// TestPaymentHealth_*
// =====================================================================

func TestPaymentHealth_CleanHistory(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})
	ctx.Transactions = []Transaction{
		{ID: "tx1", MemberID: "m1", AmountCents: 5000, Type: TransactionTypeCharge, Status: TransactionStatusCompleted, OccurredAt: daysAgo(15)},
	}

	f := paymentHealth(&m, indexFor(t, ctx))

	assert.Equal(t, 0.0, f.Score)
}

func TestPaymentHealth_RecentFailureEscalates(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})
	ctx.Transactions = []Transaction{
		{ID: "tx1", MemberID: "m1", AmountCents: 5000, Type: TransactionTypeCharge, Status: TransactionStatusFailed, OccurredAt: daysAgo(5)},
	}

	f := paymentHealth(&m, indexFor(t, ctx))

	// One fresh failure jumps past the proportional range.
	assert.GreaterOrEqual(t, f.Score, 70.0)
}

func TestPaymentHealth_OldFailureScoresLower(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})
	ctx.Transactions = []Transaction{
		{ID: "tx1", MemberID: "m1", AmountCents: 5000, Type: TransactionTypeCharge, Status: TransactionStatusFailed, OccurredAt: daysAgo(60)},
	}

	f := paymentHealth(&m, indexFor(t, ctx))

	assert.Equal(t, 25.0, f.Score)
}

func TestPaymentHealth_PastDueInvoiceCounts(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})
	ctx.Invoices = []Invoice{
		{ID: "inv1", MemberID: "m1", AmountCents: 5000, Status: InvoiceStatusPastDue, IssuedAt: daysAgo(10)},
	}

	f := paymentHealth(&m, indexFor(t, ctx))

	assert.GreaterOrEqual(t, f.Score, 70.0)
}

func TestPaymentHealth_NoBillingHistory(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := paymentHealth(&m, indexFor(t, ctx))

	assert.Equal(t, float64(noBillingScore), f.Score)
}

func TestPaymentHealth_RefundsIgnored(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})
	ctx.Transactions = []Transaction{
		{ID: "tx1", MemberID: "m1", AmountCents: 5000, Type: TransactionTypeRefund, Status: TransactionStatusFailed, OccurredAt: daysAgo(5)},
	}

	f := paymentHealth(&m, indexFor(t, ctx))

	assert.Equal(t, float64(noBillingScore), f.Score)
}

// =====================================================================
// TestEngagementTrend_*
// =====================================================================

func TestEngagementTrend_HighNoShowRate(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})
	ctx.ClassBookings = []ClassBooking{
		{ID: "b1", MemberID: "m1", ClassID: "c1", Status: BookingStatusNoShow, StartsAt: daysAgo(5)},
		{ID: "b2", MemberID: "m1", ClassID: "c1", Status: BookingStatusCancelled, StartsAt: daysAgo(12)},
		{ID: "b3", MemberID: "m1", ClassID: "c1", Status: BookingStatusAttended, StartsAt: daysAgo(20)},
		{ID: "b4", MemberID: "m1", ClassID: "c1", Status: BookingStatusNoShow, StartsAt: daysAgo(30)},
	}

	f := engagementTrend(&m, indexFor(t, ctx))

	assert.Equal(t, 75.0, f.Score)
	assert.Contains(t, f.Description, "75%")
}

func TestEngagementTrend_AllAttended(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})
	ctx.ClassBookings = []ClassBooking{
		{ID: "b1", MemberID: "m1", ClassID: "c1", Status: BookingStatusAttended, StartsAt: daysAgo(5)},
		{ID: "b2", MemberID: "m1", ClassID: "c1", Status: BookingStatusAttended, StartsAt: daysAgo(12)},
	}

	f := engagementTrend(&m, indexFor(t, ctx))

	assert.Equal(t, 0.0, f.Score)
}

func TestEngagementTrend_NoBookingsIsNeutral(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := engagementTrend(&m, indexFor(t, ctx))

	assert.Equal(t, float64(noBookingsScore), f.Score)
}

func TestEngagementTrend_OldBookingsOutsideWindow(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})
	ctx.ClassBookings = []ClassBooking{
		{ID: "b1", MemberID: "m1", ClassID: "c1", Status: BookingStatusNoShow, StartsAt: daysAgo(90)},
	}

	f := engagementTrend(&m, indexFor(t, ctx))

	assert.Equal(t, float64(noBookingsScore), f.Score)
}

// =====================================================================
// TestTenureStage_*
// =====================================================================

func TestTenureStage_NewMemberActiveStaysModerate(t *testing.T) {
	m := testMember("m1", 10, checkIns(2, 5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := tenureStage(&m, indexFor(t, ctx))

	assert.Less(t, f.Score, 50.0)
	assert.Contains(t, f.Description, "New member")
}

func TestTenureStage_NewMemberFullyInactive(t *testing.T) {
	m := testMember("m1", 20, nil)
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := tenureStage(&m, indexFor(t, ctx))

	assert.Equal(t, 80.0, f.Score)
}

func TestTenureStage_LongTenureLoyaltyDiscount(t *testing.T) {
	m := testMember("m1", 500, checkIns(3, 10))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := tenureStage(&m, indexFor(t, ctx))

	assert.Equal(t, 5.0, f.Score)
}

func TestTenureStage_LoyaltyRevokedWhenQuiet(t *testing.T) {
	m := testMember("m1", 500, checkIns(90))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := tenureStage(&m, indexFor(t, ctx))

	assert.Equal(t, 25.0, f.Score)
	assert.Contains(t, f.Description, "no recent check-ins")
}

// =====================================================================
// TestSubscriptionState_*
// =====================================================================

func TestSubscriptionState_Active(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{activeSubscription("m1")})

	f := subscriptionState(&m, indexFor(t, ctx))

	assert.Equal(t, 0.0, f.Score)
}

func TestSubscriptionState_CancelAtPeriodEnd(t *testing.T) {
	sub := activeSubscription("m1")
	sub.CancelAtPeriodEnd = true
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{sub})

	f := subscriptionState(&m, indexFor(t, ctx))

	assert.Equal(t, 100.0, f.Score)
}

func TestSubscriptionState_Paused(t *testing.T) {
	sub := activeSubscription("m1")
	sub.Status = SubscriptionStatusPaused
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, []Subscription{sub})

	f := subscriptionState(&m, indexFor(t, ctx))

	assert.Equal(t, 70.0, f.Score)
}

func TestSubscriptionState_NoSubscription(t *testing.T) {
	m := testMember("m1", 400, checkIns(5))
	ctx := newTestContext(t, []Member{m}, nil)

	f := subscriptionState(&m, indexFor(t, ctx))

	assert.Equal(t, float64(noSubscriptionScore), f.Score)
}

// =====================================================================
// All calculators are total: no panics, scores always in bounds.
// =====================================================================

func TestCalculators_TotalOnEmptyHistory(t *testing.T) {
	m := testMember("m1", 0, nil)
	ctx := newTestContext(t, []Member{m}, nil)
	idx := indexFor(t, ctx)

	for _, calc := range calculators {
		f := calc(&m, idx)
		assert.GreaterOrEqual(t, f.Score, 0.0, "factor %s", f.Kind)
		assert.LessOrEqual(t, f.Score, 100.0, "factor %s", f.Kind)
		assert.NotEmpty(t, f.Description, "factor %s", f.Kind)
	}
}
