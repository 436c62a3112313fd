package retention

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Scoring windows. All windows are anchored on the context's reference time,
// never the wall clock.
const (
	recentWindowDays      = 30 // attendance: recent activity window
	baselineWindowDays    = 60 // attendance: prior window is (60d, 30d] ago
	paymentLookbackDays   = 90 // payment: failures considered at all
	paymentEscalationDays = 30 // payment: failures that escalate sharply
	engagementWindowDays  = 60 // engagement: bookings considered
	earlyTenureDays       = 60 // tenure: early-life churn window
)

// Defaults applied when a member has no history for a signal. These are
// policy, not error paths: every calculator is total.
const (
	noCheckInsScore     = 100 // never checked in: maximal attendance risk
	noBookingsScore     = 30  // no class bookings: mild neutral risk
	noBillingScore      = 10  // no billing activity: low unknown risk
	noSubscriptionScore = 75  // no subscription record at all
)

// factorCalculator computes one risk dimension for a member. Implementations
// must be pure and must not fail on sparse history.
type factorCalculator func(m *Member, idx *rosterIndex) RiskFactor

// calculators lists every factor in composite order.
var calculators = []factorCalculator{
	attendanceDecline,
	paymentHealth,
	engagementTrend,
	tenureStage,
	subscriptionState,
}

// attendanceDecline compares check-in counts in the recent window against
// the prior window. A member with no check-ins at all is maximal risk, not
// zero: silence is the strongest churn signal we have.
func attendanceDecline(m *Member, idx *rosterIndex) RiskFactor {
	f := RiskFactor{Kind: FactorAttendanceDecline, Weight: weightAttendance}

	checkIns := sortedCheckIns(m.CheckInHistory)
	if len(checkIns) == 0 {
		f.Score = noCheckInsScore
		f.Description = "No check-ins on record"
		return f
	}

	recentStart := idx.now.AddDate(0, 0, -recentWindowDays)
	baselineStart := idx.now.AddDate(0, 0, -baselineWindowDays)

	recent := countBetween(checkIns, recentStart, idx.now)
	prior := countBetween(checkIns, baselineStart, recentStart)

	tenureDays := daysBetween(m.MemberSince, idx.now)

	switch {
	case tenureDays < recentWindowDays:
		// Too new for a baseline; score on gap since the last check-in.
		gap := daysBetween(checkIns[len(checkIns)-1], idx.now)
		f.Score = clampScore(float64(gap) * 4)
		if f.Score > 60 {
			f.Score = 60
		}
		f.Description = fmt.Sprintf("New member, last check-in %d days ago", gap)
	case recent == 0:
		gap := daysBetween(checkIns[len(checkIns)-1], idx.now)
		f.Score = clampScore(60 + float64(gap))
		f.Description = fmt.Sprintf("No check-ins in the last %d days", recentWindowDays)
	case prior == 0:
		// Activity restarted or started inside the recent window.
		f.Score = 10
		f.Description = fmt.Sprintf("%d check-ins in the last %d days, none in the prior window", recent, recentWindowDays)
	default:
		drop := float64(prior-recent) / float64(prior)
		if drop <= 0 {
			f.Score = 5
			f.Description = fmt.Sprintf("Check-in frequency steady or improving (%d vs %d)", recent, prior)
		} else {
			f.Score = clampScore(drop * 100)
			f.Description = fmt.Sprintf("Check-ins down %d%% vs. prior %d days (%d vs %d)",
				int(math.Round(drop*100)), recentWindowDays, recent, prior)
		}
	}

	return f
}

// paymentHealth counts failed charges and uncollectable invoices. A failure
// inside the escalation window jumps the score non-linearly: a fresh failed
// payment is the single strongest churn predictor in the data.
func paymentHealth(m *Member, idx *rosterIndex) RiskFactor {
	f := RiskFactor{Kind: FactorPaymentHealth, Weight: weightPayment}

	lookbackStart := idx.now.AddDate(0, 0, -paymentLookbackDays)
	escalationStart := idx.now.AddDate(0, 0, -paymentEscalationDays)

	var seen, failedLookback, failedRecent int
	for _, tx := range idx.transactions[m.ID] {
		if tx.Type != TransactionTypeCharge || tx.OccurredAt.Before(lookbackStart) {
			continue
		}
		seen++
		if tx.Status == TransactionStatusFailed {
			failedLookback++
			if !tx.OccurredAt.Before(escalationStart) {
				failedRecent++
			}
		}
	}
	for _, inv := range idx.invoices[m.ID] {
		if inv.IssuedAt.Before(lookbackStart) {
			continue
		}
		seen++
		if inv.Status == InvoiceStatusFailed || inv.Status == InvoiceStatusPastDue {
			failedLookback++
			if !inv.IssuedAt.Before(escalationStart) {
				failedRecent++
			}
		}
	}

	switch {
	case failedRecent > 0:
		f.Score = clampScore(70 + float64(failedRecent-1)*15)
		f.Description = fmt.Sprintf("%d failed payment(s) in the last %d days", failedRecent, paymentEscalationDays)
	case failedLookback > 0:
		f.Score = math.Min(60, float64(failedLookback)*25)
		f.Description = fmt.Sprintf("%d failed payment(s) in the last %d days", failedLookback, paymentLookbackDays)
	case seen == 0:
		f.Score = noBillingScore
		f.Description = fmt.Sprintf("No billing activity in the last %d days", paymentLookbackDays)
	default:
		f.Score = 0
		f.Description = fmt.Sprintf("No payment issues in the last %d days", paymentLookbackDays)
	}

	return f
}

// engagementTrend scores the cancellation/no-show rate over recent class
// bookings. Booked-but-missed classes predict churn better than simply not
// booking.
func engagementTrend(m *Member, idx *rosterIndex) RiskFactor {
	f := RiskFactor{Kind: FactorEngagementTrend, Weight: weightEngagement}

	windowStart := idx.now.AddDate(0, 0, -engagementWindowDays)

	var total, missed int
	for _, b := range idx.classBookings[m.ID] {
		if b.StartsAt.Before(windowStart) || b.StartsAt.After(idx.now) {
			continue
		}
		total++
		if b.Status == BookingStatusCancelled || b.Status == BookingStatusNoShow {
			missed++
		}
	}

	if total == 0 {
		f.Score = noBookingsScore
		f.Description = fmt.Sprintf("No class bookings in the last %d days", engagementWindowDays)
		return f
	}

	rate := float64(missed) / float64(total)
	f.Score = clampScore(rate * 100)
	f.Description = fmt.Sprintf("%d%% of class bookings cancelled or missed in the last %d days (%d of %d)",
		int(math.Round(rate*100)), engagementWindowDays, missed, total)
	return f
}

// tenureStage models the early-life churn curve. New members score risk per
// unit of inactivity faster than established ones; long tenure earns a small
// loyalty discount unless the member has gone quiet.
func tenureStage(m *Member, idx *rosterIndex) RiskFactor {
	f := RiskFactor{Kind: FactorTenureStage, Weight: weightTenure}

	tenureDays := daysBetween(m.MemberSince, idx.now)
	if tenureDays < 1 {
		tenureDays = 1
	}

	checkIns := sortedCheckIns(m.CheckInHistory)

	if tenureDays < earlyTenureDays {
		inactiveDays := tenureDays
		if len(checkIns) > 0 {
			inactiveDays = daysBetween(checkIns[len(checkIns)-1], idx.now)
		}
		ratio := math.Min(1, float64(inactiveDays)/float64(tenureDays))
		f.Score = clampScore(20 + 60*ratio)
		f.Description = fmt.Sprintf("New member (%d days), inactive for %d of them", tenureDays, inactiveDays)
		return f
	}

	switch {
	case tenureDays >= 365:
		f.Score = 5
		f.Description = "Long-tenured member (1+ years)"
	case tenureDays >= 180:
		f.Score = 10
		f.Description = "Established member (6+ months)"
	default:
		f.Score = 20
		f.Description = "Member past the onboarding window"
	}

	// Loyalty does not cover a member who has stopped showing up.
	if len(checkIns) == 0 || daysBetween(checkIns[len(checkIns)-1], idx.now) > recentWindowDays {
		f.Score = clampScore(f.Score + 20)
		f.Description += ", no recent check-ins"
	}

	return f
}

// subscriptionState reflects the billing relationship itself. Cancellation
// signals also impose composite floors; see overrideFloor.
func subscriptionState(m *Member, idx *rosterIndex) RiskFactor {
	f := RiskFactor{Kind: FactorSubscriptionState, Weight: weightSubscription}

	sub := idx.subscriptionFor(m.ID)
	switch {
	case sub == nil:
		f.Score = noSubscriptionScore
		f.Description = "No subscription on file"
	case sub.Status == SubscriptionStatusCancelled:
		f.Score = 100
		f.Description = "Subscription cancelled"
	case sub.CancelAtPeriodEnd:
		f.Score = 100
		f.Description = "Subscription set to cancel at period end"
	case sub.Status == SubscriptionStatusPaused:
		f.Score = 70
		f.Description = "Subscription paused"
	default:
		f.Score = 0
		f.Description = "Subscription in good standing"
	}

	return f
}

// sortedCheckIns returns a chronologically sorted copy; input order is not
// guaranteed by producers.
func sortedCheckIns(history []time.Time) []time.Time {
	if len(history) == 0 {
		return nil
	}
	out := make([]time.Time, len(history))
	copy(out, history)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// countBetween counts timestamps in (start, end].
func countBetween(sorted []time.Time, start, end time.Time) int {
	n := 0
	for _, t := range sorted {
		if t.After(start) && !t.After(end) {
			n++
		}
	}
	return n
}

// daysBetween returns whole days from a to b, never negative.
func daysBetween(a, b time.Time) int {
	d := int(b.Sub(a).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// clampScore clamps a sub-score into [0,100].
func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
