package retention

import "time"

// ComputeContext is the read-only roster snapshot every computation runs
// against. Callers assemble it from whatever store they use; all I/O happens
// before the engine is invoked. The engine never mutates it.
type ComputeContext struct {
	Now           time.Time
	Members       []Member
	Subscriptions []Subscription
	Invoices      []Invoice
	Transactions  []Transaction
	ClassBookings []ClassBooking
	Plans         []Plan
}

// Validate checks structural invariants: unique IDs within each collection
// and resolvable plan/member references. A context failing validation is
// rejected whole; the engine does not attempt partial recovery.
func (c *ComputeContext) Validate() error {
	if c.Now.IsZero() {
		return newInvalidContext("reference time is zero")
	}

	memberIDs := make(map[string]struct{}, len(c.Members))
	for _, m := range c.Members {
		if m.ID == "" {
			return newInvalidContext("member with empty ID")
		}
		if _, dup := memberIDs[m.ID]; dup {
			return newInvalidContext("duplicate member ID %q", m.ID)
		}
		memberIDs[m.ID] = struct{}{}
	}

	planIDs := make(map[string]struct{}, len(c.Plans))
	for _, p := range c.Plans {
		if p.ID == "" {
			return newInvalidContext("plan with empty ID")
		}
		if _, dup := planIDs[p.ID]; dup {
			return newInvalidContext("duplicate plan ID %q", p.ID)
		}
		planIDs[p.ID] = struct{}{}
	}

	subIDs := make(map[string]struct{}, len(c.Subscriptions))
	for _, s := range c.Subscriptions {
		if s.ID == "" {
			return newInvalidContext("subscription with empty ID")
		}
		if _, dup := subIDs[s.ID]; dup {
			return newInvalidContext("duplicate subscription ID %q", s.ID)
		}
		subIDs[s.ID] = struct{}{}
		if s.PlanID != "" {
			if _, ok := planIDs[s.PlanID]; !ok {
				return newInvalidContext("subscription %q references unknown plan %q", s.ID, s.PlanID)
			}
		}
		if _, ok := memberIDs[s.MemberID]; !ok {
			return newInvalidContext("subscription %q references unknown member %q", s.ID, s.MemberID)
		}
	}

	return nil
}

// rosterIndex groups roster data by member so calculators stay O(1) per
// lookup. Built once per computation from a validated context.
type rosterIndex struct {
	now           time.Time
	subscriptions map[string]*Subscription // by member ID
	plans         map[string]*Plan         // by plan ID
	transactions  map[string][]Transaction // by member ID
	invoices      map[string][]Invoice     // by member ID
	classBookings map[string][]ClassBooking
}

func buildIndex(ctx *ComputeContext) *rosterIndex {
	idx := &rosterIndex{
		now:           ctx.Now,
		subscriptions: make(map[string]*Subscription, len(ctx.Subscriptions)),
		plans:         make(map[string]*Plan, len(ctx.Plans)),
		transactions:  make(map[string][]Transaction),
		invoices:      make(map[string][]Invoice),
		classBookings: make(map[string][]ClassBooking),
	}

	for i := range ctx.Plans {
		idx.plans[ctx.Plans[i].ID] = &ctx.Plans[i]
	}
	for i := range ctx.Subscriptions {
		sub := &ctx.Subscriptions[i]
		idx.subscriptions[sub.MemberID] = sub
	}
	for _, tx := range ctx.Transactions {
		idx.transactions[tx.MemberID] = append(idx.transactions[tx.MemberID], tx)
	}
	for _, inv := range ctx.Invoices {
		idx.invoices[inv.MemberID] = append(idx.invoices[inv.MemberID], inv)
	}
	for _, b := range ctx.ClassBookings {
		idx.classBookings[b.MemberID] = append(idx.classBookings[b.MemberID], b)
	}

	return idx
}

// subscriptionFor returns the member's subscription, or nil when none exists.
func (idx *rosterIndex) subscriptionFor(memberID string) *Subscription {
	return idx.subscriptions[memberID]
}

// planFor resolves a plan by ID, or nil when unknown.
func (idx *rosterIndex) planFor(planID string) *Plan {
	return idx.plans[planID]
}
