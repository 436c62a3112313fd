package retention

import "time"

// MemberStatus is the operational status of a member as maintained by the
// import and webhook adapters. The engine reads it but never changes it.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusAtRisk   MemberStatus = "at_risk"
	MemberStatusPaused   MemberStatus = "paused"
	MemberStatusChurned  MemberStatus = "churned"
	MemberStatusCritical MemberStatus = "critical"
)

// String returns the string representation of MemberStatus.
func (s MemberStatus) String() string {
	return string(s)
}

// IsValid checks if the member status value is valid.
func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusActive, MemberStatusAtRisk, MemberStatusPaused,
		MemberStatusChurned, MemberStatusCritical:
		return true
	}
	return false
}

// SubscriptionStatus is the billing status of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsValid() bool {
	return s == SubscriptionStatusActive || s == SubscriptionStatusPaused || s == SubscriptionStatusCancelled
}

// BillingCycle is the subscription billing interval.
type BillingCycle string

const (
	BillingCycleMonthly   BillingCycle = "monthly"
	BillingCycleQuarterly BillingCycle = "quarterly"
	BillingCycleAnnual    BillingCycle = "annual"
)

// TransactionType distinguishes charges from refunds.
type TransactionType string

const (
	TransactionTypeCharge TransactionType = "charge"
	TransactionTypeRefund TransactionType = "refund"
)

// TransactionStatus is the settlement status of a transaction.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusPending   TransactionStatus = "pending"
)

// InvoiceStatus is the collection status of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOpen    InvoiceStatus = "open"
	InvoiceStatusPastDue InvoiceStatus = "past_due"
	InvoiceStatusFailed  InvoiceStatus = "failed"
)

// BookingStatus is the outcome of a class booking.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusAttended  BookingStatus = "attended"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// Member is an immutable snapshot of a member at computation time.
// CheckInHistory carries no ordering guarantee; calculators sort as needed.
type Member struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	PlanID         string
	SubscriptionID string
	Status         MemberStatus
	CheckInHistory []time.Time
	MemberSince    time.Time
	CancelledAt    *time.Time
	PausedUntil    *time.Time
	Tags           []string
}

// Subscription links a member to a plan with its billing state.
type Subscription struct {
	ID                string
	MemberID          string
	PlanID            string
	BillingCycle      BillingCycle
	AmountCents       int64
	Status            SubscriptionStatus
	CancelAtPeriodEnd bool
	StartedAt         time.Time
}

// Invoice is a billed amount awaiting or past collection.
type Invoice struct {
	ID             string
	MemberID       string
	SubscriptionID string
	AmountCents    int64
	Status         InvoiceStatus
	IssuedAt       time.Time
}

// Transaction is a settled or attempted movement of money.
type Transaction struct {
	ID          string
	MemberID    string
	AmountCents int64
	Type        TransactionType
	Status      TransactionStatus
	OccurredAt  time.Time
}

// ClassBooking is a member's reservation for a class occurrence.
type ClassBooking struct {
	ID       string
	MemberID string
	ClassID  string
	Status   BookingStatus
	StartsAt time.Time
}

// Plan is the price point a subscription bills against.
type Plan struct {
	ID                string
	Name              string
	MonthlyPriceCents int64
}
