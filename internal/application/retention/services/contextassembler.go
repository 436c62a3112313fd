// Package services contains application services shared by the retention
// use cases.
package services

import (
	"context"
	"fmt"

	"pulsegym/internal/domain/retention"
	"pulsegym/internal/shared/biztime"
	"pulsegym/internal/shared/logger"
)

// MemberRepository loads member snapshots.
type MemberRepository interface {
	ListAll(ctx context.Context) ([]retention.Member, error)
	GetByID(ctx context.Context, id string) (*retention.Member, error)
	Upsert(ctx context.Context, m *retention.Member) error
}

// SubscriptionRepository loads subscription and plan snapshots.
type SubscriptionRepository interface {
	ListAll(ctx context.Context) ([]retention.Subscription, error)
	ListPlans(ctx context.Context) ([]retention.Plan, error)
}

// BillingRepository loads invoice and transaction snapshots.
type BillingRepository interface {
	ListInvoices(ctx context.Context) ([]retention.Invoice, error)
	ListTransactions(ctx context.Context) ([]retention.Transaction, error)
	RecordTransaction(ctx context.Context, tx *retention.Transaction) error
}

// BookingRepository loads class booking snapshots.
type BookingRepository interface {
	ListAll(ctx context.Context) ([]retention.ClassBooking, error)
}

// ContextAssembler loads the full roster snapshot the engine computes over.
// All I/O happens here, before the engine runs; the assembled context is
// read-only for the duration of a computation.
type ContextAssembler struct {
	members       MemberRepository
	subscriptions SubscriptionRepository
	billing       BillingRepository
	bookings      BookingRepository
	logger        logger.Interface
}

func NewContextAssembler(
	members MemberRepository,
	subscriptions SubscriptionRepository,
	billing BillingRepository,
	bookings BookingRepository,
	logger logger.Interface,
) *ContextAssembler {
	return &ContextAssembler{
		members:       members,
		subscriptions: subscriptions,
		billing:       billing,
		bookings:      bookings,
		logger:        logger,
	}
}

// Assemble builds a validated ComputeContext anchored at the current time.
func (a *ContextAssembler) Assemble(ctx context.Context) (*retention.ComputeContext, error) {
	members, err := a.members.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	subs, err := a.subscriptions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	plans, err := a.subscriptions.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}

	invoices, err := a.billing.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}

	transactions, err := a.billing.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	bookings, err := a.bookings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load class bookings: %w", err)
	}

	compute := &retention.ComputeContext{
		Now:           biztime.NowUTC(),
		Members:       members,
		Subscriptions: subs,
		Invoices:      invoices,
		Transactions:  transactions,
		ClassBookings: bookings,
		Plans:         plans,
	}

	if err := compute.Validate(); err != nil {
		a.logger.Errorw("assembled context failed validation", "error", err)
		return nil, err
	}

	a.logger.Debugw("compute context assembled",
		"members", len(members),
		"subscriptions", len(subs),
		"transactions", len(transactions),
		"bookings", len(bookings),
	)

	return compute, nil
}
