package usecases

import (
	"context"
	"fmt"
	"time"

	"pulsegym/internal/application/retention/services"
	"pulsegym/internal/domain/retention"
	"pulsegym/internal/shared/biztime"
	"pulsegym/internal/shared/errors"
	"pulsegym/internal/shared/id"
	"pulsegym/internal/shared/logger"
	"pulsegym/internal/shared/utils"
)

// RecordBillingEventCommand mirrors a payment provider webhook payload.
type RecordBillingEventCommand struct {
	EventID     string    `json:"event_id"`
	MemberID    string    `json:"member_id" validate:"required"`
	AmountCents int64     `json:"amount_cents" validate:"required,gt=0"`
	Type        string    `json:"type" validate:"required,oneof=charge refund"`
	Status      string    `json:"status" validate:"required,oneof=completed failed pending"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// RecordBillingEventUseCase ingests billing events pushed by the payment
// provider so the payment health factor sees failures as they happen rather
// than on the next batch sync.
type RecordBillingEventUseCase struct {
	members services.MemberRepository
	billing services.BillingRepository
	logger  logger.Interface
}

func NewRecordBillingEventUseCase(
	members services.MemberRepository,
	billing services.BillingRepository,
	logger logger.Interface,
) *RecordBillingEventUseCase {
	return &RecordBillingEventUseCase{members: members, billing: billing, logger: logger}
}

func (uc *RecordBillingEventUseCase) Execute(ctx context.Context, cmd RecordBillingEventCommand) error {
	if err := utils.ValidateStruct(cmd); err != nil {
		return err
	}

	member, err := uc.members.GetByID(ctx, cmd.MemberID)
	if err != nil {
		return fmt.Errorf("failed to load member: %w", err)
	}
	if member == nil {
		return errors.NewNotFoundError("member not found")
	}

	txID := cmd.EventID
	if txID == "" {
		txID, err = id.GenerateWithPrefix("txn", id.DefaultLength)
		if err != nil {
			return fmt.Errorf("failed to generate transaction ID: %w", err)
		}
	}

	occurredAt := cmd.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = biztime.NowUTC()
	}

	tx := &retention.Transaction{
		ID:          txID,
		MemberID:    cmd.MemberID,
		AmountCents: cmd.AmountCents,
		Type:        retention.TransactionType(cmd.Type),
		Status:      retention.TransactionStatus(cmd.Status),
		OccurredAt:  occurredAt.UTC(),
	}

	if err := uc.billing.RecordTransaction(ctx, tx); err != nil {
		uc.logger.Errorw("failed to record billing event",
			"error", err,
			"member_id", cmd.MemberID,
			"transaction_id", txID,
		)
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	uc.logger.Infow("billing event recorded",
		"member_id", cmd.MemberID,
		"transaction_id", txID,
		"type", cmd.Type,
		"status", cmd.Status,
	)
	return nil
}
