package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsegym/internal/domain/retention"
)

func activeMember(id string) *retention.Member {
	return &retention.Member{
		ID:          id,
		Name:        "Test Member",
		Status:      retention.MemberStatusActive,
		MemberSince: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRecordBillingEventUseCase_Execute_Success(t *testing.T) {
	members := newStubMemberRepository()
	members.members["mbr_abc123"] = activeMember("mbr_abc123")
	billing := &stubBillingRepository{}
	uc := NewRecordBillingEventUseCase(members, billing, noopLogger{})

	occurredAt := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	err := uc.Execute(context.Background(), RecordBillingEventCommand{
		EventID:     "evt_001",
		MemberID:    "mbr_abc123",
		AmountCents: 4999,
		Type:        "charge",
		Status:      "failed",
		OccurredAt:  occurredAt,
	})

	require.NoError(t, err)
	require.Len(t, billing.transactions, 1)
	tx := billing.transactions[0]
	assert.Equal(t, "evt_001", tx.ID)
	assert.Equal(t, "mbr_abc123", tx.MemberID)
	assert.Equal(t, int64(4999), tx.AmountCents)
	assert.Equal(t, retention.TransactionTypeCharge, tx.Type)
	assert.Equal(t, retention.TransactionStatusFailed, tx.Status)
	assert.Equal(t, occurredAt, tx.OccurredAt)
}

func TestRecordBillingEventUseCase_Execute_GeneratesIDAndTimestamp(t *testing.T) {
	members := newStubMemberRepository()
	members.members["mbr_abc123"] = activeMember("mbr_abc123")
	billing := &stubBillingRepository{}
	uc := NewRecordBillingEventUseCase(members, billing, noopLogger{})

	err := uc.Execute(context.Background(), RecordBillingEventCommand{
		MemberID:    "mbr_abc123",
		AmountCents: 2500,
		Type:        "refund",
		Status:      "completed",
	})

	require.NoError(t, err)
	require.Len(t, billing.transactions, 1)
	tx := billing.transactions[0]
	assert.True(t, strings.HasPrefix(tx.ID, "txn_"))
	assert.False(t, tx.OccurredAt.IsZero())
}

func TestRecordBillingEventUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  RecordBillingEventCommand
	}{
		{
			name: "missing member id",
			cmd:  RecordBillingEventCommand{AmountCents: 100, Type: "charge", Status: "completed"},
		},
		{
			name: "zero amount",
			cmd:  RecordBillingEventCommand{MemberID: "mbr_abc123", Type: "charge", Status: "completed"},
		},
		{
			name: "unknown type",
			cmd:  RecordBillingEventCommand{MemberID: "mbr_abc123", AmountCents: 100, Type: "chargeback", Status: "completed"},
		},
		{
			name: "unknown status",
			cmd:  RecordBillingEventCommand{MemberID: "mbr_abc123", AmountCents: 100, Type: "charge", Status: "reversed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := newStubMemberRepository()
			members.members["mbr_abc123"] = activeMember("mbr_abc123")
			billing := &stubBillingRepository{}
			uc := NewRecordBillingEventUseCase(members, billing, noopLogger{})

			err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Empty(t, billing.transactions)
		})
	}
}

func TestRecordBillingEventUseCase_Execute_UnknownMember(t *testing.T) {
	members := newStubMemberRepository()
	billing := &stubBillingRepository{}
	uc := NewRecordBillingEventUseCase(members, billing, noopLogger{})

	err := uc.Execute(context.Background(), RecordBillingEventCommand{
		MemberID:    "mbr_missing",
		AmountCents: 4999,
		Type:        "charge",
		Status:      "completed",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "member not found")
	assert.Empty(t, billing.transactions)
}
