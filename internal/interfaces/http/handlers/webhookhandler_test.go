package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsegym/internal/application/retention/usecases"
	"pulsegym/internal/interfaces/http/handlers/testutil"
	"pulsegym/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRecordBillingEventUC struct {
	err     error
	lastCmd usecases.RecordBillingEventCommand
	called  bool
}

func (m *mockRecordBillingEventUC) Execute(ctx context.Context, cmd usecases.RecordBillingEventCommand) error {
	m.called = true
	m.lastCmd = cmd
	return m.err
}

// =====================================================================
// TestWebhookHandler_HandleBillingEvent
// =====================================================================

func TestWebhookHandler_HandleBillingEvent_Success(t *testing.T) {
	mockUC := &mockRecordBillingEventUC{}
	handler := NewWebhookHandler(mockUC, testutil.NewMockLogger())

	payload := map[string]interface{}{
		"event_id":     "evt_20250601_001",
		"member_id":    "mbr_abc123",
		"amount_cents": 4999,
		"type":         "charge",
		"status":       "failed",
		"occurred_at":  time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC).Format(time.RFC3339),
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/webhooks/billing", payload)

	handler.HandleBillingEvent(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.called)
	assert.Equal(t, "evt_20250601_001", mockUC.lastCmd.EventID)
	assert.Equal(t, "mbr_abc123", mockUC.lastCmd.MemberID)
	assert.Equal(t, int64(4999), mockUC.lastCmd.AmountCents)
	assert.Equal(t, "failed", mockUC.lastCmd.Status)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "billing event accepted", resp.Message)
}

func TestWebhookHandler_HandleBillingEvent_MalformedBody(t *testing.T) {
	mockUC := &mockRecordBillingEventUC{}
	handler := NewWebhookHandler(mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/webhooks/billing", nil)

	handler.HandleBillingEvent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.called)
}

func TestWebhookHandler_HandleBillingEvent_ValidationError(t *testing.T) {
	mockUC := &mockRecordBillingEventUC{
		err: errors.NewValidationError("Validation failed", "type must be one of: charge refund"),
	}
	handler := NewWebhookHandler(mockUC, testutil.NewMockLogger())

	payload := map[string]interface{}{
		"member_id":    "mbr_abc123",
		"amount_cents": 4999,
		"type":         "chargeback",
		"status":       "completed",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/webhooks/billing", payload)

	handler.HandleBillingEvent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestWebhookHandler_HandleBillingEvent_UnknownMember(t *testing.T) {
	mockUC := &mockRecordBillingEventUC{err: errors.NewNotFoundError("member not found")}
	handler := NewWebhookHandler(mockUC, testutil.NewMockLogger())

	payload := map[string]interface{}{
		"member_id":    "mbr_missing",
		"amount_cents": 4999,
		"type":         "charge",
		"status":       "completed",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/webhooks/billing", payload)

	handler.HandleBillingEvent(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
