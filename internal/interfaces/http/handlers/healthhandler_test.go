package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsegym/internal/domain/retention"
	"pulsegym/internal/interfaces/http/handlers/testutil"
	"pulsegym/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockGetGymHealthUC struct {
	result *retention.GymHealthScore
	err    error
}

func (m *mockGetGymHealthUC) Execute(ctx context.Context) (*retention.GymHealthScore, error) {
	return m.result, m.err
}

// =====================================================================
// TestHealthHandler_GetGymHealth
// =====================================================================

func TestHealthHandler_GetGymHealth_Success(t *testing.T) {
	mockUC := &mockGetGymHealthUC{
		result: &retention.GymHealthScore{
			Retention:  78,
			Revenue:    82,
			Engagement: 65,
			Growth:     70,
			Overall:    74,
			Trend:      retention.TrendImproving,
			ComputedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	handler := NewHealthHandler(mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/gym/health", nil)

	handler.GetGymHealth(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"overall":74`)
	assert.Contains(t, string(resp.Data), "improving")
}

func TestHealthHandler_GetGymHealth_Error(t *testing.T) {
	mockUC := &mockGetGymHealthUC{err: errors.NewInternalError("failed to load roster")}
	handler := NewHealthHandler(mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/gym/health", nil)

	handler.GetGymHealth(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestHealthHandler_Liveness
// =====================================================================

func TestHealthHandler_Liveness(t *testing.T) {
	handler := NewHealthHandler(nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/healthz", nil)

	handler.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
