package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsegym/internal/application/retention/usecases"
	"pulsegym/internal/interfaces/http/handlers/testutil"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockImportMembersUC struct {
	result   *usecases.ImportResult
	err      error
	lastBody string
}

func (m *mockImportMembersUC) Execute(ctx context.Context, r io.Reader) (*usecases.ImportResult, error) {
	body, _ := io.ReadAll(r)
	m.lastBody = string(body)
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func newMultipartContext(t *testing.T, fieldName, fileName, content string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/members/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// =====================================================================
// TestImportHandler_ImportMembers
// =====================================================================

func TestImportHandler_ImportMembers_Success(t *testing.T) {
	csvContent := "name,member_since\nAlice,2024-01-15\nBob,2023-06-01\n"
	mockUC := &mockImportMembersUC{
		result: &usecases.ImportResult{
			Imported: 2,
			Failed:   0,
			Rows: []usecases.ImportRowResult{
				{Row: 2, MemberID: "mbr_alice1"},
				{Row: 3, MemberID: "mbr_bob22"},
			},
		},
	}
	handler := NewImportHandler(mockUC, testutil.NewMockLogger())

	c, w := newMultipartContext(t, "file", "members.csv", csvContent)

	handler.ImportMembers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, csvContent, mockUC.lastBody)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"imported":2`)
}

func TestImportHandler_ImportMembers_MissingFile(t *testing.T) {
	mockUC := &mockImportMembersUC{}
	handler := NewImportHandler(mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/members/import", nil)

	handler.ImportMembers(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mockUC.lastBody)
}

func TestImportHandler_ImportMembers_WrongFieldName(t *testing.T) {
	mockUC := &mockImportMembersUC{}
	handler := NewImportHandler(mockUC, testutil.NewMockLogger())

	c, w := newMultipartContext(t, "upload", "members.csv", "name,member_since\n")

	handler.ImportMembers(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
