package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"relief-custody-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestOK(t *testing.T) {
	c, w := testContext()
	OK(c, gin.H{"raised_amount": int64(5000)})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestCreated(t *testing.T) {
	c, w := testContext()
	Created(c, gin.H{"campaign_id": "abc"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestError_AppError(t *testing.T) {
	c, w := testContext()
	Error(c, apperror.ErrMerchantNotApproved())

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WLT_001", resp.ErrorCode)
}

func TestError_UnknownError(t *testing.T) {
	c, w := testContext()
	Error(c, errors.New("something broke"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_000", resp.ErrorCode)
	// Raw internal errors must never leak to clients.
	assert.Equal(t, "Internal server error", resp.Message)
}

func TestError_UsesRequestIDFromContext(t *testing.T) {
	c, w := testContext()
	c.Set("request_id", "req-123")
	Error(c, apperror.ErrNotFound("campaign"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp.RequestID)
}
