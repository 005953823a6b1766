package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New("TOK_001", "Invalid amount", http.StatusBadRequest)
	assert.Equal(t, "[TOK_001] Invalid amount", e.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := errors.New("connection refused")
	e := Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, inner)
	assert.Contains(t, e.Error(), "SYS_001")
	assert.Contains(t, e.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	e := InternalError(inner)
	assert.True(t, errors.Is(e, inner))
}

func TestAppError_ErrorsAs(t *testing.T) {
	var err error = ErrInsufficientPool()
	wrapped := fmt.Errorf("allocate: %w", err)

	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "CMP_001", appErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
}

func TestTaxonomyStatusCodes(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrUnauthorized("allocate funds"), "AUTH_002", http.StatusForbidden},
		{ErrInvalidAmount(), "TOK_001", http.StatusBadRequest},
		{ErrInsufficientFunds(), "TOK_002", http.StatusPaymentRequired},
		{ErrInsufficientAllowance(), "TOK_003", http.StatusPaymentRequired},
		{ErrTokenPaused(), "TOK_004", http.StatusConflict},
		{ErrInsufficientPool(), "CMP_001", http.StatusUnprocessableEntity},
		{ErrCampaignNotActive(), "CMP_002", http.StatusConflict},
		{ErrMerchantNotApproved(), "WLT_001", http.StatusForbidden},
		{ErrNotFound("campaign"), "RES_001", http.StatusNotFound},
		{ErrAlreadyExists("wallet"), "RES_002", http.StatusConflict},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestErrNotFound_Message(t *testing.T) {
	e := ErrNotFound("custodial wallet")
	assert.Equal(t, "custodial wallet not found", e.Message)
}
