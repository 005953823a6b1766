package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Identity & Authorization (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUnauthorized(operation string) *AppError {
	return New("AUTH_002", fmt.Sprintf("Caller is not authorized to %s", operation), http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_004", "Username already exists", http.StatusConflict)
}

func ErrInvalidAddress() *AppError {
	return New("AUTH_005", "Malformed ledger address", http.StatusBadRequest)
}

// ---- Ledger Token (TOK) ----

func ErrInvalidAmount() *AppError {
	return New("TOK_001", "Invalid amount", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New("TOK_002", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrInsufficientAllowance() *AppError {
	return New("TOK_003", "Insufficient spend allowance", http.StatusPaymentRequired)
}

func ErrTokenPaused() *AppError {
	return New("TOK_004", "Token transfers are paused", http.StatusConflict)
}

// ---- Campaign (CMP) ----

func ErrInsufficientPool() *AppError {
	return New("CMP_001", "Campaign allocatable pool is insufficient", http.StatusUnprocessableEntity)
}

func ErrCampaignNotActive() *AppError {
	return New("CMP_002", "Campaign is not active", http.StatusConflict)
}

func ErrInvalidStatusTransition(from, to string) *AppError {
	return New("CMP_003", fmt.Sprintf("Campaign cannot move from %s to %s", from, to), http.StatusConflict)
}

func ErrBeneficiaryNotApproved() *AppError {
	return New("CMP_004", "Beneficiary is not approved for this campaign", http.StatusUnprocessableEntity)
}

// ---- Custodial Wallet (WLT) ----

func ErrMerchantNotApproved() *AppError {
	return New("WLT_001", "Recipient is not an approved merchant for this campaign", http.StatusForbidden)
}

// ---- Resources (RES) ----

func ErrNotFound(entity string) *AppError {
	return New("RES_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrAlreadyExists(entity string) *AppError {
	return New("RES_002", fmt.Sprintf("%s already exists", entity), http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
