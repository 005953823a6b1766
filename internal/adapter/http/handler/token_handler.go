package handler

import (
	"time"

	"relief-custody-engine/internal/adapter/http/dto"
	"relief-custody-engine/internal/adapter/http/middleware"
	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/pkg/apperror"
	"relief-custody-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenHandler handles fungible token endpoints.
type TokenHandler struct {
	ledgerSvc ports.LedgerService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(ledgerSvc ports.LedgerService) *TokenHandler {
	return &TokenHandler{ledgerSvc: ledgerSvc}
}

// callerAddress extracts the authenticated caller's ledger address from the
// request context. Missing means the route was wired without JWTAuth.
func callerAddress(c *gin.Context) (domain.Address, bool) {
	v, exists := c.Get(middleware.CtxCallerAddress)
	if !exists {
		return "", false
	}
	addr, ok := v.(domain.Address)
	return addr, ok
}

func toEntryResponse(e *domain.LedgerEntry) dto.EntryResponse {
	resp := dto.EntryResponse{
		ID:        e.ID.String(),
		EntryType: string(e.EntryType),
		From:      e.From.String(),
		To:        e.To.String(),
		Amount:    e.Amount,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.CampaignID != nil {
		id := e.CampaignID.String()
		resp.CampaignID = &id
	}
	return resp
}

// Transfer handles POST /api/v1/token/transfer.
func (h *TokenHandler) Transfer(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	to, err := domain.NormalizeAddress(req.To)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	entry, err := h.ledgerSvc.Transfer(c.Request.Context(), ports.TransferRequest{
		Caller: caller,
		To:     to,
		Amount: req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toEntryResponse(entry))
}

// Approve handles POST /api/v1/token/approve.
func (h *TokenHandler) Approve(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	spender, err := domain.NormalizeAddress(req.Spender)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	if err := h.ledgerSvc.Approve(c.Request.Context(), ports.ApproveRequest{
		Caller:  caller,
		Spender: spender,
		Amount:  *req.Amount,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"spender": spender.String(),
		"amount":  *req.Amount,
	})
}

// TransferFrom handles POST /api/v1/token/transfer-from.
func (h *TokenHandler) TransferFrom(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferFromRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	from, err := domain.NormalizeAddress(req.From)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}
	to, err := domain.NormalizeAddress(req.To)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	entry, err := h.ledgerSvc.TransferFrom(c.Request.Context(), ports.TransferFromRequest{
		Caller: caller,
		From:   from,
		To:     to,
		Amount: req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toEntryResponse(entry))
}

// Balance handles GET /api/v1/token/balances/:address.
func (h *TokenHandler) Balance(c *gin.Context) {
	addr, err := domain.NormalizeAddress(c.Param("address"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	balance, err := h.ledgerSvc.BalanceOf(c.Request.Context(), addr)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Address: addr.String(),
		Balance: balance,
	})
}

// Mint handles POST /api/v1/token/mint. The service rejects non-admin callers.
func (h *TokenHandler) Mint(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	to, err := domain.NormalizeAddress(req.To)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	entry, err := h.ledgerSvc.Mint(c.Request.Context(), ports.MintRequest{
		Caller: caller,
		To:     to,
		Amount: req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toEntryResponse(entry))
}

// SetPaused handles POST /api/v1/token/pause.
func (h *TokenHandler) SetPaused(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledgerSvc.SetPaused(c.Request.Context(), caller, *req.Paused); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"paused": *req.Paused})
}
