package handler

import (
	"relief-custody-engine/internal/adapter/http/dto"
	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/pkg/apperror"
	"relief-custody-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles custodial wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Balance handles GET /api/v1/campaigns/:id/wallets/:beneficiary/balance.
func (h *WalletHandler) Balance(c *gin.Context) {
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}
	beneficiary, err := domain.NormalizeAddress(c.Param("beneficiary"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	balance, err := h.walletSvc.Balance(c.Request.Context(), campaignID, beneficiary)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletBalanceResponse{
		Beneficiary: beneficiary.String(),
		Balance:     balance,
	})
}

// Spend handles POST /api/v1/campaigns/:id/spend. The caller must be the
// wallet's beneficiary; the recipient must be an approved merchant.
func (h *WalletHandler) Spend(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req dto.SpendRequest
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

	entry, err := h.walletSvc.Spend(c.Request.Context(), ports.SpendRequest{
		Caller:     caller,
		CampaignID: campaignID,
		To:         to,
		Amount:     req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toEntryResponse(entry))
}
