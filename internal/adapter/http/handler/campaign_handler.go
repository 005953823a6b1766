package handler

import (
	"time"

	"relief-custody-engine/internal/adapter/http/dto"
	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/pkg/apperror"
	"relief-custody-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignHandler handles campaign custody endpoints.
type CampaignHandler struct {
	campaignSvc ports.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler.
func NewCampaignHandler(campaignSvc ports.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignSvc: campaignSvc}
}

// parseCampaignID reads the :id path param. On failure it writes the error
// response itself and returns false.
func parseCampaignID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid campaign id"))
		return uuid.Nil, false
	}
	return id, true
}

func toWalletResponse(w *domain.CustodialWallet) dto.WalletResponse {
	return dto.WalletResponse{
		ID:          w.ID.String(),
		CampaignID:  w.CampaignID.String(),
		Beneficiary: w.Beneficiary.String(),
		Address:     w.Address.String(),
	}
}

// Donate handles POST /api/v1/campaigns/:id/donations.
func (h *CampaignHandler) Donate(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req dto.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	entry, err := h.campaignSvc.Donate(c.Request.Context(), ports.DonateRequest{
		Caller:     caller,
		CampaignID: campaignID,
		Amount:     req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toEntryResponse(entry))
}

// Apply handles POST /api/v1/campaigns/:id/applications.
func (h *CampaignHandler) Apply(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}

	if err := h.campaignSvc.ApplyAsBeneficiary(c.Request.Context(), campaignID, caller); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.BeneficiaryStatusResponse{
		Address: caller.String(),
		Applied: true,
	})
}

// ApproveBeneficiary handles POST /api/v1/campaigns/:id/beneficiaries.
func (h *CampaignHandler) ApproveBeneficiary(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req dto.CampaignApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	addr, err := domain.NormalizeAddress(req.Address)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	if err := h.campaignSvc.ApproveBeneficiary(c.Request.Context(), ports.CampaignApprovalRequest{
		Caller:     caller,
		CampaignID: campaignID,
		Address:    addr,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BeneficiaryStatusResponse{
		Address:  addr.String(),
		Applied:  true,
		Approved: true,
	})
}

// ApproveMerchant handles POST /api/v1/campaigns/:id/merchants.
func (h *CampaignHandler) ApproveMerchant(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req dto.CampaignApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	addr, err := domain.NormalizeAddress(req.Address)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	if err := h.campaignSvc.ApproveMerchant(c.Request.Context(), ports.CampaignApprovalRequest{
		Caller:     caller,
		CampaignID: campaignID,
		Address:    addr,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"address":  addr.String(),
		"approved": true,
	})
}

// Allocate handles POST /api/v1/campaigns/:id/allocations.
func (h *CampaignHandler) Allocate(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req dto.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	beneficiary, err := domain.NormalizeAddress(req.Beneficiary)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	wallet, err := h.campaignSvc.AllocateFunds(c.Request.Context(), ports.AllocateRequest{
		Caller:      caller,
		CampaignID:  campaignID,
		Beneficiary: beneficiary,
		Amount:      req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWalletResponse(wallet))
}

// Wallet handles GET /api/v1/campaigns/:id/wallets/:beneficiary.
func (h *CampaignHandler) Wallet(c *gin.Context) {
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}
	beneficiary, err := domain.NormalizeAddress(c.Param("beneficiary"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	wallet, err := h.campaignSvc.BeneficiaryWallet(c.Request.Context(), campaignID, beneficiary)
	if err != nil {
		response.Error(c, err)
		return
	}
	if wallet == nil {
		// The lookup never fails: an absent wallet is the zero sentinel.
		response.OK(c, dto.WalletResponse{
			CampaignID:  campaignID.String(),
			Beneficiary: beneficiary.String(),
			Address:     domain.ZeroAddress.String(),
		})
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// Applicants handles GET /api/v1/campaigns/:id/applications.
func (h *CampaignHandler) Applicants(c *gin.Context) {
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}

	applications, err := h.campaignSvc.AppliedBeneficiaries(c.Request.Context(), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ApplicantResponse, 0, len(applications))
	for _, a := range applications {
		item := dto.ApplicantResponse{
			Address:   a.Address.String(),
			Approved:  a.Approved,
			AppliedAt: a.AppliedAt.UTC().Format(time.RFC3339),
		}
		if a.ApprovedAt != nil {
			ts := a.ApprovedAt.UTC().Format(time.RFC3339)
			item.ApprovedAt = &ts
		}
		items = append(items, item)
	}

	response.OK(c, items)
}

// BeneficiaryStatus handles GET /api/v1/campaigns/:id/beneficiaries/:address.
func (h *CampaignHandler) BeneficiaryStatus(c *gin.Context) {
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}
	addr, err := domain.NormalizeAddress(c.Param("address"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	applied, err := h.campaignSvc.HasBeneficiaryApplied(c.Request.Context(), campaignID, addr)
	if err != nil {
		response.Error(c, err)
		return
	}
	approved, err := h.campaignSvc.IsBeneficiaryApproved(c.Request.Context(), campaignID, addr)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BeneficiaryStatusResponse{
		Address:  addr.String(),
		Applied:  applied,
		Approved: approved,
	})
}

// Details handles GET /api/v1/campaigns/:id.
func (h *CampaignHandler) Details(c *gin.Context) {
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}

	details, err := h.campaignSvc.Details(c.Request.Context(), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CampaignDetailsResponse{
		ID:             details.ID.String(),
		Title:          details.Title,
		Organizer:      details.Organizer.String(),
		GoalAmount:     details.GoalAmount,
		RaisedAmount:   details.RaisedAmount,
		TotalAllocated: details.TotalAllocated,
		Status:         string(details.Status),
	})
}

// ChangeStatus handles PATCH /api/v1/campaigns/:id/status.
func (h *CampaignHandler) ChangeStatus(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req dto.StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.campaignSvc.ChangeStatus(c.Request.Context(), ports.StatusChangeRequest{
		Caller:     caller,
		CampaignID: campaignID,
		To:         domain.CampaignStatus(req.Status),
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"status": req.Status})
}
