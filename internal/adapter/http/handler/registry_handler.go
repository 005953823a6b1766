package handler

import (
	"strconv"
	"time"

	"relief-custody-engine/internal/adapter/http/dto"
	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/pkg/apperror"
	"relief-custody-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistryHandler handles campaign registry endpoints.
type RegistryHandler struct {
	registrySvc ports.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registrySvc ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{registrySvc: registrySvc}
}

func toCampaignResponse(c *domain.Campaign) dto.CampaignResponse {
	return dto.CampaignResponse{
		ID:             c.ID.String(),
		Index:          c.Index,
		Address:        c.Address.String(),
		Organizer:      c.Organizer.String(),
		Title:          c.Title,
		GoalAmount:     c.GoalAmount,
		RaisedAmount:   c.RaisedAmount,
		TotalAllocated: c.TotalAllocated,
		Pool:           c.Pool(),
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// parsePagination reads page and page_size query params with defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// ApproveOrganizer handles POST /api/v1/registry/organizers.
func (h *RegistryHandler) ApproveOrganizer(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ApproveOrganizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	organizer, err := domain.NormalizeAddress(req.Address)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	if err := h.registrySvc.ApproveOrganizer(c.Request.Context(), caller, organizer); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OrganizerStatusResponse{
		Address:  organizer.String(),
		Approved: true,
	})
}

// OrganizerStatus handles GET /api/v1/registry/organizers/:address.
func (h *RegistryHandler) OrganizerStatus(c *gin.Context) {
	addr, err := domain.NormalizeAddress(c.Param("address"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidAddress())
		return
	}

	approved, err := h.registrySvc.IsApprovedOrganizer(c.Request.Context(), addr)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OrganizerStatusResponse{
		Address:  addr.String(),
		Approved: approved,
	})
}

// CreateCampaign handles POST /api/v1/campaigns.
func (h *RegistryHandler) CreateCampaign(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	campaign, err := h.registrySvc.CreateCampaign(c.Request.Context(), ports.CreateCampaignRequest{
		Organizer:  caller,
		Title:      req.Title,
		GoalAmount: req.GoalAmount,
		Draft:      req.Draft,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toCampaignResponse(campaign))
}

// ListCampaigns handles GET /api/v1/campaigns.
func (h *RegistryHandler) ListCampaigns(c *gin.Context) {
	page, pageSize := parsePagination(c)

	campaigns, total, err := h.registrySvc.ListCampaigns(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, toCampaignResponse(&campaigns[i]))
	}

	response.OK(c, dto.CampaignListResponse{
		Campaigns: items,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	})
}

// CampaignCount handles GET /api/v1/registry/count.
func (h *RegistryHandler) CampaignCount(c *gin.Context) {
	count, err := h.registrySvc.CampaignCount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RegistryCountResponse{Count: count})
}

// CampaignAt handles GET /api/v1/registry/campaigns/:index.
func (h *RegistryHandler) CampaignAt(c *gin.Context) {
	index, err := strconv.ParseInt(c.Param("index"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid campaign index"))
		return
	}

	campaign, err := h.registrySvc.CampaignAt(c.Request.Context(), index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toCampaignResponse(campaign))
}
