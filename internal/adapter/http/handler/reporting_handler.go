package handler

import (
	"relief-custody-engine/internal/adapter/http/dto"
	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/pkg/apperror"
	"relief-custody-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportingHandler handles the administrative read surface.
type ReportingHandler struct {
	reportingSvc ports.ReportingService
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(reportingSvc ports.ReportingService) *ReportingHandler {
	return &ReportingHandler{reportingSvc: reportingSvc}
}

// CampaignStats handles GET /api/v1/reports/campaigns/:id/stats.
func (h *ReportingHandler) CampaignStats(c *gin.Context) {
	campaignID, ok := parseCampaignID(c)
	if !ok {
		return
	}

	stats, err := h.reportingSvc.CampaignStats(c.Request.Context(), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CampaignStatsResponse{
		CampaignID:     stats.CampaignID.String(),
		RaisedAmount:   stats.RaisedAmount,
		TotalAllocated: stats.TotalAllocated,
		Pool:           stats.Pool,
		WalletCount:    stats.WalletCount,
		DonationCount:  stats.DonationCount,
		SpendCount:     stats.SpendCount,
		TotalSpent:     stats.TotalSpent,
	})
}

// ListEntries handles GET /api/v1/reports/entries. Filters come from query
// params: campaign_id, entry_type, address, page, page_size.
func (h *ReportingHandler) ListEntries(c *gin.Context) {
	params := ports.EntryListParams{}
	params.Page, params.PageSize = parsePagination(c)

	if raw := c.Query("campaign_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("invalid campaign_id filter"))
			return
		}
		params.CampaignID = &id
	}

	if raw := c.Query("entry_type"); raw != "" {
		et := domain.EntryType(raw)
		switch et {
		case domain.EntryTypeMint, domain.EntryTypeTransfer, domain.EntryTypeDonation,
			domain.EntryTypeAllocation, domain.EntryTypeSpend:
			params.EntryType = &et
		default:
			response.Error(c, apperror.Validation("invalid entry_type filter"))
			return
		}
	}

	if raw := c.Query("address"); raw != "" {
		addr, err := domain.NormalizeAddress(raw)
		if err != nil {
			response.Error(c, apperror.ErrInvalidAddress())
			return
		}
		params.Address = &addr
	}

	entries, total, err := h.reportingSvc.ListEntries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.EntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, toEntryResponse(&entries[i]))
	}

	response.OK(c, dto.EntryListResponse{
		Entries:  items,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}
