package service

import (
	"context"
	"fmt"

	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/pkg/apperror"

	"github.com/google/uuid"
)

// ReportingServiceImpl implements ports.ReportingService: the read-only
// surface the administrative tooling queries.
type ReportingServiceImpl struct {
	campaignRepo ports.CampaignRepository
	walletRepo   ports.WalletRepository
	entryRepo    ports.EntryRepository
}

// NewReportingService creates a new ReportingServiceImpl.
func NewReportingService(
	campaignRepo ports.CampaignRepository,
	walletRepo ports.WalletRepository,
	entryRepo ports.EntryRepository,
) *ReportingServiceImpl {
	return &ReportingServiceImpl{
		campaignRepo: campaignRepo,
		walletRepo:   walletRepo,
		entryRepo:    entryRepo,
	}
}

// CampaignStats aggregates campaign totals with journal counters.
func (s *ReportingServiceImpl) CampaignStats(ctx context.Context, campaignID uuid.UUID) (*ports.CampaignStatsReport, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get campaign: %w", err))
	}
	if campaign == nil {
		return nil, apperror.ErrNotFound("campaign")
	}

	walletCount, err := s.walletRepo.CountByCampaign(ctx, campaignID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count wallets: %w", err))
	}

	stats, err := s.entryRepo.GetCampaignStats(ctx, campaignID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("journal stats: %w", err))
	}

	return &ports.CampaignStatsReport{
		CampaignID:     campaign.ID,
		RaisedAmount:   campaign.RaisedAmount,
		TotalAllocated: campaign.TotalAllocated,
		Pool:           campaign.Pool(),
		WalletCount:    walletCount,
		DonationCount:  stats.DonationCount,
		SpendCount:     stats.SpendCount,
		TotalSpent:     stats.TotalSpent,
	}, nil
}

// ListEntries returns a filtered, paginated slice of the journal.
func (s *ReportingServiceImpl) ListEntries(ctx context.Context, params ports.EntryListParams) ([]domain.LedgerEntry, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	entries, total, err := s.entryRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list entries: %w", err))
	}
	return entries, total, nil
}
