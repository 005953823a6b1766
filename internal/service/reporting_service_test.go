package service

import (
	"context"
	"testing"

	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportingServiceDeps struct {
	campaignRepo *mocks.MockCampaignRepository
	walletRepo   *mocks.MockWalletRepository
	entryRepo    *mocks.MockEntryRepository
}

func setupReportingService(t *testing.T) (*ReportingServiceImpl, reportingServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := reportingServiceDeps{
		campaignRepo: mocks.NewMockCampaignRepository(ctrl),
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		entryRepo:    mocks.NewMockEntryRepository(ctrl),
	}
	svc := NewReportingService(deps.campaignRepo, deps.walletRepo, deps.entryRepo)
	return svc, deps
}

func TestReportingService_CampaignStats(t *testing.T) {
	svc, deps := setupReportingService(t)
	ctx := context.Background()
	campaign := activeCampaign(testAddr("2"))
	campaign.RaisedAmount = 5000
	campaign.TotalAllocated = 1000

	deps.campaignRepo.EXPECT().GetByID(ctx, campaign.ID).Return(campaign, nil)
	deps.walletRepo.EXPECT().CountByCampaign(ctx, campaign.ID).Return(int64(3), nil)
	deps.entryRepo.EXPECT().GetCampaignStats(ctx, campaign.ID).
		Return(&ports.CampaignStats{DonationCount: 12, SpendCount: 4, TotalSpent: 400}, nil)

	report, err := svc.CampaignStats(ctx, campaign.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(5000), report.RaisedAmount)
	assert.Equal(t, int64(1000), report.TotalAllocated)
	assert.Equal(t, int64(4000), report.Pool)
	assert.Equal(t, int64(3), report.WalletCount)
	assert.Equal(t, int64(12), report.DonationCount)
	assert.Equal(t, int64(400), report.TotalSpent)
}

func TestReportingService_CampaignStats_NotFound(t *testing.T) {
	svc, deps := setupReportingService(t)
	ctx := context.Background()
	id := uuid.New()

	deps.campaignRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	_, err := svc.CampaignStats(ctx, id)
	assertAppError(t, err, "RES_001")
}

func TestReportingService_ListEntries_Defaults(t *testing.T) {
	svc, deps := setupReportingService(t)
	ctx := context.Background()

	deps.entryRepo.EXPECT().
		List(ctx, ports.EntryListParams{Page: 1, PageSize: 20}).
		Return([]domain.LedgerEntry{}, int64(0), nil)

	_, _, err := svc.ListEntries(ctx, ports.EntryListParams{Page: 0, PageSize: 500})
	require.NoError(t, err)
}
