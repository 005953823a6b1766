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

type registryServiceDeps struct {
	registryRepo *mocks.MockRegistryRepository
	campaignRepo *mocks.MockCampaignRepository
	ledgerRepo   *mocks.MockLedgerRepository
	transactor   *mocks.MockDBTransactor
	mirror       *mocks.MockIndexMirror
}

func setupRegistryService(t *testing.T) (*RegistryServiceImpl, registryServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := registryServiceDeps{
		registryRepo: mocks.NewMockRegistryRepository(ctrl),
		campaignRepo: mocks.NewMockCampaignRepository(ctrl),
		ledgerRepo:   mocks.NewMockLedgerRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		mirror:       mocks.NewMockIndexMirror(ctrl),
	}
	svc := NewRegistryService(deps.registryRepo, deps.campaignRepo, deps.ledgerRepo, deps.transactor, deps.mirror, testAddr("a"), testLogger())
	return svc, deps
}

func TestRegistryService_ApproveOrganizer_AdminOnly(t *testing.T) {
	svc, deps := setupRegistryService(t)
	ctx := context.Background()
	organizer := testAddr("2")

	err := svc.ApproveOrganizer(ctx, testAddr("b"), organizer)
	assertAppError(t, err, "AUTH_002")

	deps.registryRepo.EXPECT().ApproveOrganizer(ctx, organizer).Return(nil)
	require.NoError(t, svc.ApproveOrganizer(ctx, testAddr("a"), organizer))
}

func TestRegistryService_CreateCampaign_Success(t *testing.T) {
	svc, deps := setupRegistryService(t)
	ctx := context.Background()
	organizer := testAddr("2")

	deps.registryRepo.EXPECT().IsApprovedOrganizer(ctx, organizer).Return(true, nil)
	deps.transactor.EXPECT().Begin(ctx).Return(fakeTx{}, nil)
	deps.ledgerRepo.EXPECT().CreateAccount(ctx, gomock.Any(), gomock.Any()).Return(nil)
	deps.campaignRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
	deps.mirror.EXPECT().UpsertCampaign(ctx, gomock.Any()).Return(nil)

	campaign, err := svc.CreateCampaign(ctx, ports.CreateCampaignRequest{
		Organizer:  organizer,
		Title:      "Earthquake Response",
		GoalAmount: 250000,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
	assert.Equal(t, organizer, campaign.Organizer)
	assert.False(t, campaign.Address.IsZero())
	assert.Equal(t, int64(0), campaign.RaisedAmount)
	assert.Equal(t, int64(0), campaign.TotalAllocated)
}

func TestRegistryService_CreateCampaign_Draft(t *testing.T) {
	svc, deps := setupRegistryService(t)
	ctx := context.Background()
	organizer := testAddr("2")

	deps.registryRepo.EXPECT().IsApprovedOrganizer(ctx, organizer).Return(true, nil)
	deps.transactor.EXPECT().Begin(ctx).Return(fakeTx{}, nil)
	deps.ledgerRepo.EXPECT().CreateAccount(ctx, gomock.Any(), gomock.Any()).Return(nil)
	deps.campaignRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
	deps.mirror.EXPECT().UpsertCampaign(ctx, gomock.Any()).Return(nil)

	campaign, err := svc.CreateCampaign(ctx, ports.CreateCampaignRequest{
		Organizer:  organizer,
		Title:      "Winter Shelter",
		GoalAmount: 50000,
		Draft:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
}

func TestRegistryService_CreateCampaign_UnapprovedOrganizer(t *testing.T) {
	svc, deps := setupRegistryService(t)
	ctx := context.Background()
	organizer := testAddr("2")

	deps.registryRepo.EXPECT().IsApprovedOrganizer(ctx, organizer).Return(false, nil)

	_, err := svc.CreateCampaign(ctx, ports.CreateCampaignRequest{
		Organizer:  organizer,
		Title:      "Unvetted",
		GoalAmount: 1000,
	})
	assertAppError(t, err, "AUTH_002")
}

func TestRegistryService_CreateCampaign_InvalidGoal(t *testing.T) {
	svc, deps := setupRegistryService(t)
	ctx := context.Background()
	organizer := testAddr("2")

	deps.registryRepo.EXPECT().IsApprovedOrganizer(ctx, organizer).Return(true, nil)

	_, err := svc.CreateCampaign(ctx, ports.CreateCampaignRequest{
		Organizer:  organizer,
		Title:      "Zero Goal",
		GoalAmount: 0,
	})
	assertAppError(t, err, "TOK_001")
}

func TestRegistryService_CampaignAt(t *testing.T) {
	svc, deps := setupRegistryService(t)
	ctx := context.Background()
	id := uuid.New()
	campaign := &domain.Campaign{ID: id, Title: "Flood Relief"}

	deps.registryRepo.EXPECT().CampaignIDAt(ctx, int64(3)).Return(&id, nil)
	deps.campaignRepo.EXPECT().GetByID(ctx, id).Return(campaign, nil)

	got, err := svc.CampaignAt(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, campaign, got)
}

func TestRegistryService_CampaignAt_OutOfRange(t *testing.T) {
	svc, deps := setupRegistryService(t)
	ctx := context.Background()

	_, err := svc.CampaignAt(ctx, -1)
	assertAppError(t, err, "RES_001")

	deps.registryRepo.EXPECT().CampaignIDAt(ctx, int64(99)).Return(nil, nil)
	_, err = svc.CampaignAt(ctx, 99)
	assertAppError(t, err, "RES_001")
}

func TestRegistryService_CampaignCount(t *testing.T) {
	svc, deps := setupRegistryService(t)
	ctx := context.Background()

	deps.registryRepo.EXPECT().CampaignCount(ctx).Return(int64(7), nil)

	count, err := svc.CampaignCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
