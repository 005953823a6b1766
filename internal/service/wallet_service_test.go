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

type walletServiceDeps struct {
	walletRepo   *mocks.MockWalletRepository
	campaignRepo *mocks.MockCampaignRepository
	ledgerRepo   *mocks.MockLedgerRepository
	entryRepo    *mocks.MockEntryRepository
	transactor   *mocks.MockDBTransactor
}

func setupWalletService(t *testing.T) (*WalletServiceImpl, walletServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := walletServiceDeps{
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		campaignRepo: mocks.NewMockCampaignRepository(ctrl),
		ledgerRepo:   mocks.NewMockLedgerRepository(ctrl),
		entryRepo:    mocks.NewMockEntryRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
	}
	svc := NewWalletService(deps.walletRepo, deps.campaignRepo, deps.ledgerRepo, deps.entryRepo, deps.transactor, testLogger())
	return svc, deps
}

func testWallet(campaignID uuid.UUID, beneficiary domain.Address) *domain.CustodialWallet {
	return &domain.CustodialWallet{
		ID:          uuid.New(),
		CampaignID:  campaignID,
		Beneficiary: beneficiary,
		Address:     testAddr("d"),
	}
}

func TestWalletService_Balance(t *testing.T) {
	svc, deps := setupWalletService(t)
	ctx := context.Background()
	campaignID := uuid.New()
	beneficiary := testAddr("3")
	wallet := testWallet(campaignID, beneficiary)

	deps.walletRepo.EXPECT().GetByCampaignAndBeneficiary(ctx, campaignID, beneficiary).Return(wallet, nil)
	deps.ledgerRepo.EXPECT().GetAccount(ctx, wallet.Address).
		Return(&domain.LedgerAccount{Address: wallet.Address, Balance: 600}, nil)

	balance, err := svc.Balance(ctx, campaignID, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, int64(600), balance)
}

func TestWalletService_Balance_NoWallet(t *testing.T) {
	svc, deps := setupWalletService(t)
	ctx := context.Background()
	campaignID := uuid.New()

	deps.walletRepo.EXPECT().GetByCampaignAndBeneficiary(ctx, campaignID, testAddr("3")).Return(nil, nil)

	_, err := svc.Balance(ctx, campaignID, testAddr("3"))
	assertAppError(t, err, "RES_001")
}

func TestWalletService_Spend_Success(t *testing.T) {
	svc, deps := setupWalletService(t)
	ctx := context.Background()
	campaignID := uuid.New()
	beneficiary := testAddr("3")
	merchant := testAddr("4")
	wallet := testWallet(campaignID, beneficiary)

	deps.walletRepo.EXPECT().GetByCampaignAndBeneficiary(ctx, campaignID, beneficiary).Return(wallet, nil)
	deps.campaignRepo.EXPECT().IsMerchantApproved(ctx, campaignID, merchant).Return(true, nil)
	deps.transactor.EXPECT().Begin(ctx).Return(fakeTx{}, nil)
	deps.ledgerRepo.EXPECT().IsPausedForUpdate(ctx, gomock.Any()).Return(false, nil)
	deps.ledgerRepo.EXPECT().GetAccountForUpdate(ctx, gomock.Any(), wallet.Address).
		Return(&domain.LedgerAccount{Address: wallet.Address, Balance: 1000}, nil)
	deps.ledgerRepo.EXPECT().UpdateBalance(ctx, gomock.Any(), wallet.Address, int64(600)).Return(nil)
	deps.ledgerRepo.EXPECT().UpsertCredit(ctx, gomock.Any(), merchant, int64(400)).Return(nil)
	deps.entryRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)

	entry, err := svc.Spend(ctx, ports.SpendRequest{
		Caller: beneficiary, CampaignID: campaignID, To: merchant, Amount: 400,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EntryTypeSpend, entry.EntryType)
	assert.Equal(t, wallet.Address, entry.From)
	assert.Equal(t, merchant, entry.To)
}

func TestWalletService_Spend_MerchantNotApproved(t *testing.T) {
	svc, deps := setupWalletService(t)
	ctx := context.Background()
	campaignID := uuid.New()
	beneficiary := testAddr("3")
	wallet := testWallet(campaignID, beneficiary)

	deps.walletRepo.EXPECT().GetByCampaignAndBeneficiary(ctx, campaignID, beneficiary).Return(wallet, nil)
	deps.campaignRepo.EXPECT().IsMerchantApproved(ctx, campaignID, testAddr("4")).Return(false, nil)

	_, err := svc.Spend(ctx, ports.SpendRequest{
		Caller: beneficiary, CampaignID: campaignID, To: testAddr("4"), Amount: 100,
	})
	assertAppError(t, err, "WLT_001")
}

func TestWalletService_Spend_NotBeneficiary(t *testing.T) {
	svc, deps := setupWalletService(t)
	ctx := context.Background()
	campaignID := uuid.New()

	deps.walletRepo.EXPECT().GetByCampaignAndBeneficiary(ctx, campaignID, testAddr("9")).Return(nil, nil)

	_, err := svc.Spend(ctx, ports.SpendRequest{
		Caller: testAddr("9"), CampaignID: campaignID, To: testAddr("4"), Amount: 100,
	})
	assertAppError(t, err, "AUTH_002")
}

func TestWalletService_Spend_InsufficientFunds(t *testing.T) {
	svc, deps := setupWalletService(t)
	ctx := context.Background()
	campaignID := uuid.New()
	beneficiary := testAddr("3")
	merchant := testAddr("4")
	wallet := testWallet(campaignID, beneficiary)

	deps.walletRepo.EXPECT().GetByCampaignAndBeneficiary(ctx, campaignID, beneficiary).Return(wallet, nil)
	deps.campaignRepo.EXPECT().IsMerchantApproved(ctx, campaignID, merchant).Return(true, nil)
	deps.transactor.EXPECT().Begin(ctx).Return(fakeTx{}, nil)
	deps.ledgerRepo.EXPECT().IsPausedForUpdate(ctx, gomock.Any()).Return(false, nil)
	deps.ledgerRepo.EXPECT().GetAccountForUpdate(ctx, gomock.Any(), wallet.Address).
		Return(&domain.LedgerAccount{Address: wallet.Address, Balance: 50}, nil)

	_, err := svc.Spend(ctx, ports.SpendRequest{
		Caller: beneficiary, CampaignID: campaignID, To: merchant, Amount: 100,
	})
	assertAppError(t, err, "TOK_002")
}

// A pause landing concurrently must be seen inside the spend transaction,
// after the merchant and wallet checks have already passed.
func TestWalletService_Spend_TokenPaused(t *testing.T) {
	svc, deps := setupWalletService(t)
	ctx := context.Background()
	campaignID := uuid.New()
	beneficiary := testAddr("3")
	merchant := testAddr("4")
	wallet := testWallet(campaignID, beneficiary)

	deps.walletRepo.EXPECT().GetByCampaignAndBeneficiary(ctx, campaignID, beneficiary).Return(wallet, nil)
	deps.campaignRepo.EXPECT().IsMerchantApproved(ctx, campaignID, merchant).Return(true, nil)
	deps.transactor.EXPECT().Begin(ctx).Return(fakeTx{}, nil)
	deps.ledgerRepo.EXPECT().IsPausedForUpdate(ctx, gomock.Any()).Return(true, nil)

	_, err := svc.Spend(ctx, ports.SpendRequest{
		Caller: beneficiary, CampaignID: campaignID, To: merchant, Amount: 100,
	})
	assertAppError(t, err, "TOK_004")
}
