package service

import (
	"context"
	"fmt"

	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/pkg/apperror"

	"github.com/rs/zerolog"

	"github.com/google/uuid"
)

// WalletServiceImpl implements ports.WalletService. Spending is push-only:
// the wallet's beneficiary initiates, merchants only receive.
type WalletServiceImpl struct {
	walletRepo   ports.WalletRepository
	campaignRepo ports.CampaignRepository
	ledgerRepo   ports.LedgerRepository
	entryRepo    ports.EntryRepository
	transactor   ports.DBTransactor
	log          zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	campaignRepo ports.CampaignRepository,
	ledgerRepo ports.LedgerRepository,
	entryRepo ports.EntryRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo:   walletRepo,
		campaignRepo: campaignRepo,
		ledgerRepo:   ledgerRepo,
		entryRepo:    entryRepo,
		transactor:   transactor,
		log:          log,
	}
}

// Balance returns the custodial wallet balance for a campaign beneficiary.
func (s *WalletServiceImpl) Balance(ctx context.Context, campaignID uuid.UUID, beneficiary domain.Address) (int64, error) {
	wallet, err := s.walletRepo.GetByCampaignAndBeneficiary(ctx, campaignID, beneficiary)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return 0, apperror.ErrNotFound("custodial wallet")
	}
	account, err := s.ledgerRepo.GetAccount(ctx, wallet.Address)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get wallet account: %w", err))
	}
	if account == nil {
		return 0, nil
	}
	return account.Balance, nil
}

// Spend pays an approved merchant from the caller's custodial wallet.
// The debit and the merchant credit commit together or not at all.
func (s *WalletServiceImpl) Spend(ctx context.Context, req ports.SpendRequest) (*domain.LedgerEntry, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	wallet, err := s.walletRepo.GetByCampaignAndBeneficiary(ctx, req.CampaignID, req.Caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		// Only the beneficiary owns a wallet here; anyone else is simply
		// not authorized to spend from this campaign.
		return nil, apperror.ErrUnauthorized("spend from this wallet")
	}

	merchantApproved, err := s.campaignRepo.IsMerchantApproved(ctx, req.CampaignID, req.To)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check merchant: %w", err))
	}
	if !merchantApproved {
		return nil, apperror.ErrMerchantNotApproved()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	paused, err := s.ledgerRepo.IsPausedForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check pause flag: %w", err))
	}
	if paused {
		return nil, apperror.ErrTokenPaused()
	}

	account, err := s.ledgerRepo.GetAccountForUpdate(ctx, dbTx, wallet.Address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("wallet account")
	}
	if account.Balance < req.Amount {
		return nil, apperror.ErrInsufficientFunds()
	}

	if err := s.ledgerRepo.UpdateBalance(ctx, dbTx, wallet.Address, account.Balance-req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit wallet: %w", err))
	}
	if err := s.ledgerRepo.UpsertCredit(ctx, dbTx, req.To, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit merchant: %w", err))
	}

	entry := newEntry(domain.EntryTypeSpend, &req.CampaignID, wallet.Address, req.To, req.Amount)
	if err := s.entryRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("journal spend: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("campaign_id", req.CampaignID.String()).
		Str("wallet", wallet.Address.String()).
		Str("merchant", req.To.String()).
		Int64("amount", req.Amount).
		Msg("wallet spend completed")

	return entry, nil
}
