package service

import (
	"context"
	"fmt"
	"time"

	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService: standard fungible-token
// semantics over the account table, with admin-gated minting and pausability.
// Every mutating call runs as one database transaction with the debited
// account locked, so no caller ever observes a partial movement.
type LedgerServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	entryRepo  ports.EntryRepository
	transactor ports.DBTransactor
	admin      domain.Address
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	ledgerRepo ports.LedgerRepository,
	entryRepo ports.EntryRepository,
	transactor ports.DBTransactor,
	admin domain.Address,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		entryRepo:  entryRepo,
		transactor: transactor,
		admin:      admin,
		log:        log,
	}
}

// Transfer moves caller funds to another account.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*domain.LedgerEntry, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.checkNotPaused(ctx, dbTx); err != nil {
		return nil, err
	}

	sender, err := s.ledgerRepo.GetAccountForUpdate(ctx, dbTx, req.Caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock sender account: %w", err))
	}
	if sender == nil {
		return nil, apperror.ErrNotFound("ledger account")
	}
	if sender.Balance < req.Amount {
		return nil, apperror.ErrInsufficientFunds()
	}

	if err := s.ledgerRepo.UpdateBalance(ctx, dbTx, req.Caller, sender.Balance-req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit sender: %w", err))
	}
	if err := s.ledgerRepo.UpsertCredit(ctx, dbTx, req.To, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit recipient: %w", err))
	}

	entry := newEntry(domain.EntryTypeTransfer, nil, req.Caller, req.To, req.Amount)
	if err := s.entryRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("journal transfer: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("from", req.Caller.String()).
		Str("to", req.To.String()).
		Int64("amount", req.Amount).
		Msg("transfer completed")

	return entry, nil
}

// Approve grants spender an allowance over the caller's funds. Allowances
// are independent of balance; approving zero revokes.
func (s *LedgerServiceImpl) Approve(ctx context.Context, req ports.ApproveRequest) error {
	if req.Amount < 0 {
		return apperror.ErrInvalidAmount()
	}
	if err := s.ledgerRepo.SetAllowance(ctx, req.Caller, req.Spender, req.Amount); err != nil {
		return apperror.InternalError(fmt.Errorf("set allowance: %w", err))
	}
	return nil
}

// TransferFrom moves funds from req.From using the caller's allowance.
func (s *LedgerServiceImpl) TransferFrom(ctx context.Context, req ports.TransferFromRequest) (*domain.LedgerEntry, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.checkNotPaused(ctx, dbTx); err != nil {
		return nil, err
	}

	allowance, err := s.ledgerRepo.GetAllowanceForUpdate(ctx, dbTx, req.From, req.Caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock allowance: %w", err))
	}
	if allowance < req.Amount {
		return nil, apperror.ErrInsufficientAllowance()
	}

	owner, err := s.ledgerRepo.GetAccountForUpdate(ctx, dbTx, req.From)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock owner account: %w", err))
	}
	if owner == nil {
		return nil, apperror.ErrNotFound("ledger account")
	}
	if owner.Balance < req.Amount {
		return nil, apperror.ErrInsufficientFunds()
	}

	if err := s.ledgerRepo.UpdateAllowance(ctx, dbTx, req.From, req.Caller, allowance-req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decrement allowance: %w", err))
	}
	if err := s.ledgerRepo.UpdateBalance(ctx, dbTx, req.From, owner.Balance-req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit owner: %w", err))
	}
	if err := s.ledgerRepo.UpsertCredit(ctx, dbTx, req.To, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit recipient: %w", err))
	}

	entry := newEntry(domain.EntryTypeTransfer, nil, req.From, req.To, req.Amount)
	if err := s.entryRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("journal transfer: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return entry, nil
}

// BalanceOf returns the balance of an address. Unknown addresses hold zero.
func (s *LedgerServiceImpl) BalanceOf(ctx context.Context, addr domain.Address) (int64, error) {
	account, err := s.ledgerRepo.GetAccount(ctx, addr)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return 0, nil
	}
	return account.Balance, nil
}

// Mint creates new supply. Admin-gated; the only source of new tokens.
func (s *LedgerServiceImpl) Mint(ctx context.Context, req ports.MintRequest) (*domain.LedgerEntry, error) {
	if req.Caller != s.admin {
		return nil, apperror.ErrUnauthorized("mint tokens")
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.ledgerRepo.UpsertCredit(ctx, dbTx, req.To, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit recipient: %w", err))
	}

	entry := newEntry(domain.EntryTypeMint, nil, domain.ZeroAddress, req.To, req.Amount)
	if err := s.entryRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("journal mint: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("to", req.To.String()).
		Int64("amount", req.Amount).
		Msg("tokens minted")

	return entry, nil
}

// SetPaused toggles the transfer pause flag. Admin-only; reads stay available.
func (s *LedgerServiceImpl) SetPaused(ctx context.Context, caller domain.Address, paused bool) error {
	if caller != s.admin {
		return apperror.ErrUnauthorized("pause the token")
	}
	if err := s.ledgerRepo.SetPaused(ctx, paused); err != nil {
		return apperror.InternalError(fmt.Errorf("set paused: %w", err))
	}
	s.log.Warn().Bool("paused", paused).Msg("token pause flag changed")
	return nil
}

// checkNotPaused reads the pause flag under the movement transaction's
// shared lock, so a pause cannot slip in between the check and the commit.
func (s *LedgerServiceImpl) checkNotPaused(ctx context.Context, tx pgx.Tx) error {
	paused, err := s.ledgerRepo.IsPausedForUpdate(ctx, tx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check pause flag: %w", err))
	}
	if paused {
		return apperror.ErrTokenPaused()
	}
	return nil
}

// newEntry builds a journal row for a completed movement.
func newEntry(entryType domain.EntryType, campaignID *uuid.UUID, from, to domain.Address, amount int64) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:         uuid.New(),
		EntryType:  entryType,
		CampaignID: campaignID,
		From:       from,
		To:         to,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}
}
