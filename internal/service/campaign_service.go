package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const detailsCacheTTL = 30 * time.Second

// CampaignServiceImpl implements ports.CampaignService. Donations and
// allocations run as single database transactions with the campaign row
// locked, which is what keeps totalAllocated <= raisedAmount under any
// interleaving.
type CampaignServiceImpl struct {
	campaignRepo ports.CampaignRepository
	walletRepo   ports.WalletRepository
	ledgerRepo   ports.LedgerRepository
	entryRepo    ports.EntryRepository
	transactor   ports.DBTransactor
	detailsCache ports.DetailsCache // nil = caching disabled
	mirror       ports.IndexMirror  // nil = mirror disabled
	admin        domain.Address
	log          zerolog.Logger
}

// NewCampaignService creates a new CampaignServiceImpl.
func NewCampaignService(
	campaignRepo ports.CampaignRepository,
	walletRepo ports.WalletRepository,
	ledgerRepo ports.LedgerRepository,
	entryRepo ports.EntryRepository,
	transactor ports.DBTransactor,
	detailsCache ports.DetailsCache,
	mirror ports.IndexMirror,
	admin domain.Address,
	log zerolog.Logger,
) *CampaignServiceImpl {
	return &CampaignServiceImpl{
		campaignRepo: campaignRepo,
		walletRepo:   walletRepo,
		ledgerRepo:   ledgerRepo,
		entryRepo:    entryRepo,
		transactor:   transactor,
		detailsCache: detailsCache,
		mirror:       mirror,
		admin:        admin,
		log:          log,
	}
}

// Donate pulls tokens from the caller into campaign custody using the
// allowance the caller granted the campaign address, and bumps raisedAmount
// by exactly the donated amount.
func (s *CampaignServiceImpl) Donate(ctx context.Context, req ports.DonateRequest) (*domain.LedgerEntry, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
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

	campaign, err := s.campaignRepo.GetByIDForUpdate(ctx, dbTx, req.CampaignID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock campaign: %w", err))
	}
	if campaign == nil {
		return nil, apperror.ErrNotFound("campaign")
	}
	if !campaign.IsActive() {
		return nil, apperror.ErrCampaignNotActive()
	}

	allowance, err := s.ledgerRepo.GetAllowanceForUpdate(ctx, dbTx, req.Caller, campaign.Address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock allowance: %w", err))
	}
	if allowance < req.Amount {
		return nil, apperror.ErrInsufficientAllowance()
	}

	donor, err := s.ledgerRepo.GetAccountForUpdate(ctx, dbTx, req.Caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock donor account: %w", err))
	}
	if donor == nil {
		return nil, apperror.ErrNotFound("ledger account")
	}
	if donor.Balance < req.Amount {
		return nil, apperror.ErrInsufficientFunds()
	}

	if err := s.ledgerRepo.UpdateAllowance(ctx, dbTx, req.Caller, campaign.Address, allowance-req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decrement allowance: %w", err))
	}
	if err := s.ledgerRepo.UpdateBalance(ctx, dbTx, req.Caller, donor.Balance-req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit donor: %w", err))
	}
	if err := s.ledgerRepo.UpsertCredit(ctx, dbTx, campaign.Address, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit campaign custody: %w", err))
	}
	if err := s.campaignRepo.UpdateTotals(ctx, dbTx, campaign.ID, campaign.RaisedAmount+req.Amount, campaign.TotalAllocated); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update raised amount: %w", err))
	}

	entry := newEntry(domain.EntryTypeDonation, &campaign.ID, req.Caller, campaign.Address, req.Amount)
	if err := s.entryRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("journal donation: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.invalidateDetails(ctx, campaign.ID)

	s.log.Info().
		Str("campaign_id", campaign.ID.String()).
		Str("donor", req.Caller.String()).
		Int64("amount", req.Amount).
		Msg("donation accepted")

	return entry, nil
}

// ApplyAsBeneficiary records intent; idempotent; grants nothing by itself.
func (s *CampaignServiceImpl) ApplyAsBeneficiary(ctx context.Context, campaignID uuid.UUID, caller domain.Address) error {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get campaign: %w", err))
	}
	if campaign == nil {
		return apperror.ErrNotFound("campaign")
	}
	if err := s.campaignRepo.AddBeneficiaryApplication(ctx, campaignID, caller); err != nil {
		return apperror.InternalError(fmt.Errorf("record application: %w", err))
	}
	return nil
}

// ApproveBeneficiary moves an applicant into the approval set. Organizer-only,
// idempotent. It does not create a wallet; that happens on first allocation.
func (s *CampaignServiceImpl) ApproveBeneficiary(ctx context.Context, req ports.CampaignApprovalRequest) error {
	campaign, err := s.requireOrganizer(ctx, req.CampaignID, req.Caller, "approve beneficiaries")
	if err != nil {
		return err
	}

	applied, err := s.campaignRepo.HasBeneficiaryApplied(ctx, campaign.ID, req.Address)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check application: %w", err))
	}
	if !applied {
		return apperror.ErrNotFound("beneficiary application")
	}

	if err := s.campaignRepo.ApproveBeneficiary(ctx, campaign.ID, req.Address); err != nil {
		return apperror.InternalError(fmt.Errorf("approve beneficiary: %w", err))
	}

	s.log.Info().
		Str("campaign_id", campaign.ID.String()).
		Str("beneficiary", req.Address.String()).
		Msg("beneficiary approved")
	return nil
}

// ApproveMerchant adds an address to the merchant approval set.
// Organizer-only, idempotent.
func (s *CampaignServiceImpl) ApproveMerchant(ctx context.Context, req ports.CampaignApprovalRequest) error {
	campaign, err := s.requireOrganizer(ctx, req.CampaignID, req.Caller, "approve merchants")
	if err != nil {
		return err
	}
	if err := s.campaignRepo.ApproveMerchant(ctx, campaign.ID, req.Address); err != nil {
		return apperror.InternalError(fmt.Errorf("approve merchant: %w", err))
	}

	s.log.Info().
		Str("campaign_id", campaign.ID.String()).
		Str("merchant", req.Address.String()).
		Msg("merchant approved")
	return nil
}

// AllocateFunds moves part of the allocatable pool into the beneficiary's
// custodial wallet, creating the wallet on first allocation. Pool
// availability is checked against the current raised/allocated totals under
// the campaign row lock, so two concurrent allocations cannot both fit into
// the same remainder.
func (s *CampaignServiceImpl) AllocateFunds(ctx context.Context, req ports.AllocateRequest) (*domain.CustodialWallet, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	campaign, err := s.campaignRepo.GetByIDForUpdate(ctx, dbTx, req.CampaignID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock campaign: %w", err))
	}
	if campaign == nil {
		return nil, apperror.ErrNotFound("campaign")
	}
	if campaign.Organizer != req.Caller {
		return nil, apperror.ErrUnauthorized("allocate funds")
	}
	if !campaign.IsActive() {
		return nil, apperror.ErrCampaignNotActive()
	}

	approved, err := s.campaignRepo.IsBeneficiaryApproved(ctx, campaign.ID, req.Beneficiary)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check beneficiary: %w", err))
	}
	if !approved {
		return nil, apperror.ErrBeneficiaryNotApproved()
	}

	if campaign.Pool() < req.Amount {
		return nil, apperror.ErrInsufficientPool()
	}

	wallet, err := s.walletRepo.GetByCampaignAndBeneficiary(ctx, campaign.ID, req.Beneficiary)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		wallet = &domain.CustodialWallet{
			ID:          uuid.New(),
			CampaignID:  campaign.ID,
			Beneficiary: req.Beneficiary,
			Address:     domain.NewAddress(),
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
		}
	}

	custody, err := s.ledgerRepo.GetAccountForUpdate(ctx, dbTx, campaign.Address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock custody account: %w", err))
	}
	if custody == nil {
		return nil, apperror.ErrNotFound("campaign custody account")
	}
	if custody.Balance < req.Amount {
		// The custody balance mirrors the pool; a shortfall here means the
		// totals and the ledger have diverged.
		return nil, apperror.InternalError(fmt.Errorf("custody balance %d below pool remainder", custody.Balance))
	}

	if err := s.ledgerRepo.UpdateBalance(ctx, dbTx, campaign.Address, custody.Balance-req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit custody: %w", err))
	}
	if err := s.ledgerRepo.UpsertCredit(ctx, dbTx, wallet.Address, req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit wallet: %w", err))
	}
	if err := s.campaignRepo.UpdateTotals(ctx, dbTx, campaign.ID, campaign.RaisedAmount, campaign.TotalAllocated+req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update allocated total: %w", err))
	}

	entry := newEntry(domain.EntryTypeAllocation, &campaign.ID, campaign.Address, wallet.Address, req.Amount)
	if err := s.entryRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("journal allocation: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.invalidateDetails(ctx, campaign.ID)

	s.log.Info().
		Str("campaign_id", campaign.ID.String()).
		Str("beneficiary", req.Beneficiary.String()).
		Str("wallet", wallet.Address.String()).
		Int64("amount", req.Amount).
		Msg("funds allocated")

	return wallet, nil
}

// BeneficiaryWallet returns the wallet for a beneficiary, or nil when no
// allocation has created one yet. It never fails for an unknown beneficiary.
func (s *CampaignServiceImpl) BeneficiaryWallet(ctx context.Context, campaignID uuid.UUID, beneficiary domain.Address) (*domain.CustodialWallet, error) {
	wallet, err := s.walletRepo.GetByCampaignAndBeneficiary(ctx, campaignID, beneficiary)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	return wallet, nil
}

// AppliedBeneficiaries lists every applicant in application order,
// regardless of approval state.
func (s *CampaignServiceImpl) AppliedBeneficiaries(ctx context.Context, campaignID uuid.UUID) ([]domain.BeneficiaryApplication, error) {
	apps, err := s.campaignRepo.ListApplicants(ctx, campaignID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list applicants: %w", err))
	}
	return apps, nil
}

// IsBeneficiaryApproved is a pure predicate.
func (s *CampaignServiceImpl) IsBeneficiaryApproved(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error) {
	ok, err := s.campaignRepo.IsBeneficiaryApproved(ctx, campaignID, addr)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("check approval: %w", err))
	}
	return ok, nil
}

// HasBeneficiaryApplied is a pure predicate.
func (s *CampaignServiceImpl) HasBeneficiaryApplied(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error) {
	ok, err := s.campaignRepo.HasBeneficiaryApplied(ctx, campaignID, addr)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("check application: %w", err))
	}
	return ok, nil
}

// Details returns the campaign read snapshot. All fields come from one
// committed row, via the cache when warm.
func (s *CampaignServiceImpl) Details(ctx context.Context, campaignID uuid.UUID) (*domain.CampaignDetails, error) {
	var cacheVersion uint64
	if s.detailsCache != nil {
		cached, version, err := s.detailsCache.Get(ctx, campaignID)
		if err != nil {
			s.log.Warn().Err(err).Str("campaign_id", campaignID.String()).Msg("details cache read failed")
		}
		cacheVersion = version
		if cached != nil {
			details := &domain.CampaignDetails{}
			if err := json.Unmarshal(cached, details); err == nil {
				return details, nil
			}
		}
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get campaign: %w", err))
	}
	if campaign == nil {
		return nil, apperror.ErrNotFound("campaign")
	}

	details := &domain.CampaignDetails{
		ID:             campaign.ID,
		Title:          campaign.Title,
		Organizer:      campaign.Organizer,
		GoalAmount:     campaign.GoalAmount,
		RaisedAmount:   campaign.RaisedAmount,
		TotalAllocated: campaign.TotalAllocated,
		Status:         campaign.Status,
	}

	// Written under the version observed before the DB read: a mutation
	// committing in between bumps the version, orphaning this write.
	if s.detailsCache != nil {
		if data, err := json.Marshal(details); err == nil {
			if err := s.detailsCache.Set(ctx, campaignID, data, cacheVersion, detailsCacheTTL); err != nil {
				s.log.Warn().Err(err).Str("campaign_id", campaignID.String()).Msg("details cache write failed")
			}
		}
	}

	return details, nil
}

// ChangeStatus applies a lifecycle transition under the campaign row lock.
// Organizer or admin only.
func (s *CampaignServiceImpl) ChangeStatus(ctx context.Context, req ports.StatusChangeRequest) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	campaign, err := s.campaignRepo.GetByIDForUpdate(ctx, dbTx, req.CampaignID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock campaign: %w", err))
	}
	if campaign == nil {
		return apperror.ErrNotFound("campaign")
	}
	if req.Caller != campaign.Organizer && req.Caller != s.admin {
		return apperror.ErrUnauthorized("change campaign status")
	}
	if !campaign.Status.CanTransition(req.To) {
		return apperror.ErrInvalidStatusTransition(string(campaign.Status), string(req.To))
	}

	if err := s.campaignRepo.UpdateStatus(ctx, dbTx, campaign.ID, req.To); err != nil {
		return apperror.InternalError(fmt.Errorf("update status: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.invalidateDetails(ctx, campaign.ID)
	campaign.Status = req.To
	s.mirrorCampaign(ctx, campaign)

	s.log.Info().
		Str("campaign_id", campaign.ID.String()).
		Str("status", string(req.To)).
		Msg("campaign status changed")
	return nil
}

// requireOrganizer loads a campaign and checks the caller is its organizer.
func (s *CampaignServiceImpl) requireOrganizer(ctx context.Context, campaignID uuid.UUID, caller domain.Address, operation string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get campaign: %w", err))
	}
	if campaign == nil {
		return nil, apperror.ErrNotFound("campaign")
	}
	if campaign.Organizer != caller {
		return nil, apperror.ErrUnauthorized(operation)
	}
	return campaign, nil
}

func (s *CampaignServiceImpl) invalidateDetails(ctx context.Context, campaignID uuid.UUID) {
	if s.detailsCache == nil {
		return
	}
	if err := s.detailsCache.Invalidate(ctx, campaignID); err != nil {
		s.log.Warn().Err(err).Str("campaign_id", campaignID.String()).Msg("details cache invalidation failed")
	}
}

func (s *CampaignServiceImpl) mirrorCampaign(ctx context.Context, c *domain.Campaign) {
	if s.mirror == nil {
		return
	}
	doc := ports.CampaignIndexDoc{
		CampaignID: c.ID,
		Title:      c.Title,
		Organizer:  c.Organizer,
		Address:    c.Address,
		Status:     string(c.Status),
	}
	if err := s.mirror.UpsertCampaign(ctx, doc); err != nil {
		s.log.Warn().Err(err).Str("campaign_id", c.ID.String()).Msg("index mirror upsert failed")
	}
}
