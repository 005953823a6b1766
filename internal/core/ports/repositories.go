package ports

import (
	"context"

	"relief-custody-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ParticipantRepository defines persistence operations for platform identities.
type ParticipantRepository interface {
	Create(ctx context.Context, tx pgx.Tx, p *domain.Participant) error
	GetByUsername(ctx context.Context, username string) (*domain.Participant, error)
	GetByAddress(ctx context.Context, addr domain.Address) (*domain.Participant, error)
}

// LedgerRepository defines persistence for token accounts, allowances and the
// pause flag. Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking.
type LedgerRepository interface {
	CreateAccount(ctx context.Context, tx pgx.Tx, a *domain.LedgerAccount) error
	GetAccount(ctx context.Context, addr domain.Address) (*domain.LedgerAccount, error)
	GetAccountForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.LedgerAccount, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, addr domain.Address, newBalance int64) error
	// UpsertCredit adds amount to an account, creating it on first credit.
	// Credits cannot violate the non-negative invariant, so no lock is taken.
	UpsertCredit(ctx context.Context, tx pgx.Tx, addr domain.Address, amount int64) error

	GetAllowance(ctx context.Context, owner, spender domain.Address) (int64, error)
	GetAllowanceForUpdate(ctx context.Context, tx pgx.Tx, owner, spender domain.Address) (int64, error)
	SetAllowance(ctx context.Context, owner, spender domain.Address, remaining int64) error
	UpdateAllowance(ctx context.Context, tx pgx.Tx, owner, spender domain.Address, remaining int64) error

	IsPaused(ctx context.Context) (bool, error)
	// IsPausedForUpdate reads the pause flag inside a movement transaction,
	// taking a shared lock so a concurrent pause cannot land mid-movement.
	IsPausedForUpdate(ctx context.Context, tx pgx.Tx) (bool, error)
	SetPaused(ctx context.Context, paused bool) error
}

// EntryRepository persists the append-only journal. There is deliberately no
// update or delete.
type EntryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error
	List(ctx context.Context, params EntryListParams) ([]domain.LedgerEntry, int64, error)
	GetCampaignStats(ctx context.Context, campaignID uuid.UUID) (*CampaignStats, error)
}

// EntryListParams holds filter + pagination for listing journal entries.
type EntryListParams struct {
	CampaignID *uuid.UUID
	EntryType  *domain.EntryType
	Address    *domain.Address // matches either side of the movement
	Page       int
	PageSize   int
}

// CampaignStats holds aggregated reporting figures for one campaign.
type CampaignStats struct {
	DonationCount   int64
	AllocationCount int64
	SpendCount      int64
	TotalSpent      int64
}

// RegistryRepository persists the organizer approval set and the stable
// campaign creation index.
type RegistryRepository interface {
	// ApproveOrganizer is an idempotent upsert.
	ApproveOrganizer(ctx context.Context, addr domain.Address) error
	IsApprovedOrganizer(ctx context.Context, addr domain.Address) (bool, error)
	CampaignCount(ctx context.Context) (int64, error)
	// CampaignIDAt returns the campaign at the given creation index,
	// nil when the index is out of range.
	CampaignIDAt(ctx context.Context, index int64) (*uuid.UUID, error)
}

// CampaignRepository defines persistence operations for campaigns and their
// approval sets.
type CampaignRepository interface {
	Create(ctx context.Context, tx pgx.Tx, c *domain.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Campaign, error)
	UpdateTotals(ctx context.Context, tx pgx.Tx, id uuid.UUID, raised, allocated int64) error
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.CampaignStatus) error
	List(ctx context.Context, page, pageSize int) ([]domain.Campaign, int64, error)

	// Beneficiary application/approval set. Apply and approve are idempotent.
	AddBeneficiaryApplication(ctx context.Context, campaignID uuid.UUID, addr domain.Address) error
	ApproveBeneficiary(ctx context.Context, campaignID uuid.UUID, addr domain.Address) error
	HasBeneficiaryApplied(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error)
	IsBeneficiaryApproved(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error)
	ListApplicants(ctx context.Context, campaignID uuid.UUID) ([]domain.BeneficiaryApplication, error)

	// Merchant approval set. Approve is idempotent.
	ApproveMerchant(ctx context.Context, campaignID uuid.UUID, addr domain.Address) error
	IsMerchantApproved(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error)
	ListMerchants(ctx context.Context, campaignID uuid.UUID) ([]domain.Address, error)
}

// WalletRepository defines persistence operations for custodial wallets.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, w *domain.CustodialWallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CustodialWallet, error)
	GetByCampaignAndBeneficiary(ctx context.Context, campaignID uuid.UUID, beneficiary domain.Address) (*domain.CustodialWallet, error)
	CountByCampaign(ctx context.Context, campaignID uuid.UUID) (int64, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
