package ports

import (
	"context"
	"time"

	"relief-custody-engine/internal/core/domain"

	"github.com/google/uuid"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations. The subject of every token is a
// normalized ledger address; the core has no session concept.
type TokenService interface {
	Generate(addr domain.Address) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Address domain.Address
}

// DetailsCache caches serialized campaign detail snapshots. It is never
// authoritative: a miss or failure falls through to the database.
type DetailsCache interface {
	// Get returns the cached snapshot together with the version it was read
	// under. nil, version, nil on a miss.
	Get(ctx context.Context, campaignID uuid.UUID) ([]byte, uint64, error)
	// Set stores a snapshot under the given version. A write carrying a
	// version that Invalidate has since bumped lands on a dead key, so a
	// slow reader can never re-populate the cache with a pre-mutation
	// snapshot.
	Set(ctx context.Context, campaignID uuid.UUID, value []byte, version uint64, ttl time.Duration) error
	Invalidate(ctx context.Context, campaignID uuid.UUID) error
}

// IndexMirror pushes denormalized campaign metadata to the off-chain index.
// Calls are best-effort: core state is already committed when they run.
type IndexMirror interface {
	UpsertCampaign(ctx context.Context, doc CampaignIndexDoc) error
}

// CampaignIndexDoc is the denormalized document the external index holds.
type CampaignIndexDoc struct {
	CampaignID uuid.UUID      `bson:"campaign_id"`
	Title      string         `bson:"title"`
	Organizer  domain.Address `bson:"organizer"`
	Address    domain.Address `bson:"blockchain_address"`
	Status     string         `bson:"status"`
}

// --- Service Ports (Business Logic) ---

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for participant registration.
type RegisterRequest struct {
	Username string
	Password string
}

// RegisterResponse holds the registration result.
type RegisterResponse struct {
	ParticipantID uuid.UUID
	Address       domain.Address
}

// LedgerService defines fungible token operations.
type LedgerService interface {
	Transfer(ctx context.Context, req TransferRequest) (*domain.LedgerEntry, error)
	Approve(ctx context.Context, req ApproveRequest) error
	TransferFrom(ctx context.Context, req TransferFromRequest) (*domain.LedgerEntry, error)
	BalanceOf(ctx context.Context, addr domain.Address) (int64, error)
	Mint(ctx context.Context, req MintRequest) (*domain.LedgerEntry, error)
	SetPaused(ctx context.Context, caller domain.Address, paused bool) error
}

// TransferRequest moves caller funds to another account.
type TransferRequest struct {
	Caller domain.Address
	To     domain.Address
	Amount int64
}

// ApproveRequest grants spender an allowance over the caller's funds.
type ApproveRequest struct {
	Caller  domain.Address
	Spender domain.Address
	Amount  int64
}

// TransferFromRequest moves funds from From using the caller's allowance.
type TransferFromRequest struct {
	Caller domain.Address
	From   domain.Address
	To     domain.Address
	Amount int64
}

// MintRequest creates new supply; admin-gated.
type MintRequest struct {
	Caller domain.Address
	To     domain.Address
	Amount int64
}

// RegistryService gates campaign creation and indexes created campaigns.
type RegistryService interface {
	ApproveOrganizer(ctx context.Context, caller, organizer domain.Address) error
	IsApprovedOrganizer(ctx context.Context, addr domain.Address) (bool, error)
	CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*domain.Campaign, error)
	CampaignCount(ctx context.Context) (int64, error)
	CampaignAt(ctx context.Context, index int64) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, page, pageSize int) ([]domain.Campaign, int64, error)
}

// CreateCampaignRequest holds validated input for campaign creation.
type CreateCampaignRequest struct {
	Organizer  domain.Address
	Title      string
	GoalAmount int64
	Draft      bool // create in Draft instead of going straight to Active
}

// CampaignService is the central custody aggregate's entry point.
type CampaignService interface {
	Donate(ctx context.Context, req DonateRequest) (*domain.LedgerEntry, error)
	ApplyAsBeneficiary(ctx context.Context, campaignID uuid.UUID, caller domain.Address) error
	ApproveBeneficiary(ctx context.Context, req CampaignApprovalRequest) error
	ApproveMerchant(ctx context.Context, req CampaignApprovalRequest) error
	AllocateFunds(ctx context.Context, req AllocateRequest) (*domain.CustodialWallet, error)
	BeneficiaryWallet(ctx context.Context, campaignID uuid.UUID, beneficiary domain.Address) (*domain.CustodialWallet, error)
	AppliedBeneficiaries(ctx context.Context, campaignID uuid.UUID) ([]domain.BeneficiaryApplication, error)
	IsBeneficiaryApproved(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error)
	HasBeneficiaryApplied(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error)
	Details(ctx context.Context, campaignID uuid.UUID) (*domain.CampaignDetails, error)
	ChangeStatus(ctx context.Context, req StatusChangeRequest) error
}

// DonateRequest transfers caller funds into campaign custody. The caller
// must have granted the campaign address an allowance beforehand.
type DonateRequest struct {
	Caller     domain.Address
	CampaignID uuid.UUID
	Amount     int64
}

// CampaignApprovalRequest approves a beneficiary or merchant address.
type CampaignApprovalRequest struct {
	Caller     domain.Address
	CampaignID uuid.UUID
	Address    domain.Address
}

// AllocateRequest moves funds from the campaign pool into a beneficiary's
// custodial wallet.
type AllocateRequest struct {
	Caller      domain.Address
	CampaignID  uuid.UUID
	Beneficiary domain.Address
	Amount      int64
}

// StatusChangeRequest requests a campaign lifecycle transition.
type StatusChangeRequest struct {
	Caller     domain.Address
	CampaignID uuid.UUID
	To         domain.CampaignStatus
}

// WalletService exposes custodial wallet reads and beneficiary spending.
type WalletService interface {
	Balance(ctx context.Context, campaignID uuid.UUID, beneficiary domain.Address) (int64, error)
	Spend(ctx context.Context, req SpendRequest) (*domain.LedgerEntry, error)
}

// SpendRequest is a beneficiary-initiated payment to an approved merchant.
type SpendRequest struct {
	Caller     domain.Address // must be the wallet's beneficiary
	CampaignID uuid.UUID
	To         domain.Address // must be an approved merchant
	Amount     int64
}

// ReportingService serves the administrative read surface.
type ReportingService interface {
	CampaignStats(ctx context.Context, campaignID uuid.UUID) (*CampaignStatsReport, error)
	ListEntries(ctx context.Context, params EntryListParams) ([]domain.LedgerEntry, int64, error)
}

// CampaignStatsReport combines campaign totals with journal aggregates.
type CampaignStatsReport struct {
	CampaignID     uuid.UUID
	RaisedAmount   int64
	TotalAllocated int64
	Pool           int64
	WalletCount    int64
	DonationCount  int64
	SpendCount     int64
	TotalSpent     int64
}
