package dto

// RegisterRequest is the request body for participant registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	ParticipantID string `json:"participant_id"`
	Address       string `json:"address"`
}

// LoginRequest is the request body for participant login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// TransferRequest is the request body for a direct token transfer.
type TransferRequest struct {
	To     string `json:"to" binding:"required,ledger_address"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// ApproveRequest is the request body for granting a spend allowance.
// Amount zero is legal and revokes the allowance, so gt=0 is not enforced.
type ApproveRequest struct {
	Spender string `json:"spender" binding:"required,ledger_address"`
	Amount  *int64 `json:"amount" binding:"required,gte=0"`
}

// TransferFromRequest is the request body for an allowance-backed transfer.
type TransferFromRequest struct {
	From   string `json:"from" binding:"required,ledger_address"`
	To     string `json:"to" binding:"required,ledger_address"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// MintRequest is the request body for minting new supply.
type MintRequest struct {
	To     string `json:"to" binding:"required,ledger_address"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// PauseRequest is the request body for the token pause switch.
type PauseRequest struct {
	Paused *bool `json:"paused" binding:"required"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

// EntryResponse is the response body for a single journal entry.
type EntryResponse struct {
	ID         string  `json:"id"`
	EntryType  string  `json:"entry_type"`
	CampaignID *string `json:"campaign_id,omitempty"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	Amount     int64   `json:"amount"`
	CreatedAt  string  `json:"created_at"`
}

// ApproveOrganizerRequest is the request body for approving an organizer.
type ApproveOrganizerRequest struct {
	Address string `json:"address" binding:"required,ledger_address"`
}

// OrganizerStatusResponse reports whether an address may create campaigns.
type OrganizerStatusResponse struct {
	Address  string `json:"address"`
	Approved bool   `json:"approved"`
}

// CreateCampaignRequest is the request body for campaign creation.
type CreateCampaignRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=200"`
	GoalAmount int64  `json:"goal_amount" binding:"required,gt=0"`
	Draft      bool   `json:"draft"`
}

// CampaignResponse is the response body for a campaign.
type CampaignResponse struct {
	ID             string `json:"id"`
	Index          int64  `json:"index"`
	Address        string `json:"address"`
	Organizer      string `json:"organizer"`
	Title          string `json:"title"`
	GoalAmount     int64  `json:"goal_amount"`
	RaisedAmount   int64  `json:"raised_amount"`
	TotalAllocated int64  `json:"total_allocated"`
	Pool           int64  `json:"pool"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

// CampaignListResponse wraps a paginated campaign list.
type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// RegistryCountResponse is the response for the campaign count query.
type RegistryCountResponse struct {
	Count int64 `json:"count"`
}

// DonateRequest is the request body for a donation.
type DonateRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// CampaignApprovalRequest approves a beneficiary or merchant address.
type CampaignApprovalRequest struct {
	Address string `json:"address" binding:"required,ledger_address"`
}

// AllocateRequest is the request body for allocating pool funds.
type AllocateRequest struct {
	Beneficiary string `json:"beneficiary" binding:"required,ledger_address"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

// StatusChangeRequest is the request body for a lifecycle transition.
type StatusChangeRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT ACTIVE PAUSED COMPLETED CANCELLED"`
}

// CampaignDetailsResponse is the read snapshot exposed to callers.
type CampaignDetailsResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Organizer      string `json:"organizer"`
	GoalAmount     int64  `json:"goal_amount"`
	RaisedAmount   int64  `json:"raised_amount"`
	TotalAllocated int64  `json:"total_allocated"`
	Status         string `json:"status"`
}

// ApplicantResponse is one entry in a campaign's applicant list.
type ApplicantResponse struct {
	Address    string  `json:"address"`
	Approved   bool    `json:"approved"`
	AppliedAt  string  `json:"applied_at"`
	ApprovedAt *string `json:"approved_at,omitempty"`
}

// BeneficiaryStatusResponse reports application and approval state.
type BeneficiaryStatusResponse struct {
	Address  string `json:"address"`
	Applied  bool   `json:"applied"`
	Approved bool   `json:"approved"`
}

// WalletResponse is the response body for a custodial wallet.
type WalletResponse struct {
	ID          string `json:"id"`
	CampaignID  string `json:"campaign_id"`
	Beneficiary string `json:"beneficiary"`
	Address     string `json:"address"`
}

// WalletBalanceResponse is the response for a wallet balance query.
type WalletBalanceResponse struct {
	Beneficiary string `json:"beneficiary"`
	Balance     int64  `json:"balance"`
}

// SpendRequest is the request body for a beneficiary spend.
type SpendRequest struct {
	To     string `json:"to" binding:"required,ledger_address"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// CampaignStatsResponse is the response for campaign reporting.
type CampaignStatsResponse struct {
	CampaignID     string `json:"campaign_id"`
	RaisedAmount   int64  `json:"raised_amount"`
	TotalAllocated int64  `json:"total_allocated"`
	Pool           int64  `json:"pool"`
	WalletCount    int64  `json:"wallet_count"`
	DonationCount  int64  `json:"donation_count"`
	SpendCount     int64  `json:"spend_count"`
	TotalSpent     int64  `json:"total_spent"`
}

// EntryListResponse wraps a paginated journal entry list.
type EntryListResponse struct {
	Entries  []EntryResponse `json:"entries"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}
