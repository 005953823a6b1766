package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustodialWallet is a single-beneficiary, single-campaign holding account.
// At most one exists per (campaign, beneficiary) pair; it is created lazily
// on first allocation and never deleted. Its balance lives in the ledger
// account at Address.
type CustodialWallet struct {
	ID          uuid.UUID `json:"id"`
	CampaignID  uuid.UUID `json:"campaign_id"`
	Beneficiary Address   `json:"beneficiary"`
	Address     Address   `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}
