package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerAccount tracks a balance in the smallest token unit. Balance is
// never negative; a debit that would drive it below zero fails atomically.
type LedgerAccount struct {
	Address   Address   `json:"address"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Allowance is a spend authorization keyed per (owner, spender) pair,
// independent of the owner's balance.
type Allowance struct {
	Owner     Address `json:"owner"`
	Spender   Address `json:"spender"`
	Remaining int64   `json:"remaining"`
}

// EntryType classifies a journal row.
type EntryType string

const (
	EntryTypeMint       EntryType = "MINT"
	EntryTypeTransfer   EntryType = "TRANSFER"
	EntryTypeDonation   EntryType = "DONATION"
	EntryTypeAllocation EntryType = "ALLOCATION"
	EntryTypeSpend      EntryType = "SPEND"
)

// LedgerEntry is one append-only journal row. Every successful balance
// mutation writes exactly one entry in the same database transaction;
// entries are never updated or deleted.
type LedgerEntry struct {
	ID         uuid.UUID  `json:"id"`
	EntryType  EntryType  `json:"entry_type"`
	CampaignID *uuid.UUID `json:"campaign_id,omitempty"` // nil for plain token ops
	From       Address    `json:"from"`                  // ZeroAddress for mints
	To         Address    `json:"to"`
	Amount     int64      `json:"amount"`
	CreatedAt  time.Time  `json:"created_at"`
}
