package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a registered platform identity (donor, organizer,
// beneficiary or merchant operator). Roles are not stored here: organizer
// status lives in the registry, beneficiary/merchant status per campaign.
type Participant struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose
	Address      Address   `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
}
