package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus represents the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
	CampaignStatusCancelled CampaignStatus = "CANCELLED"
)

// statusTransitions is the full lifecycle table. Completed and Cancelled are
// terminal.
var statusTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignStatusDraft:  {CampaignStatusActive, CampaignStatusCancelled},
	CampaignStatusActive: {CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusCancelled},
	CampaignStatusPaused: {CampaignStatusActive, CampaignStatusCompleted, CampaignStatusCancelled},
}

// CanTransition reports whether moving from s to next is a legal lifecycle step.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s CampaignStatus) IsTerminal() bool {
	return s == CampaignStatusCompleted || s == CampaignStatusCancelled
}

// Campaign is the central custody aggregate. RaisedAmount and TotalAllocated
// are in the smallest token unit; TotalAllocated never exceeds RaisedAmount
// and never decreases.
type Campaign struct {
	ID             uuid.UUID      `json:"id"`
	Index          int64          `json:"index"` // registry creation order, stable
	Address        Address        `json:"address"`
	Organizer      Address        `json:"organizer"`
	Title          string         `json:"title"`
	GoalAmount     int64          `json:"goal_amount"`
	RaisedAmount   int64          `json:"raised_amount"`
	TotalAllocated int64          `json:"total_allocated"`
	Status         CampaignStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Pool returns the allocatable remainder.
func (c *Campaign) Pool() int64 {
	return c.RaisedAmount - c.TotalAllocated
}

// IsActive reports whether the campaign accepts donations and allocations.
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// CampaignDetails is the named read snapshot exposed to callers. All fields
// come from one committed campaign row; it is never assembled from reads at
// different points in time.
type CampaignDetails struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Organizer      Address        `json:"organizer"`
	GoalAmount     int64          `json:"goal_amount"`
	RaisedAmount   int64          `json:"raised_amount"`
	TotalAllocated int64          `json:"total_allocated"`
	Status         CampaignStatus `json:"status"`
}

// BeneficiaryApplication records an address that applied to a campaign.
// Approval is a separate organizer action; applying grants nothing.
type BeneficiaryApplication struct {
	CampaignID uuid.UUID  `json:"campaign_id"`
	Address    Address    `json:"address"`
	Approved   bool       `json:"approved"`
	AppliedAt  time.Time  `json:"applied_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
}
