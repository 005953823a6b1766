package postgres

import (
	"context"
	"errors"
	"fmt"

	"relief-custody-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RegistryRepo implements ports.RegistryRepository: the organizer approval
// set and the stable campaign creation index.
type RegistryRepo struct {
	pool Pool
}

// NewRegistryRepo creates a new RegistryRepo.
func NewRegistryRepo(pool Pool) *RegistryRepo {
	return &RegistryRepo{pool: pool}
}

// ApproveOrganizer upserts an address into the approval set. Re-approving is
// a no-op.
func (r *RegistryRepo) ApproveOrganizer(ctx context.Context, addr domain.Address) error {
	query := `INSERT INTO approved_organizers (address, approved_at)
		VALUES ($1, NOW())
		ON CONFLICT (address) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, addr)
	if err != nil {
		return fmt.Errorf("approve organizer: %w", err)
	}
	return nil
}

// IsApprovedOrganizer checks membership in the approval set.
func (r *RegistryRepo) IsApprovedOrganizer(ctx context.Context, addr domain.Address) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM approved_organizers WHERE address = $1)`

	var approved bool
	if err := r.pool.QueryRow(ctx, query, addr).Scan(&approved); err != nil {
		return false, fmt.Errorf("check organizer approval: %w", err)
	}
	return approved, nil
}

// CampaignCount returns the number of campaigns ever created.
func (r *RegistryRepo) CampaignCount(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM campaigns`

	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("campaign count: %w", err)
	}
	return count, nil
}

// CampaignIDAt returns the campaign ID at the given creation index, nil when
// the index is out of range. Campaigns are never deleted, so the index is
// dense and stable.
func (r *RegistryRepo) CampaignIDAt(ctx context.Context, index int64) (*uuid.UUID, error) {
	query := `SELECT id FROM campaigns WHERE registry_index = $1`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, index).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("campaign at index: %w", err)
	}
	return &id, nil
}
