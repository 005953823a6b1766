package postgres

import (
	"context"
	"errors"
	"fmt"

	"relief-custody-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const campaignColumns = `id, registry_index, address, organizer, title, goal_amount,
	raised_amount, total_allocated, status, created_at, updated_at`

// CampaignRepo implements ports.CampaignRepository.
type CampaignRepo struct {
	pool Pool
}

// NewCampaignRepo creates a new CampaignRepo.
func NewCampaignRepo(pool Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	c := &domain.Campaign{}
	err := row.Scan(
		&c.ID, &c.Index, &c.Address, &c.Organizer, &c.Title, &c.GoalAmount,
		&c.RaisedAmount, &c.TotalAllocated, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a campaign, assigning the next registry index. The UNIQUE
// constraint on registry_index makes one of two concurrent creators fail
// rather than share an index. Runs inside the creation transaction so the
// custody account never outlives a failed insert.
func (r *CampaignRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.Campaign) error {
	query := `INSERT INTO campaigns (id, registry_index, address, organizer, title, goal_amount,
		raised_amount, total_allocated, status, created_at, updated_at)
		VALUES ($1, (SELECT COUNT(*) FROM campaigns), $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING registry_index`

	err := tx.QueryRow(ctx, query,
		c.ID, c.Address, c.Organizer, c.Title, c.GoalAmount,
		c.RaisedAmount, c.TotalAllocated, c.Status, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.Index)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByID fetches a campaign by its UUID (without locking).
func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	c, err := scanCampaign(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign by id: %w", err)
	}
	return c, nil
}

// GetByIDForUpdate fetches a campaign with pessimistic locking.
// This MUST be called within a transaction.
func (r *CampaignRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1 FOR UPDATE`

	c, err := scanCampaign(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign for update: %w", err)
	}
	return c, nil
}

// UpdateTotals writes the raised and allocated totals within a transaction.
func (r *CampaignRepo) UpdateTotals(ctx context.Context, tx pgx.Tx, id uuid.UUID, raised, allocated int64) error {
	query := `UPDATE campaigns SET raised_amount = $1, total_allocated = $2, updated_at = NOW()
		WHERE id = $3`

	tag, err := tx.Exec(ctx, query, raised, allocated, id)
	if err != nil {
		return fmt.Errorf("update campaign totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign not found: %s", id)
	}
	return nil
}

// UpdateStatus writes a new lifecycle status within a transaction.
func (r *CampaignRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.CampaignStatus) error {
	query := `UPDATE campaigns SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update campaign status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign not found: %s", id)
	}
	return nil
}

// List returns a page of campaigns in creation order plus the total count.
func (r *CampaignRepo) List(ctx context.Context, page, pageSize int) ([]domain.Campaign, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM campaigns`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count campaigns: %w", err)
	}

	query := `SELECT ` + campaignColumns + ` FROM campaigns
		ORDER BY registry_index LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []domain.Campaign{}
	for rows.Next() {
		var c domain.Campaign
		if err := rows.Scan(
			&c.ID, &c.Index, &c.Address, &c.Organizer, &c.Title, &c.GoalAmount,
			&c.RaisedAmount, &c.TotalAllocated, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate campaigns: %w", err)
	}

	return campaigns, total, nil
}

// AddBeneficiaryApplication records an application. Applying twice is a no-op.
func (r *CampaignRepo) AddBeneficiaryApplication(ctx context.Context, campaignID uuid.UUID, addr domain.Address) error {
	query := `INSERT INTO campaign_beneficiaries (campaign_id, address, approved, applied_at)
		VALUES ($1, $2, FALSE, NOW())
		ON CONFLICT (campaign_id, address) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, campaignID, addr)
	if err != nil {
		return fmt.Errorf("add beneficiary application: %w", err)
	}
	return nil
}

// ApproveBeneficiary flags an application approved. Re-approving keeps the
// original approval timestamp.
func (r *CampaignRepo) ApproveBeneficiary(ctx context.Context, campaignID uuid.UUID, addr domain.Address) error {
	query := `UPDATE campaign_beneficiaries
		SET approved = TRUE, approved_at = COALESCE(approved_at, NOW())
		WHERE campaign_id = $1 AND address = $2`

	tag, err := r.pool.Exec(ctx, query, campaignID, addr)
	if err != nil {
		return fmt.Errorf("approve beneficiary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("beneficiary application not found: %s", addr)
	}
	return nil
}

// HasBeneficiaryApplied checks whether an address applied to a campaign.
func (r *CampaignRepo) HasBeneficiaryApplied(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM campaign_beneficiaries
		WHERE campaign_id = $1 AND address = $2)`

	var applied bool
	if err := r.pool.QueryRow(ctx, query, campaignID, addr).Scan(&applied); err != nil {
		return false, fmt.Errorf("check beneficiary application: %w", err)
	}
	return applied, nil
}

// IsBeneficiaryApproved checks whether an address is approved for a campaign.
func (r *CampaignRepo) IsBeneficiaryApproved(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM campaign_beneficiaries
		WHERE campaign_id = $1 AND address = $2 AND approved = TRUE)`

	var approved bool
	if err := r.pool.QueryRow(ctx, query, campaignID, addr).Scan(&approved); err != nil {
		return false, fmt.Errorf("check beneficiary approval: %w", err)
	}
	return approved, nil
}

// ListApplicants returns every application for a campaign in application
// order.
func (r *CampaignRepo) ListApplicants(ctx context.Context, campaignID uuid.UUID) ([]domain.BeneficiaryApplication, error) {
	query := `SELECT campaign_id, address, approved, applied_at, approved_at
		FROM campaign_beneficiaries WHERE campaign_id = $1 ORDER BY applied_at`

	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer rows.Close()

	apps := []domain.BeneficiaryApplication{}
	for rows.Next() {
		var a domain.BeneficiaryApplication
		if err := rows.Scan(&a.CampaignID, &a.Address, &a.Approved, &a.AppliedAt, &a.ApprovedAt); err != nil {
			return nil, fmt.Errorf("scan applicant: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applicants: %w", err)
	}

	return apps, nil
}

// ApproveMerchant upserts an address into the merchant set. Idempotent.
func (r *CampaignRepo) ApproveMerchant(ctx context.Context, campaignID uuid.UUID, addr domain.Address) error {
	query := `INSERT INTO campaign_merchants (campaign_id, address, approved_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (campaign_id, address) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, campaignID, addr)
	if err != nil {
		return fmt.Errorf("approve merchant: %w", err)
	}
	return nil
}

// IsMerchantApproved checks membership in the merchant set.
func (r *CampaignRepo) IsMerchantApproved(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM campaign_merchants
		WHERE campaign_id = $1 AND address = $2)`

	var approved bool
	if err := r.pool.QueryRow(ctx, query, campaignID, addr).Scan(&approved); err != nil {
		return false, fmt.Errorf("check merchant approval: %w", err)
	}
	return approved, nil
}

// ListMerchants returns the approved merchant addresses for a campaign.
func (r *CampaignRepo) ListMerchants(ctx context.Context, campaignID uuid.UUID) ([]domain.Address, error) {
	query := `SELECT address FROM campaign_merchants WHERE campaign_id = $1 ORDER BY approved_at`

	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	defer rows.Close()

	merchants := []domain.Address{}
	for rows.Next() {
		var addr domain.Address
		if err := rows.Scan(&addr); err != nil {
			return nil, fmt.Errorf("scan merchant: %w", err)
		}
		merchants = append(merchants, addr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate merchants: %w", err)
	}

	return merchants, nil
}
