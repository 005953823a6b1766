package postgres

import (
	"context"
	"errors"
	"fmt"

	"relief-custody-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository. The UNIQUE constraint on
// (campaign_id, beneficiary) enforces at most one wallet per pair.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new custodial wallet within the caller's transaction.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.CustodialWallet) error {
	query := `INSERT INTO custodial_wallets (id, campaign_id, beneficiary, address, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, w.ID, w.CampaignID, w.Beneficiary, w.Address, w.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert custodial wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by its UUID.
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustodialWallet, error) {
	query := `SELECT id, campaign_id, beneficiary, address, created_at
		FROM custodial_wallets WHERE id = $1`

	w := &domain.CustodialWallet{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&w.ID, &w.CampaignID, &w.Beneficiary, &w.Address, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// GetByCampaignAndBeneficiary fetches the wallet for a (campaign,
// beneficiary) pair; nil when no allocation has created one.
func (r *WalletRepo) GetByCampaignAndBeneficiary(ctx context.Context, campaignID uuid.UUID, beneficiary domain.Address) (*domain.CustodialWallet, error) {
	query := `SELECT id, campaign_id, beneficiary, address, created_at
		FROM custodial_wallets WHERE campaign_id = $1 AND beneficiary = $2`

	w := &domain.CustodialWallet{}
	err := r.pool.QueryRow(ctx, query, campaignID, beneficiary).Scan(
		&w.ID, &w.CampaignID, &w.Beneficiary, &w.Address, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by campaign and beneficiary: %w", err)
	}
	return w, nil
}

// CountByCampaign returns how many wallets a campaign has created.
func (r *WalletRepo) CountByCampaign(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM custodial_wallets WHERE campaign_id = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, campaignID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count wallets: %w", err)
	}
	return count, nil
}
