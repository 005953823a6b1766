package postgres

import (
	"context"
	"fmt"
	"strconv"

	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EntryRepo implements ports.EntryRepository. The journal is append-only:
// inserts run inside the mutating transaction, reads never lock.
type EntryRepo struct {
	pool Pool
}

// NewEntryRepo creates a new EntryRepo.
func NewEntryRepo(pool Pool) *EntryRepo {
	return &EntryRepo{pool: pool}
}

// Create inserts a journal entry within the caller's transaction.
func (r *EntryRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (id, entry_type, campaign_id, from_address, to_address, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.EntryType, e.CampaignID, e.From, e.To, e.Amount, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// List returns a filtered page of entries, newest first, plus the total
// matching count.
func (r *EntryRepo) List(ctx context.Context, params ports.EntryListParams) ([]domain.LedgerEntry, int64, error) {
	where := ""
	args := []any{}
	addClause := func(clause string, value any) {
		args = append(args, value)
		placeholder := "$" + strconv.Itoa(len(args))
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(clause, placeholder)
	}

	if params.CampaignID != nil {
		addClause("campaign_id = %s", *params.CampaignID)
	}
	if params.EntryType != nil {
		addClause("entry_type = %s", *params.EntryType)
	}
	if params.Address != nil {
		args = append(args, *params.Address)
		placeholder := "$" + strconv.Itoa(len(args))
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf("(from_address = %s OR to_address = %s)", placeholder, placeholder)
	}

	countQuery := "SELECT COUNT(*) FROM ledger_entries" + where
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ledger entries: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	args = append(args, params.PageSize, offset)
	listQuery := fmt.Sprintf(
		`SELECT id, entry_type, campaign_id, from_address, to_address, amount, created_at
		FROM ledger_entries%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.EntryType, &e.CampaignID, &e.From, &e.To, &e.Amount, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate ledger entries: %w", err)
	}

	return entries, total, nil
}

// GetCampaignStats aggregates journal counters for one campaign.
func (r *EntryRepo) GetCampaignStats(ctx context.Context, campaignID uuid.UUID) (*ports.CampaignStats, error) {
	query := `SELECT
		COUNT(*) FILTER (WHERE entry_type = 'DONATION'),
		COUNT(*) FILTER (WHERE entry_type = 'ALLOCATION'),
		COUNT(*) FILTER (WHERE entry_type = 'SPEND'),
		COALESCE(SUM(amount) FILTER (WHERE entry_type = 'SPEND'), 0)
		FROM ledger_entries WHERE campaign_id = $1`

	stats := &ports.CampaignStats{}
	err := r.pool.QueryRow(ctx, query, campaignID).Scan(
		&stats.DonationCount, &stats.AllocationCount, &stats.SpendCount, &stats.TotalSpent,
	)
	if err != nil {
		return nil, fmt.Errorf("campaign journal stats: %w", err)
	}
	return stats, nil
}
