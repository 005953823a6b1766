package postgres

import (
	"context"
	"errors"
	"fmt"

	"relief-custody-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository over the token account table,
// the allowance table and the single-row token state.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// CreateAccount inserts a new zero-or-positive balance account inside the
// transaction that creates the account's owner.
func (r *LedgerRepo) CreateAccount(ctx context.Context, tx pgx.Tx, a *domain.LedgerAccount) error {
	query := `INSERT INTO ledger_accounts (address, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, a.Address, a.Balance, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert ledger account: %w", err)
	}
	return nil
}

// GetAccount fetches an account by address (without locking).
func (r *LedgerRepo) GetAccount(ctx context.Context, addr domain.Address) (*domain.LedgerAccount, error) {
	query := `SELECT address, balance, created_at, updated_at
		FROM ledger_accounts WHERE address = $1`

	a := &domain.LedgerAccount{}
	err := r.pool.QueryRow(ctx, query, addr).Scan(&a.Address, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger account: %w", err)
	}
	return a, nil
}

// GetAccountForUpdate fetches an account with pessimistic locking.
// This MUST be called within a transaction.
func (r *LedgerRepo) GetAccountForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.LedgerAccount, error) {
	query := `SELECT address, balance, created_at, updated_at
		FROM ledger_accounts WHERE address = $1 FOR UPDATE`

	a := &domain.LedgerAccount{}
	err := tx.QueryRow(ctx, query, addr).Scan(&a.Address, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger account for update: %w", err)
	}
	return a, nil
}

// UpdateBalance sets an account balance within a transaction. The CHECK
// constraint on the column is the last line of defense against negatives.
func (r *LedgerRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, addr domain.Address, newBalance int64) error {
	query := `UPDATE ledger_accounts SET balance = $1, updated_at = NOW() WHERE address = $2`

	tag, err := tx.Exec(ctx, query, newBalance, addr)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger account not found: %s", addr)
	}
	return nil
}

// UpsertCredit adds amount to an account, creating it on first credit.
func (r *LedgerRepo) UpsertCredit(ctx context.Context, tx pgx.Tx, addr domain.Address, amount int64) error {
	query := `INSERT INTO ledger_accounts (address, balance, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (address)
		DO UPDATE SET balance = ledger_accounts.balance + EXCLUDED.balance, updated_at = NOW()`

	_, err := tx.Exec(ctx, query, addr, amount)
	if err != nil {
		return fmt.Errorf("upsert credit: %w", err)
	}
	return nil
}

// GetAllowance fetches the remaining allowance; zero when none was granted.
func (r *LedgerRepo) GetAllowance(ctx context.Context, owner, spender domain.Address) (int64, error) {
	query := `SELECT remaining FROM allowances WHERE owner_address = $1 AND spender_address = $2`

	var remaining int64
	err := r.pool.QueryRow(ctx, query, owner, spender).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get allowance: %w", err)
	}
	return remaining, nil
}

// GetAllowanceForUpdate fetches the remaining allowance with pessimistic
// locking; zero when none was granted. This MUST be called within a
// transaction.
func (r *LedgerRepo) GetAllowanceForUpdate(ctx context.Context, tx pgx.Tx, owner, spender domain.Address) (int64, error) {
	query := `SELECT remaining FROM allowances
		WHERE owner_address = $1 AND spender_address = $2 FOR UPDATE`

	var remaining int64
	err := tx.QueryRow(ctx, query, owner, spender).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get allowance for update: %w", err)
	}
	return remaining, nil
}

// SetAllowance overwrites the remaining allowance, creating the row when
// needed. Approving again replaces the previous grant.
func (r *LedgerRepo) SetAllowance(ctx context.Context, owner, spender domain.Address, remaining int64) error {
	query := `INSERT INTO allowances (owner_address, spender_address, remaining, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (owner_address, spender_address)
		DO UPDATE SET remaining = EXCLUDED.remaining, updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, owner, spender, remaining)
	if err != nil {
		return fmt.Errorf("set allowance: %w", err)
	}
	return nil
}

// UpdateAllowance sets the remaining allowance within a transaction.
func (r *LedgerRepo) UpdateAllowance(ctx context.Context, tx pgx.Tx, owner, spender domain.Address, remaining int64) error {
	query := `UPDATE allowances SET remaining = $1, updated_at = NOW()
		WHERE owner_address = $2 AND spender_address = $3`

	tag, err := tx.Exec(ctx, query, remaining, owner, spender)
	if err != nil {
		return fmt.Errorf("update allowance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("allowance not found: %s -> %s", owner, spender)
	}
	return nil
}

// IsPaused reads the global transfer pause flag.
func (r *LedgerRepo) IsPaused(ctx context.Context) (bool, error) {
	query := `SELECT paused FROM token_state WHERE id = TRUE`

	var paused bool
	err := r.pool.QueryRow(ctx, query).Scan(&paused)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get token state: %w", err)
	}
	return paused, nil
}

// IsPausedForUpdate reads the pause flag with a shared lock so SetPaused
// blocks until every in-flight movement transaction commits.
// This MUST be called within a transaction.
func (r *LedgerRepo) IsPausedForUpdate(ctx context.Context, tx pgx.Tx) (bool, error) {
	query := `SELECT paused FROM token_state WHERE id = TRUE FOR SHARE`

	var paused bool
	err := tx.QueryRow(ctx, query).Scan(&paused)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get token state: %w", err)
	}
	return paused, nil
}

// SetPaused writes the global transfer pause flag. The token_state table
// holds at most one row.
func (r *LedgerRepo) SetPaused(ctx context.Context, paused bool) error {
	query := `INSERT INTO token_state (id, paused, updated_at)
		VALUES (TRUE, $1, NOW())
		ON CONFLICT (id)
		DO UPDATE SET paused = EXCLUDED.paused, updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, paused)
	if err != nil {
		return fmt.Errorf("set token state: %w", err)
	}
	return nil
}
