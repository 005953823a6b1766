package postgres

import (
	"context"
	"errors"
	"fmt"

	"relief-custody-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ParticipantRepo implements ports.ParticipantRepository.
type ParticipantRepo struct {
	pool Pool
}

// NewParticipantRepo creates a new ParticipantRepo.
func NewParticipantRepo(pool Pool) *ParticipantRepo {
	return &ParticipantRepo{pool: pool}
}

// Create inserts a new participant. It runs inside the registration
// transaction so the participant and its ledger account commit together.
func (r *ParticipantRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Participant) error {
	query := `INSERT INTO participants (id, username, password_hash, address, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, p.ID, p.Username, p.PasswordHash, p.Address, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}
	return nil
}

// GetByUsername fetches a participant by username.
func (r *ParticipantRepo) GetByUsername(ctx context.Context, username string) (*domain.Participant, error) {
	query := `SELECT id, username, password_hash, address, created_at
		FROM participants WHERE username = $1`

	p := &domain.Participant{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&p.ID, &p.Username, &p.PasswordHash, &p.Address, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get participant by username: %w", err)
	}
	return p, nil
}

// GetByAddress fetches a participant by ledger address.
func (r *ParticipantRepo) GetByAddress(ctx context.Context, addr domain.Address) (*domain.Participant, error) {
	query := `SELECT id, username, password_hash, address, created_at
		FROM participants WHERE address = $1`

	p := &domain.Participant{}
	err := r.pool.QueryRow(ctx, query, addr).Scan(
		&p.ID, &p.Username, &p.PasswordHash, &p.Address, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get participant by address: %w", err)
	}
	return p, nil
}
