package service

import (
	"context"
	"fmt"
	"time"

	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/pkg/apperror"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	participantRepo ports.ParticipantRepository
	ledgerRepo      ports.LedgerRepository
	transactor      ports.DBTransactor
	hashSvc         ports.HashService
	tokenSvc        ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	participantRepo ports.ParticipantRepository,
	ledgerRepo ports.LedgerRepository,
	transactor ports.DBTransactor,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		participantRepo: participantRepo,
		ledgerRepo:      ledgerRepo,
		transactor:      transactor,
		hashSvc:         hashSvc,
		tokenSvc:        tokenSvc,
	}
}

// Register creates a participant with a fresh ledger address and an empty
// token account. The address is the participant's identity for every
// subsequent call.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResponse, error) {
	existing, err := s.participantRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := time.Now().UTC()
	participant := &domain.Participant{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Address:      domain.NewAddress(),
		CreatedAt:    now,
	}

	// Participant and ledger account commit together.
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.participantRepo.Create(ctx, dbTx, participant); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create participant: %w", err))
	}

	account := &domain.LedgerAccount{
		Address:   participant.Address,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ledgerRepo.CreateAccount(ctx, dbTx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create ledger account: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return &ports.RegisterResponse{
		ParticipantID: participant.ID,
		Address:       participant.Address,
	}, nil
}

// Login validates credentials and returns a JWT whose subject is the
// participant's ledger address.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	participant, err := s.participantRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find participant: %w", err))
	}
	if participant == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, participant.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(participant.Address)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
