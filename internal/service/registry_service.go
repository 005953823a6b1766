package service

import (
	"context"
	"fmt"
	"time"

	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RegistryServiceImpl implements ports.RegistryService: the single gate for
// campaign creation and the stable creation-order index.
type RegistryServiceImpl struct {
	registryRepo ports.RegistryRepository
	campaignRepo ports.CampaignRepository
	ledgerRepo   ports.LedgerRepository
	transactor   ports.DBTransactor
	mirror       ports.IndexMirror // nil = mirror disabled
	admin        domain.Address
	log          zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(
	registryRepo ports.RegistryRepository,
	campaignRepo ports.CampaignRepository,
	ledgerRepo ports.LedgerRepository,
	transactor ports.DBTransactor,
	mirror ports.IndexMirror,
	admin domain.Address,
	log zerolog.Logger,
) *RegistryServiceImpl {
	return &RegistryServiceImpl{
		registryRepo: registryRepo,
		campaignRepo: campaignRepo,
		ledgerRepo:   ledgerRepo,
		transactor:   transactor,
		mirror:       mirror,
		admin:        admin,
		log:          log,
	}
}

// ApproveOrganizer adds an address to the organizer approval set. Admin-only.
// Re-approving an approved address is a no-op, so retry-happy tooling is safe.
func (s *RegistryServiceImpl) ApproveOrganizer(ctx context.Context, caller, organizer domain.Address) error {
	if caller != s.admin {
		return apperror.ErrUnauthorized("approve organizers")
	}
	if err := s.registryRepo.ApproveOrganizer(ctx, organizer); err != nil {
		return apperror.InternalError(fmt.Errorf("approve organizer: %w", err))
	}
	s.log.Info().Str("organizer", organizer.String()).Msg("organizer approved")
	return nil
}

// IsApprovedOrganizer is a pure lookup.
func (s *RegistryServiceImpl) IsApprovedOrganizer(ctx context.Context, addr domain.Address) (bool, error) {
	approved, err := s.registryRepo.IsApprovedOrganizer(ctx, addr)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("check organizer: %w", err))
	}
	return approved, nil
}

// CreateCampaign allocates a new campaign for an approved organizer, along
// with its custody ledger account. The campaign goes straight to Active
// unless the request asks for a Draft.
func (s *RegistryServiceImpl) CreateCampaign(ctx context.Context, req ports.CreateCampaignRequest) (*domain.Campaign, error) {
	approved, err := s.registryRepo.IsApprovedOrganizer(ctx, req.Organizer)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check organizer: %w", err))
	}
	if !approved {
		return nil, apperror.ErrUnauthorized("create campaigns")
	}
	if req.GoalAmount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	status := domain.CampaignStatusActive
	if req.Draft {
		status = domain.CampaignStatusDraft
	}

	now := time.Now().UTC()
	campaign := &domain.Campaign{
		ID:         uuid.New(),
		Address:    domain.NewAddress(),
		Organizer:  req.Organizer,
		Title:      req.Title,
		GoalAmount: req.GoalAmount,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	account := &domain.LedgerAccount{
		Address:   campaign.Address,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// Custody account and campaign row commit together: a concurrent
	// creator losing the registry_index race must not leave an orphan
	// account behind.
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.ledgerRepo.CreateAccount(ctx, dbTx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create custody account: %w", err))
	}

	if err := s.campaignRepo.Create(ctx, dbTx, campaign); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create campaign: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.mirrorCampaign(ctx, campaign)

	s.log.Info().
		Str("campaign_id", campaign.ID.String()).
		Str("organizer", req.Organizer.String()).
		Int64("goal", req.GoalAmount).
		Str("status", string(status)).
		Msg("campaign created")

	return campaign, nil
}

// CampaignCount returns the number of campaigns ever created.
func (s *RegistryServiceImpl) CampaignCount(ctx context.Context) (int64, error) {
	count, err := s.registryRepo.CampaignCount(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("campaign count: %w", err))
	}
	return count, nil
}

// CampaignAt returns the campaign at a creation-order index in [0, count).
func (s *RegistryServiceImpl) CampaignAt(ctx context.Context, index int64) (*domain.Campaign, error) {
	if index < 0 {
		return nil, apperror.ErrNotFound("campaign index")
	}
	id, err := s.registryRepo.CampaignIDAt(ctx, index)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("campaign at index: %w", err))
	}
	if id == nil {
		return nil, apperror.ErrNotFound("campaign index")
	}
	campaign, err := s.campaignRepo.GetByID(ctx, *id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get campaign: %w", err))
	}
	if campaign == nil {
		return nil, apperror.ErrNotFound("campaign")
	}
	return campaign, nil
}

// ListCampaigns returns a page of campaigns in creation order.
func (s *RegistryServiceImpl) ListCampaigns(ctx context.Context, page, pageSize int) ([]domain.Campaign, int64, error) {
	campaigns, total, err := s.campaignRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list campaigns: %w", err))
	}
	return campaigns, total, nil
}

// mirrorCampaign pushes metadata to the off-chain index, best-effort.
func (s *RegistryServiceImpl) mirrorCampaign(ctx context.Context, c *domain.Campaign) {
	if s.mirror == nil {
		return
	}
	doc := ports.CampaignIndexDoc{
		CampaignID: c.ID,
		Title:      c.Title,
		Organizer:  c.Organizer,
		Address:    c.Address,
		Status:     string(c.Status),
	}
	if err := s.mirror.UpsertCampaign(ctx, doc); err != nil {
		s.log.Warn().Err(err).Str("campaign_id", c.ID.String()).Msg("index mirror upsert failed")
	}
}
