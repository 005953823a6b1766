package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Participant Repo ---

type inMemoryParticipantRepo struct {
	mu           sync.RWMutex
	participants map[uuid.UUID]*domain.Participant
}

func newInMemoryParticipantRepo() *inMemoryParticipantRepo {
	return &inMemoryParticipantRepo{participants: make(map[uuid.UUID]*domain.Participant)}
}

func (r *inMemoryParticipantRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.participants {
		if existing.Username == p.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *p
	r.participants[p.ID] = &cp
	return nil
}

func (r *inMemoryParticipantRepo) GetByUsername(ctx context.Context, username string) (*domain.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.participants {
		if p.Username == username {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryParticipantRepo) GetByAddress(ctx context.Context, addr domain.Address) (*domain.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.participants {
		if p.Address == addr {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Ledger Repo ---

type allowanceKey struct {
	owner   domain.Address
	spender domain.Address
}

type inMemoryLedgerRepo struct {
	mu         sync.RWMutex
	accounts   map[domain.Address]*domain.LedgerAccount
	allowances map[allowanceKey]int64
	paused     bool
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{
		accounts:   make(map[domain.Address]*domain.LedgerAccount),
		allowances: make(map[allowanceKey]int64),
	}
}

func (r *inMemoryLedgerRepo) CreateAccount(ctx context.Context, tx pgx.Tx, a *domain.LedgerAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.Address]; ok {
		return fmt.Errorf("account already exists")
	}
	cp := *a
	r.accounts[a.Address] = &cp
	return nil
}

func (r *inMemoryLedgerRepo) GetAccount(ctx context.Context, addr domain.Address) (*domain.LedgerAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[addr]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryLedgerRepo) GetAccountForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.LedgerAccount, error) {
	return r.GetAccount(ctx, addr)
}

func (r *inMemoryLedgerRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, addr domain.Address, newBalance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[addr]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.Balance = newBalance
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryLedgerRepo) UpsertCredit(ctx context.Context, tx pgx.Tx, addr domain.Address, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[addr]
	if !ok {
		now := time.Now().UTC()
		r.accounts[addr] = &domain.LedgerAccount{Address: addr, Balance: amount, CreatedAt: now, UpdatedAt: now}
		return nil
	}
	a.Balance += amount
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryLedgerRepo) GetAllowance(ctx context.Context, owner, spender domain.Address) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.allowances[allowanceKey{owner, spender}], nil
}

func (r *inMemoryLedgerRepo) GetAllowanceForUpdate(ctx context.Context, tx pgx.Tx, owner, spender domain.Address) (int64, error) {
	return r.GetAllowance(ctx, owner, spender)
}

func (r *inMemoryLedgerRepo) SetAllowance(ctx context.Context, owner, spender domain.Address, remaining int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.allowances[allowanceKey{owner, spender}] = remaining
	return nil
}

func (r *inMemoryLedgerRepo) UpdateAllowance(ctx context.Context, tx pgx.Tx, owner, spender domain.Address, remaining int64) error {
	return r.SetAllowance(ctx, owner, spender, remaining)
}

func (r *inMemoryLedgerRepo) IsPaused(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.paused, nil
}

func (r *inMemoryLedgerRepo) IsPausedForUpdate(ctx context.Context, tx pgx.Tx) (bool, error) {
	return r.IsPaused(ctx)
}

func (r *inMemoryLedgerRepo) SetPaused(ctx context.Context, paused bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paused = paused
	return nil
}

// --- In-Memory Entry Repo ---

type inMemoryEntryRepo struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

func newInMemoryEntryRepo() *inMemoryEntryRepo {
	return &inMemoryEntryRepo{}
}

func (r *inMemoryEntryRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *inMemoryEntryRepo) List(ctx context.Context, params ports.EntryListParams) ([]domain.LedgerEntry, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.LedgerEntry
	for _, e := range r.entries {
		if params.CampaignID != nil && (e.CampaignID == nil || *e.CampaignID != *params.CampaignID) {
			continue
		}
		if params.EntryType != nil && e.EntryType != *params.EntryType {
			continue
		}
		if params.Address != nil && e.From != *params.Address && e.To != *params.Address {
			continue
		}
		matched = append(matched, e)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *inMemoryEntryRepo) GetCampaignStats(ctx context.Context, campaignID uuid.UUID) (*ports.CampaignStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &ports.CampaignStats{}
	for _, e := range r.entries {
		if e.CampaignID == nil || *e.CampaignID != campaignID {
			continue
		}
		switch e.EntryType {
		case domain.EntryTypeDonation:
			stats.DonationCount++
		case domain.EntryTypeAllocation:
			stats.AllocationCount++
		case domain.EntryTypeSpend:
			stats.SpendCount++
			stats.TotalSpent += e.Amount
		}
	}
	return stats, nil
}

// --- In-Memory Campaign Repo ---

type beneficiaryKey struct {
	campaignID uuid.UUID
	addr       domain.Address
}

type inMemoryCampaignRepo struct {
	mu           sync.RWMutex
	campaigns    map[uuid.UUID]*domain.Campaign
	order        []uuid.UUID // creation order, drives the registry index
	applications map[beneficiaryKey]*domain.BeneficiaryApplication
	merchants    map[beneficiaryKey]bool
}

func newInMemoryCampaignRepo() *inMemoryCampaignRepo {
	return &inMemoryCampaignRepo{
		campaigns:    make(map[uuid.UUID]*domain.Campaign),
		applications: make(map[beneficiaryKey]*domain.BeneficiaryApplication),
		merchants:    make(map[beneficiaryKey]bool),
	}
}

func (r *inMemoryCampaignRepo) Create(ctx context.Context, tx pgx.Tx, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.Index = int64(len(r.order))
	cp := *c
	r.campaigns[c.ID] = &cp
	r.order = append(r.order, c.ID)
	return nil
}

func (r *inMemoryCampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *inMemoryCampaignRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Campaign, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryCampaignRepo) UpdateTotals(ctx context.Context, tx pgx.Tx, id uuid.UUID, raised, allocated int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return fmt.Errorf("campaign not found")
	}
	c.RaisedAmount = raised
	c.TotalAllocated = allocated
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryCampaignRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.CampaignStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return fmt.Errorf("campaign not found")
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryCampaignRepo) List(ctx context.Context, page, pageSize int) ([]domain.Campaign, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := int64(len(r.order))
	start := (page - 1) * pageSize
	if start >= len(r.order) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(r.order) {
		end = len(r.order)
	}

	out := make([]domain.Campaign, 0, end-start)
	for _, id := range r.order[start:end] {
		out = append(out, *r.campaigns[id])
	}
	return out, total, nil
}

func (r *inMemoryCampaignRepo) AddBeneficiaryApplication(ctx context.Context, campaignID uuid.UUID, addr domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := beneficiaryKey{campaignID, addr}
	if _, ok := r.applications[key]; ok {
		return nil
	}
	r.applications[key] = &domain.BeneficiaryApplication{
		CampaignID: campaignID,
		Address:    addr,
		AppliedAt:  time.Now().UTC(),
	}
	return nil
}

func (r *inMemoryCampaignRepo) ApproveBeneficiary(ctx context.Context, campaignID uuid.UUID, addr domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.applications[beneficiaryKey{campaignID, addr}]
	if !ok {
		return fmt.Errorf("beneficiary application not found")
	}
	if !app.Approved {
		app.Approved = true
		now := time.Now().UTC()
		app.ApprovedAt = &now
	}
	return nil
}

func (r *inMemoryCampaignRepo) HasBeneficiaryApplied(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.applications[beneficiaryKey{campaignID, addr}]
	return ok, nil
}

func (r *inMemoryCampaignRepo) IsBeneficiaryApproved(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.applications[beneficiaryKey{campaignID, addr}]
	return ok && app.Approved, nil
}

func (r *inMemoryCampaignRepo) ListApplicants(ctx context.Context, campaignID uuid.UUID) ([]domain.BeneficiaryApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.BeneficiaryApplication
	for key, app := range r.applications {
		if key.campaignID == campaignID {
			out = append(out, *app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.Before(out[j].AppliedAt) })
	return out, nil
}

func (r *inMemoryCampaignRepo) ApproveMerchant(ctx context.Context, campaignID uuid.UUID, addr domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.merchants[beneficiaryKey{campaignID, addr}] = true
	return nil
}

func (r *inMemoryCampaignRepo) IsMerchantApproved(ctx context.Context, campaignID uuid.UUID, addr domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.merchants[beneficiaryKey{campaignID, addr}], nil
}

func (r *inMemoryCampaignRepo) ListMerchants(ctx context.Context, campaignID uuid.UUID) ([]domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Address
	for key, ok := range r.merchants {
		if ok && key.campaignID == campaignID {
			out = append(out, key.addr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// --- In-Memory Registry Repo ---

// inMemoryRegistryRepo shares the campaign repo's creation order so the
// count and index queries stay consistent with created campaigns.
type inMemoryRegistryRepo struct {
	mu         sync.RWMutex
	organizers map[domain.Address]bool
	campaigns  *inMemoryCampaignRepo
}

func newInMemoryRegistryRepo(campaigns *inMemoryCampaignRepo) *inMemoryRegistryRepo {
	return &inMemoryRegistryRepo{
		organizers: make(map[domain.Address]bool),
		campaigns:  campaigns,
	}
}

func (r *inMemoryRegistryRepo) ApproveOrganizer(ctx context.Context, addr domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.organizers[addr] = true
	return nil
}

func (r *inMemoryRegistryRepo) IsApprovedOrganizer(ctx context.Context, addr domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.organizers[addr], nil
}

func (r *inMemoryRegistryRepo) CampaignCount(ctx context.Context) (int64, error) {
	r.campaigns.mu.RLock()
	defer r.campaigns.mu.RUnlock()
	return int64(len(r.campaigns.order)), nil
}

func (r *inMemoryRegistryRepo) CampaignIDAt(ctx context.Context, index int64) (*uuid.UUID, error) {
	r.campaigns.mu.RLock()
	defer r.campaigns.mu.RUnlock()
	if index < 0 || index >= int64(len(r.campaigns.order)) {
		return nil, nil
	}
	id := r.campaigns.order[index]
	return &id, nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.CustodialWallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.CustodialWallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.CustodialWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.wallets {
		if existing.CampaignID == w.CampaignID && existing.Beneficiary == w.Beneficiary {
			return fmt.Errorf("wallet already exists")
		}
	}
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustodialWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetByCampaignAndBeneficiary(ctx context.Context, campaignID uuid.UUID, beneficiary domain.Address) (*domain.CustodialWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.CampaignID == campaignID && w.Beneficiary == beneficiary {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) CountByCampaign(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, w := range r.wallets {
		if w.CampaignID == campaignID {
			n++
		}
	}
	return n, nil
}

// --- In-Memory Transactor (serializing) ---

// inMemoryTransactor serializes transaction blocks with a mutex, mirroring
// the row-lock ordering the SQL implementation gets from FOR UPDATE.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{release: t.mu.Unlock}, nil
}

// memTx is a no-op pgx.Tx that releases the transactor lock exactly once,
// whether the block commits or unwinds through the deferred rollback.
type memTx struct {
	mu      sync.Mutex
	release func()
	done    bool
}

func (t *memTx) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.done {
		t.done = true
		t.release()
	}
}

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) Commit(ctx context.Context) error          { t.finish(); return nil }
func (t *memTx) Rollback(ctx context.Context) error        { t.finish(); return nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *memTx) Conn() *pgx.Conn { return nil }
