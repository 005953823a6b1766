package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpHandler "relief-custody-engine/internal/adapter/http/handler"
	redisStorage "relief-custody-engine/internal/adapter/storage/redis"
	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/service"
	"relief-custody-engine/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack on in-memory storage: miniredis
// for the cache, map-backed repos for postgres. This exercises the real
// HTTP layer, middleware, handlers, and services end-to-end.

const (
	adminUsername = "admin"
	adminPassword = "AdminPass123!"
)

var adminAddress = domain.Address("0x" + strings.Repeat("a", 40))

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	ledger *inMemoryLedgerRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	detailsCache := redisStorage.NewDetailsCache(rdb)

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!!!!", 24*time.Hour, "test-issuer")

	participantRepo := newInMemoryParticipantRepo()
	ledgerRepo := newInMemoryLedgerRepo()
	entryRepo := newInMemoryEntryRepo()
	campaignRepo := newInMemoryCampaignRepo()
	registryRepo := newInMemoryRegistryRepo(campaignRepo)
	walletRepo := newInMemoryWalletRepo()
	transactor := newInMemoryTransactor()

	// Seed the admin identity so admin operations can authenticate.
	adminHash, err := hashSvc.Hash(adminPassword)
	require.NoError(t, err)
	now := time.Now().UTC()
	require.NoError(t, participantRepo.Create(t.Context(), nil, &domain.Participant{
		ID:           uuid.New(),
		Username:     adminUsername,
		PasswordHash: adminHash,
		Address:      adminAddress,
		CreatedAt:    now,
	}))
	require.NoError(t, ledgerRepo.CreateAccount(t.Context(), nil, &domain.LedgerAccount{
		Address: adminAddress, CreatedAt: now, UpdatedAt: now,
	}))

	log := logger.New("debug", false)
	authSvc := service.NewAuthService(participantRepo, ledgerRepo, transactor, hashSvc, tokenSvc)
	ledgerSvc := service.NewLedgerService(ledgerRepo, entryRepo, transactor, adminAddress, log)
	registrySvc := service.NewRegistryService(registryRepo, campaignRepo, ledgerRepo, transactor, nil, adminAddress, log)
	campaignSvc := service.NewCampaignService(campaignRepo, walletRepo, ledgerRepo, entryRepo, transactor, detailsCache, nil, adminAddress, log)
	walletSvc := service.NewWalletService(walletRepo, campaignRepo, ledgerRepo, entryRepo, transactor, log)
	reportingSvc := service.NewReportingService(campaignRepo, walletRepo, entryRepo)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:      authSvc,
		LedgerSvc:    ledgerSvc,
		RegistrySvc:  registrySvc,
		CampaignSvc:  campaignSvc,
		WalletSvc:    walletSvc,
		ReportingSvc: reportingSvc,
		TokenSvc:     tokenSvc,
		Logger:       log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server: server,
		redis:  mr,
		ledger: ledgerRepo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// doJSON performs a request and decodes the response body.
func (a *testApp) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "missing data envelope: %v", body)
	return d
}

// register creates a participant and returns its ledger address.
func (a *testApp) register(t *testing.T, username, password string) string {
	t.Helper()
	code, body := a.doJSON(t, "POST", "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, code, "register %s: %v", username, body)
	return data(t, body)["address"].(string)
}

// login returns a bearer token for the participant.
func (a *testApp) login(t *testing.T, username, password string) string {
	t.Helper()
	code, body := a.doJSON(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, code, "login %s: %v", username, body)
	return data(t, body)["token"].(string)
}

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	// No health checkers registered, everything counts as healthy.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIntegration_AuthRequired(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	code, _ := app.doJSON(t, "GET", "/api/v1/campaigns", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

// TestIntegration_DonationLifecycle walks the whole flow: organizer
// approval, campaign creation, minting, donation, beneficiary approval,
// allocation, merchant approval, and a beneficiary spend.
func TestIntegration_DonationLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	adminToken := app.login(t, adminUsername, adminPassword)

	organizerAddr := app.register(t, "organizer1", "StrongPass123!")
	donorAddr := app.register(t, "donor1", "StrongPass123!")
	beneficiaryAddr := app.register(t, "beneficiary1", "StrongPass123!")
	merchantAddr := app.register(t, "merchant1", "StrongPass123!")

	organizerToken := app.login(t, "organizer1", "StrongPass123!")
	donorToken := app.login(t, "donor1", "StrongPass123!")
	beneficiaryToken := app.login(t, "beneficiary1", "StrongPass123!")

	// Unapproved organizers cannot create campaigns.
	code, _ := app.doJSON(t, "POST", "/api/v1/campaigns", organizerToken, map[string]any{
		"title": "Flood Relief", "goal_amount": 100000,
	})
	require.Equal(t, http.StatusForbidden, code)

	// Admin approves the organizer.
	code, _ = app.doJSON(t, "POST", "/api/v1/registry/organizers", adminToken, map[string]string{
		"address": organizerAddr,
	})
	require.Equal(t, http.StatusOK, code)

	// Organizer creates a campaign.
	code, body := app.doJSON(t, "POST", "/api/v1/campaigns", organizerToken, map[string]any{
		"title": "Flood Relief", "goal_amount": 100000,
	})
	require.Equal(t, http.StatusCreated, code, "%v", body)
	campaign := data(t, body)
	campaignID := campaign["id"].(string)
	campaignAddr := campaign["address"].(string)
	require.Equal(t, "ACTIVE", campaign["status"])
	require.Equal(t, float64(0), campaign["index"])

	// Registry sees exactly one campaign, retrievable by index.
	code, body = app.doJSON(t, "GET", "/api/v1/registry/count", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), data(t, body)["count"])

	code, body = app.doJSON(t, "GET", "/api/v1/registry/campaigns/0", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, campaignID, data(t, body)["id"])

	// Admin mints working funds to the donor.
	code, _ = app.doJSON(t, "POST", "/api/v1/token/mint", adminToken, map[string]any{
		"to": donorAddr, "amount": 10000,
	})
	require.Equal(t, http.StatusCreated, code)

	// Donation without an allowance fails.
	code, body = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/donations", donorToken, map[string]any{
		"amount": 5000,
	})
	require.Equal(t, http.StatusPaymentRequired, code)
	assert.Equal(t, "TOK_003", body["error_code"])

	// Donor grants the campaign an allowance, then donates.
	code, _ = app.doJSON(t, "POST", "/api/v1/token/approve", donorToken, map[string]any{
		"spender": campaignAddr, "amount": 5000,
	})
	require.Equal(t, http.StatusOK, code)

	code, body = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/donations", donorToken, map[string]any{
		"amount": 5000,
	})
	require.Equal(t, http.StatusCreated, code, "%v", body)

	code, body = app.doJSON(t, "GET", "/api/v1/token/balances/"+donorAddr, donorToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(5000), data(t, body)["balance"])

	code, body = app.doJSON(t, "GET", "/api/v1/campaigns/"+campaignID, donorToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(5000), data(t, body)["raised_amount"])

	// Beneficiary applies; allocation before approval fails.
	code, _ = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/applications", beneficiaryToken, nil)
	require.Equal(t, http.StatusCreated, code)

	code, body = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/allocations", organizerToken, map[string]any{
		"beneficiary": beneficiaryAddr, "amount": 1000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "CMP_004", body["error_code"])

	// No wallet exists yet: the lookup answers with the zero address.
	code, body = app.doJSON(t, "GET", "/api/v1/campaigns/"+campaignID+"/wallets/"+beneficiaryAddr, beneficiaryToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain.ZeroAddress.String(), data(t, body)["address"])

	// Organizer approves the beneficiary and allocates.
	code, _ = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/beneficiaries", organizerToken, map[string]string{
		"address": beneficiaryAddr,
	})
	require.Equal(t, http.StatusOK, code)

	code, body = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/allocations", organizerToken, map[string]any{
		"beneficiary": beneficiaryAddr, "amount": 1000,
	})
	require.Equal(t, http.StatusCreated, code, "%v", body)

	code, body = app.doJSON(t, "GET", "/api/v1/campaigns/"+campaignID+"/wallets/"+beneficiaryAddr+"/balance", beneficiaryToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1000), data(t, body)["balance"])

	// Spending at an unapproved merchant fails.
	code, body = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/spend", beneficiaryToken, map[string]any{
		"to": merchantAddr, "amount": 400,
	})
	require.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "WLT_001", body["error_code"])

	// Organizer approves the merchant; the spend goes through.
	code, _ = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/merchants", organizerToken, map[string]string{
		"address": merchantAddr,
	})
	require.Equal(t, http.StatusOK, code)

	code, body = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/spend", beneficiaryToken, map[string]any{
		"to": merchantAddr, "amount": 400,
	})
	require.Equal(t, http.StatusCreated, code, "%v", body)

	code, body = app.doJSON(t, "GET", "/api/v1/campaigns/"+campaignID+"/wallets/"+beneficiaryAddr+"/balance", beneficiaryToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(600), data(t, body)["balance"])

	code, body = app.doJSON(t, "GET", "/api/v1/token/balances/"+merchantAddr, beneficiaryToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(400), data(t, body)["balance"])

	// Reporting reflects the whole history.
	code, body = app.doJSON(t, "GET", "/api/v1/reports/campaigns/"+campaignID+"/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	stats := data(t, body)
	assert.Equal(t, float64(5000), stats["raised_amount"])
	assert.Equal(t, float64(1000), stats["total_allocated"])
	assert.Equal(t, float64(4000), stats["pool"])
	assert.Equal(t, float64(1), stats["wallet_count"])
	assert.Equal(t, float64(1), stats["donation_count"])
	assert.Equal(t, float64(400), stats["total_spent"])

	code, body = app.doJSON(t, "GET", "/api/v1/reports/entries?campaign_id="+campaignID, adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(3), data(t, body)["total"]) // donation, allocation, spend
}

func TestIntegration_PauseBlocksMovement(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	adminToken := app.login(t, adminUsername, adminPassword)
	aliceAddr := app.register(t, "alice", "StrongPass123!")
	bobAddr := app.register(t, "bob", "StrongPass123!")
	aliceToken := app.login(t, "alice", "StrongPass123!")

	code, _ := app.doJSON(t, "POST", "/api/v1/token/mint", adminToken, map[string]any{
		"to": aliceAddr, "amount": 1000,
	})
	require.Equal(t, http.StatusCreated, code)

	// Pause; transfers are rejected.
	code, _ = app.doJSON(t, "POST", "/api/v1/token/pause", adminToken, map[string]bool{"paused": true})
	require.Equal(t, http.StatusOK, code)

	code, body := app.doJSON(t, "POST", "/api/v1/token/transfer", aliceToken, map[string]any{
		"to": bobAddr, "amount": 100,
	})
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "TOK_004", body["error_code"])

	// Unpause; movement resumes.
	code, _ = app.doJSON(t, "POST", "/api/v1/token/pause", adminToken, map[string]bool{"paused": false})
	require.Equal(t, http.StatusOK, code)

	code, _ = app.doJSON(t, "POST", "/api/v1/token/transfer", aliceToken, map[string]any{
		"to": bobAddr, "amount": 100,
	})
	require.Equal(t, http.StatusCreated, code)

	code, body = app.doJSON(t, "GET", "/api/v1/token/balances/"+bobAddr, aliceToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(100), data(t, body)["balance"])
}

func TestIntegration_StatusLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	adminToken := app.login(t, adminUsername, adminPassword)
	organizerAddr := app.register(t, "organizer2", "StrongPass123!")
	donorAddr := app.register(t, "donor2", "StrongPass123!")
	organizerToken := app.login(t, "organizer2", "StrongPass123!")
	donorToken := app.login(t, "donor2", "StrongPass123!")

	code, _ := app.doJSON(t, "POST", "/api/v1/registry/organizers", adminToken, map[string]string{"address": organizerAddr})
	require.Equal(t, http.StatusOK, code)

	code, body := app.doJSON(t, "POST", "/api/v1/campaigns", organizerToken, map[string]any{
		"title": "Earthquake Relief", "goal_amount": 50000,
	})
	require.Equal(t, http.StatusCreated, code)
	campaign := data(t, body)
	campaignID := campaign["id"].(string)
	campaignAddr := campaign["address"].(string)

	code, _ = app.doJSON(t, "POST", "/api/v1/token/mint", adminToken, map[string]any{"to": donorAddr, "amount": 1000})
	require.Equal(t, http.StatusCreated, code)
	code, _ = app.doJSON(t, "POST", "/api/v1/token/approve", donorToken, map[string]any{"spender": campaignAddr, "amount": 1000})
	require.Equal(t, http.StatusOK, code)

	// Pause the campaign: donations rejected.
	code, _ = app.doJSON(t, "PATCH", "/api/v1/campaigns/"+campaignID+"/status", organizerToken, map[string]string{"status": "PAUSED"})
	require.Equal(t, http.StatusOK, code)

	code, body = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/donations", donorToken, map[string]any{"amount": 500})
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CMP_002", body["error_code"])

	// Resume and complete.
	code, _ = app.doJSON(t, "PATCH", "/api/v1/campaigns/"+campaignID+"/status", organizerToken, map[string]string{"status": "ACTIVE"})
	require.Equal(t, http.StatusOK, code)
	code, _ = app.doJSON(t, "PATCH", "/api/v1/campaigns/"+campaignID+"/status", organizerToken, map[string]string{"status": "COMPLETED"})
	require.Equal(t, http.StatusOK, code)

	// Terminal states accept no further transitions.
	code, body = app.doJSON(t, "PATCH", "/api/v1/campaigns/"+campaignID+"/status", organizerToken, map[string]string{"status": "ACTIVE"})
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CMP_003", body["error_code"])
}

// Approvals are no-ops when repeated: granting a standing the holder
// already has must not fail or duplicate anything.
func TestIntegration_IdempotentApprovals(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	adminToken := app.login(t, adminUsername, adminPassword)
	organizerAddr := app.register(t, "organizer3", "StrongPass123!")
	beneficiaryAddr := app.register(t, "beneficiary3", "StrongPass123!")
	merchantAddr := app.register(t, "merchant3", "StrongPass123!")
	organizerToken := app.login(t, "organizer3", "StrongPass123!")
	beneficiaryToken := app.login(t, "beneficiary3", "StrongPass123!")

	for i := 0; i < 2; i++ {
		code, body := app.doJSON(t, "POST", "/api/v1/registry/organizers", adminToken, map[string]string{"address": organizerAddr})
		require.Equal(t, http.StatusOK, code, "organizer approval %d: %v", i, body)
	}

	code, body := app.doJSON(t, "POST", "/api/v1/campaigns", organizerToken, map[string]any{
		"title": "Wildfire Relief", "goal_amount": 20000,
	})
	require.Equal(t, http.StatusCreated, code)
	campaignID := data(t, body)["id"].(string)

	// Re-applying does not duplicate the application.
	for i := 0; i < 2; i++ {
		code, body = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/applications", beneficiaryToken, nil)
		require.Equal(t, http.StatusCreated, code, "application %d: %v", i, body)
	}

	for i := 0; i < 2; i++ {
		code, body = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/beneficiaries", organizerToken, map[string]string{
			"address": beneficiaryAddr,
		})
		require.Equal(t, http.StatusOK, code, "beneficiary approval %d: %v", i, body)
	}

	for i := 0; i < 2; i++ {
		code, body = app.doJSON(t, "POST", "/api/v1/campaigns/"+campaignID+"/merchants", organizerToken, map[string]string{
			"address": merchantAddr,
		})
		require.Equal(t, http.StatusOK, code, "merchant approval %d: %v", i, body)
	}

	// One applicant on record, still approved.
	code, raw := app.doJSON(t, "GET", "/api/v1/campaigns/"+campaignID+"/applications", organizerToken, nil)
	require.Equal(t, http.StatusOK, code)
	applicants, ok := raw["data"].([]interface{})
	require.True(t, ok, "missing data envelope: %v", raw)
	require.Len(t, applicants, 1)
	assert.Equal(t, true, applicants[0].(map[string]interface{})["approved"])

	code, body = app.doJSON(t, "GET", "/api/v1/campaigns/"+campaignID+"/beneficiaries/"+beneficiaryAddr, beneficiaryToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, data(t, body)["approved"])
}

func TestIntegration_RegisterDuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.register(t, "taken", "StrongPass123!")

	code, body := app.doJSON(t, "POST", "/api/v1/auth/register", "", map[string]string{
		"username": "taken", "password": "OtherPass123!",
	})
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "AUTH_004", body["error_code"])
}
