package handler

import (
	"relief-custody-engine/internal/adapter/http/middleware"
	redisStore "relief-custody-engine/internal/adapter/storage/redis"
	"relief-custody-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps aggregates everything SetupRouter needs.
type RouterDeps struct {
	AuthSvc      ports.AuthService
	LedgerSvc    ports.LedgerService
	RegistrySvc  ports.RegistryService
	CampaignSvc  ports.CampaignService
	WalletSvc    ports.WalletService
	ReportingSvc ports.ReportingService
	TokenSvc     ports.TokenService

	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	tokenHandler := NewTokenHandler(deps.LedgerSvc)
	token := v1.Group("/token", jwtAuth)
	{
		token.POST("/transfer", rl("token_ops"), tokenHandler.Transfer)
		token.POST("/approve", rl("token_ops"), tokenHandler.Approve)
		token.POST("/transfer-from", rl("token_ops"), tokenHandler.TransferFrom)
		token.POST("/mint", rl("token_ops"), tokenHandler.Mint)
		token.POST("/pause", rl("token_ops"), tokenHandler.SetPaused)
		token.GET("/balances/:address", tokenHandler.Balance)
	}

	registryHandler := NewRegistryHandler(deps.RegistrySvc)
	registry := v1.Group("/registry", jwtAuth)
	{
		registry.POST("/organizers", rl("campaign_ops"), registryHandler.ApproveOrganizer)
		registry.GET("/organizers/:address", registryHandler.OrganizerStatus)
		registry.GET("/count", registryHandler.CampaignCount)
		registry.GET("/campaigns/:index", registryHandler.CampaignAt)
	}

	campaignHandler := NewCampaignHandler(deps.CampaignSvc)
	walletHandler := NewWalletHandler(deps.WalletSvc)
	campaigns := v1.Group("/campaigns", jwtAuth)
	{
		campaigns.POST("", rl("campaign_ops"), registryHandler.CreateCampaign)
		campaigns.GET("", registryHandler.ListCampaigns)
		campaigns.GET("/:id", campaignHandler.Details)
		campaigns.PATCH("/:id/status", rl("campaign_ops"), campaignHandler.ChangeStatus)

		campaigns.POST("/:id/donations", rl("donations"), campaignHandler.Donate)
		campaigns.POST("/:id/applications", rl("campaign_ops"), campaignHandler.Apply)
		campaigns.GET("/:id/applications", campaignHandler.Applicants)
		campaigns.POST("/:id/beneficiaries", rl("campaign_ops"), campaignHandler.ApproveBeneficiary)
		campaigns.GET("/:id/beneficiaries/:address", campaignHandler.BeneficiaryStatus)
		campaigns.POST("/:id/merchants", rl("campaign_ops"), campaignHandler.ApproveMerchant)
		campaigns.POST("/:id/allocations", rl("campaign_ops"), campaignHandler.Allocate)

		campaigns.GET("/:id/wallets/:beneficiary", campaignHandler.Wallet)
		campaigns.GET("/:id/wallets/:beneficiary/balance", walletHandler.Balance)
		campaigns.POST("/:id/spend", rl("wallet_spend"), walletHandler.Spend)
	}

	reportingHandler := NewReportingHandler(deps.ReportingSvc)
	reports := v1.Group("/reports", jwtAuth)
	{
		reports.GET("/campaigns/:id/stats", rl("reporting"), reportingHandler.CampaignStats)
		reports.GET("/entries", rl("reporting"), reportingHandler.ListEntries)
	}

	return r
}
