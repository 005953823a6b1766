package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"relief-custody-engine/config"
	httpHandler "relief-custody-engine/internal/adapter/http/handler"
	mongoStorage "relief-custody-engine/internal/adapter/storage/mongo"
	pgStorage "relief-custody-engine/internal/adapter/storage/postgres"
	redisStorage "relief-custody-engine/internal/adapter/storage/redis"
	"relief-custody-engine/internal/core/domain"
	"relief-custody-engine/internal/core/ports"
	"relief-custody-engine/internal/service"
	"relief-custody-engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Relief Custody Engine")

	// The admin address gates organizer approval, minting and pausing.
	var admin domain.Address
	if cfg.Admin.Address != "" {
		admin, err = domain.NormalizeAddress(cfg.Admin.Address)
		if err != nil {
			log.Fatal().Err(err).Msg("Malformed admin address in config")
		}
	} else {
		log.Warn().Msg("No admin address configured, admin operations are disabled")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Optional MongoDB index mirror
	var mirror ports.IndexMirror
	if cfg.Mongo.URI != "" {
		m, err := mongoStorage.NewMirror(ctx, cfg.Mongo.URI, cfg.Mongo.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to MongoDB index mirror")
		}
		defer m.Close(ctx) //nolint:errcheck
		mirror = m
	} else {
		log.Info().Msg("MongoDB index mirror disabled")
	}

	// Initialize repositories
	participantRepo := pgStorage.NewParticipantRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	entryRepo := pgStorage.NewEntryRepo(pool)
	registryRepo := pgStorage.NewRegistryRepo(pool)
	campaignRepo := pgStorage.NewCampaignRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	detailsCache := redisStorage.NewDetailsCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(participantRepo, ledgerRepo, transactor, hashSvc, tokenSvc)
	ledgerSvc := service.NewLedgerService(ledgerRepo, entryRepo, transactor, admin, log)
	registrySvc := service.NewRegistryService(registryRepo, campaignRepo, ledgerRepo, transactor, mirror, admin, log)
	campaignSvc := service.NewCampaignService(
		campaignRepo,
		walletRepo,
		ledgerRepo,
		entryRepo,
		transactor,
		detailsCache,
		mirror,
		admin,
		log,
	)
	walletSvc := service.NewWalletService(walletRepo, campaignRepo, ledgerRepo, entryRepo, transactor, log)
	reportingSvc := service.NewReportingService(campaignRepo, walletRepo, entryRepo)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		RegistrySvc:    registrySvc,
		CampaignSvc:    campaignSvc,
		WalletSvc:      walletSvc,
		ReportingSvc:   reportingSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
