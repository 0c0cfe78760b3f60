package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/autovest/investment-system/internal/api"
	"github.com/autovest/investment-system/internal/core/service"
	redisdb "github.com/autovest/investment-system/internal/infrastructure/db/redis"
	"github.com/autovest/investment-system/internal/pkg/config"
	"github.com/autovest/investment-system/internal/store"
	"github.com/autovest/investment-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	startingBalance, err := cfg.ParsedStartingBalance()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// --- Storage: the in-memory ledger & portfolio store ---
	st := store.New()
	if err := st.Seed(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed store")
	}

	// --- Payment-intent idempotency: Redis when configured, in-memory otherwise ---
	var (
		rdb   *goredis.Client
		dedup service.DedupChecker
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() { _ = rdb.Close() }()
		dedup = redisdb.NewIntentStore(rdb)
	} else {
		log.Info().Msg("redis not configured, using in-memory idempotency store")
		dedup = store.NewIntentStore()
	}

	// --- Services ---
	authService := service.NewAuthService(st.Users(), cfg.JWTSecret, 24*time.Hour, startingBalance, log)
	accountingService := service.NewAccountingService(st.Users(), st.Packages(), st.Investments(), st.Transactions(), log)
	packageService := service.NewPackageService(st.Packages(), log)
	paymentService := service.NewPaymentService(dedup, log)
	maturityService := service.NewMaturityService(st.Investments(), st.Packages(), accountingService, cfg.SweepInterval, log)

	maturityService.Start(ctx)

	e := api.NewRouter(api.Deps{
		Auth:       authService,
		Packages:   packageService,
		Accounting: accountingService,
		Payments:   paymentService,
		Redis:      rdb,
		JWTSecret:  cfg.JWTSecret,
		Logger:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down server")
	}

	log.Info().Msg("shutdown complete")
}
