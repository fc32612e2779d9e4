package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jokobim12/tefanote/internal/adapter/assistant"
	httpAdapter "github.com/jokobim12/tefanote/internal/adapter/http"
	"github.com/jokobim12/tefanote/internal/adapter/http/handler"
	"github.com/jokobim12/tefanote/internal/adapter/idgen"
	"github.com/jokobim12/tefanote/internal/adapter/repository/kvstate"
	redisRepo "github.com/jokobim12/tefanote/internal/adapter/repository/redis"
	"github.com/jokobim12/tefanote/internal/adapter/repository/sqlite"
	"github.com/jokobim12/tefanote/internal/infrastructure/config"
	"github.com/jokobim12/tefanote/internal/infrastructure/logger"
	"github.com/jokobim12/tefanote/internal/infrastructure/redis"
	"github.com/jokobim12/tefanote/internal/usecase"
)

// backend bundles the pieces of an opened state backend.
type backend struct {
	kv     kvstate.KV
	pinger handler.Pinger
	close  func() error
}

func main() {
	// .env is for local development; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	be, err := openBackend(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("failed to open state backend")
	}
	defer be.close()
	log.Info().Str("backend", cfg.StorageBackend).Msg("state backend ready")

	repo := kvstate.NewRepository(be.kv, log)
	idGen := idgen.NewULIDGenerator()

	ledgerUC := usecase.NewLedgerUseCase(repo, idGen, usecase.SystemClock{}, log)
	if err := ledgerUC.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load ledger state")
	}

	statsUC := usecase.NewStatsUseCase(ledgerUC)
	listUC := usecase.NewListUseCase(ledgerUC)
	presetUC := usecase.NewPresetUseCase(repo, idGen, log)

	var completer usecase.ChatCompleter
	if cfg.AssistantEnabled() {
		completer = assistant.NewClient(cfg.AssistantAPIKey, cfg.AssistantBaseURL, cfg.AssistantModel)
		log.Info().Str("model", cfg.AssistantModel).Msg("assistant enabled")
	}
	assistantUC := usecase.NewAssistantUseCase(ledgerUC, statsUC, completer)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(ledgerUC, listUC),
		StatsHandler:       handler.NewStatsHandler(statsUC, ledgerUC),
		PresetHandler:      handler.NewPresetHandler(presetUC),
		AssistantHandler:   handler.NewAssistantHandler(assistantUC),
		HealthHandler:      handler.NewHealthHandler(be.pinger),
		Logger:             log,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// openBackend opens the configured state backend.
func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		store := redisRepo.NewStore(client)
		return &backend{kv: store, pinger: store, close: client.Close}, nil
	default:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &backend{kv: store, pinger: store, close: store.Close}, nil
	}
}
