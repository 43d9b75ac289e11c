package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"friend_tracker/internal/config"
	"friend_tracker/internal/credential"
	"friend_tracker/internal/domain"
	"friend_tracker/internal/publisher"
	"friend_tracker/internal/runner"
	"friend_tracker/internal/service"
	"friend_tracker/internal/source/steam"
	"friend_tracker/internal/storage/sqlstore"
)

const configEnv = "FRIEND_TRACKER_CONFIG"

func main() {
	os.Exit(run())
}

func run() int {
	// Setup logger
	logger := setupLogger("info")

	configPath := os.Getenv(configEnv)
	if configPath == "" {
		configPath = "config.yaml"
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}

	logger = setupLogger(cfg.LogLevel)

	cred, err := credential.NewTerminalObtainer().Obtain()
	if err != nil {
		logger.Error("failed to obtain api key", "kind", domain.Kind(err), "error", err)
		return exitCode(err)
	}
	logger.Debug("obtained api key", "key", cred)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := sqlstore.Open(ctx, cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to open database", "kind", domain.Kind(domain.ErrStorage), "error", err)
		return exitCode(domain.ErrStorage)
	}
	defer db.Close()
	logger.Info("connected to database", "driver", cfg.Database.Driver)

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			return 1
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	// Initialize stores
	summaryStore := sqlstore.NewSummaryStore(db)
	historyStore := sqlstore.NewHistoryStore(db)
	syncStateStore := sqlstore.NewSyncStateStore(db)
	txManager := sqlstore.NewTransactionManager(db)

	steamSource := steam.New(steam.Config{
		BaseURL:           cfg.API.BaseURL,
		APIKey:            cred.APIKey,
		Timeout:           cfg.API.Timeout,
		BatchSize:         cfg.API.BatchSize,
		RequestsPerSecond: cfg.API.RateLimit.RequestsPerSecond,
		Burst:             cfg.API.RateLimit.Burst,
		MaxAttempts:       cfg.API.Retry.MaxAttempts,
		InitialBackoff:    cfg.API.Retry.InitialBackoff,
		MaxBackoff:        cfg.API.Retry.MaxBackoff,
	}, logger)

	syncService := service.NewSyncService(
		steamSource,
		summaryStore,
		historyStore,
		syncStateStore,
		txManager,
		pub,
		logger,
		cfg.Sync,
	)

	logger.Info("starting friend tracker",
		"source", steamSource.Name(),
		"account_id", cfg.Sync.AccountID,
		"database", cfg.Database.Driver,
	)

	if _, err := runner.NewRunner(syncService, cfg.Sync.Timeout, logger).RunOnce(ctx); err != nil {
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrCredentialMissing):
		return 2
	case errors.Is(err, domain.ErrUpstreamFetch):
		return 3
	case errors.Is(err, domain.ErrStorage):
		return 4
	default:
		return 1
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
