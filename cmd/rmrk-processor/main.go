package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-rmrk-indexer/internal/adapter"
	"github.com/feral-file/ff-rmrk-indexer/internal/api/server"
	"github.com/feral-file/ff-rmrk-indexer/internal/bridge"
	"github.com/feral-file/ff-rmrk-indexer/internal/config"
	"github.com/feral-file/ff-rmrk-indexer/internal/dispatcher"
	"github.com/feral-file/ff-rmrk-indexer/internal/failure"
	"github.com/feral-file/ff-rmrk-indexer/internal/logger"
	"github.com/feral-file/ff-rmrk-indexer/internal/processor"
	"github.com/feral-file/ff-rmrk-indexer/internal/store"
	"github.com/feral-file/ff-rmrk-indexer/internal/validation"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadProcessorConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "rmrk-processor",
			"chain":   cfg.Chain.Name(),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting RMRK processor", zap.String("chain", string(cfg.Chain)))

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Wire the remark pipeline
	policy := validation.NewTransferPolicy(cfg.Payment.AcceptedCalls...)
	proc := processor.New(dataStore, policy, logger.Named("processor"))
	recorder := failure.NewRecorder(dataStore, clock, logger.Named("failure"))
	remarkDispatcher := dispatcher.New(
		dispatcher.Config{ArchiveRemarks: cfg.ArchiveRemarks},
		dataStore,
		proc,
		recorder,
		logger.Named("dispatcher"),
	)

	// Create bridge
	remarkBridge, err := bridge.NewBridge(
		bridge.Config{
			Chain:              cfg.Chain,
			URL:                cfg.NATS.URL,
			StreamName:         cfg.NATS.StreamName,
			SubjectPrefix:      cfg.NATS.Subject,
			ConsumerName:       cfg.NATS.ConsumerName,
			MaxReconnects:      cfg.NATS.MaxReconnects,
			ReconnectWait:      cfg.NATS.ReconnectWait,
			ConnectionName:     cfg.NATS.ConnectionName,
			AckWaitTimeout:     cfg.NATS.AckWait,
			MaxDeliver:         cfg.NATS.MaxDeliver,
			CursorRetryTimeout: cfg.NATS.CursorRetryTimeout,
		},
		natsJS,
		dataStore,
		remarkDispatcher,
		jsonAdapter,
		clock,
		logger.Named("bridge"),
	)
	if err != nil {
		logger.Fatal("Failed to create remark bridge", zap.Error(err))
	}
	defer remarkBridge.Close()
	logger.InfoCtx(ctx, "Remark bridge created", zap.String("stream", cfg.NATS.StreamName), zap.String("consumer", cfg.NATS.ConsumerName))

	// Create ops server
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Chain:        cfg.Chain,
	}, dataStore)

	errCh := make(chan error, 2)

	// Start the bridge
	go func() {
		if err := remarkBridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("bridge: %w", err)
		}
	}()

	// Start the server
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- fmt.Errorf("server: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err)
	}
	cancel()

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "server"))
	}

	logger.Info("RMRK processor stopped")
}
