package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-rmrk-indexer/internal/adapter"
	"github.com/feral-file/ff-rmrk-indexer/internal/config"
	"github.com/feral-file/ff-rmrk-indexer/internal/dispatcher"
	"github.com/feral-file/ff-rmrk-indexer/internal/emitter"
	"github.com/feral-file/ff-rmrk-indexer/internal/failure"
	"github.com/feral-file/ff-rmrk-indexer/internal/logger"
	"github.com/feral-file/ff-rmrk-indexer/internal/messaging"
	"github.com/feral-file/ff-rmrk-indexer/internal/processor"
	"github.com/feral-file/ff-rmrk-indexer/internal/providers/dump"
	"github.com/feral-file/ff-rmrk-indexer/internal/providers/jetstream"
	"github.com/feral-file/ff-rmrk-indexer/internal/store"
	"github.com/feral-file/ff-rmrk-indexer/internal/validation"
)

// commonOptions holds the flags shared by every replay command
type commonOptions struct {
	configFile string
	envPath    string
	input      string
	fromBlock  uint64
	toBlock    uint64
}

func commonFlags(opts *commonOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to configuration file",
			Destination: &opts.configFile,
		},
		&cli.StringFlag{
			Name:        "env",
			Usage:       "Path to environment files",
			Value:       "config/",
			Destination: &opts.envPath,
		},
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "JSON-lines extrinsic dump, - reads stdin",
			Value:       "-",
			Destination: &opts.input,
		},
		&cli.Uint64Flag{
			Name:        "from-block",
			Usage:       "First block to replay",
			Destination: &opts.fromBlock,
		},
		&cli.Uint64Flag{
			Name:        "to-block",
			Usage:       "Last block to replay, 0 replays the whole dump",
			Destination: &opts.toBlock,
		},
	}
}

func applyCommand() *cli.Command {
	opts := &commonOptions{}
	return &cli.Command{
		Name:  "apply",
		Usage: "apply the dump to the Postgres entity store",
		Flags: commonFlags(opts),
		Action: func(c *cli.Context) error {
			cfg, err := setup(opts)
			if err != nil {
				return err
			}
			defer logger.Flush(2 * time.Second)

			db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
				return err
			}
			if err := store.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			pgStore := store.NewPGStore(db)
			var summary dispatcher.Summary
			pub := dispatcher.NewDirectPublisher(newDispatcher(cfg, pgStore), pgStore, &summary, logger.Named("replay"))
			if _, err := run(c, cfg, opts, pub); err != nil {
				return err
			}

			logSummary(summary)
			return nil
		},
	}
}

func dryRunCommand() *cli.Command {
	opts := &commonOptions{}
	var reportPath string
	return &cli.Command{
		Name:  "dry-run",
		Usage: "apply the dump to an in-memory store and write the resulting state as JSON",
		Flags: append(commonFlags(opts), &cli.StringFlag{
			Name:        "report",
			Usage:       "Where to write the JSON report, - writes stdout",
			Value:       "-",
			Destination: &reportPath,
		}),
		Action: func(c *cli.Context) error {
			cfg, err := setup(opts)
			if err != nil {
				return err
			}
			defer logger.Flush(2 * time.Second)

			memoryStore := store.NewMemoryStore()
			var summary dispatcher.Summary
			pub := dispatcher.NewDirectPublisher(newDispatcher(cfg, memoryStore), memoryStore, &summary, logger.Named("replay"))
			stats, err := run(c, cfg, opts, pub)
			if err != nil {
				return err
			}
			logSummary(summary)

			cursor, err := memoryStore.GetRemarkCursor(c.Context, cfg.Chain)
			if err != nil {
				return err
			}

			return writeReport(adapter.NewFileSystem(), adapter.NewJSON(), reportPath, buildReport(cfg.Chain, cursor, stats, summary, memoryStore))
		},
	}
}

func publishCommand() *cli.Command {
	opts := &commonOptions{}
	return &cli.Command{
		Name:  "publish",
		Usage: "publish the remark batches of the dump to NATS JetStream",
		Flags: commonFlags(opts),
		Action: func(c *cli.Context) error {
			cfg, err := setup(opts)
			if err != nil {
				return err
			}
			defer logger.Flush(2 * time.Second)

			if cfg.NATS.URL == "" {
				return errors.New("nats.url is required to publish")
			}

			pub, err := jetstream.NewPublisher(c.Context, jetstream.Config{
				URL:             cfg.NATS.URL,
				StreamName:      cfg.NATS.StreamName,
				SubjectPrefix:   cfg.NATS.Subject,
				MaxReconnects:   cfg.NATS.MaxReconnects,
				ReconnectWait:   cfg.NATS.ReconnectWait,
				ConnectionName:  cfg.NATS.ConnectionName,
				DuplicateWindow: cfg.NATS.DuplicateWindow,
			}, adapter.NewNatsJetStream(), adapter.NewJSON())
			if err != nil {
				return err
			}

			_, err = run(c, cfg, opts, pub)
			return err
		},
	}
}

// setup loads the configuration and initializes the logger
func setup(opts *commonOptions) (*config.ReplayConfig, error) {
	cfg, err := config.LoadReplayConfig(opts.configFile, opts.envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "rmrk-replay",
			"chain":   cfg.Chain.Name(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

func newDispatcher(cfg *config.ReplayConfig, st store.Store) dispatcher.Dispatcher {
	policy := validation.NewTransferPolicy(cfg.Payment.AcceptedCalls...)
	return dispatcher.New(
		dispatcher.Config{ArchiveRemarks: cfg.ArchiveRemarks},
		st,
		processor.New(st, policy, logger.Named("processor")),
		failure.NewRecorder(st, adapter.NewClock(), logger.Named("failure")),
		logger.Named("dispatcher"),
	)
}

// run streams the dump through an emitter into pub until the dump ends or the process is interrupted
func run(c *cli.Context, cfg *config.ReplayConfig, opts *commonOptions, pub messaging.Publisher) (emitter.Stats, error) {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub, err := dump.NewSubscriber(dump.Config{Path: opts.input}, adapter.NewFileSystem(), adapter.NewJSON(), logger.Named("dump"))
	if err != nil {
		pub.Close()
		return emitter.Stats{}, err
	}

	e := emitter.NewEmitter(sub, pub, emitter.Config{
		Chain:      cfg.Chain,
		StartBlock: opts.fromBlock,
		EndBlock:   opts.toBlock,
	}, adapter.NewClock(), logger.Named("emitter"))
	defer e.Close()

	return e.Run(ctx)
}

func logSummary(summary dispatcher.Summary) {
	logger.Info("Replay applied",
		zap.Int("applied", summary.Applied),
		zap.Int("rejected", summary.Rejected),
		zap.Int("skipped", summary.Skipped),
	)
}
