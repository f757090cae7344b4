package emitter

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-rmrk-indexer/internal/adapter"
	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/extract"
	"github.com/feral-file/ff-rmrk-indexer/internal/messaging"
)

// errEndReached stops the subscription once the configured end block is passed
var errEndReached = errors.New("end block reached")

// Config holds the configuration for the remark emitter
type Config struct {
	Chain      domain.Chain
	StartBlock uint64 // 0 reads from the beginning of the source
	EndBlock   uint64 // 0 reads until the source is exhausted
}

// Stats counts what an emitter run read and published
type Stats struct {
	Extrinsics int
	Batches    int
	Remarks    int
}

// Emitter extracts remark batches from extrinsics and publishes them
type Emitter interface {
	// Run reads the subscriber to the end and publishes every remark batch in order
	Run(ctx context.Context) (Stats, error)
	// Close closes the subscriber and the publisher
	Close()
}

type emitter struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	config     Config
	clock      adapter.Clock
	logger     *zap.Logger
}

// NewEmitter creates a new remark emitter
func NewEmitter(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	cfg Config,
	clock adapter.Clock,
	logger *zap.Logger,
) Emitter {
	return &emitter{
		subscriber: sub,
		publisher:  pub,
		config:     cfg,
		clock:      clock,
		logger:     logger,
	}
}

// Run starts the remark emitter
func (e *emitter) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	start := e.clock.Now()

	e.logger.Info("Starting remark emitter",
		zap.String("chain", string(e.config.Chain)),
		zap.Uint64("startBlock", e.config.StartBlock),
		zap.Uint64("endBlock", e.config.EndBlock),
	)

	handler := func(extrinsic *domain.Extrinsic) error {
		if e.config.EndBlock > 0 && extrinsic.BlockNumber > e.config.EndBlock {
			return errEndReached
		}
		stats.Extrinsics++

		batch := extract.Batch(e.config.Chain, *extrinsic)
		if batch == nil {
			return nil
		}

		if err := e.publisher.PublishBatch(ctx, batch); err != nil {
			return fmt.Errorf("failed to publish remark batch %s: %w", batch.Position, err)
		}
		stats.Batches++
		stats.Remarks += len(batch.Remarks)

		return nil
	}

	err := e.subscriber.SubscribeExtrinsics(ctx, e.config.StartBlock, handler)
	if err != nil && !errors.Is(err, errEndReached) {
		return stats, err
	}

	e.logger.Info("Remark emitter finished",
		zap.Int("extrinsics", stats.Extrinsics),
		zap.Int("batches", stats.Batches),
		zap.Int("remarks", stats.Remarks),
		zap.Duration("took", e.clock.Since(start)),
	)

	return stats, nil
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.subscriber.Close()
	e.publisher.Close()
}
