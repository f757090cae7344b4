package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-rmrk-indexer/internal/adapter"
	"github.com/feral-file/ff-rmrk-indexer/internal/dispatcher"
	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/logger"
	jspkg "github.com/feral-file/ff-rmrk-indexer/internal/providers/jetstream"
	"github.com/feral-file/ff-rmrk-indexer/internal/store"
)

// ErrSubscriptionClosed is returned by Run when the consumer stops delivering
var ErrSubscriptionClosed = errors.New("subscription closed")

// Config holds the configuration for the remark bridge
type Config struct {
	Chain          domain.Chain
	URL            string
	StreamName     string
	SubjectPrefix  string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
	// CursorRetryTimeout bounds the retries of a batch whose commit with the cursor failed
	CursorRetryTimeout time.Duration
}

// Bridge consumes remark batches from JetStream and applies them in stream order
type Bridge interface {
	// Run consumes until the context is cancelled or the subscription closes
	Run(ctx context.Context) error
	// Close closes the NATS connection
	Close()
}

type bridge struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	store      store.Store
	dispatcher dispatcher.Dispatcher
	json       adapter.JSON
	clock      adapter.Clock
	logger     *zap.Logger
	config     Config
}

// NewBridge connects to NATS and creates a remark bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	d dispatcher.Dispatcher,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
	logger *zap.Logger,
) (Bridge, error) {
	nc, js, err := natsJS.Connect(cfg.URL, jspkg.ConnectionOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:         nc,
		js:         js,
		store:      st,
		dispatcher: d,
		json:       jsonAdapter,
		clock:      clock,
		logger:     logger,
		config:     cfg,
	}, nil
}

// ConsumerConfig returns the durable consumer configuration of the bridge.
// A single unacknowledged message at a time keeps remarks strictly ordered.
func (c Config) ConsumerConfig() jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Durable:       c.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.AckWaitTimeout,
		MaxDeliver:    c.MaxDeliver,
		MaxAckPending: 1,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		FilterSubject: jspkg.Subject(c.SubjectPrefix, c.Chain),
	}
}

// Run starts consuming remark batches
func (b *bridge) Run(ctx context.Context) error {
	consumerConfig := b.config.ConsumerConfig()
	b.logger.Info("Starting remark bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName),
		zap.String("subject", consumerConfig.FilterSubject),
	)

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	b.logger.Info("Consumer created/retrieved",
		zap.String("consumer", consumerInfo.Name),
		zap.Uint64("pending", consumerInfo.NumPending),
	)

	// Deliveries are sequential, so handling inline preserves stream order
	sub, err := consumer.Consume(func(msg adapter.Message) {
		b.handleMessage(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	b.logger.Info("Started consuming remark batches")

	select {
	case <-ctx.Done():
		b.logger.Info("Shutting down remark bridge")
		return ctx.Err()
	case <-sub.Closed():
		return ErrSubscriptionClosed
	}
}

// handleMessage applies a single remark batch and acknowledges it
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	var batch domain.RemarkBatch
	if err := b.json.Unmarshal(msg.Data(), &batch); err != nil {
		b.logger.Error("Failed to unmarshal remark batch", zap.Error(err))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			b.logger.Error("Failed to terminate message", zap.Error(err))
		}
		return
	}

	fields := []zap.Field{
		zap.String("chain", string(batch.Chain)),
		zap.String("position", batch.Position.String()),
		zap.Int("remarks", len(batch.Remarks)),
	}
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		fields = append(fields, zap.Uint64("deliveryCount", metadata.NumDelivered))
	}

	if batch.Chain != b.config.Chain {
		b.logger.Warn("Dropping remark batch of another chain", fields...)
		b.ack(msg)
		return
	}

	ctx = logger.WithScope(ctx, map[string]string{
		"chain":    string(batch.Chain),
		"position": batch.Position.String(),
	})
	log := logger.Scoped(ctx, b.logger)

	start := b.clock.Now()
	summary, applied, err := b.apply(ctx, batch)
	if err != nil {
		log.Error("Failed to apply remark batch", append(fields, zap.Error(err))...)
		b.nak(msg)
		return
	}

	// Redelivered or republished batches were already applied
	if !applied {
		log.Debug("Skipping already applied remark batch", fields...)
		b.ack(msg)
		return
	}

	log.Info("Remark batch applied", append(fields,
		zap.Int("applied", summary.Applied),
		zap.Int("rejected", summary.Rejected),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("took", b.clock.Since(start)),
	)...)
	b.ack(msg)
}

// apply commits the batch together with the remark cursor, retrying the whole
// transaction with exponential backoff. A failed attempt leaves no writes behind.
func (b *bridge) apply(ctx context.Context, batch domain.RemarkBatch) (dispatcher.Summary, bool, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxElapsedTime = b.config.CursorRetryTimeout

	var summary dispatcher.Summary
	var applied bool
	operation := func() error {
		var err error
		summary, applied, err = dispatcher.ApplyBatch(ctx, b.store, b.dispatcher, batch)
		return err
	}
	notify := func(err error, d time.Duration) {
		b.logger.Warn("Retrying remark batch commit",
			zap.String("position", batch.Position.String()),
			zap.Error(err),
			zap.Duration("backoff", d),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(bo, ctx), notify); err != nil {
		return dispatcher.Summary{}, false, err
	}
	return summary, applied, nil
}

func (b *bridge) ack(msg adapter.Message) {
	if err := msg.Ack(); err != nil {
		b.logger.Error("Failed to ACK message", zap.Error(err))
	}
}

func (b *bridge) nak(msg adapter.Message) {
	if err := msg.Nak(); err != nil {
		b.logger.Error("Failed to NAK message", zap.Error(err))
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
