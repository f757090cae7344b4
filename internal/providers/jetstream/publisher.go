package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-rmrk-indexer/internal/adapter"
	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/logger"
	"github.com/feral-file/ff-rmrk-indexer/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// DuplicateWindow is how long the stream remembers message ids for dedupe
	DuplicateWindow time.Duration
}

// Subject returns the subject remark batches of a chain are published to.
// Format: {prefix}.{chain name}, e.g. remarks.kusama
func Subject(prefix string, chain domain.Chain) string {
	return fmt.Sprintf("%s.%s", prefix, chain.Name())
}

// ConnectionOptions returns the NATS options shared by publishers and consumers
func ConnectionOptions(name string, maxReconnects int, reconnectWait time.Duration) []nats.Option {
	return []nats.Option{
		nats.Name(name),
		nats.MaxReconnects(maxReconnects),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}
}

type publisher struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	config Config
	json   adapter.JSON
}

// NewPublisher connects to NATS, ensures the remark stream exists and returns a publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	nc, js, err := natsJS.Connect(cfg.URL, ConnectionOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       cfg.StreamName,
		Subjects:   []string{cfg.SubjectPrefix + ".>"},
		Storage:    jetstream.FileStorage,
		Duplicates: cfg.DuplicateWindow,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create/update stream: %w", err)
	}

	return &publisher{
		nc:     nc,
		js:     js,
		config: cfg,
		json:   jsonAdapter,
	}, nil
}

// PublishBatch publishes a remark batch to NATS JetStream.
// The position is used as message id so republishing an extrinsic is a no-op within the duplicate window.
func (p *publisher) PublishBatch(ctx context.Context, batch *domain.RemarkBatch) error {
	data, err := p.json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal remark batch: %w", err)
	}

	subject := Subject(p.config.SubjectPrefix, batch.Chain)
	ack, err := p.js.Publish(ctx, subject, data, jetstream.WithMsgID(batch.Position.String()))
	if err != nil {
		return fmt.Errorf("failed to publish remark batch: %w", err)
	}

	logger.DebugCtx(ctx, "Published remark batch",
		zap.String("subject", subject),
		zap.String("position", batch.Position.String()),
		zap.Int("remarks", len(batch.Remarks)),
		zap.Bool("duplicate", ack != nil && ack.Duplicate),
	)
	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
