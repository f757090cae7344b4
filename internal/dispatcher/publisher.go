package dispatcher

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/messaging"
	"github.com/feral-file/ff-rmrk-indexer/internal/store"
)

type directPublisher struct {
	dispatcher Dispatcher
	store      store.Store
	logger     *zap.Logger
	summary    *Summary
}

// NewDirectPublisher returns a publisher that applies batches in process instead of sending them to a broker.
// Batches at or before the stored remark cursor are skipped. Each batch commits together with its cursor.
// When summary is not nil the outcome of every dispatch is added to it.
func NewDirectPublisher(d Dispatcher, st store.Store, summary *Summary, logger *zap.Logger) messaging.Publisher {
	return &directPublisher{
		dispatcher: d,
		store:      st,
		logger:     logger,
		summary:    summary,
	}
}

func (p *directPublisher) PublishBatch(ctx context.Context, batch *domain.RemarkBatch) error {
	summary, applied, err := ApplyBatch(ctx, p.store, p.dispatcher, *batch)
	if err != nil {
		return fmt.Errorf("failed to apply remark batch %s: %w", batch.Position, err)
	}
	if !applied {
		p.logger.Debug("Skipping already applied remark batch", zap.String("position", batch.Position.String()))
		return nil
	}

	if p.summary != nil {
		p.summary.Add(summary)
	}
	return nil
}

func (p *directPublisher) Close() {}
