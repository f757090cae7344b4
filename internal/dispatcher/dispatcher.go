package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/failure"
	"github.com/feral-file/ff-rmrk-indexer/internal/processor"
	"github.com/feral-file/ff-rmrk-indexer/internal/rmrk"
	"github.com/feral-file/ff-rmrk-indexer/internal/store"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
)

// Config holds the configuration for the dispatcher
type Config struct {
	// ArchiveRemarks stores every remark in the raw archive before it is applied
	ArchiveRemarks bool
}

// Summary counts the outcome of a dispatch
type Summary struct {
	Applied  int
	Rejected int
	Skipped  int
}

// Add accumulates another summary
func (s *Summary) Add(o Summary) {
	s.Applied += o.Applied
	s.Rejected += o.Rejected
	s.Skipped += o.Skipped
}

// Dispatcher applies the remarks of one unit of chain work in order.
// A failing remark never prevents the following remarks from being applied.
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	Dispatch(ctx context.Context, batch domain.RemarkBatch) Summary
}

type dispatcher struct {
	config    Config
	store     store.Store
	processor processor.Processor
	recorder  failure.Recorder
	logger    *zap.Logger
}

// New creates a dispatcher
func New(
	cfg Config,
	st store.Store,
	proc processor.Processor,
	recorder failure.Recorder,
	logger *zap.Logger,
) Dispatcher {
	return &dispatcher{
		config:    cfg,
		store:     st,
		processor: proc,
		recorder:  recorder,
		logger:    logger,
	}
}

type outcome int

const (
	outcomeApplied outcome = iota
	outcomeRejected
	outcomeSkipped
)

func (d *dispatcher) Dispatch(ctx context.Context, batch domain.RemarkBatch) Summary {
	var summary Summary
	for i, remark := range batch.Remarks {
		switch d.dispatchOne(ctx, batch.Position, i, remark) {
		case outcomeApplied:
			summary.Applied++
		case outcomeRejected:
			summary.Rejected++
		default:
			summary.Skipped++
		}
	}
	return summary
}

// dispatchOne decodes and applies a single remark, recovering from any panic
func (d *dispatcher) dispatchOne(ctx context.Context, position domain.Position, index int, remark domain.Remark) (result outcome) {
	var msg *rmrk.Message
	defer func() {
		if r := recover(); r != nil {
			failed := failure.Failure{
				Value:       remark.Value,
				Reason:      fmt.Sprintf("panic: %v", r),
				Caller:      remark.Caller,
				BlockNumber: remark.BlockNumber,
			}
			if msg != nil {
				failed.Interaction = msg.Event
			}
			d.logger.Error("Recovered from panic while applying remark",
				zap.Any("panic", r),
				zap.String("value", remark.Value),
				zap.String("blockNumber", remark.BlockNumber),
			)
			d.recorder.Record(ctx, failed)
			result = outcomeRejected
		}
	}()

	msg, err := rmrk.Decode(remark.Value)

	if d.config.ArchiveRemarks {
		d.archive(ctx, position, index, remark, msg)
	}

	switch {
	case errors.Is(err, rmrk.ErrNotRemark):
		d.logger.Warn("Skipping non protocol remark", zap.String("blockNumber", remark.BlockNumber))
		return outcomeSkipped
	case errors.Is(err, rmrk.ErrUnsupportedVersion):
		d.logger.Warn("Skipping remark with unsupported version",
			zap.String("interaction", msg.Event.String()),
			zap.String("version", msg.Version),
			zap.String("blockNumber", remark.BlockNumber),
		)
		return outcomeSkipped
	case err != nil:
		// Protocol shaped but undecodable
		d.recorder.Record(ctx, failure.Failure{
			Value:       remark.Value,
			Reason:      err.Error(),
			Interaction: msg.Event,
			Caller:      remark.Caller,
			BlockNumber: remark.BlockNumber,
		})
		return outcomeRejected
	case !msg.Event.Known():
		d.logger.Warn("Skipping unknown interaction",
			zap.String("value", msg.Raw),
			zap.String("blockNumber", remark.BlockNumber),
		)
		return outcomeSkipped
	}

	if err := d.processor.Process(ctx, remark, msg); err != nil {
		d.recorder.Record(ctx, failure.Failure{
			Value:       msg.Payload(),
			Reason:      err.Error(),
			Interaction: msg.Event,
			Caller:      remark.Caller,
			BlockNumber: remark.BlockNumber,
		})
		return outcomeRejected
	}

	return outcomeApplied
}

// archive stores the raw remark. Archive failures are logged and do not affect processing.
func (d *dispatcher) archive(ctx context.Context, position domain.Position, index int, remark domain.Remark, msg *rmrk.Message) {
	interaction := rmrk.Unhex(remark.Value)
	if msg != nil {
		interaction = msg.Event.String()
	}

	entity := &schema.Remark{
		ID:          domain.RemarkID(position, index),
		Value:       remark.Value,
		Caller:      remark.Caller,
		BlockNumber: remark.BlockNumber,
		Interaction: interaction,
		Extra:       datatypes.JSONSlice[domain.ExtraCall](remark.Extra),
		Timestamp:   remark.Timestamp,
	}
	if err := d.store.SaveRemark(ctx, entity); err != nil {
		d.logger.Error("Failed to archive remark", zap.Error(err), zap.String("id", entity.ID))
	}
}
