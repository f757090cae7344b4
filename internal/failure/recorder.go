package failure

import (
	"context"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-rmrk-indexer/internal/adapter"
	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/store"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
)

// Failure describes a remark that could not be applied
type Failure struct {
	// Value is the payload that failed, raw or decoded
	Value string
	// Reason is the human readable rejection reason
	Reason string
	// Interaction is the attempted event kind
	Interaction domain.RemarkEvent
	// Caller and BlockNumber are empty when the remark context is unknown
	Caller      string
	BlockNumber string
}

// Recorder persists rejected remarks for audit.
// Record accepts any input and never fails: a store error is logged and swallowed.
//
//go:generate mockgen -source=recorder.go -destination=../mocks/recorder.go -package=mocks -mock_names=Recorder=MockRecorder
type Recorder interface {
	Record(ctx context.Context, f Failure)
}

type recorder struct {
	store  store.Store
	clock  adapter.Clock
	logger *zap.Logger
}

// NewRecorder creates a failure recorder backed by the store
func NewRecorder(st store.Store, clock adapter.Clock, logger *zap.Logger) Recorder {
	return &recorder{
		store:  st,
		clock:  clock,
		logger: logger,
	}
}

func (r *recorder) Record(ctx context.Context, f Failure) {
	now := r.clock.Now()
	entity := &schema.FailedEntity{
		ID:          ulid.MustNewDefault(now).String(),
		Value:       f.Value,
		Reason:      f.Reason,
		Interaction: f.Interaction.String(),
		Caller:      f.Caller,
		BlockNumber: f.BlockNumber,
		CreatedAt:   now,
	}

	r.logger.Warn("Remark rejected",
		zap.String("interaction", entity.Interaction),
		zap.String("reason", entity.Reason),
		zap.String("caller", entity.Caller),
		zap.String("blockNumber", entity.BlockNumber),
	)

	if err := r.store.CreateFailedEntity(ctx, entity); err != nil {
		r.logger.Error("Fail in fail: could not record rejected remark",
			zap.Error(err),
			zap.String("id", entity.ID),
			zap.String("value", entity.Value),
			zap.String("reason", entity.Reason),
		)
	}
}
