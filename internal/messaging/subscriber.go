package messaging

import (
	"context"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
)

// ExtrinsicHandler is called for every extrinsic, in chain order
type ExtrinsicHandler func(extrinsic *domain.Extrinsic) error

// Subscriber defines the common interface for reading signed extrinsics of a chain
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeExtrinsics delivers extrinsics starting at fromBlock until the source is exhausted.
	// An error returned by the handler stops the subscription and is returned as is.
	SubscribeExtrinsics(ctx context.Context, fromBlock uint64, handler ExtrinsicHandler) error

	// Close closes the source and cleans up resources
	Close()
}
