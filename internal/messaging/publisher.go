package messaging

import (
	"context"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
)

// Publisher defines the interface for publishing remark batches to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishBatch publishes the remarks of one extrinsic.
	// Publishing the same position twice is deduplicated by the broker.
	PublishBatch(ctx context.Context, batch *domain.RemarkBatch) error
	// Close closes the connection
	Close()
}
