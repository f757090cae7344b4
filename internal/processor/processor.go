package processor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/rmrk"
	"github.com/feral-file/ff-rmrk-indexer/internal/store"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
	"github.com/feral-file/ff-rmrk-indexer/internal/validation"
)

var (
	// ErrUnsupportedEvent is returned for messages without a handler
	ErrUnsupportedEvent = errors.New("unsupported event")
	// ErrMissingPayload is returned when a message carries no payload for its event
	ErrMissingPayload = errors.New("missing payload")
)

// Processor applies decoded remarks to the entity store.
// Remarks must be processed one at a time in chain order.
//
//go:generate mockgen -source=processor.go -destination=../mocks/processor.go -package=mocks -mock_names=Processor=MockProcessor
type Processor interface {
	// Process validates msg against the current state and persists the transition.
	// Guard failures are returned as *validation.Rejection.
	Process(ctx context.Context, remark domain.Remark, msg *rmrk.Message) error
}

type processor struct {
	store  store.Store
	policy validation.PaymentPolicy
	logger *zap.Logger
}

// New creates a processor
func New(st store.Store, policy validation.PaymentPolicy, logger *zap.Logger) Processor {
	return &processor{
		store:  st,
		policy: policy,
		logger: logger,
	}
}

// call is the context a remark was submitted under
type call struct {
	domain.Remark
	block uint64
}

func (c call) event(event domain.RemarkEvent, meta string) schema.Event {
	return schema.Event{
		Interaction: event.String(),
		Caller:      c.Caller,
		BlockNumber: c.block,
		Timestamp:   c.Timestamp,
		Meta:        meta,
	}
}

func (p *processor) Process(ctx context.Context, remark domain.Remark, msg *rmrk.Message) error {
	if msg == nil {
		return fmt.Errorf("%w: no message", ErrUnsupportedEvent)
	}

	block, err := remark.Block()
	if err != nil {
		return err
	}
	c := call{Remark: remark, block: block}

	switch msg.Event {
	case domain.RemarkEventMint:
		if msg.Collection == nil {
			return fmt.Errorf("%w: %s", ErrMissingPayload, msg.Event)
		}
		return p.mint(ctx, c, msg.Collection)
	case domain.RemarkEventMintNFT:
		if msg.NFT == nil {
			return fmt.Errorf("%w: %s", ErrMissingPayload, msg.Event)
		}
		return p.mintNFT(ctx, c, msg.NFT)
	case domain.RemarkEventSend,
		domain.RemarkEventBuy,
		domain.RemarkEventConsume,
		domain.RemarkEventList,
		domain.RemarkEventChangeIssuer,
		domain.RemarkEventEmote:
		if msg.Interaction == nil {
			return fmt.Errorf("%w: %s", ErrMissingPayload, msg.Event)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedEvent, msg.Event)
	}

	switch msg.Event {
	case domain.RemarkEventSend:
		return p.send(ctx, c, msg.Interaction)
	case domain.RemarkEventBuy:
		return p.buy(ctx, c, msg.Interaction)
	case domain.RemarkEventConsume:
		return p.consume(ctx, c, msg.Interaction)
	case domain.RemarkEventList:
		return p.list(ctx, c, msg.Interaction)
	case domain.RemarkEventChangeIssuer:
		return p.changeIssuer(ctx, c, msg.Interaction)
	default:
		return p.emote(ctx, c, msg.Interaction)
	}
}

// loadCollection looks up a collection and fails when it does not exist
func (p *processor) loadCollection(ctx context.Context, id string, out **schema.Collection) validation.Check {
	return func() error {
		collection, err := p.store.GetCollection(ctx, id)
		if err != nil {
			return err
		}
		*out = collection
		return validation.Exists("collection", id, collection != nil)()
	}
}

// collectionAvailable fails when a collection with the id already exists
func (p *processor) collectionAvailable(ctx context.Context, id string) validation.Check {
	return func() error {
		collection, err := p.store.GetCollection(ctx, id)
		if err != nil {
			return err
		}
		return validation.NotExists("collection", id, collection != nil)()
	}
}

// loadNFT looks up an nft and fails when it does not exist
func (p *processor) loadNFT(ctx context.Context, id string, out **schema.NFT) validation.Check {
	return func() error {
		nft, err := p.store.GetNFT(ctx, id)
		if err != nil {
			return err
		}
		*out = nft
		return validation.Exists("nft", id, nft != nil)()
	}
}

// nftAvailable fails when an nft with the id already exists
func (p *processor) nftAvailable(ctx context.Context, id string) validation.Check {
	return func() error {
		nft, err := p.store.GetNFT(ctx, id)
		if err != nil {
			return err
		}
		return validation.NotExists("nft", id, nft != nil)()
	}
}
