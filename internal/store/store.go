package store

import (
	"context"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
)

// Store defines the interface for entity persistence.
// Getters return (nil, nil) when the entity does not exist.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetCollection retrieves a collection by id
	GetCollection(ctx context.Context, id string) (*schema.Collection, error)
	// CreateCollection inserts a new collection, failing with domain.ErrCollectionAlreadyExists on conflict
	CreateCollection(ctx context.Context, collection *schema.Collection) error
	// SaveCollection upserts a collection by id
	SaveCollection(ctx context.Context, collection *schema.Collection) error

	// GetNFT retrieves an nft by id
	GetNFT(ctx context.Context, id string) (*schema.NFT, error)
	// CreateNFT inserts a new nft, failing with domain.ErrNFTAlreadyExists on conflict
	CreateNFT(ctx context.Context, nft *schema.NFT) error
	// SaveNFT upserts an nft by id
	SaveNFT(ctx context.Context, nft *schema.NFT) error

	// GetEmote retrieves an emote by id
	GetEmote(ctx context.Context, id string) (*schema.Emote, error)
	// CreateEmote inserts a new emote, failing with domain.ErrEmoteAlreadyExists on conflict
	CreateEmote(ctx context.Context, emote *schema.Emote) error
	// RemoveEmote deletes an emote by id, failing with domain.ErrEntityNotFound when absent
	RemoveEmote(ctx context.Context, id string) error

	// CreateFailedEntity appends a rejection record
	CreateFailedEntity(ctx context.Context, failed *schema.FailedEntity) error

	// SaveRemark upserts a raw remark into the archive
	SaveRemark(ctx context.Context, remark *schema.Remark) error

	// GetRemarkCursor retrieves the position of the last processed extrinsic for a chain
	GetRemarkCursor(ctx context.Context, chain domain.Chain) (domain.Position, error)
	// SetRemarkCursor stores the position of the last processed extrinsic for a chain
	SetRemarkCursor(ctx context.Context, chain domain.Chain, position domain.Position) error

	// Transaction runs fn atomically. Every store call made with the context handed to fn
	// commits when fn returns nil and is rolled back when it returns an error.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
