package domain

import "errors"

var (
	// ErrCollectionAlreadyExists is returned when creating a collection whose id is taken
	ErrCollectionAlreadyExists = errors.New("collection already exists")

	// ErrNFTAlreadyExists is returned when creating an nft whose id is taken
	ErrNFTAlreadyExists = errors.New("nft already exists")

	// ErrEmoteAlreadyExists is returned when creating an emote whose id is taken
	ErrEmoteAlreadyExists = errors.New("emote already exists")

	// ErrEntityNotFound is returned when saving or removing an entity that is not stored
	ErrEntityNotFound = errors.New("entity not found")
)
