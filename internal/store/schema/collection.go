package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Event is an entry of the append-only history embedded in collections and nfts
type Event struct {
	// Interaction is the protocol event token (MINT, SEND, ...)
	Interaction string `json:"interaction"`
	// Caller is the account that submitted the remark
	Caller string `json:"caller"`
	// BlockNumber is the block the remark was included in
	BlockNumber uint64 `json:"blockNumber"`
	// Timestamp is the block timestamp
	Timestamp time.Time `json:"timestamp"`
	// Meta is free-form context, e.g. the new owner or the new price
	Meta string `json:"meta"`
}

// Collection represents the collections table
type Collection struct {
	// ID is the protocol assigned collection id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the display name, trimmed of surrounding whitespace
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is the collection ticker, trimmed of surrounding whitespace
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// Max is the maximum supply (0 means unlimited)
	Max uint64 `gorm:"column:max;not null;type:bigint"`
	// Metadata is the metadata reference (usually an ipfs uri)
	Metadata string `gorm:"column:metadata;type:text"`
	// Issuer is the account that minted the collection. Never changes.
	Issuer string `gorm:"column:issuer;not null;type:text"`
	// CurrentOwner is the account allowed to mint into and administer the collection
	CurrentOwner string `gorm:"column:current_owner;not null;type:text;index"`
	// BlockNumber is the block the collection was minted in
	BlockNumber uint64 `gorm:"column:block_number;not null;type:bigint"`
	// Events is the ordered history of applied interactions
	Events datatypes.JSONSlice[Event] `gorm:"column:events;not null;type:jsonb"`
	// CreatedAt is the timestamp when this record was indexed
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}
