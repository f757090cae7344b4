package schema

import (
	"time"

	"gorm.io/datatypes"
)

// NFT represents the nfts table
type NFT struct {
	// ID is derived from the mint block, collection, instance and serial number
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the display name
	Name string `gorm:"column:name;type:text"`
	// Instance is the instance tag inside the collection
	Instance string `gorm:"column:instance;type:text"`
	// Transferable indicates whether SEND and BUY are allowed
	Transferable bool `gorm:"column:transferable;not null;default:false"`
	// CollectionID references the parent collection
	CollectionID string `gorm:"column:collection_id;not null;type:text;index"`
	// SN is the serial number within the collection
	SN string `gorm:"column:sn;not null;type:text"`
	// Metadata is the metadata reference (usually an ipfs uri)
	Metadata string `gorm:"column:metadata;type:text"`
	// Price is the asking price in planck, "0" when not listed (stored as string to support u128)
	Price string `gorm:"column:price;not null;default:0;type:numeric(78,0)"`
	// Burned indicates the nft was consumed. Burned nfts accept no further interaction.
	Burned bool `gorm:"column:burned;not null;default:false"`
	// Issuer is the account that minted the nft. Never changes.
	Issuer string `gorm:"column:issuer;not null;type:text"`
	// CurrentOwner is the account currently owning the nft
	CurrentOwner string `gorm:"column:current_owner;not null;type:text;index"`
	// BlockNumber is the block the nft was minted in
	BlockNumber uint64 `gorm:"column:block_number;not null;type:bigint"`
	// Events is the ordered history of applied interactions
	Events datatypes.JSONSlice[Event] `gorm:"column:events;not null;type:jsonb"`
	// CreatedAt is the timestamp when this record was indexed
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the NFT model
func (NFT) TableName() string {
	return "nfts"
}
