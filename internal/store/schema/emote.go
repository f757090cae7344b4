package schema

import "time"

// Emote represents the emotes table. An emote exists while toggled on.
type Emote struct {
	// ID is derived from the nft id, caller and value
	ID string `gorm:"column:id;primaryKey;type:text"`
	// NFTID references the nft the reaction is attached to
	NFTID string `gorm:"column:nft_id;not null;type:text;index"`
	// Caller is the reacting account
	Caller string `gorm:"column:caller;not null;type:text"`
	// Value is the reaction, e.g. a unicode codepoint
	Value string `gorm:"column:value;not null;type:text"`
	// CreatedAt is the timestamp when this record was indexed
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the Emote model
func (Emote) TableName() string {
	return "emotes"
}
