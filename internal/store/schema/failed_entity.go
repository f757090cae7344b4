package schema

import "time"

// FailedEntity represents the failed_entities table - an append-only audit log of rejected remarks
type FailedEntity struct {
	// ID is a random ULID
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Value is the payload that failed
	Value string `gorm:"column:value;type:text"`
	// Reason is the human readable rejection reason
	Reason string `gorm:"column:reason;not null;type:text"`
	// Interaction is the attempted protocol event token
	Interaction string `gorm:"column:interaction;not null;type:text;index"`
	// Caller is the account that submitted the remark, if known
	Caller string `gorm:"column:caller;type:text"`
	// BlockNumber is the block the remark was included in, if known
	BlockNumber string `gorm:"column:block_number;type:text"`
	// CreatedAt is the timestamp when the failure was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the FailedEntity model
func (FailedEntity) TableName() string {
	return "failed_entities"
}
