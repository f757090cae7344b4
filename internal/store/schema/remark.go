package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
)

// Remark represents the remarks table - the raw archive of every extracted remark
type Remark struct {
	// ID is "<block>-<extrinsic>-<index in extrinsic>"
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Value is the raw remark payload as found on chain
	Value string `gorm:"column:value;not null;type:text"`
	// Caller is the signer of the extrinsic
	Caller string `gorm:"column:caller;not null;type:text"`
	// BlockNumber is the block the remark was included in
	BlockNumber string `gorm:"column:block_number;not null;type:text;index"`
	// Interaction is the decoded event token, or the decoded text when not a protocol remark
	Interaction string `gorm:"column:interaction;type:text"`
	// Extra holds the sibling calls of a batch
	Extra datatypes.JSONSlice[domain.ExtraCall] `gorm:"column:extra;type:jsonb"`
	// Timestamp is the block timestamp
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
}

// TableName specifies the table name for the Remark model
func (Remark) TableName() string {
	return "remarks"
}
