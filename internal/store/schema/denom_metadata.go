package schema

import (
	"time"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// DenomMetadata represents the denom_metadata table - the fungible ledger's
// per-denomination descriptor, written on mint and cleared on burn.
type DenomMetadata struct {
	// Denom is the denomination the descriptor belongs to
	Denom domain.Denom `gorm:"column:denom;primaryKey;type:text"`
	// Name is the display name carried over from the class
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is the class symbol
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// URI points to the record's off-chain descriptive data
	URI string `gorm:"column:uri;not null;type:text"`
	// CreatedAt is the timestamp when the descriptor was set
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DenomMetadata model
func (DenomMetadata) TableName() string {
	return "denom_metadata"
}
