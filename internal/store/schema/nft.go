package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// NFT represents the nfts table - one row per existing asset record.
// The record exists iff its denomination has outstanding supply of exactly
// one unit in the fungible ledger; ownership itself is never stored here.
type NFT struct {
	// ID is the internal database primary key; its order fixes the
	// insertion order used by per-class listings
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ClassID references the class this record belongs to
	ClassID domain.ClassID `gorm:"column:class_id;not null;type:text;uniqueIndex:idx_nfts_class_local,priority:1"`
	// LocalID is the minter-chosen identifier, unique within the class
	LocalID domain.LocalID `gorm:"column:local_id;not null;type:text;uniqueIndex:idx_nfts_class_local,priority:2"`
	// Denom is the derived denomination, the record's key in the ledger
	Denom domain.Denom `gorm:"column:denom;not null;uniqueIndex;type:text"`
	// URI points to off-chain descriptive data; immutable after mint
	URI string `gorm:"column:uri;not null;type:text"`
	// Payload is an opaque document owned by callers; never interpreted here
	Payload datatypes.JSON `gorm:"column:payload;type:jsonb"`
	// CreatedAt is the timestamp when the record was minted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last payload edit
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the NFT model
func (NFT) TableName() string {
	return "nfts"
}
