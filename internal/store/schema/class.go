package schema

import (
	"time"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// Class represents the classes table - one row per registered asset class.
// Rows are immutable after issue; there is no class edit operation.
type Class struct {
	// ID is the internal database primary key; its order fixes the
	// insertion order used by paginated listings
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ClassID is the caller-chosen unique class identifier
	ClassID domain.ClassID `gorm:"column:class_id;not null;uniqueIndex;type:text"`
	// Name is the human-readable class name
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is the abbreviated class name
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// Description is free-form class documentation
	Description string `gorm:"column:description;not null;type:text"`
	// MintRestricted limits minting under this class to the issuer
	MintRestricted bool `gorm:"column:mint_restricted;not null;default:false"`
	// EditRestricted limits edits of records under this class
	EditRestricted bool `gorm:"column:edit_restricted;not null;default:false"`
	// Issuer is the verified identity that issued the class
	Issuer domain.Identity `gorm:"column:issuer;not null;type:text"`
	// CreatedAt is the timestamp when the class was issued
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Class model
func (Class) TableName() string {
	return "classes"
}
