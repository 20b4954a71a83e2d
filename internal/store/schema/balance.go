package schema

import (
	"time"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// Balance represents the balances table - the fungible ledger's keyspace.
// Asset ownership is exactly one unit of the record's denomination held by
// the owning identity; the asset module reads and writes these rows only
// through the ledger interface.
type Balance struct {
	// ID is the internal database primary key; its order bounds the
	// by-owner enumeration used for owner listings
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Denom is the balance's denomination
	Denom domain.Denom `gorm:"column:denom;not null;type:text;uniqueIndex:idx_balances_denom_owner,priority:1;index:idx_balances_owner_denom,priority:2"`
	// Owner is the identity holding the balance
	Owner domain.Identity `gorm:"column:owner;not null;type:text;uniqueIndex:idx_balances_denom_owner,priority:2;index:idx_balances_owner_denom,priority:1"`
	// Amount is the number of units held
	Amount int64 `gorm:"column:amount;not null;default:0"`
	// CreatedAt is the timestamp when this balance row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this balance row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Balance model
func (Balance) TableName() string {
	return "balances"
}
