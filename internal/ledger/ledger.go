package ledger

import (
	"context"

	"gorm.io/gorm"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// Ledger is the narrow interface the asset module requires from the host's
// fungible ledger. The module represents ownership of every asset record as
// exactly one unit of the record's denomination held by the owner; these
// calls are the only way ownership changes.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks
type Ledger interface {
	// WithTx rebinds the ledger to a transaction handle so its writes join
	// the caller's atomic scope
	WithTx(tx *gorm.DB) Ledger
	// MintUnit mints one unit of denom into the recipient's balance. It
	// fails if the denomination already has outstanding supply.
	MintUnit(ctx context.Context, denom domain.Denom, to domain.Identity) error
	// BurnUnit burns one unit of denom from the holder's balance, failing
	// if the holder's balance is below one unit
	BurnUnit(ctx context.Context, denom domain.Denom, from domain.Identity) error
	// TransferUnit moves one unit of denom between identities, failing if
	// the sender's balance is below one unit
	TransferUnit(ctx context.Context, denom domain.Denom, from, to domain.Identity) error
	// SetDenomMetadata stores the denomination's descriptor
	SetDenomMetadata(ctx context.Context, meta domain.DenomMetadata) error
	// ClearDenomMetadata removes the denomination's descriptor
	ClearDenomMetadata(ctx context.Context, denom domain.Denom) error
	// BalanceOf returns the units of denom held by the identity
	BalanceOf(ctx context.Context, owner domain.Identity, denom domain.Denom) (int64, error)
	// DenomsOwned pages through the denominations an identity holds at
	// least one unit of, in the ledger's enumeration order
	DenomsOwned(ctx context.Context, owner domain.Identity, cursor string, limit int) ([]domain.Denom, string, error)
}
