package store

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// ClassStore is the class registry. Class metadata is immutable after
// insert; there is no update or delete.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks
type ClassStore interface {
	// WithTx rebinds the store to a transaction handle
	WithTx(tx *gorm.DB) ClassStore
	// Insert registers a class, failing with domain.ErrClassAlreadyExists
	// if the class ID is taken
	Insert(ctx context.Context, class *schema.Class) error
	// Get retrieves a class by ID, failing with domain.ErrClassNotFound
	Get(ctx context.Context, classID domain.ClassID) (*schema.Class, error)
	// Has reports whether a class is registered
	Has(ctx context.Context, classID domain.ClassID) (bool, error)
	// List pages through classes in insertion order. It returns the page
	// and an opaque continuation cursor, empty when the listing is done.
	List(ctx context.Context, cursor string, limit int) ([]*schema.Class, string, error)
}

// NFTStore is the asset record store, addressable by (class, local ID) and
// by denomination. Both access paths are backed by one row, so they can
// never diverge.
type NFTStore interface {
	// WithTx rebinds the store to a transaction handle
	WithTx(tx *gorm.DB) NFTStore
	// Insert creates a record, failing with domain.ErrNFTAlreadyExists if
	// (class ID, local ID) is taken
	Insert(ctx context.Context, nft *schema.NFT) error
	// Get retrieves a record, failing with domain.ErrNFTNotFound
	Get(ctx context.Context, classID domain.ClassID, localID domain.LocalID) (*schema.NFT, error)
	// GetByDenom retrieves a record by denomination, failing with domain.ErrNFTNotFound
	GetByDenom(ctx context.Context, denom domain.Denom) (*schema.NFT, error)
	// UpdatePayload replaces a record's payload in place, preserving the
	// identity fields and URI; fails with domain.ErrNFTNotFound
	UpdatePayload(ctx context.Context, classID domain.ClassID, localID domain.LocalID, payload datatypes.JSON) error
	// Delete removes a record and with it both access paths atomically;
	// fails with domain.ErrNFTNotFound
	Delete(ctx context.Context, classID domain.ClassID, localID domain.LocalID) error
	// ListByClass pages through a class's records in insertion order
	ListByClass(ctx context.Context, classID domain.ClassID, cursor string, limit int) ([]*schema.NFT, string, error)
	// CountByClass returns the number of existing records under a class
	CountByClass(ctx context.Context, classID domain.ClassID) (int64, error)
}
