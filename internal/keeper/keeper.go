package keeper

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/ledger"
	"github.com/feral-file/nft-ledger/internal/store"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// Keeper orchestrates the mutating operations over the class registry, the
// asset record store and the fungible ledger. Every operation runs inside a
// single database transaction: either all of its state changes commit, or
// none do. The keeper is an explicit handle; there is no package-level
// state.
type Keeper struct {
	db      *gorm.DB
	classes store.ClassStore
	nfts    store.NFTStore
	ledger  ledger.Ledger
}

// New creates a keeper over the given database handle and collaborators
func New(db *gorm.DB, classes store.ClassStore, nfts store.NFTStore, l ledger.Ledger) *Keeper {
	return &Keeper{
		db:      db,
		classes: classes,
		nfts:    nfts,
		ledger:  l,
	}
}

// IssueInput carries the class metadata for Issue
type IssueInput struct {
	ClassID        domain.ClassID
	Name           string
	Symbol         string
	Description    string
	MintRestricted bool
	EditRestricted bool
}

// MintInput carries the record fields for Mint
type MintInput struct {
	ClassID domain.ClassID
	LocalID domain.LocalID
	URI     string
	Payload datatypes.JSON
}

// EditInput carries the mutable record fields for Edit
type EditInput struct {
	ClassID domain.ClassID
	LocalID domain.LocalID
	Payload datatypes.JSON
}

// Issue registers a new asset class with the caller as its issuer
func (k *Keeper) Issue(ctx context.Context, input IssueInput, issuer domain.Identity) error {
	if !input.ClassID.Valid() {
		return fmt.Errorf("%w: class id %q", domain.ErrInvalidArgument, input.ClassID)
	}

	return k.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return k.classes.WithTx(tx).Insert(ctx, &schema.Class{
			ClassID:        input.ClassID,
			Name:           input.Name,
			Symbol:         input.Symbol,
			Description:    input.Description,
			MintRestricted: input.MintRestricted,
			EditRestricted: input.EditRestricted,
			Issuer:         issuer,
		})
	})
}

// Mint creates an asset record under a registered class and mints one unit
// of its denomination to the recipient
func (k *Keeper) Mint(ctx context.Context, input MintInput, minter, recipient domain.Identity) error {
	if !input.ClassID.Valid() {
		return fmt.Errorf("%w: class id %q", domain.ErrInvalidArgument, input.ClassID)
	}
	if !input.LocalID.Valid() {
		return fmt.Errorf("%w: local id %q", domain.ErrInvalidArgument, input.LocalID)
	}

	return k.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		classes := k.classes.WithTx(tx)
		nfts := k.nfts.WithTx(tx)
		l := k.ledger.WithTx(tx)

		class, err := classes.Get(ctx, input.ClassID)
		if err != nil {
			return err
		}
		if !CanMint(class, minter) {
			return fmt.Errorf("%w: %s may not mint under mint-restricted class %s", domain.ErrPermissionDenied, minter, class.ClassID)
		}

		denom := domain.NewDenom(input.ClassID, input.LocalID)
		if err := nfts.Insert(ctx, &schema.NFT{
			ClassID: input.ClassID,
			LocalID: input.LocalID,
			Denom:   denom,
			URI:     input.URI,
			Payload: input.Payload,
		}); err != nil {
			return err
		}

		if err := l.SetDenomMetadata(ctx, domain.DenomMetadata{
			Denom:  denom,
			Name:   class.Name,
			Symbol: class.Symbol,
			URI:    input.URI,
		}); err != nil {
			return err
		}

		return l.MintUnit(ctx, denom, recipient)
	})
}

// Edit replaces an asset record's payload. URI and identity fields are
// immutable.
func (k *Keeper) Edit(ctx context.Context, input EditInput, editor domain.Identity) error {
	return k.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		classes := k.classes.WithTx(tx)
		nfts := k.nfts.WithTx(tx)
		l := k.ledger.WithTx(tx)

		nft, err := nfts.Get(ctx, input.ClassID, input.LocalID)
		if err != nil {
			return err
		}
		class, err := classes.Get(ctx, nft.ClassID)
		if err != nil {
			return err
		}

		allowed, err := CanEdit(ctx, l, class, nft, editor)
		if err != nil {
			return err
		}
		if !allowed {
			return fmt.Errorf("%w: %s may not edit %s", domain.ErrPermissionDenied, editor, nft.Denom)
		}

		return nfts.UpdatePayload(ctx, input.ClassID, input.LocalID, input.Payload)
	})
}

// Send moves ownership of an asset record from sender to receiver by moving
// the one unit of its denomination
func (k *Keeper) Send(ctx context.Context, classID domain.ClassID, localID domain.LocalID, sender, receiver domain.Identity) error {
	return k.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		nfts := k.nfts.WithTx(tx)
		l := k.ledger.WithTx(tx)

		nft, err := nfts.Get(ctx, classID, localID)
		if err != nil {
			return err
		}

		owns, err := CanBurnOrSend(ctx, l, nft, sender)
		if err != nil {
			return err
		}
		if !owns {
			return fmt.Errorf("%w: %s does not own %s", domain.ErrPermissionDenied, sender, nft.Denom)
		}

		return l.TransferUnit(ctx, nft.Denom, sender, receiver)
	})
}

// Burn retires an asset record: the owner's unit is burned, the
// denomination descriptor cleared, and the record deleted
func (k *Keeper) Burn(ctx context.Context, classID domain.ClassID, localID domain.LocalID, destroyer domain.Identity) error {
	return k.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		nfts := k.nfts.WithTx(tx)
		l := k.ledger.WithTx(tx)

		nft, err := nfts.Get(ctx, classID, localID)
		if err != nil {
			return err
		}

		owns, err := CanBurnOrSend(ctx, l, nft, destroyer)
		if err != nil {
			return err
		}
		if !owns {
			return fmt.Errorf("%w: %s does not own %s", domain.ErrPermissionDenied, destroyer, nft.Denom)
		}

		if err := l.BurnUnit(ctx, nft.Denom, destroyer); err != nil {
			return err
		}
		if err := l.ClearDenomMetadata(ctx, nft.Denom); err != nil {
			return err
		}

		return nfts.Delete(ctx, classID, localID)
	})
}
