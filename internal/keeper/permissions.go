package keeper

import (
	"context"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/ledger"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// The permission guard is a set of pure predicates over registry state and
// ledger balances. Restriction flags are read from the class row fetched in
// the current operation, never cached across operations.

// CanMint reports whether the caller may mint under the class: minting is
// open unless the class is mint-restricted, in which case only the issuer
// may mint.
func CanMint(class *schema.Class, caller domain.Identity) bool {
	return !class.MintRestricted || caller == class.Issuer
}

// CanEdit reports whether the caller may edit a record of the class: edits
// are open unless the class is edit-restricted, in which case the record's
// current owner and the class issuer may edit. The issuer keeps this right
// after the record is transferred away.
func CanEdit(ctx context.Context, l ledger.Ledger, class *schema.Class, nft *schema.NFT, caller domain.Identity) (bool, error) {
	if !class.EditRestricted || caller == class.Issuer {
		return true, nil
	}
	return ownsRecord(ctx, l, nft, caller)
}

// CanBurnOrSend reports whether the caller currently owns the record's
// denomination with balance of at least one unit.
func CanBurnOrSend(ctx context.Context, l ledger.Ledger, nft *schema.NFT, caller domain.Identity) (bool, error) {
	return ownsRecord(ctx, l, nft, caller)
}

func ownsRecord(ctx context.Context, l ledger.Ledger, nft *schema.NFT, caller domain.Identity) (bool, error) {
	balance, err := l.BalanceOf(ctx, caller, nft.Denom)
	if err != nil {
		return false, err
	}
	return balance >= 1, nil
}
