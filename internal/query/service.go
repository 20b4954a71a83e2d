package query

import (
	"context"
	"errors"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/ledger"
	"github.com/feral-file/nft-ledger/internal/store"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

const defaultPageSize = 20

// Service answers read-only queries over the class registry, the asset
// record store and the fungible ledger. It never mutates state. Supply and
// balance are always derived by counting; nothing is stored a second time.
type Service struct {
	classes store.ClassStore
	nfts    store.NFTStore
	ledger  ledger.Ledger
}

// New creates a query service over the given collaborators
func New(classes store.ClassStore, nfts store.NFTStore, l ledger.Ledger) *Service {
	return &Service{
		classes: classes,
		nfts:    nfts,
		ledger:  l,
	}
}

// GetClass retrieves a class by ID
func (s *Service) GetClass(ctx context.Context, classID domain.ClassID) (*schema.Class, error) {
	return s.classes.Get(ctx, classID)
}

// ListClasses pages through classes in issue order
func (s *Service) ListClasses(ctx context.Context, cursor string, limit int) ([]*schema.Class, string, error) {
	return s.classes.List(ctx, cursor, normalizeLimit(limit))
}

// GetNFT retrieves a single asset record
func (s *Service) GetNFT(ctx context.Context, classID domain.ClassID, localID domain.LocalID) (*schema.NFT, error) {
	return s.nfts.Get(ctx, classID, localID)
}

// ListNFTsByClass pages through a class's records in mint order
func (s *Service) ListNFTsByClass(ctx context.Context, classID domain.ClassID, cursor string, limit int) ([]*schema.NFT, string, error) {
	if _, err := s.classes.Get(ctx, classID); err != nil {
		return nil, "", err
	}
	return s.nfts.ListByClass(ctx, classID, cursor, normalizeLimit(limit))
}

// ListNFTsByOwner pages through the records an identity owns. The listing
// enumerates the owner's denominations through the ledger and joins them
// against the record store, so its order and bounds are the ledger's.
func (s *Service) ListNFTsByOwner(ctx context.Context, owner domain.Identity, cursor string, limit int) ([]*schema.NFT, string, error) {
	denoms, next, err := s.ledger.DenomsOwned(ctx, owner, cursor, normalizeLimit(limit))
	if err != nil {
		return nil, "", err
	}

	nfts := make([]*schema.NFT, 0, len(denoms))
	for _, denom := range denoms {
		nft, err := s.nfts.GetByDenom(ctx, denom)
		if err != nil {
			// A shared ledger may hold balances that are not asset
			// records; those denominations are not part of this listing.
			if errors.Is(err, domain.ErrNFTNotFound) {
				continue
			}
			return nil, "", err
		}
		nfts = append(nfts, nft)
	}

	return nfts, next, nil
}

// Supply returns the number of existing records under a class
func (s *Service) Supply(ctx context.Context, classID domain.ClassID) (int64, error) {
	if _, err := s.classes.Get(ctx, classID); err != nil {
		return 0, err
	}
	return s.nfts.CountByClass(ctx, classID)
}

// Balance returns the number of records under a class owned by the
// identity, derived by walking the owner's ledger denominations
func (s *Service) Balance(ctx context.Context, owner domain.Identity, classID domain.ClassID) (int64, error) {
	if _, err := s.classes.Get(ctx, classID); err != nil {
		return 0, err
	}

	var count int64
	cursor := ""
	for {
		denoms, next, err := s.ledger.DenomsOwned(ctx, owner, cursor, defaultPageSize)
		if err != nil {
			return 0, err
		}
		for _, denom := range denoms {
			ownerClass, _, err := denom.Parse()
			if err != nil {
				continue
			}
			if ownerClass == classID {
				count++
			}
		}
		if next == "" {
			return count, nil
		}
		cursor = next
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return limit
}
