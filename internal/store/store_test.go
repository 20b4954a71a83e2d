package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// buildTestClass creates a class row for insertion
func buildTestClass(classID string) *schema.Class {
	return &schema.Class{
		ClassID:     domain.ClassID(classID),
		Name:        "Test Class " + classID,
		Symbol:      "TST",
		Description: "a class used in tests",
		Issuer:      "issuerAlice",
	}
}

// buildTestNFT creates a record row for insertion
func buildTestNFT(classID, localID string) *schema.NFT {
	return &schema.NFT{
		ClassID: domain.ClassID(classID),
		LocalID: domain.LocalID(localID),
		Denom:   domain.NewDenom(domain.ClassID(classID), domain.LocalID(localID)),
		URI:     "ipfs://test/" + localID,
		Payload: datatypes.JSON(`{"k":"v"}`),
	}
}

func TestClassStoreInsertAndGet(t *testing.T) {
	ctx := context.Background()
	classes := NewClassStore(initTestTx(t))

	require.NoError(t, classes.Insert(ctx, buildTestClass("art")))

	class, err := classes.Get(ctx, "art")
	require.NoError(t, err)
	assert.Equal(t, domain.ClassID("art"), class.ClassID)
	assert.Equal(t, domain.Identity("issuerAlice"), class.Issuer)
	assert.False(t, class.MintRestricted)
	assert.NotZero(t, class.ID)

	exists, err := classes.Has(ctx, "art")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClassStoreDuplicateInsert(t *testing.T) {
	ctx := context.Background()
	classes := NewClassStore(initTestTx(t))

	require.NoError(t, classes.Insert(ctx, buildTestClass("art")))

	err := classes.Insert(ctx, buildTestClass("art"))
	assert.ErrorIs(t, err, domain.ErrClassAlreadyExists)
}

func TestClassStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	classes := NewClassStore(initTestTx(t))

	_, err := classes.Get(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrClassNotFound)

	exists, err := classes.Has(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClassStoreListPagination(t *testing.T) {
	ctx := context.Background()
	classes := NewClassStore(initTestTx(t))

	var inserted []string
	for i := 0; i < 5; i++ {
		classID := fmt.Sprintf("class%d", i)
		require.NoError(t, classes.Insert(ctx, buildTestClass(classID)))
		inserted = append(inserted, classID)
	}

	// Walk the listing two at a time; every row must appear exactly once in
	// insertion order
	var seen []string
	cursor := ""
	for {
		page, next, err := classes.List(ctx, cursor, 2)
		require.NoError(t, err)
		require.LessOrEqual(t, len(page), 2)
		for _, class := range page {
			seen = append(seen, class.ClassID.String())
		}
		if next == "" {
			break
		}
		cursor = next
	}

	assert.Equal(t, inserted, seen)
}

func TestClassStoreListExactPageBoundary(t *testing.T) {
	ctx := context.Background()
	classes := NewClassStore(initTestTx(t))

	require.NoError(t, classes.Insert(ctx, buildTestClass("only")))

	page, next, err := classes.List(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, page, 1)

	// One more page may be handed out before the listing reports done
	if next != "" {
		page, next, err = classes.List(ctx, next, 1)
		require.NoError(t, err)
		assert.Empty(t, page)
		assert.Empty(t, next)
	}
}

func TestClassStoreListMalformedCursor(t *testing.T) {
	ctx := context.Background()
	classes := NewClassStore(initTestTx(t))

	_, _, err := classes.List(ctx, "not a cursor", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidCursor)
}

func TestNFTStoreInsertAndGet(t *testing.T) {
	ctx := context.Background()
	nfts := NewNFTStore(initTestTx(t))

	require.NoError(t, nfts.Insert(ctx, buildTestNFT("art", "1")))

	nft, err := nfts.Get(ctx, "art", "1")
	require.NoError(t, err)
	assert.Equal(t, domain.Denom("art/1"), nft.Denom)
	assert.Equal(t, "ipfs://test/1", nft.URI)
	assert.JSONEq(t, `{"k":"v"}`, string(nft.Payload))

	// Both access paths resolve to the same row
	byDenom, err := nfts.GetByDenom(ctx, "art/1")
	require.NoError(t, err)
	assert.Equal(t, nft.ID, byDenom.ID)
}

func TestNFTStoreDuplicateInsert(t *testing.T) {
	ctx := context.Background()
	nfts := NewNFTStore(initTestTx(t))

	require.NoError(t, nfts.Insert(ctx, buildTestNFT("art", "1")))

	err := nfts.Insert(ctx, buildTestNFT("art", "1"))
	assert.ErrorIs(t, err, domain.ErrNFTAlreadyExists)

	// Same local ID under another class is a different record
	require.NoError(t, nfts.Insert(ctx, buildTestNFT("photo", "1")))
}

func TestNFTStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	nfts := NewNFTStore(initTestTx(t))

	_, err := nfts.Get(ctx, "art", "404")
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)

	_, err = nfts.GetByDenom(ctx, "art/404")
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)
}

func TestNFTStoreUpdatePayload(t *testing.T) {
	ctx := context.Background()
	nfts := NewNFTStore(initTestTx(t))

	require.NoError(t, nfts.Insert(ctx, buildTestNFT("art", "1")))

	require.NoError(t, nfts.UpdatePayload(ctx, "art", "1", datatypes.JSON(`{"edition":2}`)))

	nft, err := nfts.Get(ctx, "art", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"edition":2}`, string(nft.Payload))
	// Identity fields and URI survive the edit untouched
	assert.Equal(t, domain.Denom("art/1"), nft.Denom)
	assert.Equal(t, "ipfs://test/1", nft.URI)

	err = nfts.UpdatePayload(ctx, "art", "404", datatypes.JSON(`{}`))
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)
}

func TestNFTStoreDelete(t *testing.T) {
	ctx := context.Background()
	nfts := NewNFTStore(initTestTx(t))

	require.NoError(t, nfts.Insert(ctx, buildTestNFT("art", "1")))
	require.NoError(t, nfts.Delete(ctx, "art", "1"))

	// Both access paths are gone together
	_, err := nfts.Get(ctx, "art", "1")
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)
	_, err = nfts.GetByDenom(ctx, "art/1")
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)

	err = nfts.Delete(ctx, "art", "1")
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)

	// The freed key may be minted again
	require.NoError(t, nfts.Insert(ctx, buildTestNFT("art", "1")))
}

func TestNFTStoreListByClass(t *testing.T) {
	ctx := context.Background()
	nfts := NewNFTStore(initTestTx(t))

	for i := 0; i < 5; i++ {
		require.NoError(t, nfts.Insert(ctx, buildTestNFT("art", fmt.Sprintf("%d", i))))
	}
	require.NoError(t, nfts.Insert(ctx, buildTestNFT("photo", "1")))

	var seen []string
	cursor := ""
	for {
		page, next, err := nfts.ListByClass(ctx, "art", cursor, 2)
		require.NoError(t, err)
		for _, nft := range page {
			seen = append(seen, nft.LocalID.String())
		}
		if next == "" {
			break
		}
		cursor = next
	}

	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, seen)
}

func TestNFTStoreCountByClass(t *testing.T) {
	ctx := context.Background()
	nfts := NewNFTStore(initTestTx(t))

	count, err := nfts.CountByClass(ctx, "art")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for i := 0; i < 3; i++ {
		require.NoError(t, nfts.Insert(ctx, buildTestNFT("art", fmt.Sprintf("%d", i))))
	}

	count, err = nfts.CountByClass(ctx, "art")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, nfts.Delete(ctx, "art", "0"))

	count, err = nfts.CountByClass(ctx, "art")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
