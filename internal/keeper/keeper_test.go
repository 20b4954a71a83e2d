package keeper

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/ledger"
	"github.com/feral-file/nft-ledger/internal/mocks"
	"github.com/feral-file/nft-ledger/internal/store"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	var dsn string
	var err error

	if dbHost := os.Getenv("TEST_DB_HOST"); dbHost != "" {
		dsn = fmt.Sprintf("host=%s port=5432 user=postgres password=postgres dbname=test_db sslmode=disable", dbHost)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			os.Exit(1)
		}
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	err = testDB.AutoMigrate(
		&schema.Class{},
		&schema.NFT{},
		&schema.Balance{},
		&schema.DenomMetadata{},
	)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// testEnv wires a keeper and its collaborators over a rollback-on-cleanup
// transaction
type testEnv struct {
	tx      *gorm.DB
	keeper  *Keeper
	classes store.ClassStore
	nfts    store.NFTStore
	ledger  ledger.Ledger
}

func initTestEnv(t *testing.T) *testEnv {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	classes := store.NewClassStore(tx)
	nfts := store.NewNFTStore(tx)
	l := ledger.NewBankLedger(tx)

	return &testEnv{
		tx:      tx,
		keeper:  New(tx, classes, nfts, l),
		classes: classes,
		nfts:    nfts,
		ledger:  l,
	}
}

// issueClass registers a class for tests that need one
func (e *testEnv) issueClass(t *testing.T, classID string, mintRestricted, editRestricted bool) {
	err := e.keeper.Issue(context.Background(), IssueInput{
		ClassID:        domain.ClassID(classID),
		Name:           "Test Class",
		Symbol:         "TST",
		MintRestricted: mintRestricted,
		EditRestricted: editRestricted,
	}, "issuerAlice")
	require.NoError(t, err)
}

// mintNFT mints a record for tests that need one
func (e *testEnv) mintNFT(t *testing.T, classID, localID string, minter, recipient domain.Identity) {
	err := e.keeper.Mint(context.Background(), MintInput{
		ClassID: domain.ClassID(classID),
		LocalID: domain.LocalID(localID),
		URI:     "ipfs://test/" + localID,
		Payload: datatypes.JSON(`{"k":"v"}`),
	}, minter, recipient)
	require.NoError(t, err)
}

func TestIssue(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", false, false)

	class, err := env.classes.Get(ctx, "art")
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("issuerAlice"), class.Issuer)
}

func TestIssueDuplicateClassID(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", false, false)

	err := env.keeper.Issue(ctx, IssueInput{ClassID: "art"}, "someoneElse")
	assert.ErrorIs(t, err, domain.ErrClassAlreadyExists)
}

func TestIssueInvalidClassID(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	for _, classID := range []domain.ClassID{"", "art/1", "has space"} {
		err := env.keeper.Issue(ctx, IssueInput{ClassID: classID}, "issuerAlice")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
}

func TestMint(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", false, false)
	// The class is open, so any caller may mint
	env.mintNFT(t, "art", "1", "randomMinter", "bob")

	nft, err := env.nfts.Get(ctx, "art", "1")
	require.NoError(t, err)
	assert.Equal(t, domain.Denom("art/1"), nft.Denom)

	// The recipient holds exactly one unit of the denomination
	balance, err := env.ledger.BalanceOf(ctx, "bob", "art/1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), balance)

	// The ledger carries the denomination descriptor
	var meta schema.DenomMetadata
	require.NoError(t, env.tx.Where("denom = ?", "art/1").First(&meta).Error)
	assert.Equal(t, "Test Class", meta.Name)
	assert.Equal(t, "ipfs://test/1", meta.URI)
}

func TestMintUnknownClass(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	err := env.keeper.Mint(ctx, MintInput{ClassID: "ghost", LocalID: "1"}, "alice", "alice")
	assert.ErrorIs(t, err, domain.ErrClassNotFound)
}

func TestMintDuplicateRecord(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", false, false)
	env.mintNFT(t, "art", "1", "alice", "alice")

	err := env.keeper.Mint(ctx, MintInput{ClassID: "art", LocalID: "1"}, "alice", "bob")
	assert.ErrorIs(t, err, domain.ErrNFTAlreadyExists)

	// The failed mint must not have touched bob's balance
	balance, err := env.ledger.BalanceOf(ctx, "bob", "art/1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestMintRestrictedClass(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", true, false)

	err := env.keeper.Mint(ctx, MintInput{ClassID: "art", LocalID: "1"}, "stranger", "stranger")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	// The issuer may mint, to any recipient
	env.mintNFT(t, "art", "1", "issuerAlice", "bob")
}

func TestMintInvalidIDs(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", false, false)

	err := env.keeper.Mint(ctx, MintInput{ClassID: "art", LocalID: "a/b"}, "alice", "alice")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = env.keeper.Mint(ctx, MintInput{ClassID: "", LocalID: "1"}, "alice", "alice")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestEditOpenClass(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", false, false)
	env.mintNFT(t, "art", "1", "alice", "alice")

	// Edits are open on an unrestricted class, even for strangers
	err := env.keeper.Edit(ctx, EditInput{
		ClassID: "art",
		LocalID: "1",
		Payload: datatypes.JSON(`{"edition":2}`),
	}, "stranger")
	require.NoError(t, err)

	nft, err := env.nfts.Get(ctx, "art", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"edition":2}`, string(nft.Payload))
	assert.Equal(t, "ipfs://test/1", nft.URI)
}

func TestEditRestrictedClass(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", false, true)
	env.mintNFT(t, "art", "1", "alice", "bob")

	// The owner may edit
	require.NoError(t, env.keeper.Edit(ctx, EditInput{
		ClassID: "art", LocalID: "1", Payload: datatypes.JSON(`{"v":1}`),
	}, "bob"))

	// The issuer may edit without owning the record
	require.NoError(t, env.keeper.Edit(ctx, EditInput{
		ClassID: "art", LocalID: "1", Payload: datatypes.JSON(`{"v":2}`),
	}, "issuerAlice"))

	// Anyone else is denied
	err := env.keeper.Edit(ctx, EditInput{
		ClassID: "art", LocalID: "1", Payload: datatypes.JSON(`{"v":3}`),
	}, "stranger")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	nft, err := env.nfts.Get(ctx, "art", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(nft.Payload))
}

func TestEditMissingRecord(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	err := env.keeper.Edit(ctx, EditInput{ClassID: "art", LocalID: "404"}, "alice")
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)
}

func TestSend(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", false, false)
	env.mintNFT(t, "art", "1", "alice", "alice")

	require.NoError(t, env.keeper.Send(ctx, "art", "1", "alice", "bob"))

	aliceBalance, err := env.ledger.BalanceOf(ctx, "alice", "art/1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), aliceBalance)

	bobBalance, err := env.ledger.BalanceOf(ctx, "bob", "art/1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), bobBalance)

	// The record itself is untouched by a transfer
	nft, err := env.nfts.Get(ctx, "art", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"v"}`, string(nft.Payload))
}

func TestSendByNonOwner(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", false, false)
	env.mintNFT(t, "art", "1", "alice", "alice")

	err := env.keeper.Send(ctx, "art", "1", "bob", "carol")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	// Ownership is unchanged
	balance, err := env.ledger.BalanceOf(ctx, "alice", "art/1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), balance)
}

func TestSendMissingRecord(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	err := env.keeper.Send(ctx, "art", "404", "alice", "bob")
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)
}

func TestBurn(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", false, false)
	env.mintNFT(t, "art", "1", "alice", "alice")

	require.NoError(t, env.keeper.Burn(ctx, "art", "1", "alice"))

	// The record is gone through both access paths
	_, err := env.nfts.Get(ctx, "art", "1")
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)
	_, err = env.nfts.GetByDenom(ctx, "art/1")
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)

	// Supply and descriptor are gone with it
	balance, err := env.ledger.BalanceOf(ctx, "alice", "art/1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	var count int64
	require.NoError(t, env.tx.Model(&schema.DenomMetadata{}).Where("denom = ?", "art/1").Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// The freed key may be minted again as a fresh record
	env.mintNFT(t, "art", "1", "bob", "bob")
}

func TestBurnByNonOwner(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)

	env.issueClass(t, "art", false, false)
	env.mintNFT(t, "art", "1", "alice", "alice")

	err := env.keeper.Burn(ctx, "art", "1", "bob")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = env.nfts.Get(ctx, "art", "1")
	require.NoError(t, err)
}

// A ledger failure mid-mint must roll the record insert back: no partially
// applied mint may ever be observable.
func TestMintAtomicOnLedgerFailure(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env.issueClass(t, "art", false, false)

	mockLedger := mocks.NewMockLedger(ctrl)
	mockLedger.EXPECT().WithTx(gomock.Any()).Return(mockLedger).AnyTimes()
	mockLedger.EXPECT().SetDenomMetadata(gomock.Any(), gomock.Any()).Return(nil)
	mockLedger.EXPECT().MintUnit(gomock.Any(), domain.Denom("art/1"), domain.Identity("bob")).
		Return(fmt.Errorf("%w: mint rejected", domain.ErrLedgerFailure))

	k := New(env.tx, env.classes, env.nfts, mockLedger)

	err := k.Mint(ctx, MintInput{ClassID: "art", LocalID: "1"}, "alice", "bob")
	assert.ErrorIs(t, err, domain.ErrLedgerFailure)

	// The record insert was rolled back with the failed ledger call
	_, err = env.nfts.Get(ctx, "art", "1")
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)
}

// A ledger failure mid-burn must keep the record, its supply and its
// descriptor fully intact.
func TestBurnAtomicOnLedgerFailure(t *testing.T) {
	ctx := context.Background()
	env := initTestEnv(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env.issueClass(t, "art", false, false)
	env.mintNFT(t, "art", "1", "alice", "alice")

	mockLedger := mocks.NewMockLedger(ctrl)
	mockLedger.EXPECT().WithTx(gomock.Any()).Return(mockLedger).AnyTimes()
	mockLedger.EXPECT().BalanceOf(gomock.Any(), domain.Identity("alice"), domain.Denom("art/1")).
		Return(int64(1), nil)
	mockLedger.EXPECT().BurnUnit(gomock.Any(), domain.Denom("art/1"), domain.Identity("alice")).
		Return(nil)
	mockLedger.EXPECT().ClearDenomMetadata(gomock.Any(), domain.Denom("art/1")).
		Return(fmt.Errorf("%w: clear rejected", domain.ErrLedgerFailure))

	k := New(env.tx, env.classes, env.nfts, mockLedger)

	err := k.Burn(ctx, "art", "1", "alice")
	assert.ErrorIs(t, err, domain.ErrLedgerFailure)

	// Record and real balance survive the rolled-back burn
	_, err = env.nfts.Get(ctx, "art", "1")
	require.NoError(t, err)

	balance, err := env.ledger.BalanceOf(ctx, "alice", "art/1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), balance)
}
