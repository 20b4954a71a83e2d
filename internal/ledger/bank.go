package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/store"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

type bankLedger struct {
	db *gorm.DB
}

// NewBankLedger creates the reference Ledger implementation backed by the
// host's balances and denom_metadata tables. Sharing the database with the
// asset stores lets a keeper transaction span both sides.
func NewBankLedger(db *gorm.DB) Ledger {
	return &bankLedger{db: db}
}

// WithTx rebinds the ledger to a transaction handle
func (l *bankLedger) WithTx(tx *gorm.DB) Ledger {
	return &bankLedger{db: tx}
}

// MintUnit mints one unit of denom into the recipient's balance
func (l *bankLedger) MintUnit(ctx context.Context, denom domain.Denom, to domain.Identity) error {
	var supply int64
	err := l.db.WithContext(ctx).
		Model(&schema.Balance{}).
		Where("denom = ?", denom).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&supply).Error
	if err != nil {
		return fmt.Errorf("%w: failed to read supply of %s: %s", domain.ErrLedgerFailure, denom, err)
	}
	if supply > 0 {
		return fmt.Errorf("%w: denom %s already has outstanding supply", domain.ErrLedgerFailure, denom)
	}

	balance := schema.Balance{
		Denom:  denom,
		Owner:  to,
		Amount: 1,
	}
	err = l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "denom"}, {Name: "owner"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     gorm.Expr("balances.amount + 1"),
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&balance).Error
	if err != nil {
		return fmt.Errorf("%w: failed to mint %s to %s: %s", domain.ErrLedgerFailure, denom, to, err)
	}

	return nil
}

// BurnUnit burns one unit of denom from the holder's balance
func (l *bankLedger) BurnUnit(ctx context.Context, denom domain.Denom, from domain.Identity) error {
	return l.debit(ctx, denom, from, "burn")
}

// TransferUnit moves one unit of denom between identities
func (l *bankLedger) TransferUnit(ctx context.Context, denom domain.Denom, from, to domain.Identity) error {
	if err := l.debit(ctx, denom, from, "transfer"); err != nil {
		return err
	}

	balance := schema.Balance{
		Denom:  denom,
		Owner:  to,
		Amount: 1,
	}
	err := l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "denom"}, {Name: "owner"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     gorm.Expr("balances.amount + 1"),
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&balance).Error
	if err != nil {
		return fmt.Errorf("%w: failed to credit %s to %s: %s", domain.ErrLedgerFailure, denom, to, err)
	}

	return nil
}

// debit removes one unit from a balance, deleting the row when it reaches
// zero so DenomsOwned never enumerates emptied denominations
func (l *bankLedger) debit(ctx context.Context, denom domain.Denom, from domain.Identity, op string) error {
	var balance schema.Balance
	err := l.db.WithContext(ctx).
		Where("denom = ? AND owner = ?", denom, from).
		First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s of %s: %s holds no balance", domain.ErrLedgerFailure, op, denom, from)
		}
		return fmt.Errorf("%w: failed to read balance of %s: %s", domain.ErrLedgerFailure, denom, err)
	}
	if balance.Amount < 1 {
		return fmt.Errorf("%w: %s of %s: insufficient balance", domain.ErrLedgerFailure, op, denom)
	}

	if balance.Amount == 1 {
		err = l.db.WithContext(ctx).Delete(&schema.Balance{}, balance.ID).Error
	} else {
		err = l.db.WithContext(ctx).
			Model(&schema.Balance{}).
			Where("id = ?", balance.ID).
			Updates(map[string]interface{}{
				"amount":     gorm.Expr("amount - 1"),
				"updated_at": time.Now().UTC(),
			}).Error
	}
	if err != nil {
		return fmt.Errorf("%w: failed to debit %s from %s: %s", domain.ErrLedgerFailure, denom, from, err)
	}

	return nil
}

// SetDenomMetadata stores the denomination's descriptor
func (l *bankLedger) SetDenomMetadata(ctx context.Context, meta domain.DenomMetadata) error {
	record := schema.DenomMetadata{
		Denom:  meta.Denom,
		Name:   meta.Name,
		Symbol: meta.Symbol,
		URI:    meta.URI,
	}
	err := l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "denom"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "symbol", "uri"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("%w: failed to set metadata of %s: %s", domain.ErrLedgerFailure, meta.Denom, err)
	}
	return nil
}

// ClearDenomMetadata removes the denomination's descriptor
func (l *bankLedger) ClearDenomMetadata(ctx context.Context, denom domain.Denom) error {
	err := l.db.WithContext(ctx).
		Where("denom = ?", denom).
		Delete(&schema.DenomMetadata{}).Error
	if err != nil {
		return fmt.Errorf("%w: failed to clear metadata of %s: %s", domain.ErrLedgerFailure, denom, err)
	}
	return nil
}

// BalanceOf returns the units of denom held by the identity
func (l *bankLedger) BalanceOf(ctx context.Context, owner domain.Identity, denom domain.Denom) (int64, error) {
	var balance schema.Balance
	err := l.db.WithContext(ctx).
		Where("denom = ? AND owner = ?", denom, owner).
		First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: failed to read balance of %s: %s", domain.ErrLedgerFailure, denom, err)
	}
	return balance.Amount, nil
}

// DenomsOwned pages through the denominations an identity holds
func (l *bankLedger) DenomsOwned(ctx context.Context, owner domain.Identity, cursor string, limit int) ([]domain.Denom, string, error) {
	after, err := store.DecodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	var balances []*schema.Balance
	err = l.db.WithContext(ctx).
		Where("owner = ? AND amount > 0 AND id > ?", owner, after).
		Order("id ASC").
		Limit(limit + 1).
		Find(&balances).Error
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to enumerate balances of %s: %s", domain.ErrLedgerFailure, owner, err)
	}

	var next string
	if len(balances) > limit {
		balances = balances[:limit]
		next = store.EncodeCursor(balances[limit-1].ID)
	}

	denoms := make([]domain.Denom, len(balances))
	for i, b := range balances {
		denoms[i] = b.Denom
	}

	return denoms, next, nil
}
