package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/store/schema"
)

type pgClassStore struct {
	db *gorm.DB
}

// NewClassStore creates a PostgreSQL-backed class registry
func NewClassStore(db *gorm.DB) ClassStore {
	return &pgClassStore{db: db}
}

// WithTx rebinds the store to a transaction handle
func (s *pgClassStore) WithTx(tx *gorm.DB) ClassStore {
	return &pgClassStore{db: tx}
}

// Insert registers a class
func (s *pgClassStore) Insert(ctx context.Context, class *schema.Class) error {
	exists, err := s.Has(ctx, class.ClassID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", domain.ErrClassAlreadyExists, class.ClassID)
	}

	if err := s.db.WithContext(ctx).Create(class).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", domain.ErrClassAlreadyExists, class.ClassID)
		}
		return fmt.Errorf("failed to insert class: %w", err)
	}

	return nil
}

// Get retrieves a class by ID
func (s *pgClassStore) Get(ctx context.Context, classID domain.ClassID) (*schema.Class, error) {
	var class schema.Class
	err := s.db.WithContext(ctx).Where("class_id = ?", classID).First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrClassNotFound, classID)
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	return &class, nil
}

// Has reports whether a class is registered
func (s *pgClassStore) Has(ctx context.Context, classID domain.ClassID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Class{}).
		Where("class_id = ?", classID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check class: %w", err)
	}
	return count > 0, nil
}

// List pages through classes in insertion order
func (s *pgClassStore) List(ctx context.Context, cursor string, limit int) ([]*schema.Class, string, error) {
	after, err := DecodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	var classes []*schema.Class
	err = s.db.WithContext(ctx).
		Where("id > ?", after).
		Order("id ASC").
		Limit(limit + 1).
		Find(&classes).Error
	if err != nil {
		return nil, "", fmt.Errorf("failed to list classes: %w", err)
	}

	var next string
	if len(classes) > limit {
		classes = classes[:limit]
		next = EncodeCursor(classes[limit-1].ID)
	}

	return classes, next, nil
}

type pgNFTStore struct {
	db *gorm.DB
}

// NewNFTStore creates a PostgreSQL-backed asset record store
func NewNFTStore(db *gorm.DB) NFTStore {
	return &pgNFTStore{db: db}
}

// WithTx rebinds the store to a transaction handle
func (s *pgNFTStore) WithTx(tx *gorm.DB) NFTStore {
	return &pgNFTStore{db: tx}
}

// Insert creates an asset record
func (s *pgNFTStore) Insert(ctx context.Context, nft *schema.NFT) error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.NFT{}).
		Where("class_id = ? AND local_id = ?", nft.ClassID, nft.LocalID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check nft: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrNFTAlreadyExists, nft.ClassID, nft.LocalID)
	}

	if err := s.db.WithContext(ctx).Create(nft).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s/%s", domain.ErrNFTAlreadyExists, nft.ClassID, nft.LocalID)
		}
		return fmt.Errorf("failed to insert nft: %w", err)
	}

	return nil
}

// Get retrieves an asset record by its composite key
func (s *pgNFTStore) Get(ctx context.Context, classID domain.ClassID, localID domain.LocalID) (*schema.NFT, error) {
	var nft schema.NFT
	err := s.db.WithContext(ctx).
		Where("class_id = ? AND local_id = ?", classID, localID).
		First(&nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrNFTNotFound, classID, localID)
		}
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}
	return &nft, nil
}

// GetByDenom retrieves an asset record by its denomination
func (s *pgNFTStore) GetByDenom(ctx context.Context, denom domain.Denom) (*schema.NFT, error) {
	var nft schema.NFT
	err := s.db.WithContext(ctx).Where("denom = ?", denom).First(&nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNFTNotFound, denom)
		}
		return nil, fmt.Errorf("failed to get nft by denom: %w", err)
	}
	return &nft, nil
}

// UpdatePayload replaces a record's payload in place
func (s *pgNFTStore) UpdatePayload(ctx context.Context, classID domain.ClassID, localID domain.LocalID, payload datatypes.JSON) error {
	result := s.db.WithContext(ctx).
		Model(&schema.NFT{}).
		Where("class_id = ? AND local_id = ?", classID, localID).
		Updates(map[string]interface{}{
			"payload":    payload,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update nft: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrNFTNotFound, classID, localID)
	}
	return nil
}

// Delete removes an asset record. The composite-key and denomination access
// paths share the row, so they disappear together.
func (s *pgNFTStore) Delete(ctx context.Context, classID domain.ClassID, localID domain.LocalID) error {
	result := s.db.WithContext(ctx).
		Where("class_id = ? AND local_id = ?", classID, localID).
		Delete(&schema.NFT{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete nft: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrNFTNotFound, classID, localID)
	}
	return nil
}

// ListByClass pages through a class's records in insertion order
func (s *pgNFTStore) ListByClass(ctx context.Context, classID domain.ClassID, cursor string, limit int) ([]*schema.NFT, string, error) {
	after, err := DecodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	var nfts []*schema.NFT
	err = s.db.WithContext(ctx).
		Where("class_id = ? AND id > ?", classID, after).
		Order("id ASC").
		Limit(limit + 1).
		Find(&nfts).Error
	if err != nil {
		return nil, "", fmt.Errorf("failed to list nfts: %w", err)
	}

	var next string
	if len(nfts) > limit {
		nfts = nfts[:limit]
		next = EncodeCursor(nfts[limit-1].ID)
	}

	return nfts, next, nil
}

// CountByClass returns the number of existing records under a class
func (s *pgNFTStore) CountByClass(ctx context.Context, classID domain.ClassID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.NFT{}).
		Where("class_id = ?", classID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count nfts: %w", err)
	}
	return count, nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open, 5 idle,
// 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}
