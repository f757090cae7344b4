package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

type txKey struct{}

// conn returns the transaction carried by ctx, or the store connection when there is none
func (s *pgStore) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables backing the store
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&schema.Collection{},
		&schema.NFT{},
		&schema.Emote{},
		&schema.FailedEntity{},
		&schema.Remark{},
		&schema.KeyValueStore{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 5
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// The processor applies remarks one at a time, so it never needs a large pool.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 5
	}
	if maxIdleConns == 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Transaction runs fn in a database transaction.
// Store calls made with the context passed to fn join the transaction, nested calls use a savepoint.
func (s *pgStore) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetCollection retrieves a collection by id
func (s *pgStore) GetCollection(ctx context.Context, id string) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.conn(ctx).Where("id = ?", id).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// CreateCollection inserts a new collection
func (s *pgStore) CreateCollection(ctx context.Context, collection *schema.Collection) error {
	result := s.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(collection)
	if result.Error != nil {
		return fmt.Errorf("failed to create collection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCollectionAlreadyExists, collection.ID)
	}
	return nil
}

// SaveCollection upserts a collection by id
func (s *pgStore) SaveCollection(ctx context.Context, collection *schema.Collection) error {
	err := s.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "symbol", "max", "metadata", "current_owner", "events", "updated_at"}),
		}).
		Create(collection).Error
	if err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}

// GetNFT retrieves an nft by id
func (s *pgStore) GetNFT(ctx context.Context, id string) (*schema.NFT, error) {
	var nft schema.NFT
	err := s.conn(ctx).Where("id = ?", id).First(&nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}
	return &nft, nil
}

// CreateNFT inserts a new nft
func (s *pgStore) CreateNFT(ctx context.Context, nft *schema.NFT) error {
	result := s.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(nft)
	if result.Error != nil {
		return fmt.Errorf("failed to create nft: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNFTAlreadyExists, nft.ID)
	}
	return nil
}

// SaveNFT upserts an nft by id
func (s *pgStore) SaveNFT(ctx context.Context, nft *schema.NFT) error {
	err := s.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "burned", "current_owner", "events", "updated_at"}),
		}).
		Create(nft).Error
	if err != nil {
		return fmt.Errorf("failed to save nft: %w", err)
	}
	return nil
}

// GetEmote retrieves an emote by id
func (s *pgStore) GetEmote(ctx context.Context, id string) (*schema.Emote, error) {
	var emote schema.Emote
	err := s.conn(ctx).Where("id = ?", id).First(&emote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get emote: %w", err)
	}
	return &emote, nil
}

// CreateEmote inserts a new emote
func (s *pgStore) CreateEmote(ctx context.Context, emote *schema.Emote) error {
	result := s.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(emote)
	if result.Error != nil {
		return fmt.Errorf("failed to create emote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrEmoteAlreadyExists, emote.ID)
	}
	return nil
}

// RemoveEmote deletes an emote by id
func (s *pgStore) RemoveEmote(ctx context.Context, id string) error {
	result := s.conn(ctx).Where("id = ?", id).Delete(&schema.Emote{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove emote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: emote %s", domain.ErrEntityNotFound, id)
	}
	return nil
}

// CreateFailedEntity appends a rejection record
func (s *pgStore) CreateFailedEntity(ctx context.Context, failed *schema.FailedEntity) error {
	if err := s.conn(ctx).Create(failed).Error; err != nil {
		return fmt.Errorf("failed to create failed entity: %w", err)
	}
	return nil
}

// SaveRemark upserts a raw remark into the archive
func (s *pgStore) SaveRemark(ctx context.Context, remark *schema.Remark) error {
	err := s.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(remark).Error
	if err != nil {
		return fmt.Errorf("failed to save remark: %w", err)
	}
	return nil
}
