package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/store/schema"
)

func remarkCursorKey(chain domain.Chain) string {
	return fmt.Sprintf("remark_cursor:%s", chain)
}

// GetRemarkCursor retrieves the position of the last processed extrinsic for a chain
func (s *pgStore) GetRemarkCursor(ctx context.Context, chain domain.Chain) (domain.Position, error) {
	var kv schema.KeyValueStore
	err := s.conn(ctx).Where("key = ?", remarkCursorKey(chain)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Position{}, nil // Return zero position if no cursor exists
		}
		return domain.Position{}, fmt.Errorf("failed to get remark cursor: %w", err)
	}

	position, err := domain.ParsePosition(kv.Value)
	if err != nil {
		return domain.Position{}, fmt.Errorf("failed to parse remark cursor: %w", err)
	}

	return position, nil
}

// SetRemarkCursor stores the position of the last processed extrinsic for a chain
func (s *pgStore) SetRemarkCursor(ctx context.Context, chain domain.Chain, position domain.Position) error {
	kv := schema.KeyValueStore{
		Key:   remarkCursorKey(chain),
		Value: position.String(),
	}

	if err := s.conn(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set remark cursor: %w", err)
	}

	return nil
}
