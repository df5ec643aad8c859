package pricing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxPricePoints caps stored history per item.
const maxPricePoints = 30

// Repository interface defines the contract for price history persistence
type Repository interface {
	GetHistory(ctx context.Context, itemID, itemType string) (*PriceHistory, error)
	AppendPoint(ctx context.Context, itemID, itemType string, point PricePoint) (*PriceHistory, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new pricing repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetHistory(ctx context.Context, itemID, itemType string) (*PriceHistory, error) {
	var history PriceHistory
	err := r.db.WithContext(ctx).
		Preload("Points", func(db *gorm.DB) *gorm.DB {
			return db.Order("price_points.recorded_at ASC")
		}).
		First(&history, "item_id = ? AND item_type = ?", itemID, itemType).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("price history not found for %s %s", itemType, itemID)
		}
		return nil, fmt.Errorf("failed to get price history: %w", err)
	}
	return &history, nil
}

// AppendPoint adds a price point, creating the history row on first use and
// trimming storage to the newest maxPricePoints entries.
func (r *repository) AppendPoint(ctx context.Context, itemID, itemType string, point PricePoint) (*PriceHistory, error) {
	var history PriceHistory

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&history, "item_id = ? AND item_type = ?", itemID, itemType).Error
		if err == gorm.ErrRecordNotFound {
			history = PriceHistory{ItemID: itemID, ItemType: itemType}
			if err := tx.Create(&history).Error; err != nil {
				return fmt.Errorf("failed to create price history: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to load price history: %w", err)
		}

		point.HistoryID = history.ID
		if err := tx.Create(&point).Error; err != nil {
			return fmt.Errorf("failed to append price point: %w", err)
		}

		// Trim anything older than the newest maxPricePoints entries
		var keep []uuid.UUID
		if err := tx.Model(&PricePoint{}).
			Where("history_id = ?", history.ID).
			Order("recorded_at DESC").
			Limit(maxPricePoints).
			Pluck("id", &keep).Error; err != nil {
			return fmt.Errorf("failed to select points to keep: %w", err)
		}
		if err := tx.Where("history_id = ? AND id NOT IN ?", history.ID, keep).
			Delete(&PricePoint{}).Error; err != nil {
			return fmt.Errorf("failed to trim price points: %w", err)
		}

		return tx.Preload("Points", func(db *gorm.DB) *gorm.DB {
			return db.Order("price_points.recorded_at ASC")
		}).First(&history, "id = ?", history.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &history, nil
}
