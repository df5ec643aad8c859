package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrReviewNotFound is returned when a review does not exist.
var ErrReviewNotFound = errors.New("review not found")

// Sort orders accepted by the listing endpoint.
const (
	SortRecent  = "recent"
	SortHelpful = "helpful"
)

// Repository interface defines the contract for review data operations
type Repository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*Review, error)
	GetByItem(ctx context.Context, itemID, itemType, sort string) ([]Review, error)
	Update(ctx context.Context, review *Review) error
	GetRatingSummary(ctx context.Context, itemID, itemType string) (float64, int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new review repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, review *Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Review, error) {
	var review Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

func (r *repository) GetByItem(ctx context.Context, itemID, itemType, sort string) ([]Review, error) {
	order := "created_at DESC"
	if sort == SortHelpful {
		order = "helpful_votes DESC, created_at DESC"
	}

	var reviews []Review
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND item_type = ?", itemID, itemType).
		Order(order).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}

func (r *repository) Update(ctx context.Context, review *Review) error {
	if err := r.db.WithContext(ctx).Save(review).Error; err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

func (r *repository) GetRatingSummary(ctx context.Context, itemID, itemType string) (float64, int64, error) {
	var result struct {
		Average float64
		Count   int64
	}
	err := r.db.WithContext(ctx).Model(&Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("item_id = ? AND item_type = ?", itemID, itemType).
		Scan(&result).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get rating summary: %w", err)
	}
	return result.Average, result.Count, nil
}
