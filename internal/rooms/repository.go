package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrRoomLayoutNotFound is returned when a hotel has no stored layout yet.
var ErrRoomLayoutNotFound = errors.New("room layout not found")

// RoomConflictError reports a room that could not be booked.
type RoomConflictError struct {
	RoomNumber string
}

func (e *RoomConflictError) Error() string {
	return fmt.Sprintf("room %s is no longer available", e.RoomNumber)
}

// Repository interface defines the contract for room layout data operations
type Repository interface {
	GetByHotelID(ctx context.Context, hotelID string) (*RoomLayout, error)
	Create(ctx context.Context, layout *RoomLayout) error
	BookRoom(ctx context.Context, layoutID uuid.UUID, roomNumber, userID string) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new room repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByHotelID(ctx context.Context, hotelID string) (*RoomLayout, error) {
	var layout RoomLayout
	err := r.db.WithContext(ctx).
		Preload("RoomTypes", func(db *gorm.DB) *gorm.DB {
			return db.Order("room_type_groups.base_price ASC")
		}).
		Preload("RoomTypes.Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("rooms.floor ASC, rooms.room_number ASC")
		}).
		First(&layout, "hotel_id = ?", hotelID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoomLayoutNotFound
		}
		return nil, fmt.Errorf("failed to get room layout: %w", err)
	}
	return &layout, nil
}

func (r *repository) Create(ctx context.Context, layout *RoomLayout) error {
	if err := r.db.WithContext(ctx).Create(layout).Error; err != nil {
		return fmt.Errorf("failed to create room layout: %w", err)
	}
	return nil
}

// BookRoom marks the room as taken. The room must belong to one of the
// layout's type groups and still be free.
func (r *repository) BookRoom(ctx context.Context, layoutID uuid.UUID, roomNumber, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Room{}).
			Where("room_number = ? AND available = ? AND booked_by IS NULL", roomNumber, true).
			Where("room_type_group_id IN (?)",
				tx.Model(&RoomTypeGroup{}).Select("id").Where("layout_id = ?", layoutID)).
			Updates(map[string]interface{}{
				"available": false,
				"booked_by": userID,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to book room %s: %w", roomNumber, result.Error)
		}
		if result.RowsAffected == 0 {
			return &RoomConflictError{RoomNumber: roomNumber}
		}
		return nil
	})
}
