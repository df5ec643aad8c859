package bookings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface defines the contract for booking data operations
type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	Update(ctx context.Context, booking *Booking) error
	HasConfirmedBooking(ctx context.Context, userID uuid.UUID, itemID string, bookingType BookingType) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new booking repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("booking not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var userBookings []Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("travel_date DESC").
		Find(&userBookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings: %w", err)
	}
	return userBookings, nil
}

func (r *repository) Update(ctx context.Context, booking *Booking) error {
	if err := r.db.WithContext(ctx).Save(booking).Error; err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}

func (r *repository) HasConfirmedBooking(ctx context.Context, userID uuid.UUID, itemID string, bookingType BookingType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Booking{}).
		Where("user_id = ? AND item_id = ? AND type = ? AND status IN ?",
			userID, itemID, bookingType, []BookingStatus{StatusConfirmed, StatusCompleted}).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check confirmed booking: %w", err)
	}
	return count > 0, nil
}
