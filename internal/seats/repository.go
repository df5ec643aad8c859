package seats

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSeatMapNotFound is returned when a flight has no stored seat map yet.
var ErrSeatMapNotFound = errors.New("seat map not found")

// SeatConflictError reports a seat that could not be booked.
type SeatConflictError struct {
	SeatNumber string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat %s is no longer available", e.SeatNumber)
}

// Repository interface defines the contract for seat map data operations
type Repository interface {
	GetByFlightID(ctx context.Context, flightID string) (*SeatMap, error)
	Create(ctx context.Context, seatMap *SeatMap) error
	BookSeats(ctx context.Context, seatMapID uuid.UUID, seatNumbers []string, userID string) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new seat repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByFlightID(ctx context.Context, flightID string) (*SeatMap, error) {
	var seatMap SeatMap
	err := r.db.WithContext(ctx).
		Preload("Seats", func(db *gorm.DB) *gorm.DB {
			return db.Order("seats.row ASC, seats.column ASC")
		}).
		First(&seatMap, "flight_id = ?", flightID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrSeatMapNotFound
		}
		return nil, fmt.Errorf("failed to get seat map: %w", err)
	}
	return &seatMap, nil
}

func (r *repository) Create(ctx context.Context, seatMap *SeatMap) error {
	if err := r.db.WithContext(ctx).Create(seatMap).Error; err != nil {
		return fmt.Errorf("failed to create seat map: %w", err)
	}
	return nil
}

// BookSeats marks the seats as sold in one transaction. If any seat is
// already taken the whole booking rolls back.
func (r *repository) BookSeats(ctx context.Context, seatMapID uuid.UUID, seatNumbers []string, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, seatNumber := range seatNumbers {
			result := tx.Model(&Seat{}).
				Where("seat_map_id = ? AND seat_number = ? AND available = ? AND booked_by IS NULL",
					seatMapID, seatNumber, true).
				Updates(map[string]interface{}{
					"available": false,
					"booked_by": userID,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to book seat %s: %w", seatNumber, result.Error)
			}
			if result.RowsAffected == 0 {
				return &SeatConflictError{SeatNumber: seatNumber}
			}
		}
		return nil
	})
}
