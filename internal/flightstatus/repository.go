package flightstatus

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrStatusNotFound is returned when no status record exists for a flight.
var ErrStatusNotFound = errors.New("flight status not found")

// Repository interface defines the contract for flight status data operations
type Repository interface {
	GetByFlightID(ctx context.Context, flightID string) (*FlightStatus, error)
	GetByFlightNumber(ctx context.Context, flightNumber string) (*FlightStatus, error)
	Create(ctx context.Context, status *FlightStatus) error
	Update(ctx context.Context, status *FlightStatus) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new flight status repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByFlightID(ctx context.Context, flightID string) (*FlightStatus, error) {
	var status FlightStatus
	err := r.db.WithContext(ctx).First(&status, "flight_id = ?", flightID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrStatusNotFound
		}
		return nil, fmt.Errorf("failed to get flight status: %w", err)
	}
	return &status, nil
}

func (r *repository) GetByFlightNumber(ctx context.Context, flightNumber string) (*FlightStatus, error) {
	var status FlightStatus
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		First(&status, "flight_number = ?", flightNumber).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrStatusNotFound
		}
		return nil, fmt.Errorf("failed to get flight status: %w", err)
	}
	return &status, nil
}

func (r *repository) Create(ctx context.Context, status *FlightStatus) error {
	if err := r.db.WithContext(ctx).Create(status).Error; err != nil {
		return fmt.Errorf("failed to create flight status: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, status *FlightStatus) error {
	if err := r.db.WithContext(ctx).Save(status).Error; err != nil {
		return fmt.Errorf("failed to update flight status: %w", err)
	}
	return nil
}
