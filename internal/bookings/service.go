package bookings

import (
	"context"
	"fmt"
	"time"

	"voyago/pkg/logger"

	"github.com/google/uuid"
)

// Service interface defines the contract for booking business logic
type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	HasConfirmedBooking(ctx context.Context, userID uuid.UUID, itemID string, bookingType BookingType) (bool, error)
}

// EventPublisher publishes booking lifecycle events. Implemented by the
// notifications package; nil disables publishing.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking *Booking) error
}

type service struct {
	repo      Repository
	publisher EventPublisher
	log       *logger.Logger
}

// NewService creates a new booking service instance
func NewService(repo Repository, publisher EventPublisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		log:       logger.GetDefault(),
	}
}

func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	bookingType := BookingType(req.Type)
	if !bookingType.IsValid() {
		return nil, fmt.Errorf("invalid booking type: %s", req.Type)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	originalPrice := req.OriginalPrice
	if originalPrice == 0 {
		originalPrice = req.TotalPrice
	}

	booking := &Booking{
		UserID:        userID,
		Type:          bookingType,
		ItemID:        req.ItemID,
		ItemName:      req.ItemName,
		BookingDate:   time.Now().UTC(),
		TravelDate:    req.TravelDate,
		Quantity:      quantity,
		OriginalPrice: originalPrice,
		TotalPrice:    req.TotalPrice,
		Status:        StatusConfirmed,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.log.LogBookingCreated(ctx, booking.ID.String(), booking.ItemID, booking.UserID.String())

	if s.publisher != nil {
		if err := s.publisher.PublishBookingCreated(ctx, booking); err != nil {
			// Booking is already persisted; event delivery is best effort
			s.log.ErrorWithContext(ctx, "failed to publish booking created event", err, map[string]interface{}{
				"booking_id": booking.ID.String(),
			})
		}
	}

	return booking, nil
}

func (s *service) GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	return s.repo.GetByID(ctx, bookingID)
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) HasConfirmedBooking(ctx context.Context, userID uuid.UUID, itemID string, bookingType BookingType) (bool, error) {
	return s.repo.HasConfirmedBooking(ctx, userID, itemID, bookingType)
}
