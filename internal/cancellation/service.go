package cancellation

import (
	"context"
	"fmt"
	"math"

	"voyago/internal/bookings"
	"voyago/pkg/clock"
	"voyago/pkg/logger"

	"github.com/google/uuid"
)

// Cancellation reasons accepted from travelers.
const (
	ReasonChangeOfPlans = "change-of-plans"
	ReasonMedical       = "medical"
	ReasonEmergency     = "emergency"
	ReasonWork          = "work"
	ReasonWeather       = "weather"
	ReasonOther         = "other"
)

var validReasons = map[string]bool{
	ReasonChangeOfPlans: true,
	ReasonMedical:       true,
	ReasonEmergency:     true,
	ReasonWork:          true,
	ReasonWeather:       true,
	ReasonOther:         true,
}

// Service interface defines the contract for cancellation business logic
type Service interface {
	GetUserBookings(ctx context.Context, userID string) ([]bookings.Booking, error)
	CalculateRefund(ctx context.Context, req CalculateRefundRequest) (*RefundQuoteResponse, error)
	CancelBooking(ctx context.Context, req CancelBookingRequest) (*bookings.Booking, error)
	UpdateRefundStatus(ctx context.Context, req UpdateRefundStatusRequest) (*bookings.Booking, error)
}

// BookingStore is the subset of booking persistence this module needs
// (satisfied by bookings.Repository).
type BookingStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*bookings.Booking, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]bookings.Booking, error)
	Update(ctx context.Context, booking *bookings.Booking) error
}

// EventPublisher publishes cancellation events. Implemented by the
// notifications package; nil disables publishing.
type EventPublisher interface {
	PublishBookingCancelled(ctx context.Context, booking *bookings.Booking) error
}

type service struct {
	store     BookingStore
	publisher EventPublisher
	clock     clock.Clock
	log       *logger.Logger
}

// NewService creates a new cancellation service instance
func NewService(store BookingStore, publisher EventPublisher, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.New()
	}
	return &service{
		store:     store,
		publisher: publisher,
		clock:     clk,
		log:       logger.GetDefault(),
	}
}

func (s *service) GetUserBookings(ctx context.Context, userID string) ([]bookings.Booking, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}
	return s.store.GetByUserID(ctx, id)
}

// CalculateRefund quotes the refund for a booking without changing it.
func (s *service) CalculateRefund(ctx context.Context, req CalculateRefundRequest) (*RefundQuoteResponse, error) {
	booking, err := s.ownedBooking(ctx, req.UserID, req.BookingID)
	if err != nil {
		return nil, err
	}

	if !validReasons[req.Reason] {
		return nil, fmt.Errorf("invalid cancellation reason: %s", req.Reason)
	}

	refund := s.refundFor(booking, req.Reason)
	return &RefundQuoteResponse{
		BookingID:    booking.ID.String(),
		RefundAmount: refund,
	}, nil
}

// CancelBooking cancels a booking, records the refund and publishes the event.
func (s *service) CancelBooking(ctx context.Context, req CancelBookingRequest) (*bookings.Booking, error) {
	booking, err := s.ownedBooking(ctx, req.UserID, req.BookingID)
	if err != nil {
		return nil, err
	}

	if !validReasons[req.Reason] {
		return nil, fmt.Errorf("invalid cancellation reason: %s", req.Reason)
	}

	if booking.Status == bookings.StatusCancelled {
		return nil, fmt.Errorf("booking is already cancelled")
	}
	if !booking.IsCancellable() {
		return nil, fmt.Errorf("booking cannot be cancelled in status %s", booking.Status)
	}

	refund := s.refundFor(booking, req.Reason)
	now := s.clock.Now().UTC()

	refundStatus := bookings.RefundPending
	if refund <= 0 {
		refundStatus = bookings.RefundNotApplicable
	}

	reason := req.Reason
	booking.Status = bookings.StatusCancelled
	booking.CancellationReason = &reason
	booking.CancellationDate = &now
	booking.RefundAmount = &refund
	booking.RefundStatus = &refundStatus

	if err := s.store.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.log.LogBookingCancelled(ctx, booking.ID.String(), booking.UserID.String(), refund)

	if s.publisher != nil {
		if err := s.publisher.PublishBookingCancelled(ctx, booking); err != nil {
			// Cancellation is already persisted; event delivery is best effort
			s.log.ErrorWithContext(ctx, "failed to publish cancellation event", err, map[string]interface{}{
				"booking_id": booking.ID.String(),
			})
		}
	}

	return booking, nil
}

func (s *service) UpdateRefundStatus(ctx context.Context, req UpdateRefundStatusRequest) (*bookings.Booking, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format: %w", err)
	}

	status := bookings.RefundStatus(req.RefundStatus)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid refund status: %s", req.RefundStatus)
	}

	booking, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != bookings.StatusCancelled {
		return nil, fmt.Errorf("booking is not cancelled")
	}

	booking.RefundStatus = &status
	if err := s.store.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update refund status: %w", err)
	}

	return booking, nil
}

// refundFor applies the time-based refund tiers. Cancellations far from the
// travel date refund most of the fare; last-minute ones refund nothing.
// Medical and emergency cancellations are floored at 80% regardless of timing.
func (s *service) refundFor(booking *bookings.Booking, reason string) float64 {
	hoursUntilTravel := booking.TravelDate.Sub(s.clock.Now()).Hours()

	var percentage float64
	switch {
	case hoursUntilTravel >= 48:
		percentage = 0.90
	case hoursUntilTravel >= 24:
		percentage = 0.50
	case hoursUntilTravel >= 2:
		percentage = 0.25
	default:
		percentage = 0
	}

	if reason == ReasonMedical || reason == ReasonEmergency {
		percentage = math.Max(percentage, 0.80)
	}

	return roundTo2(booking.TotalPrice * percentage)
}

func (s *service) ownedBooking(ctx context.Context, userID, bookingID string) (*bookings.Booking, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}
	bid, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format: %w", err)
	}

	booking, err := s.store.GetByID(ctx, bid)
	if err != nil {
		return nil, err
	}

	if booking.UserID != uid {
		return nil, fmt.Errorf("unauthorized: booking does not belong to user")
	}

	return booking, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
