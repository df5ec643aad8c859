package notifications

import (
	"context"

	"voyago/internal/bookings"
)

// BookingEventAdapter bridges the booking services onto the event producer.
// It satisfies both the bookings and cancellation publisher contracts.
type BookingEventAdapter struct {
	producer EventProducer
}

// NewBookingEventAdapter creates a new booking event adapter
func NewBookingEventAdapter(producer EventProducer) *BookingEventAdapter {
	return &BookingEventAdapter{producer: producer}
}

func (a *BookingEventAdapter) PublishBookingCreated(ctx context.Context, booking *bookings.Booking) error {
	if a.producer == nil {
		return nil
	}
	event := NewTravelEvent(EventBookingCreated, booking.UserID, booking.ID)
	event.ItemID = booking.ItemID
	event.ItemType = string(booking.Type)
	event.ItemName = booking.ItemName
	event.Amount = booking.TotalPrice
	return a.producer.PublishEvent(ctx, event)
}

func (a *BookingEventAdapter) PublishBookingCancelled(ctx context.Context, booking *bookings.Booking) error {
	if a.producer == nil {
		return nil
	}
	event := NewTravelEvent(EventBookingCancelled, booking.UserID, booking.ID)
	event.ItemID = booking.ItemID
	event.ItemType = string(booking.Type)
	event.ItemName = booking.ItemName
	event.Amount = booking.TotalPrice
	event.RefundAmount = booking.RefundAmount
	event.Reason = booking.CancellationReason
	return a.producer.PublishEvent(ctx, event)
}
