package notifications

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookingCreated   EventType = "booking-created"
	EventBookingCancelled EventType = "booking-cancelled"
)

// TravelEvent is the wire format for booking lifecycle events.
type TravelEvent struct {
	ID           uuid.UUID `json:"id"`
	Type         EventType `json:"type"`
	UserID       uuid.UUID `json:"userId"`
	BookingID    uuid.UUID `json:"bookingId"`
	ItemID       string    `json:"itemId"`
	ItemType     string    `json:"itemType"`
	ItemName     string    `json:"itemName"`
	Amount       float64   `json:"amount"`
	RefundAmount *float64  `json:"refundAmount,omitempty"`
	Reason       *string   `json:"reason,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NewTravelEvent stamps a fresh event envelope.
func NewTravelEvent(eventType EventType, userID, bookingID uuid.UUID) *TravelEvent {
	return &TravelEvent{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		BookingID:  bookingID,
		OccurredAt: time.Now().UTC(),
	}
}

func (e *TravelEvent) ToJSON() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal travel event: %w", err)
	}
	return data, nil
}

// PartitionKey routes a user's events to the same partition so their
// order is preserved.
func (e *TravelEvent) PartitionKey() string {
	return e.UserID.String()
}
