package notifications

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/bookings"
)

type capturingProducer struct {
	events []*TravelEvent
}

func (p *capturingProducer) PublishEvent(ctx context.Context, event *TravelEvent) error {
	p.events = append(p.events, event)
	return nil
}

func (p *capturingProducer) Close() error { return nil }

func sampleBooking() *bookings.Booking {
	refund := 225.00
	reason := "change-of-plans"
	return &bookings.Booking{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		Type:               bookings.TypeFlight,
		ItemID:             "FL-BOM-DXB-104",
		ItemName:           "Mumbai to Dubai",
		TotalPrice:         450.00,
		RefundAmount:       &refund,
		CancellationReason: &reason,
	}
}

func TestPublishBookingCreated(t *testing.T) {
	producer := &capturingProducer{}
	adapter := NewBookingEventAdapter(producer)
	booking := sampleBooking()

	require.NoError(t, adapter.PublishBookingCreated(context.Background(), booking))
	require.Len(t, producer.events, 1)

	event := producer.events[0]
	assert.Equal(t, EventBookingCreated, event.Type)
	assert.Equal(t, booking.UserID, event.UserID)
	assert.Equal(t, booking.ID, event.BookingID)
	assert.Equal(t, "flight", event.ItemType)
	assert.Equal(t, 450.00, event.Amount)
	assert.Nil(t, event.RefundAmount)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestPublishBookingCancelledCarriesRefund(t *testing.T) {
	producer := &capturingProducer{}
	adapter := NewBookingEventAdapter(producer)
	booking := sampleBooking()

	require.NoError(t, adapter.PublishBookingCancelled(context.Background(), booking))
	require.Len(t, producer.events, 1)

	event := producer.events[0]
	assert.Equal(t, EventBookingCancelled, event.Type)
	require.NotNil(t, event.RefundAmount)
	assert.Equal(t, 225.00, *event.RefundAmount)
	require.NotNil(t, event.Reason)
	assert.Equal(t, "change-of-plans", *event.Reason)
}

func TestNilProducerDropsEvents(t *testing.T) {
	adapter := NewBookingEventAdapter(nil)
	booking := sampleBooking()

	assert.NoError(t, adapter.PublishBookingCreated(context.Background(), booking))
	assert.NoError(t, adapter.PublishBookingCancelled(context.Background(), booking))
}

func TestTravelEventWireFormat(t *testing.T) {
	event := NewTravelEvent(EventBookingCreated, uuid.New(), uuid.New())
	event.ItemID = "FL-1"
	event.ItemType = "flight"
	event.Amount = 100.00

	assert.Equal(t, event.UserID.String(), event.PartitionKey())

	data, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "booking-created", decoded["type"])
	assert.Equal(t, "FL-1", decoded["itemId"])

	// Optional fields stay off the wire until set.
	assert.NotContains(t, decoded, "refundAmount")
	assert.NotContains(t, decoded, "reason")
}
