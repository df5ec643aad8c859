package cancellation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/bookings"
	"voyago/pkg/clock"
)

type mockBookingStore struct {
	bookings map[uuid.UUID]*bookings.Booking
	updates  int
}

func newMockBookingStore(bs ...*bookings.Booking) *mockBookingStore {
	store := &mockBookingStore{bookings: make(map[uuid.UUID]*bookings.Booking)}
	for _, b := range bs {
		store.bookings[b.ID] = b
	}
	return store
}

func (m *mockBookingStore) GetByID(ctx context.Context, id uuid.UUID) (*bookings.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking not found: %s", id)
	}
	copied := *b
	return &copied, nil
}

func (m *mockBookingStore) GetByUserID(ctx context.Context, userID uuid.UUID) ([]bookings.Booking, error) {
	var out []bookings.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingStore) Update(ctx context.Context, booking *bookings.Booking) error {
	m.updates++
	m.bookings[booking.ID] = booking
	return nil
}

type capturingPublisher struct {
	cancelled []*bookings.Booking
}

func (p *capturingPublisher) PublishBookingCancelled(ctx context.Context, b *bookings.Booking) error {
	p.cancelled = append(p.cancelled, b)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func confirmedBooking(userID uuid.UUID, travelIn time.Duration, price float64) *bookings.Booking {
	return &bookings.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		Type:       bookings.TypeFlight,
		ItemID:     "FL-BOM-DXB-104",
		TravelDate: fixedNow().Add(travelIn),
		TotalPrice: price,
		Status:     bookings.StatusConfirmed,
	}
}

func TestCalculateRefundTiers(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		travelIn time.Duration
		reason   string
		price    float64
		expected float64
	}{
		{"72h out refunds 90 percent", 72 * time.Hour, ReasonChangeOfPlans, 450.00, 405.00},
		{"exactly 48h refunds 90 percent", 48 * time.Hour, ReasonWork, 200.00, 180.00},
		{"30h out refunds 50 percent", 30 * time.Hour, ReasonWeather, 450.00, 225.00},
		{"10h out refunds 25 percent", 10 * time.Hour, ReasonChangeOfPlans, 400.00, 100.00},
		{"one hour out refunds nothing", time.Hour, ReasonChangeOfPlans, 450.00, 0},
		{"travel date passed refunds nothing", -3 * time.Hour, ReasonWork, 450.00, 0},
		{"medical last minute still gets 80 percent", time.Hour, ReasonMedical, 500.00, 400.00},
		{"emergency 10h out floors at 80 percent", 10 * time.Hour, ReasonEmergency, 300.00, 240.00},
		{"medical 72h out keeps the 90 percent tier", 72 * time.Hour, ReasonMedical, 100.00, 90.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := confirmedBooking(userID, tt.travelIn, tt.price)
			store := newMockBookingStore(booking)
			svc := NewService(store, nil, clock.NewMock(fixedNow()))

			quote, err := svc.CalculateRefund(context.Background(), CalculateRefundRequest{
				UserID:    userID.String(),
				BookingID: booking.ID.String(),
				Reason:    tt.reason,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, quote.RefundAmount)
			assert.Equal(t, booking.ID.String(), quote.BookingID)
			assert.Zero(t, store.updates)
		})
	}
}

func TestCalculateRefundValidation(t *testing.T) {
	userID := uuid.New()
	booking := confirmedBooking(userID, 72*time.Hour, 450.00)
	store := newMockBookingStore(booking)
	svc := NewService(store, nil, clock.NewMock(fixedNow()))

	_, err := svc.CalculateRefund(context.Background(), CalculateRefundRequest{
		UserID:    userID.String(),
		BookingID: booking.ID.String(),
		Reason:    "not-a-reason",
	})
	assert.ErrorContains(t, err, "invalid cancellation reason")

	_, err = svc.CalculateRefund(context.Background(), CalculateRefundRequest{
		UserID:    uuid.NewString(),
		BookingID: booking.ID.String(),
		Reason:    ReasonWork,
	})
	assert.ErrorContains(t, err, "does not belong to user")

	_, err = svc.CalculateRefund(context.Background(), CalculateRefundRequest{
		UserID:    "not-a-uuid",
		BookingID: booking.ID.String(),
		Reason:    ReasonWork,
	})
	assert.ErrorContains(t, err, "invalid user ID")
}

func TestCancelBooking(t *testing.T) {
	userID := uuid.New()
	booking := confirmedBooking(userID, 30*time.Hour, 450.00)
	store := newMockBookingStore(booking)
	publisher := &capturingPublisher{}
	svc := NewService(store, publisher, clock.NewMock(fixedNow()))

	cancelled, err := svc.CancelBooking(context.Background(), CancelBookingRequest{
		UserID:    userID.String(),
		BookingID: booking.ID.String(),
		Reason:    ReasonChangeOfPlans,
	})
	require.NoError(t, err)

	assert.Equal(t, bookings.StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.RefundAmount)
	assert.Equal(t, 225.00, *cancelled.RefundAmount)
	require.NotNil(t, cancelled.RefundStatus)
	assert.Equal(t, bookings.RefundPending, *cancelled.RefundStatus)
	require.NotNil(t, cancelled.CancellationReason)
	assert.Equal(t, ReasonChangeOfPlans, *cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancellationDate)
	assert.Equal(t, fixedNow(), cancelled.CancellationDate.UTC())

	assert.Equal(t, 1, store.updates)
	require.Len(t, publisher.cancelled, 1)
	assert.Equal(t, booking.ID, publisher.cancelled[0].ID)
}

func TestCancelBookingZeroRefundNotApplicable(t *testing.T) {
	userID := uuid.New()
	booking := confirmedBooking(userID, time.Hour, 450.00)
	store := newMockBookingStore(booking)
	svc := NewService(store, nil, clock.NewMock(fixedNow()))

	cancelled, err := svc.CancelBooking(context.Background(), CancelBookingRequest{
		UserID:    userID.String(),
		BookingID: booking.ID.String(),
		Reason:    ReasonChangeOfPlans,
	})
	require.NoError(t, err)
	require.NotNil(t, cancelled.RefundAmount)
	assert.Equal(t, 0.00, *cancelled.RefundAmount)
	require.NotNil(t, cancelled.RefundStatus)
	assert.Equal(t, bookings.RefundNotApplicable, *cancelled.RefundStatus)
}

func TestCancelBookingTwiceRejected(t *testing.T) {
	userID := uuid.New()
	booking := confirmedBooking(userID, 72*time.Hour, 450.00)
	store := newMockBookingStore(booking)
	svc := NewService(store, nil, clock.NewMock(fixedNow()))

	req := CancelBookingRequest{
		UserID:    userID.String(),
		BookingID: booking.ID.String(),
		Reason:    ReasonWork,
	}

	_, err := svc.CancelBooking(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), req)
	assert.ErrorContains(t, err, "already cancelled")
	assert.Equal(t, 1, store.updates)
}

func TestCancelCompletedBookingRejected(t *testing.T) {
	userID := uuid.New()
	booking := confirmedBooking(userID, 72*time.Hour, 450.00)
	booking.Status = bookings.StatusCompleted
	store := newMockBookingStore(booking)
	svc := NewService(store, nil, clock.NewMock(fixedNow()))

	_, err := svc.CancelBooking(context.Background(), CancelBookingRequest{
		UserID:    userID.String(),
		BookingID: booking.ID.String(),
		Reason:    ReasonWork,
	})
	assert.ErrorContains(t, err, "cannot be cancelled")
}

func TestUpdateRefundStatus(t *testing.T) {
	userID := uuid.New()
	booking := confirmedBooking(userID, 72*time.Hour, 450.00)
	store := newMockBookingStore(booking)
	svc := NewService(store, nil, clock.NewMock(fixedNow()))

	// Refund status only applies to cancelled bookings.
	_, err := svc.UpdateRefundStatus(context.Background(), UpdateRefundStatusRequest{
		BookingID:    booking.ID.String(),
		RefundStatus: string(bookings.RefundProcessed),
	})
	assert.ErrorContains(t, err, "not cancelled")

	_, err = svc.CancelBooking(context.Background(), CancelBookingRequest{
		UserID:    userID.String(),
		BookingID: booking.ID.String(),
		Reason:    ReasonWork,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRefundStatus(context.Background(), UpdateRefundStatusRequest{
		BookingID:    booking.ID.String(),
		RefundStatus: string(bookings.RefundProcessed),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.RefundStatus)
	assert.Equal(t, bookings.RefundProcessed, *updated.RefundStatus)

	_, err = svc.UpdateRefundStatus(context.Background(), UpdateRefundStatusRequest{
		BookingID:    booking.ID.String(),
		RefundStatus: "refunded-twice",
	})
	assert.ErrorContains(t, err, "invalid refund status")
}
