package flightstatus

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/pkg/clock"
)

type mockStatusRepo struct {
	byFlightID map[string]*FlightStatus
	created    int
	updated    int
}

func newMockStatusRepo() *mockStatusRepo {
	return &mockStatusRepo{byFlightID: make(map[string]*FlightStatus)}
}

func (m *mockStatusRepo) GetByFlightID(ctx context.Context, flightID string) (*FlightStatus, error) {
	status, ok := m.byFlightID[flightID]
	if !ok {
		return nil, ErrStatusNotFound
	}
	return status, nil
}

func (m *mockStatusRepo) GetByFlightNumber(ctx context.Context, flightNumber string) (*FlightStatus, error) {
	for _, status := range m.byFlightID {
		if status.FlightNumber == flightNumber {
			return status, nil
		}
	}
	return nil, ErrStatusNotFound
}

func (m *mockStatusRepo) Create(ctx context.Context, status *FlightStatus) error {
	m.created++
	if status.ID == uuid.Nil {
		status.ID = uuid.New()
	}
	m.byFlightID[status.FlightID] = status
	return nil
}

func (m *mockStatusRepo) Update(ctx context.Context, status *FlightStatus) error {
	m.updated++
	m.byFlightID[status.FlightID] = status
	return nil
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func TestGenerateStatusDeterministic(t *testing.T) {
	now := fixedNow()
	first := GenerateStatus("FL-BOM-DXB-104", now)
	second := GenerateStatus("FL-BOM-DXB-104", now)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.FlightNumber, second.FlightNumber)
	assert.Equal(t, first.DelayMinutes, second.DelayMinutes)
	assert.Equal(t, first.Gate, second.Gate)
	assert.Equal(t, first.ScheduledDeparture, second.ScheduledDeparture)
}

func TestGenerateStatusShape(t *testing.T) {
	now := fixedNow()

	// Across many flights the generator must stay internally consistent.
	for _, flightID := range []string{"FL-1", "FL-2", "FL-3", "FL-MAD-LIS-220", "FL-DXB-BOM-105", "xyz"} {
		status := GenerateStatus(flightID, now)

		assert.True(t, status.Status.IsValid())
		assert.Regexp(t, `^AI\d{4}$`, status.FlightNumber)
		assert.Regexp(t, `^[A-F]\d+$`, status.Gate)
		assert.Regexp(t, `^T[1-3]$`, status.Terminal)
		assert.True(t, status.ScheduledDeparture.After(now))

		switch status.Status {
		case StatusOnTime:
			assert.Zero(t, status.DelayMinutes)
			assert.Equal(t, status.ScheduledDeparture, status.EstimatedDeparture)
		case StatusDelayed:
			assert.GreaterOrEqual(t, status.DelayMinutes, minDelayMinutes)
			assert.Less(t, status.DelayMinutes, minDelayMinutes+delayMinutesSpan)
			require.NotNil(t, status.DelayReason)
			expected := status.ScheduledDeparture.Add(time.Duration(status.DelayMinutes) * time.Minute)
			assert.Equal(t, expected, status.EstimatedDeparture)
		case StatusCancelled:
			require.NotNil(t, status.DelayReason)
			assert.Equal(t, cancellationReason, *status.DelayReason)
		}
	}
}

func TestGetByFlightIDGeneratesOnce(t *testing.T) {
	repo := newMockStatusRepo()
	svc := NewService(repo, nil, clock.NewMock(fixedNow()))

	first, err := svc.GetByFlightID(context.Background(), "FL-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.created)

	second, err := svc.GetByFlightID(context.Background(), "FL-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.created)
	assert.Equal(t, first.FlightNumber, second.FlightNumber)
}

func TestGetByFlightIDRequiresID(t *testing.T) {
	svc := NewService(newMockStatusRepo(), nil, clock.NewMock(fixedNow()))
	_, err := svc.GetByFlightID(context.Background(), "")
	assert.ErrorContains(t, err, "flight ID is required")
}

func TestGetByFlightNumber(t *testing.T) {
	repo := newMockStatusRepo()
	svc := NewService(repo, nil, clock.NewMock(fixedNow()))

	generated, err := svc.GetByFlightID(context.Background(), "FL-1")
	require.NoError(t, err)

	found, err := svc.GetByFlightNumber(context.Background(), generated.FlightNumber)
	require.NoError(t, err)
	assert.Equal(t, "FL-1", found.FlightID)

	_, err = svc.GetByFlightNumber(context.Background(), "AI0000")
	assert.ErrorIs(t, err, ErrStatusNotFound)
}

func TestUpdateStatusDelay(t *testing.T) {
	repo := newMockStatusRepo()
	svc := NewService(repo, nil, clock.NewMock(fixedNow()))

	generated, err := svc.GetByFlightID(context.Background(), "FL-1")
	require.NoError(t, err)

	reason := "Air traffic control"
	updated, err := svc.UpdateStatus(context.Background(), "FL-1", UpdateStatusRequest{
		Status:       StatusDelayed,
		DelayMinutes: 45,
		DelayReason:  &reason,
		Gate:         "B7",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusDelayed, updated.Status)
	assert.Equal(t, 45, updated.DelayMinutes)
	assert.Equal(t, "B7", updated.Gate)
	assert.Equal(t, generated.ScheduledDeparture.Add(45*time.Minute), updated.EstimatedDeparture)
	assert.Nil(t, updated.ActualDeparture)
	assert.Equal(t, 1, repo.updated)
}

func TestUpdateStatusDepartedStampsActual(t *testing.T) {
	repo := newMockStatusRepo()
	svc := NewService(repo, nil, clock.NewMock(fixedNow()))

	_, err := svc.GetByFlightID(context.Background(), "FL-1")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), "FL-1", UpdateStatusRequest{
		Status: StatusDeparted,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ActualDeparture)
	assert.Equal(t, fixedNow(), updated.ActualDeparture.UTC())
}
