package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockAdvanceFiresTimers(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mock := NewMock(start)

	fired := 0
	mock.AfterFunc(time.Hour, func() { fired++ })

	mock.Advance(30 * time.Minute)
	assert.Zero(t, fired)
	assert.Equal(t, start.Add(30*time.Minute), mock.Now())

	mock.Advance(30 * time.Minute)
	assert.Equal(t, 1, fired)

	// A timer fires only once.
	mock.Advance(2 * time.Hour)
	assert.Equal(t, 1, fired)
}

func TestMockSetFiresDueTimers(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mock := NewMock(start)

	fired := false
	mock.AfterFunc(24*time.Hour, func() { fired = true })

	mock.Set(start.Add(24 * time.Hour))
	assert.True(t, fired)
}

func TestMockStopPreventsFiring(t *testing.T) {
	mock := NewMock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	fired := false
	timer := mock.AfterFunc(time.Hour, func() { fired = true })

	assert.True(t, timer.Stop())
	mock.Advance(2 * time.Hour)
	assert.False(t, fired)

	// Stopping twice reports false the second time.
	assert.False(t, timer.Stop())
}

func TestMockNonPositiveDelayFiresImmediately(t *testing.T) {
	mock := NewMock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	fired := false
	mock.AfterFunc(0, func() { fired = true })
	assert.True(t, fired)
}
