package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/pkg/clock"
)

func newFreezeServer(t *testing.T, success bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/pricing/freeze", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "flight-1", req["itemId"])
		assert.Equal(t, "flight", req["itemType"])
		assert.NotEmpty(t, req["userId"])
		json.NewEncoder(w).Encode(map[string]interface{}{"success": success})
	})
	return httptest.NewServer(mux)
}

func TestPriceFreezeTimerFreeze(t *testing.T) {
	server := newFreezeServer(t, true)
	defer server.Close()

	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mock := clock.NewMock(start)
	timer := NewPriceFreezeTimer(New(server.URL), NewSession("user-1"), mock)

	assert.False(t, timer.Frozen())
	assert.True(t, timer.ExpiresAt().IsZero())

	ok, err := timer.Freeze(context.Background(), "flight-1", "flight", 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, timer.Frozen())
	assert.Equal(t, start.Add(24*time.Hour), timer.ExpiresAt())
}

func TestPriceFreezeTimerRejectsSecondFreeze(t *testing.T) {
	server := newFreezeServer(t, true)
	defer server.Close()

	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mock := clock.NewMock(start)
	timer := NewPriceFreezeTimer(New(server.URL), NewSession("user-1"), mock)

	ok, err := timer.Freeze(context.Background(), "flight-1", "flight", 24)
	require.NoError(t, err)
	require.True(t, ok)
	firstExpiry := timer.ExpiresAt()

	ok, err = timer.Freeze(context.Background(), "flight-1", "flight", 48)
	assert.ErrorIs(t, err, ErrAlreadyFrozen)
	assert.False(t, ok)

	// The pending expiry was not rescheduled.
	assert.Equal(t, firstExpiry, timer.ExpiresAt())
}

func TestPriceFreezeTimerAutoUnfreezes(t *testing.T) {
	server := newFreezeServer(t, true)
	defer server.Close()

	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mock := clock.NewMock(start)
	timer := NewPriceFreezeTimer(New(server.URL), NewSession("user-1"), mock)

	ok, err := timer.Freeze(context.Background(), "flight-1", "flight", 24)
	require.NoError(t, err)
	require.True(t, ok)

	mock.Advance(23 * time.Hour)
	assert.True(t, timer.Frozen())

	mock.Advance(time.Hour)
	assert.False(t, timer.Frozen())
	assert.True(t, timer.ExpiresAt().IsZero())

	// A new freeze is allowed once the old one expired.
	ok, err = timer.Freeze(context.Background(), "flight-1", "flight", 24)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPriceFreezeTimerServiceRejection(t *testing.T) {
	server := newFreezeServer(t, false)
	defer server.Close()

	mock := clock.NewMock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	timer := NewPriceFreezeTimer(New(server.URL), NewSession("user-1"), mock)

	ok, err := timer.Freeze(context.Background(), "flight-1", "flight", 24)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, timer.Frozen())
}

func TestPriceFreezeTimerTransportError(t *testing.T) {
	mock := clock.NewMock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	timer := NewPriceFreezeTimer(unreachableClient(), NewSession("user-1"), mock)

	ok, err := timer.Freeze(context.Background(), "flight-1", "flight", 24)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.False(t, timer.Frozen())
}

func TestPriceFreezeTimerStop(t *testing.T) {
	server := newFreezeServer(t, true)
	defer server.Close()

	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mock := clock.NewMock(start)
	timer := NewPriceFreezeTimer(New(server.URL), NewSession("user-1"), mock)

	ok, err := timer.Freeze(context.Background(), "flight-1", "flight", 24)
	require.NoError(t, err)
	require.True(t, ok)

	timer.Stop()
	assert.False(t, timer.Frozen())

	// Stopped timers never fire.
	mock.Advance(48 * time.Hour)
	assert.False(t, timer.Frozen())

	// Freezing again after Stop works.
	ok, err = timer.Freeze(context.Background(), "flight-1", "flight", 24)
	require.NoError(t, err)
	assert.True(t, ok)
}
