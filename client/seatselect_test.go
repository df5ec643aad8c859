package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testSeatMap() SeatMap {
	return SeatMap{
		FlightID:     "flight-1",
		AircraftType: "Boeing 737",
		Rows: []SeatRow{
			{Row: 1, Seats: []Seat{
				{SeatNumber: "1A", Row: 1, Column: "A", Class: "business", Window: true, ExtraPrice: 50.00, Available: true},
				{SeatNumber: "1B", Row: 1, Column: "B", Class: "business", ExtraPrice: 50.00, Available: true, BookedBy: strPtr("someone-else")},
			}},
			{Row: 10, Seats: []Seat{
				{SeatNumber: "10A", Row: 10, Column: "A", Class: "economy", Window: true, ExtraPrice: 0, Available: true},
				{SeatNumber: "10B", Row: 10, Column: "B", Class: "economy", ExtraPrice: 0, Available: false},
				{SeatNumber: "10C", Row: 10, Column: "C", Class: "economy", Aisle: true, ExtraPrice: 0, Available: true, BookedBy: strPtr("user-1")},
			}},
		},
		ClassPricing: map[string]float64{"economy": 0, "business": 50},
	}
}

type seatServer struct {
	*httptest.Server
	bookCalls  atomic.Int64
	bookStatus int
}

func newSeatServer(t *testing.T, bookStatus int) *seatServer {
	t.Helper()
	s := &seatServer{bookStatus: bookStatus}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/seat-selection/flight/flight-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testSeatMap())
	})
	mux.HandleFunc("/api/seat-selection/book-seats", func(w http.ResponseWriter, r *http.Request) {
		s.bookCalls.Add(1)
		if s.bookStatus != http.StatusOK {
			w.WriteHeader(s.bookStatus)
			json.NewEncoder(w).Encode(map[string]string{"error": "seat conflict"})
			return
		}
		var req struct {
			FlightID    string   `json:"flightId"`
			SeatNumbers []string `json:"seatNumbers"`
			UserID      string   `json:"userId"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "flight-1", req.FlightID)
		assert.NotEmpty(t, req.SeatNumbers)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":     true,
			"flightId":    req.FlightID,
			"seatNumbers": req.SeatNumbers,
		})
	})
	s.Server = httptest.NewServer(mux)
	return s
}

func TestSeatSelectionToggleAndPrice(t *testing.T) {
	server := newSeatServer(t, http.StatusOK)
	defer server.Close()

	state := NewSeatSelectionState(New(server.URL), NewSession("user-1"), "flight-1")
	require.NoError(t, state.Load(context.Background()))

	// Economy seat with no surcharge plus a business seat.
	require.NoError(t, state.Toggle("10A"))
	require.NoError(t, state.Toggle("1A"))
	assert.Equal(t, []string{"10A", "1A"}, state.Selected())
	assert.Equal(t, 50.00, state.TotalPrice())

	// Deselecting the business seat drops the surcharge.
	require.NoError(t, state.Toggle("1A"))
	assert.Equal(t, []string{"10A"}, state.Selected())
	assert.Equal(t, 0.00, state.TotalPrice())
}

func TestSeatSelectionToggleRejections(t *testing.T) {
	server := newSeatServer(t, http.StatusOK)
	defer server.Close()

	state := NewSeatSelectionState(New(server.URL), NewSession("user-1"), "flight-1")
	require.NoError(t, state.Load(context.Background()))

	assert.ErrorIs(t, state.Toggle("99Z"), ErrSeatUnknown)
	assert.ErrorIs(t, state.Toggle("10B"), ErrSeatUnavailable)
	assert.ErrorIs(t, state.Toggle("1B"), ErrSeatUnavailable)
	assert.Empty(t, state.Selected())

	// A seat already held by the current traveler stays toggleable.
	assert.NoError(t, state.Toggle("10C"))
	assert.Equal(t, []string{"10C"}, state.Selected())
}

func TestSeatSelectionToggleBeforeLoad(t *testing.T) {
	state := NewSeatSelectionState(unreachableClient(), NewSession("user-1"), "flight-1")
	assert.ErrorIs(t, state.Toggle("1A"), ErrNoSeatMap)
}

func TestSeatSelectionCommit(t *testing.T) {
	server := newSeatServer(t, http.StatusOK)
	defer server.Close()

	state := NewSeatSelectionState(New(server.URL), NewSession("user-1"), "flight-1")
	require.NoError(t, state.Load(context.Background()))
	require.NoError(t, state.Toggle("10A"))
	require.NoError(t, state.Toggle("1A"))

	require.NoError(t, state.Commit(context.Background()))

	// Success clears the selection and the map was re-fetched.
	assert.Empty(t, state.Selected())
	assert.Equal(t, 0.00, state.TotalPrice())
	assert.EqualValues(t, 1, server.bookCalls.Load())
	assert.NotNil(t, state.SeatMap())
}

func TestSeatSelectionCommitFailurePreservesSelection(t *testing.T) {
	server := newSeatServer(t, http.StatusConflict)
	defer server.Close()

	state := NewSeatSelectionState(New(server.URL), NewSession("user-1"), "flight-1")
	require.NoError(t, state.Load(context.Background()))
	require.NoError(t, state.Toggle("10A"))
	require.NoError(t, state.Toggle("1A"))

	err := state.Commit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seat conflict")

	// The selection survives for retry.
	assert.Equal(t, []string{"10A", "1A"}, state.Selected())
	assert.Equal(t, 50.00, state.TotalPrice())
}

func TestSeatSelectionCommitGuards(t *testing.T) {
	server := newSeatServer(t, http.StatusOK)
	defer server.Close()

	state := NewSeatSelectionState(New(server.URL), NewSession("user-1"), "flight-1")
	require.NoError(t, state.Load(context.Background()))
	assert.ErrorIs(t, state.Commit(context.Background()), ErrEmptySelection)

	anon := NewSeatSelectionState(New(server.URL), NewSession(""), "flight-1")
	require.NoError(t, anon.Load(context.Background()))
	require.NoError(t, anon.Toggle("10A"))
	assert.ErrorIs(t, anon.Commit(context.Background()), ErrSessionRequired)

	assert.EqualValues(t, 0, server.bookCalls.Load())
}

func TestSeatSelectionLoadDiscardedWhenSuperseded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var requests atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/seat-selection/flight/flight-1", func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			close(entered)
			<-release
			json.NewEncoder(w).Encode(SeatMap{
				FlightID: "flight-1",
				Rows: []SeatRow{
					{Row: 2, Seats: []Seat{
						{SeatNumber: "2A", Row: 2, Column: "A", Available: true},
					}},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(testSeatMap())
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	state := NewSeatSelectionState(New(server.URL), NewSession("user-1"), "flight-1")

	done := make(chan error, 1)
	go func() { done <- state.Load(context.Background()) }()

	// A second load issued while the first is in flight supersedes it.
	<-entered
	require.NoError(t, state.Load(context.Background()))
	close(release)

	assert.ErrorIs(t, <-done, ErrStaleResponse)

	// The newer map won; the stale one never landed.
	require.NoError(t, state.Toggle("10A"))
	assert.ErrorIs(t, state.Toggle("2A"), ErrSeatUnknown)
}

func TestSeatSelectionReloadClearsSelection(t *testing.T) {
	server := newSeatServer(t, http.StatusOK)
	defer server.Close()

	state := NewSeatSelectionState(New(server.URL), NewSession("user-1"), "flight-1")
	require.NoError(t, state.Load(context.Background()))
	require.NoError(t, state.Toggle("10A"))

	require.NoError(t, state.Load(context.Background()))
	assert.Empty(t, state.Selected())
}
