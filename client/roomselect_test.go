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

func testRoomLayout() RoomLayout {
	return RoomLayout{
		HotelID: "hotel-1",
		RoomTypes: []RoomTypeGroup{
			{
				Type:      "standard",
				BasePrice: 100.00,
				Rooms: []Room{
					{RoomNumber: "101", Floor: 1, Available: true},
					{RoomNumber: "102", Floor: 1, Available: true},
					{RoomNumber: "103", Floor: 1, Available: false},
					{RoomNumber: "104", Floor: 1, Available: true, BookedBy: strPtr("someone-else")},
				},
			},
			{
				Type:      "deluxe",
				BasePrice: 200.00,
				Rooms: []Room{
					{RoomNumber: "301", Floor: 3, Available: true},
					{RoomNumber: "302", Floor: 3, Available: true},
				},
			},
		},
	}
}

type roomServer struct {
	*httptest.Server
	bookCalls  atomic.Int64
	bookStatus int
}

func newRoomServer(t *testing.T, bookStatus int) *roomServer {
	t.Helper()
	s := &roomServer{bookStatus: bookStatus}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/room-selection/hotel/hotel-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testRoomLayout())
	})
	mux.HandleFunc("/api/room-selection/book-room", func(w http.ResponseWriter, r *http.Request) {
		s.bookCalls.Add(1)
		if s.bookStatus != http.StatusOK {
			w.WriteHeader(s.bookStatus)
			json.NewEncoder(w).Encode(map[string]string{"error": "room conflict"})
			return
		}
		var req struct {
			HotelID    string `json:"hotelId"`
			RoomNumber string `json:"roomNumber"`
			UserID     string `json:"userId"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hotel-1", req.HotelID)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":    true,
			"hotelId":    req.HotelID,
			"roomNumber": req.RoomNumber,
		})
	})
	s.Server = httptest.NewServer(mux)
	return s
}

func TestRoomSelectionSingleSelect(t *testing.T) {
	server := newRoomServer(t, http.StatusOK)
	defer server.Close()

	state := NewRoomSelectionState(New(server.URL), NewSession("user-1"), "hotel-1")
	require.NoError(t, state.Load(context.Background()))
	assert.Equal(t, "standard", state.ActiveType())

	require.NoError(t, state.Select("101"))
	assert.Equal(t, "101", state.Selected())
	assert.Equal(t, 100.00, state.Price())

	// Selecting another room replaces the first, never accumulates.
	require.NoError(t, state.Select("102"))
	assert.Equal(t, "102", state.Selected())

	state.Clear()
	assert.Empty(t, state.Selected())
	assert.Equal(t, 0.00, state.Price())
}

func TestRoomSelectionRejections(t *testing.T) {
	server := newRoomServer(t, http.StatusOK)
	defer server.Close()

	state := NewRoomSelectionState(New(server.URL), NewSession("user-1"), "hotel-1")
	require.NoError(t, state.Load(context.Background()))

	assert.ErrorIs(t, state.Select("999"), ErrRoomUnknown)
	assert.ErrorIs(t, state.Select("103"), ErrRoomUnavailable)
	assert.ErrorIs(t, state.Select("104"), ErrRoomUnavailable)
	assert.Empty(t, state.Selected())
}

func TestRoomSelectionSelectBeforeLoad(t *testing.T) {
	state := NewRoomSelectionState(unreachableClient(), NewSession("user-1"), "hotel-1")
	assert.ErrorIs(t, state.Select("101"), ErrNoRoomLayout)
}

func TestRoomSelectionTypeGroupSwitchClearsSelection(t *testing.T) {
	server := newRoomServer(t, http.StatusOK)
	defer server.Close()

	state := NewRoomSelectionState(New(server.URL), NewSession("user-1"), "hotel-1")
	require.NoError(t, state.Load(context.Background()))

	require.NoError(t, state.Select("101"))
	state.SetTypeGroup("deluxe")
	assert.Equal(t, "deluxe", state.ActiveType())
	assert.Empty(t, state.Selected())

	// Selecting within the active group then switching back keeps it only
	// when it still belongs.
	require.NoError(t, state.Select("301"))
	state.SetTypeGroup("deluxe")
	assert.Equal(t, "301", state.Selected())
	assert.Equal(t, 200.00, state.Price())

	state.SetTypeGroup("standard")
	assert.Empty(t, state.Selected())
}

func TestRoomSelectionCommit(t *testing.T) {
	server := newRoomServer(t, http.StatusOK)
	defer server.Close()

	state := NewRoomSelectionState(New(server.URL), NewSession("user-1"), "hotel-1")
	require.NoError(t, state.Load(context.Background()))
	require.NoError(t, state.Select("102"))

	require.NoError(t, state.Commit(context.Background()))
	assert.Empty(t, state.Selected())
	assert.EqualValues(t, 1, server.bookCalls.Load())
}

func TestRoomSelectionCommitFailurePreservesSelection(t *testing.T) {
	server := newRoomServer(t, http.StatusConflict)
	defer server.Close()

	state := NewRoomSelectionState(New(server.URL), NewSession("user-1"), "hotel-1")
	require.NoError(t, state.Load(context.Background()))
	require.NoError(t, state.Select("102"))

	err := state.Commit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room conflict")
	assert.Equal(t, "102", state.Selected())
}

func TestRoomSelectionLoadDiscardedWhenSuperseded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var requests atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/room-selection/hotel/hotel-1", func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			close(entered)
			<-release
			json.NewEncoder(w).Encode(RoomLayout{
				HotelID: "hotel-1",
				RoomTypes: []RoomTypeGroup{
					{Type: "suite", BasePrice: 500.00, Rooms: []Room{
						{RoomNumber: "901", Floor: 9, Available: true},
					}},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(testRoomLayout())
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	state := NewRoomSelectionState(New(server.URL), NewSession("user-1"), "hotel-1")

	done := make(chan error, 1)
	go func() { done <- state.Load(context.Background()) }()

	// A second load issued while the first is in flight supersedes it.
	<-entered
	require.NoError(t, state.Load(context.Background()))
	close(release)

	assert.ErrorIs(t, <-done, ErrStaleResponse)

	// The newer layout won; the stale one never landed.
	assert.Equal(t, "standard", state.ActiveType())
	require.NoError(t, state.Select("101"))
	assert.ErrorIs(t, state.Select("901"), ErrRoomUnknown)
}

func TestRoomSelectionCommitGuards(t *testing.T) {
	server := newRoomServer(t, http.StatusOK)
	defer server.Close()

	state := NewRoomSelectionState(New(server.URL), NewSession("user-1"), "hotel-1")
	require.NoError(t, state.Load(context.Background()))
	assert.ErrorIs(t, state.Commit(context.Background()), ErrNoRoomSelected)

	anon := NewRoomSelectionState(New(server.URL), NewSession(""), "hotel-1")
	require.NoError(t, anon.Load(context.Background()))
	require.NoError(t, anon.Select("101"))
	assert.ErrorIs(t, anon.Commit(context.Background()), ErrSessionRequired)

	assert.EqualValues(t, 0, server.bookCalls.Load())
}
