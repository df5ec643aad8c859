package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrRoomUnknown     = errors.New("room does not exist in the current layout")
	ErrRoomUnavailable = errors.New("room is unavailable or held by another guest")
	ErrNoRoomSelected  = errors.New("no room selected")
	ErrNoRoomLayout    = errors.New("room layout not loaded")
)

// Room is the client projection of one hotel room.
type Room struct {
	RoomNumber string   `json:"roomNumber"`
	Floor      int      `json:"floor"`
	View       string   `json:"view"`
	SizeSqm    int      `json:"sizeSqm"`
	Features   []string `json:"features"`
	Available  bool     `json:"available"`
	BookedBy   *string  `json:"bookedBy,omitempty"`
}

// RoomTypeGroup is one room category with its rooms.
type RoomTypeGroup struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"basePrice"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Rooms       []Room   `json:"rooms"`
}

// RoomLayout is the payload of GET /api/room-selection/hotel/{hotelId}.
type RoomLayout struct {
	HotelID   string          `json:"hotelId"`
	RoomTypes []RoomTypeGroup `json:"roomTypes"`
}

// RoomSelectionState tracks a guest's single-select room choice. Unlike
// seats, selecting a new room replaces the previous one, and switching
// the visible type group drops a selection that does not belong to it so
// the choice on screen is always the choice that will be committed.
type RoomSelectionState struct {
	mu      sync.Mutex
	client  *Client
	session Session
	hotelID string

	layout      *RoomLayout
	byNumber    map[string]Room
	groupByRoom map[string]string
	activeType  string
	selected    string
	generation  uint64
}

// NewRoomSelectionState creates an empty state for one hotel. Call Load
// before selecting.
func NewRoomSelectionState(c *Client, session Session, hotelID string) *RoomSelectionState {
	return &RoomSelectionState{
		client:  c,
		session: session,
		hotelID: hotelID,
	}
}

// Load fetches the room layout, replacing the local copy and clearing
// the selection. The first type group becomes the active one.
func (s *RoomSelectionState) Load(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	var layout RoomLayout
	err := s.client.getJSON(ctx, "/api/room-selection/hotel/"+s.hotelID, &layout)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return ErrStaleResponse
	}
	if err != nil {
		return err
	}

	s.layout = &layout
	s.byNumber = make(map[string]Room)
	s.groupByRoom = make(map[string]string)
	for _, group := range layout.RoomTypes {
		for _, room := range group.Rooms {
			s.byNumber[room.RoomNumber] = room
			s.groupByRoom[room.RoomNumber] = group.Type
		}
	}
	s.selected = ""
	if s.activeType == "" && len(layout.RoomTypes) > 0 {
		s.activeType = layout.RoomTypes[0].Type
	}
	return nil
}

// Layout returns the loaded layout, or nil.
func (s *RoomSelectionState) Layout() *RoomLayout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout
}

// ActiveType returns the visible room type group.
func (s *RoomSelectionState) ActiveType() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeType
}

// SetTypeGroup switches the visible type group. A selection that does
// not belong to the new group is cleared; no orphaned selections.
func (s *RoomSelectionState) SetTypeGroup(roomType string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeType = roomType
	if s.selected != "" && s.groupByRoom[s.selected] != roomType {
		s.selected = ""
	}
}

// Select picks a room, replacing any prior selection. Rooms that are
// unavailable or held by another guest are rejected.
func (s *RoomSelectionState) Select(roomNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.layout == nil {
		return ErrNoRoomLayout
	}
	room, ok := s.byNumber[roomNumber]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRoomUnknown, roomNumber)
	}
	if !selectable(room.Available, room.BookedBy, s.session.UserID) {
		return fmt.Errorf("%w: %s", ErrRoomUnavailable, roomNumber)
	}

	s.selected = roomNumber
	return nil
}

// Clear drops the current selection.
func (s *RoomSelectionState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
}

// Selected returns the selected room number, or empty.
func (s *RoomSelectionState) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Price returns the base price of the selected room's type group; zero
// when nothing is selected.
func (s *RoomSelectionState) Price() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == "" || s.layout == nil {
		return 0
	}
	groupType := s.groupByRoom[s.selected]
	for _, group := range s.layout.RoomTypes {
		if group.Type == groupType {
			return group.BasePrice
		}
	}
	return 0
}

// Commit books the selected room. On success the selection clears and
// the layout is re-fetched. On failure the selection is preserved for
// retry; there is no local fallback.
func (s *RoomSelectionState) Commit(ctx context.Context) error {
	s.mu.Lock()
	if s.session.UserID == "" {
		s.mu.Unlock()
		return ErrSessionRequired
	}
	if s.selected == "" {
		s.mu.Unlock()
		return ErrNoRoomSelected
	}
	roomNumber := s.selected
	s.mu.Unlock()

	req := map[string]interface{}{
		"hotelId":    s.hotelID,
		"roomNumber": roomNumber,
		"userId":     s.session.UserID,
	}
	if err := s.client.postJSON(ctx, "/api/room-selection/book-room", req, nil); err != nil {
		return err
	}

	return s.Load(ctx)
}
