package client

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrSeatUnknown     = errors.New("seat does not exist in the current map")
	ErrSeatUnavailable = errors.New("seat is unavailable or held by another traveler")
	ErrEmptySelection  = errors.New("no seats selected")
	ErrNoSeatMap       = errors.New("seat map not loaded")
)

// Seat is the client projection of one cabin seat.
type Seat struct {
	SeatNumber string  `json:"seatNumber"`
	Row        int     `json:"row"`
	Column     string  `json:"column"`
	Class      string  `json:"class"`
	Window     bool    `json:"window"`
	Aisle      bool    `json:"aisle"`
	ExtraPrice float64 `json:"extraPrice"`
	Available  bool    `json:"available"`
	BookedBy   *string `json:"bookedBy,omitempty"`
}

// SeatRow groups seats for rendering.
type SeatRow struct {
	Row   int    `json:"row"`
	Seats []Seat `json:"seats"`
}

// SeatMap is the payload of GET /api/seat-selection/flight/{flightId}.
type SeatMap struct {
	FlightID     string             `json:"flightId"`
	AircraftType string             `json:"aircraftType"`
	Rows         []SeatRow          `json:"rows"`
	ClassPricing map[string]float64 `json:"classPricing"`
}

// SeatSelectionState tracks a traveler's multi-select seat choice against
// the remote seat map. The map is replaced wholesale on every load;
// selection invariants are enforced at the mutation boundary.
type SeatSelectionState struct {
	mu       sync.Mutex
	client   *Client
	session  Session
	flightID string

	seatMap    *SeatMap
	byNumber   map[string]Seat
	selection  map[string]struct{}
	generation uint64
}

// NewSeatSelectionState creates an empty state for one flight. Call Load
// before toggling.
func NewSeatSelectionState(c *Client, session Session, flightID string) *SeatSelectionState {
	return &SeatSelectionState{
		client:    c,
		session:   session,
		flightID:  flightID,
		selection: make(map[string]struct{}),
	}
}

// Load fetches the seat map, replacing the local copy and clearing the
// selection. A load that finishes after a newer load was issued is
// discarded.
func (s *SeatSelectionState) Load(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	var seatMap SeatMap
	err := s.client.getJSON(ctx, "/api/seat-selection/flight/"+s.flightID, &seatMap)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return ErrStaleResponse
	}
	if err != nil {
		return err
	}

	s.seatMap = &seatMap
	s.byNumber = make(map[string]Seat)
	for _, row := range seatMap.Rows {
		for _, seat := range row.Seats {
			s.byNumber[seat.SeatNumber] = seat
		}
	}
	s.selection = make(map[string]struct{})
	return nil
}

// SeatMap returns the loaded map, or nil.
func (s *SeatSelectionState) SeatMap() *SeatMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seatMap
}

// Toggle flips a seat's membership in the selection. Seats that are
// unavailable or held by another traveler are rejected and the selection
// is left untouched.
func (s *SeatSelectionState) Toggle(seatNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seatMap == nil {
		return ErrNoSeatMap
	}
	seat, ok := s.byNumber[seatNumber]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSeatUnknown, seatNumber)
	}
	if !selectable(seat.Available, seat.BookedBy, s.session.UserID) {
		return fmt.Errorf("%w: %s", ErrSeatUnavailable, seatNumber)
	}

	if _, selected := s.selection[seatNumber]; selected {
		delete(s.selection, seatNumber)
	} else {
		s.selection[seatNumber] = struct{}{}
	}
	return nil
}

// Selected returns the selected seat numbers in stable order.
func (s *SeatSelectionState) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := make([]string, 0, len(s.selection))
	for seatNumber := range s.selection {
		selected = append(selected, seatNumber)
	}
	sort.Strings(selected)
	return selected
}

// TotalPrice sums the extra price of every selected seat.
func (s *SeatSelectionState) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for seatNumber := range s.selection {
		total += s.byNumber[seatNumber].ExtraPrice
	}
	return total
}

// Commit books the selected seats. On success the selection clears and
// the map is re-fetched so the new ownership shows. On failure the
// selection is preserved for retry; there is no local fallback.
func (s *SeatSelectionState) Commit(ctx context.Context) error {
	s.mu.Lock()
	if s.session.UserID == "" {
		s.mu.Unlock()
		return ErrSessionRequired
	}
	if len(s.selection) == 0 {
		s.mu.Unlock()
		return ErrEmptySelection
	}
	seatNumbers := make([]string, 0, len(s.selection))
	for seatNumber := range s.selection {
		seatNumbers = append(seatNumbers, seatNumber)
	}
	sort.Strings(seatNumbers)
	s.mu.Unlock()

	req := map[string]interface{}{
		"flightId":    s.flightID,
		"seatNumbers": seatNumbers,
		"userId":      s.session.UserID,
	}
	if err := s.client.postJSON(ctx, "/api/seat-selection/book-seats", req, nil); err != nil {
		return err
	}

	// Load clears the selection and refreshes ownership
	return s.Load(ctx)
}

// selectable enforces the shared seat/room invariant: free, or already
// held by the current traveler.
func selectable(available bool, bookedBy *string, userID string) bool {
	if !available {
		return false
	}
	return bookedBy == nil || *bookedBy == "" || *bookedBy == userID
}
