package rooms

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRoomRepo struct {
	layouts   map[string]*RoomLayout
	created   int
	bookCalls int
}

func newMockRoomRepo(layouts ...*RoomLayout) *mockRoomRepo {
	repo := &mockRoomRepo{layouts: make(map[string]*RoomLayout)}
	for _, l := range layouts {
		repo.layouts[l.HotelID] = l
	}
	return repo
}

func (m *mockRoomRepo) GetByHotelID(ctx context.Context, hotelID string) (*RoomLayout, error) {
	layout, ok := m.layouts[hotelID]
	if !ok {
		return nil, ErrRoomLayoutNotFound
	}
	return layout, nil
}

func (m *mockRoomRepo) Create(ctx context.Context, layout *RoomLayout) error {
	m.created++
	if layout.ID == uuid.Nil {
		layout.ID = uuid.New()
	}
	m.layouts[layout.HotelID] = layout
	return nil
}

func (m *mockRoomRepo) BookRoom(ctx context.Context, layoutID uuid.UUID, roomNumber, userID string) error {
	m.bookCalls++
	for _, layout := range m.layouts {
		if layout.ID != layoutID {
			continue
		}
		for i := range layout.RoomTypes {
			for j := range layout.RoomTypes[i].Rooms {
				room := &layout.RoomTypes[i].Rooms[j]
				if room.RoomNumber != roomNumber {
					continue
				}
				if !room.Available || room.BookedBy != nil {
					return &RoomConflictError{RoomNumber: roomNumber}
				}
				room.Available = false
				room.BookedBy = &userID
				return nil
			}
		}
		return &RoomConflictError{RoomNumber: roomNumber}
	}
	return ErrRoomLayoutNotFound
}

func seededLayout(hotelID string) *RoomLayout {
	layout := GenerateDefaultLayout(hotelID)
	layout.ID = uuid.New()
	return layout
}

func TestGetRoomLayoutGeneratesDefault(t *testing.T) {
	repo := newMockRoomRepo()
	svc := NewService(repo, nil, nil)

	data, err := svc.GetRoomLayout(context.Background(), "hotel-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.created)
	assert.Equal(t, "hotel-1", data.HotelID)
	require.Len(t, data.RoomTypes, 3)

	assert.Equal(t, TypeStandard, data.RoomTypes[0].Type)
	assert.Equal(t, 100.0, data.RoomTypes[0].BasePrice)
	assert.Len(t, data.RoomTypes[0].Rooms, 50)
	assert.Equal(t, TypeDeluxe, data.RoomTypes[1].Type)
	assert.Len(t, data.RoomTypes[1].Rooms, 18)
	assert.Equal(t, TypeSuite, data.RoomTypes[2].Type)
	assert.Equal(t, 500.0, data.RoomTypes[2].BasePrice)
	assert.Len(t, data.RoomTypes[2].Rooms, 8)

	// Room numbers are unique hotel-wide.
	seen := make(map[string]bool)
	for _, group := range data.RoomTypes {
		for _, room := range group.Rooms {
			assert.False(t, seen[room.RoomNumber], "duplicate room number %s", room.RoomNumber)
			seen[room.RoomNumber] = true
		}
	}

	// Second lookup reuses the stored layout.
	_, err = svc.GetRoomLayout(context.Background(), "hotel-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.created)
}

func TestGenerateDefaultLayoutDetails(t *testing.T) {
	layout := GenerateDefaultLayout("hotel-9")

	var standard, deluxe, suite *RoomTypeGroup
	for i := range layout.RoomTypes {
		switch layout.RoomTypes[i].Type {
		case TypeStandard:
			standard = &layout.RoomTypes[i]
		case TypeDeluxe:
			deluxe = &layout.RoomTypes[i]
		case TypeSuite:
			suite = &layout.RoomTypes[i]
		}
	}
	require.NotNil(t, standard)
	require.NotNil(t, deluxe)
	require.NotNil(t, suite)

	assert.Equal(t, "101", standard.Rooms[0].RoomNumber)
	assert.Equal(t, "city", standard.Rooms[0].View)
	assert.Nil(t, standard.Rooms[0].Features)
	assert.Equal(t, "garden", standard.Rooms[20].View)
	assert.Contains(t, standard.Rooms[20].Features, "Balcony")

	assert.Equal(t, "601", deluxe.Rooms[0].RoomNumber)
	assert.Equal(t, "garden", deluxe.Rooms[0].View)
	assert.Equal(t, "ocean", deluxe.Rooms[len(deluxe.Rooms)-1].View)

	assert.Equal(t, "901", suite.Rooms[0].RoomNumber)
	assert.Equal(t, "ocean", suite.Rooms[0].View)
	assert.Contains(t, suite.Rooms[0].Features, "Kitchenette")

	assert.Contains(t, suite.Images, "/images/rooms/suite-preview.jpg")
	assert.Contains(t, suite.Images, "/images/rooms/suite-360.jpg")
}

func TestBookRoom(t *testing.T) {
	layout := seededLayout("hotel-1")
	repo := newMockRoomRepo(layout)
	svc := NewService(repo, nil, nil)
	userID := uuid.NewString()

	resp, err := svc.BookRoom(context.Background(), BookRoomRequest{
		HotelID:    "hotel-1",
		RoomNumber: "101",
		UserID:     userID,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "101", resp.RoomNumber)

	booked := findRoom(layout, "101")
	require.NotNil(t, booked)
	assert.False(t, booked.Available)
	require.NotNil(t, booked.BookedBy)
	assert.Equal(t, userID, *booked.BookedBy)
}

func TestBookRoomConflict(t *testing.T) {
	layout := seededLayout("hotel-1")
	taken := uuid.NewString()
	room := findRoom(layout, "101")
	room.Available = false
	room.BookedBy = &taken

	svc := NewService(newMockRoomRepo(layout), nil, nil)

	_, err := svc.BookRoom(context.Background(), BookRoomRequest{
		HotelID:    "hotel-1",
		RoomNumber: "101",
		UserID:     uuid.NewString(),
	})

	var conflict *RoomConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "101", conflict.RoomNumber)
}

func TestBookRoomRetryOwnRoomIsNoOp(t *testing.T) {
	layout := seededLayout("hotel-1")
	repo := newMockRoomRepo(layout)
	svc := NewService(repo, nil, nil)
	userID := uuid.NewString()

	_, err := svc.BookRoom(context.Background(), BookRoomRequest{
		HotelID:    "hotel-1",
		RoomNumber: "101",
		UserID:     userID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.bookCalls)

	// Rebooking an own room succeeds without touching storage.
	resp, err := svc.BookRoom(context.Background(), BookRoomRequest{
		HotelID:    "hotel-1",
		RoomNumber: "101",
		UserID:     userID,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, repo.bookCalls)

	// Anyone else still conflicts.
	_, err = svc.BookRoom(context.Background(), BookRoomRequest{
		HotelID:    "hotel-1",
		RoomNumber: "101",
		UserID:     uuid.NewString(),
	})
	var conflict *RoomConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "101", conflict.RoomNumber)
}

func TestBookRoomValidation(t *testing.T) {
	layout := seededLayout("hotel-1")
	svc := NewService(newMockRoomRepo(layout), nil, nil)

	_, err := svc.BookRoom(context.Background(), BookRoomRequest{
		HotelID:    "hotel-1",
		RoomNumber: "101",
		UserID:     "not-a-uuid",
	})
	assert.ErrorContains(t, err, "invalid user ID")

	_, err = svc.BookRoom(context.Background(), BookRoomRequest{
		HotelID:    "hotel-1",
		RoomNumber: "9999",
		UserID:     uuid.NewString(),
	})
	assert.ErrorContains(t, err, "does not exist")
}

func TestGetAvailableRoomsByType(t *testing.T) {
	layout := seededLayout("hotel-1")
	taken := uuid.NewString()
	room := findRoom(layout, "901")
	room.Available = false
	room.BookedBy = &taken

	svc := NewService(newMockRoomRepo(layout), nil, nil)

	resp, err := svc.GetAvailableRoomsByType(context.Background(), "hotel-1", TypeSuite)
	require.NoError(t, err)
	assert.Equal(t, "suite", resp.RoomType)
	assert.Equal(t, 500.0, resp.BasePrice)
	assert.Len(t, resp.Rooms, 7)
	for _, r := range resp.Rooms {
		assert.NotEqual(t, "901", r.RoomNumber)
		assert.True(t, r.Available)
	}

	_, err = svc.GetAvailableRoomsByType(context.Background(), "hotel-1", RoomType("penthouse"))
	assert.ErrorContains(t, err, "invalid room type")
}
