package rooms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voyago/internal/shared/constants"
	"voyago/pkg/cache"
	"voyago/pkg/logger"

	"github.com/google/uuid"
)

// Service interface defines the contract for room selection business logic
type Service interface {
	GetRoomLayout(ctx context.Context, hotelID string) (*RoomLayoutData, error)
	BookRoom(ctx context.Context, req BookRoomRequest) (*BookRoomResponse, error)
	GetAvailableRoomsByType(ctx context.Context, hotelID string, roomType RoomType) (*AvailableRoomsResponse, error)
}

const bookingLockTTL = 10 * time.Second

type service struct {
	repo  Repository
	cache cache.Service
	lock  *BookingLock
	log   *logger.Logger
}

// NewService creates a new room service instance
func NewService(repo Repository, cacheService cache.Service, lock *BookingLock) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		lock:  lock,
		log:   logger.GetDefault(),
	}
}

// GetRoomLayout returns the room inventory for a hotel, generating the
// default layout on first access.
func (s *service) GetRoomLayout(ctx context.Context, hotelID string) (*RoomLayoutData, error) {
	if hotelID == "" {
		return nil, fmt.Errorf("hotel ID is required")
	}

	if s.cache != nil {
		var data RoomLayoutData
		key := constants.BuildRoomLayoutKey(hotelID)
		err := s.cache.GetOrSet(ctx, key, constants.TTL_ROOM_LAYOUT, func() (interface{}, error) {
			return s.loadOrGenerate(ctx, hotelID)
		}, &data)
		if err != nil {
			return nil, err
		}
		return &data, nil
	}

	return s.loadOrGenerate(ctx, hotelID)
}

func (s *service) loadOrGenerate(ctx context.Context, hotelID string) (*RoomLayoutData, error) {
	layout, err := s.repo.GetByHotelID(ctx, hotelID)
	if errors.Is(err, ErrRoomLayoutNotFound) {
		layout = GenerateDefaultLayout(hotelID)
		if err := s.repo.Create(ctx, layout); err != nil {
			return nil, fmt.Errorf("failed to persist generated room layout: %w", err)
		}
	} else if err != nil {
		return nil, err
	}

	return &RoomLayoutData{
		HotelID:   layout.HotelID,
		RoomTypes: layout.RoomTypes,
	}, nil
}

// BookRoom commits a single-room selection. The room must still be free
// or already held by the requesting guest; a room taken by anyone else
// fails with a conflict. Rebooking an own room is a no-op.
func (s *service) BookRoom(ctx context.Context, req BookRoomRequest) (*BookRoomResponse, error) {
	if _, err := uuid.Parse(req.UserID); err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	layout, err := s.repo.GetByHotelID(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}

	// Pre-validate against the freshest data before taking the lock
	room := findRoom(layout, req.RoomNumber)
	if room == nil {
		return nil, fmt.Errorf("room %s does not exist at hotel %s", req.RoomNumber, req.HotelID)
	}
	if room.BookedBy != nil && *room.BookedBy == req.UserID {
		return &BookRoomResponse{
			Success:    true,
			HotelID:    req.HotelID,
			RoomNumber: req.RoomNumber,
		}, nil
	}
	if !room.Available || room.BookedBy != nil {
		return nil, &RoomConflictError{RoomNumber: req.RoomNumber}
	}

	if s.lock != nil {
		token, err := s.lock.Acquire(ctx, req.HotelID, bookingLockTTL)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := s.lock.Release(ctx, req.HotelID, token); err != nil {
				s.log.ErrorWithContext(ctx, "failed to release booking lock", err, map[string]interface{}{
					"hotel_id": req.HotelID,
				})
			}
		}()
	}

	if err := s.repo.BookRoom(ctx, layout.ID, req.RoomNumber, req.UserID); err != nil {
		return nil, err
	}

	// A booked room invalidates the cached layout
	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.BuildRoomLayoutKey(req.HotelID))
	}

	s.log.LogRoomBooked(ctx, req.HotelID, req.RoomNumber, req.UserID)

	return &BookRoomResponse{
		Success:    true,
		HotelID:    req.HotelID,
		RoomNumber: req.RoomNumber,
	}, nil
}

// GetAvailableRoomsByType filters the layout down to the free rooms of one type.
func (s *service) GetAvailableRoomsByType(ctx context.Context, hotelID string, roomType RoomType) (*AvailableRoomsResponse, error) {
	if !roomType.IsValid() {
		return nil, fmt.Errorf("invalid room type: %s", roomType)
	}

	layout, err := s.GetRoomLayout(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	for _, group := range layout.RoomTypes {
		if group.Type != roomType {
			continue
		}
		available := make([]Room, 0, len(group.Rooms))
		for _, room := range group.Rooms {
			if room.Available && room.BookedBy == nil {
				available = append(available, room)
			}
		}
		return &AvailableRoomsResponse{
			HotelID:   hotelID,
			RoomType:  string(roomType),
			BasePrice: group.BasePrice,
			Rooms:     available,
		}, nil
	}

	return nil, fmt.Errorf("hotel %s has no %s rooms", hotelID, roomType)
}

func findRoom(layout *RoomLayout, roomNumber string) *Room {
	for i := range layout.RoomTypes {
		for j := range layout.RoomTypes[i].Rooms {
			if layout.RoomTypes[i].Rooms[j].RoomNumber == roomNumber {
				return &layout.RoomTypes[i].Rooms[j]
			}
		}
	}
	return nil
}
