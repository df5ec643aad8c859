package seats

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

// Service interface defines the contract for seat selection business logic
type Service interface {
	GetSeatMap(ctx context.Context, flightID string) (*SeatMapData, error)
	BookSeats(ctx context.Context, req BookSeatsRequest) (*BookSeatsResponse, error)
	CalculateUpgradePrice(ctx context.Context, req UpgradePriceRequest) (*UpgradePriceResponse, error)
}

const bookingLockTTL = 10 * time.Second

type service struct {
	repo  Repository
	cache cache.Service
	lock  *BookingLock
	log   *logger.Logger
}

// NewService creates a new seat service instance
func NewService(repo Repository, cacheService cache.Service, lock *BookingLock) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		lock:  lock,
		log:   logger.GetDefault(),
	}
}

// GetSeatMap returns the cabin layout for a flight, generating the default
// layout on first access.
func (s *service) GetSeatMap(ctx context.Context, flightID string) (*SeatMapData, error) {
	if flightID == "" {
		return nil, fmt.Errorf("flight ID is required")
	}

	if s.cache != nil {
		var data SeatMapData
		key := constants.BuildSeatMapKey(flightID)
		err := s.cache.GetOrSet(ctx, key, constants.TTL_SEAT_MAP, func() (interface{}, error) {
			return s.loadOrGenerate(ctx, flightID)
		}, &data)
		if err != nil {
			return nil, err
		}
		return &data, nil
	}

	return s.loadOrGenerate(ctx, flightID)
}

func (s *service) loadOrGenerate(ctx context.Context, flightID string) (*SeatMapData, error) {
	seatMap, err := s.repo.GetByFlightID(ctx, flightID)
	if errors.Is(err, ErrSeatMapNotFound) {
		seatMap = GenerateDefaultSeatMap(flightID)
		if err := s.repo.Create(ctx, seatMap); err != nil {
			return nil, fmt.Errorf("failed to persist generated seat map: %w", err)
		}
	} else if err != nil {
		return nil, err
	}

	return buildSeatMapData(seatMap), nil
}

// BookSeats commits a seat selection. Every seat must still be free or
// already held by the requesting traveler; a seat taken by anyone else
// fails with a conflict and books nothing. Own seats are skipped so a
// retried selection stays idempotent.
func (s *service) BookSeats(ctx context.Context, req BookSeatsRequest) (*BookSeatsResponse, error) {
	if _, err := uuid.Parse(req.UserID); err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}
	if len(req.SeatNumbers) == 0 {
		return nil, fmt.Errorf("no seats selected")
	}

	seatMap, err := s.repo.GetByFlightID(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}

	// Pre-validate against the freshest data before taking the lock
	byNumber := make(map[string]*Seat, len(seatMap.Seats))
	for i := range seatMap.Seats {
		byNumber[seatMap.Seats[i].SeatNumber] = &seatMap.Seats[i]
	}
	toBook := make([]string, 0, len(req.SeatNumbers))
	for _, seatNumber := range req.SeatNumbers {
		seat, ok := byNumber[seatNumber]
		if !ok {
			return nil, fmt.Errorf("seat %s does not exist on flight %s", seatNumber, req.FlightID)
		}
		if seat.BookedBy != nil && *seat.BookedBy == req.UserID {
			continue
		}
		if !seat.Available || seat.BookedBy != nil {
			return nil, &SeatConflictError{SeatNumber: seatNumber}
		}
		toBook = append(toBook, seatNumber)
	}

	// Every requested seat is already held by this traveler
	if len(toBook) == 0 {
		return &BookSeatsResponse{
			Success:     true,
			FlightID:    req.FlightID,
			SeatNumbers: req.SeatNumbers,
		}, nil
	}

	if s.lock != nil {
		token, err := s.lock.Acquire(ctx, req.FlightID, bookingLockTTL)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := s.lock.Release(ctx, req.FlightID, token); err != nil {
				s.log.ErrorWithContext(ctx, "failed to release booking lock", err, map[string]interface{}{
					"flight_id": req.FlightID,
				})
			}
		}()
	}

	if err := s.repo.BookSeats(ctx, seatMap.ID, toBook, req.UserID); err != nil {
		return nil, err
	}

	// Booked seats invalidate the cached map
	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.BuildSeatMapKey(req.FlightID))
	}

	s.log.LogSeatsBooked(ctx, req.FlightID, req.UserID, len(toBook))

	return &BookSeatsResponse{
		Success:     true,
		FlightID:    req.FlightID,
		SeatNumbers: req.SeatNumbers,
	}, nil
}

// CalculateUpgradePrice sums the extra price of the selected seats.
func (s *service) CalculateUpgradePrice(ctx context.Context, req UpgradePriceRequest) (*UpgradePriceResponse, error) {
	seatMap, err := s.repo.GetByFlightID(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}

	byNumber := make(map[string]float64, len(seatMap.Seats))
	for _, seat := range seatMap.Seats {
		byNumber[seat.SeatNumber] = seat.ExtraPrice
	}

	var total float64
	for _, seatNumber := range req.SeatNumbers {
		extra, ok := byNumber[seatNumber]
		if !ok {
			return nil, fmt.Errorf("seat %s does not exist on flight %s", seatNumber, req.FlightID)
		}
		total += extra
	}

	return &UpgradePriceResponse{UpgradePrice: total}, nil
}

func buildSeatMapData(seatMap *SeatMap) *SeatMapData {
	rowIndex := make(map[int]int)
	var rows []SeatRow
	for _, seat := range seatMap.Seats {
		idx, ok := rowIndex[seat.Row]
		if !ok {
			idx = len(rows)
			rowIndex[seat.Row] = idx
			rows = append(rows, SeatRow{Row: seat.Row})
		}
		rows[idx].Seats = append(rows[idx].Seats, seat)
	}

	return &SeatMapData{
		FlightID:     seatMap.FlightID,
		AircraftType: seatMap.AircraftType,
		Rows:         rows,
		ClassPricing: map[string]float64{
			string(ClassBusiness): businessExtraPrice,
			string(ClassPremium):  premiumExtraPrice,
			string(ClassEconomy):  0,
		},
	}
}
