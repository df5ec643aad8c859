package flightstatus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voyago/internal/shared/constants"
	"voyago/pkg/cache"
	"voyago/pkg/clock"
	"voyago/pkg/logger"
)

// Service interface defines the contract for flight status business logic
type Service interface {
	GetByFlightID(ctx context.Context, flightID string) (*FlightStatus, error)
	GetByFlightNumber(ctx context.Context, flightNumber string) (*FlightStatus, error)
	UpdateStatus(ctx context.Context, flightID string, req UpdateStatusRequest) (*FlightStatus, error)
}

type service struct {
	repo  Repository
	cache cache.Service
	clk   clock.Clock
	log   *logger.Logger
}

// NewService creates a new flight status service instance
func NewService(repo Repository, cacheService cache.Service, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.New()
	}
	return &service{
		repo:  repo,
		cache: cacheService,
		clk:   clk,
		log:   logger.GetDefault(),
	}
}

// GetByFlightID returns the status of a flight, generating a mock status
// on first lookup.
func (s *service) GetByFlightID(ctx context.Context, flightID string) (*FlightStatus, error) {
	if flightID == "" {
		return nil, fmt.Errorf("flight ID is required")
	}

	if s.cache != nil {
		var status FlightStatus
		key := constants.BuildFlightStatusKey(flightID)
		err := s.cache.GetOrSet(ctx, key, constants.TTL_FLIGHT_STATUS, func() (interface{}, error) {
			return s.loadOrGenerate(ctx, flightID)
		}, &status)
		if err != nil {
			return nil, err
		}
		return &status, nil
	}

	return s.loadOrGenerate(ctx, flightID)
}

func (s *service) loadOrGenerate(ctx context.Context, flightID string) (*FlightStatus, error) {
	status, err := s.repo.GetByFlightID(ctx, flightID)
	if errors.Is(err, ErrStatusNotFound) {
		status = GenerateStatus(flightID, s.clk.Now().UTC())
		if err := s.repo.Create(ctx, status); err != nil {
			return nil, fmt.Errorf("failed to persist generated flight status: %w", err)
		}
	} else if err != nil {
		return nil, err
	}
	return status, nil
}

// GetByFlightNumber looks a flight up by its public number.
func (s *service) GetByFlightNumber(ctx context.Context, flightNumber string) (*FlightStatus, error) {
	if flightNumber == "" {
		return nil, fmt.Errorf("flight number is required")
	}
	return s.repo.GetByFlightNumber(ctx, flightNumber)
}

// UpdateStatus applies a back-office status override.
func (s *service) UpdateStatus(ctx context.Context, flightID string, req UpdateStatusRequest) (*FlightStatus, error) {
	status, err := s.GetByFlightID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	status.Status = req.Status
	status.DelayMinutes = req.DelayMinutes
	status.DelayReason = req.DelayReason
	if req.Gate != "" {
		status.Gate = req.Gate
	}
	if req.Terminal != "" {
		status.Terminal = req.Terminal
	}
	status.EstimatedDeparture = status.ScheduledDeparture.Add(time.Duration(req.DelayMinutes) * time.Minute)
	if req.Status == StatusDeparted {
		now := s.clk.Now().UTC()
		status.ActualDeparture = &now
	}

	if err := s.repo.Update(ctx, status); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.BuildFlightStatusKey(flightID))
	}

	s.log.InfoWithContext(ctx, "flight status updated", map[string]interface{}{
		"flight_id": flightID,
		"status":    string(req.Status),
	})

	return status, nil
}
