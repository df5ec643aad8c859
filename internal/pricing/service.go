package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"voyago/internal/shared/constants"
	"voyago/pkg/cache"
	"voyago/pkg/clock"
	"voyago/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Service interface defines the contract for pricing business logic
type Service interface {
	FreezePrice(ctx context.Context, req FreezePriceRequest) (*FreezePriceResponse, error)
	GetFreezeStatus(ctx context.Context, itemType, itemID, userID string) (*FreezeStatusResponse, error)
	RecordPricePoint(ctx context.Context, req RecordPricePointRequest) (*PriceHistory, error)
	GetPriceHistory(ctx context.Context, itemID, itemType string) (*PriceHistory, error)
	GetPriceInsights(ctx context.Context, itemID, itemType string) (*PriceInsights, error)
}

const defaultFreezeHours = 24

type service struct {
	repo  Repository
	redis *redis.Client
	cache cache.Service
	clock clock.Clock
	log   *logger.Logger
}

// NewService creates a new pricing service instance
func NewService(repo Repository, redisClient *redis.Client, cacheService cache.Service, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.New()
	}
	return &service{
		repo:  repo,
		redis: redisClient,
		cache: cacheService,
		clock: clk,
		log:   logger.GetDefault(),
	}
}

// FreezePrice creates a TTL-backed freeze. A second freeze for the same
// item and user while one is active is rejected.
func (s *service) FreezePrice(ctx context.Context, req FreezePriceRequest) (*FreezePriceResponse, error) {
	if _, err := uuid.Parse(req.UserID); err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	hours := req.Hours
	if hours == 0 {
		hours = defaultFreezeHours
	}
	ttl := time.Duration(hours) * time.Hour

	now := s.clock.Now().UTC()
	freeze := PriceFreeze{
		ItemID:    req.ItemID,
		ItemType:  req.ItemType,
		UserID:    req.UserID,
		FrozenAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(freeze)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal freeze: %w", err)
	}

	key := constants.BuildPriceFreezeKey(req.ItemType, req.ItemID, req.UserID)
	ok, err := s.redis.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to set price freeze: %w", err)
	}

	if !ok {
		// Freeze already active; leave its TTL untouched
		return &FreezePriceResponse{Success: false}, nil
	}

	s.log.LogPriceFrozen(ctx, req.ItemID, req.ItemType, req.UserID, hours)
	return &FreezePriceResponse{Success: true, ExpiresAt: &freeze.ExpiresAt}, nil
}

func (s *service) GetFreezeStatus(ctx context.Context, itemType, itemID, userID string) (*FreezeStatusResponse, error) {
	key := constants.BuildPriceFreezeKey(itemType, itemID, userID)

	val, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return &FreezeStatusResponse{Frozen: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get freeze status: %w", err)
	}

	var freeze PriceFreeze
	if err := json.Unmarshal([]byte(val), &freeze); err != nil {
		return nil, fmt.Errorf("failed to unmarshal freeze: %w", err)
	}

	return &FreezeStatusResponse{Frozen: true, ExpiresAt: &freeze.ExpiresAt}, nil
}

func (s *service) RecordPricePoint(ctx context.Context, req RecordPricePointRequest) (*PriceHistory, error) {
	point := PricePoint{
		Price:      req.Price,
		RecordedAt: s.clock.Now().UTC(),
	}

	history, err := s.repo.AppendPoint(ctx, req.ItemID, req.ItemType, point)
	if err != nil {
		return nil, err
	}

	// Recorded prices invalidate cached history and insights
	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.BuildPriceHistoryKey(req.ItemID, req.ItemType))
		_ = s.cache.Delete(ctx, constants.BuildPriceInsightsKey(req.ItemID, req.ItemType))
	}

	return history, nil
}

func (s *service) GetPriceHistory(ctx context.Context, itemID, itemType string) (*PriceHistory, error) {
	if s.cache != nil {
		var history PriceHistory
		key := constants.BuildPriceHistoryKey(itemID, itemType)
		err := s.cache.GetOrSet(ctx, key, constants.TTL_PRICE_HISTORY, func() (interface{}, error) {
			return s.repo.GetHistory(ctx, itemID, itemType)
		}, &history)
		if err != nil {
			return nil, err
		}
		return &history, nil
	}
	return s.repo.GetHistory(ctx, itemID, itemType)
}

// GetPriceInsights summarizes the stored history into a trend and a
// booking recommendation.
func (s *service) GetPriceInsights(ctx context.Context, itemID, itemType string) (*PriceInsights, error) {
	history, err := s.GetPriceHistory(ctx, itemID, itemType)
	if err != nil {
		return nil, err
	}
	if len(history.Points) == 0 {
		return nil, fmt.Errorf("no price points recorded for %s %s", itemType, itemID)
	}

	var sum float64
	lowest := history.Points[0].Price
	highest := history.Points[0].Price
	for _, p := range history.Points {
		sum += p.Price
		if p.Price < lowest {
			lowest = p.Price
		}
		if p.Price > highest {
			highest = p.Price
		}
	}
	average := roundTo2(sum / float64(len(history.Points)))
	current := history.Points[len(history.Points)-1].Price

	trend := "stable"
	recommendation := "Good time to book. Prices are steady."
	switch {
	case current < average*0.9:
		trend = "decreasing"
		recommendation = "Great time to book! Prices are lower than usual."
	case current > average*1.1:
		trend = "increasing"
		recommendation = "Consider waiting. Prices are higher than usual."
	}

	return &PriceInsights{
		ItemID:         itemID,
		ItemType:       itemType,
		CurrentPrice:   current,
		AveragePrice:   average,
		LowestPrice:    lowest,
		HighestPrice:   highest,
		Trend:          trend,
		Recommendation: recommendation,
	}, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
