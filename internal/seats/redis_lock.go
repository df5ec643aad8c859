package seats

import (
	"context"
	"fmt"
	"time"

	"voyago/internal/shared/constants"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// BookingLock serializes seat booking commits per flight so two travelers
// cannot race past the availability check for the same seats.
type BookingLock struct {
	redis *redis.Client
}

// NewBookingLock creates a new booking lock handler
func NewBookingLock(redisClient *redis.Client) *BookingLock {
	return &BookingLock{redis: redisClient}
}

// Lua script for safe lock release - only the holder may release
const luaReleaseLock = `
-- KEYS[1] = lock key
-- ARGV[1] = lock token

if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`

// Acquire takes the per-flight booking lock. Returns the release token.
func (l *BookingLock) Acquire(ctx context.Context, flightID string, ttl time.Duration) (string, error) {
	if l.redis == nil {
		return "", fmt.Errorf("redis client not available")
	}

	token := uuid.New().String()
	key := constants.BuildSeatBookingLockKey(flightID)

	ok, err := l.redis.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to acquire booking lock: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("another booking for flight %s is in progress", flightID)
	}

	return token, nil
}

// Release frees the lock if the token still owns it.
func (l *BookingLock) Release(ctx context.Context, flightID, token string) error {
	if l.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	key := constants.BuildSeatBookingLockKey(flightID)
	result, err := l.redis.Eval(ctx, luaReleaseLock, []string{key}, token).Result()
	if err != nil {
		return fmt.Errorf("failed to release booking lock: %w", err)
	}

	if released, ok := result.(int64); !ok || released == 0 {
		return fmt.Errorf("booking lock for flight %s was not held", flightID)
	}

	return nil
}
