package seats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrStoreUnavailable indicates the hold store could not be reached. Callers
// should treat it as a retryable infrastructure failure, never as a seat
// being taken.
var ErrStoreUnavailable = errors.New("seat hold store unavailable")

// Lua script for token-checked hold release. Deleting only when the stored
// token matches keeps duplicate or stale releases from clobbering a newer
// hold on the same seat.
const luaReleaseHold = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`

// HoldStore manages transient seat hold markers in Redis. A hold is a single
// key with a TTL; at most one live hold can exist per SeatKey, guaranteed by
// the atomic SET NX in TryHold. Expiry is passive: Redis reclaims the key
// once the TTL elapses, no sweeper required.
type HoldStore struct {
	redis *redis.Client
}

// NewHoldStore creates a hold store backed by the given Redis client.
func NewHoldStore(redisClient *redis.Client) *HoldStore {
	return &HoldStore{
		redis: redisClient,
	}
}

// TryHold atomically creates a hold for key only if no unexpired hold exists.
// It returns the opaque hold token and ok=true on success, or ok=false when
// the seat is already held. The check and the write are a single Redis
// operation; splitting them would reintroduce the double-booking race.
func (s *HoldStore) TryHold(ctx context.Context, key SeatKey, ttl time.Duration) (string, bool, error) {
	if s.redis == nil {
		return "", false, fmt.Errorf("%w: redis client not configured", ErrStoreUnavailable)
	}

	token := uuid.New().String()

	ok, err := s.redis.SetNX(ctx, key.RedisKey(), token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("%w: try hold %s: %v", ErrStoreUnavailable, key, err)
	}
	if !ok {
		return "", false, nil
	}

	return token, true, nil
}

// Release deletes the hold for key only if the stored token matches. A
// mismatched or absent token is a no-op, so duplicate releases are safe.
func (s *HoldStore) Release(ctx context.Context, key SeatKey, token string) error {
	if s.redis == nil {
		return fmt.Errorf("%w: redis client not configured", ErrStoreUnavailable)
	}

	if err := s.redis.Eval(ctx, luaReleaseHold, []string{key.RedisKey()}, token).Err(); err != nil {
		return fmt.Errorf("%w: release hold %s: %v", ErrStoreUnavailable, key, err)
	}
	return nil
}

// ForceRelease deletes the hold for key regardless of token. Used on booking
// cancellation, where the hold token is not tracked past commit and the seat
// must become available again whatever its hold lineage.
func (s *HoldStore) ForceRelease(ctx context.Context, key SeatKey) error {
	if s.redis == nil {
		return fmt.Errorf("%w: redis client not configured", ErrStoreUnavailable)
	}

	if err := s.redis.Del(ctx, key.RedisKey()).Err(); err != nil {
		return fmt.Errorf("%w: force release %s: %v", ErrStoreUnavailable, key, err)
	}
	return nil
}

// IsHeld reports whether an unexpired hold exists for key.
func (s *HoldStore) IsHeld(ctx context.Context, key SeatKey) (bool, error) {
	if s.redis == nil {
		return false, fmt.Errorf("%w: redis client not configured", ErrStoreUnavailable)
	}

	n, err := s.redis.Exists(ctx, key.RedisKey()).Result()
	if err != nil {
		return false, fmt.Errorf("%w: check hold %s: %v", ErrStoreUnavailable, key, err)
	}
	return n > 0, nil
}
