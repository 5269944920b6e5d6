// README: Rate-limit counters backed by Redis.
package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const counterKeyPrefix = "limiter:plan:%s"

// Store counts generation requests per client inside a fixed window.
type Store struct {
	redis *redis.Client
}

// NewStore returns a Store backed by the given Redis client.
func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Incr bumps the counter for clientKey and returns the new count. The first
// hit of a window creates the key with the window TTL; counters expire on
// their own.
func (s *Store) Incr(ctx context.Context, clientKey string, window time.Duration) (int64, error) {
	key := counterKey(clientKey)

	count, err := s.redis.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := s.redis.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}

func counterKey(clientKey string) string {
	return fmt.Sprintf(counterKeyPrefix, clientKey)
}
