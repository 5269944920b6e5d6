package limiter

import (
	"context"
	"time"

	"tabiplan/internal/config"
)

// Service answers whether a client may run another generation in the current
// window. A nil Service allows everything, so callers do not branch on
// whether Redis is configured.
type Service struct {
	store  *Store
	limit  int64
	window time.Duration
}

// NewService creates a Service enforcing cfg against the given store.
func NewService(store *Store, cfg config.RateLimitConfig) *Service {
	return &Service{
		store:  store,
		limit:  int64(cfg.Limit),
		window: time.Duration(cfg.WindowSec) * time.Second,
	}
}

// Allow reports whether clientKey is still inside its budget for the current
// window. Every attempt increments the counter, denied ones included.
func (s *Service) Allow(ctx context.Context, clientKey string) (bool, error) {
	if s == nil || s.store == nil || s.limit <= 0 {
		return true, nil
	}

	count, err := s.store.Incr(ctx, clientKey, s.window)
	if err != nil {
		return false, err
	}
	return count <= s.limit, nil
}
