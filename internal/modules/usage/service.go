package usage

import (
	"context"
	"log"
	"time"
)

// recordTimeout caps how long a metering insert may block once the request
// context is gone.
const recordTimeout = 3 * time.Second

// Service records generation metering events and answers summary queries.
// A nil Service is valid: Record becomes a no-op and TodaySummary returns
// ErrNotConfigured, so callers do not branch on whether metering is enabled.
type Service struct {
	store *Store
	loc   *time.Location
}

// NewService creates a Service backed by the given Store. Summaries are
// bucketed by calendar day in Asia/Tokyo to match the page's audience.
func NewService(store *Store) *Service {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		log.Printf("usage: load location: %v (falling back to UTC)", err)
		loc = time.UTC
	}
	return &Service{store: store, loc: loc}
}

// Record persists one metering row. Failures are logged, never returned;
// metering must not break or delay a generation.
func (s *Service) Record(ctx context.Context, e Entry) {
	if s == nil || s.store == nil {
		return
	}

	// Detach from the request context so a cancelled generation still gets
	// its error row recorded.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := s.store.Insert(ctx, e); err != nil {
		log.Printf("usage: record entry: %v", err)
	}
}

// TodaySummary aggregates the attempts recorded since local midnight.
func (s *Service) TodaySummary(ctx context.Context) (Summary, error) {
	if s == nil || s.store == nil {
		return Summary{}, ErrNotConfigured
	}
	now := time.Now().In(s.loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	return s.store.Summarize(ctx, midnight)
}
