// README: Plan-usage metering store backed by Postgres.
package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles plan_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the plan_usage table when it does not exist yet.
// The demo owns its single table, so there is no migration directory.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS plan_usage (
			id BIGSERIAL PRIMARY KEY,
			persona_key TEXT NOT NULL,
			model TEXT NOT NULL,
			input_chars INT NOT NULL,
			duration_ms BIGINT NOT NULL,
			outcome TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

// Insert appends one metering row.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_usage (persona_key, model, input_chars, duration_ms, outcome)
		VALUES ($1, $2, $3, $4, $5)
	`, e.PersonaKey, e.Model, e.InputChars, e.Duration.Milliseconds(), string(e.Outcome))
	return err
}

// Summarize aggregates the rows created at or after since.
func (s *Store) Summarize(ctx context.Context, since time.Time) (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE outcome = 'ok'),
			COUNT(*) FILTER (WHERE outcome = 'error'),
			COUNT(*) FILTER (WHERE outcome = 'empty'),
			COALESCE(AVG(duration_ms) FILTER (WHERE outcome = 'ok'), 0)
		FROM plan_usage
		WHERE created_at >= $1
	`, since).Scan(&sum.Total, &sum.Generated, &sum.Failed, &sum.Empty, &sum.AvgMillis)
	if err != nil {
		return Summary{}, err
	}
	sum.Since = since
	return sum, nil
}
