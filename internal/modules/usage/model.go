package usage

import (
	"errors"
	"time"
)

// ErrNotConfigured is returned by queries when no database was configured.
var ErrNotConfigured = errors.New("usage metering not configured")

// Outcome classifies one generation attempt.
type Outcome string

const (
	// OutcomeOK marks an attempt that produced a plan.
	OutcomeOK Outcome = "ok"
	// OutcomeError marks an attempt where the model call failed.
	OutcomeError Outcome = "error"
	// OutcomeEmpty marks an attempt rejected for blank input before any model call.
	OutcomeEmpty Outcome = "empty"
)

// Entry is one metered generation attempt. Input text and plan text are
// deliberately absent: the module meters traffic, it does not store content.
type Entry struct {
	PersonaKey string
	Model      string
	InputChars int
	Duration   time.Duration
	Outcome    Outcome
}

// Summary aggregates the entries recorded since a point in time.
type Summary struct {
	Since     time.Time `json:"since"`
	Total     int64     `json:"total"`
	Generated int64     `json:"generated"`
	Failed    int64     `json:"failed"`
	Empty     int64     `json:"empty"`
	// AvgMillis is the mean duration of successful generations.
	AvgMillis float64 `json:"avg_millis"`
}
