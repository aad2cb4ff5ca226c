package throttle

import (
	"fmt"
	"log/slog"
	"time"
)

// Default configuration applied by New when no option overrides it.
const (
	DefaultAttemptTTL    = time.Hour
	DefaultThreshold     = 10
	DefaultInitialDelay  = 15 * time.Second
	DefaultDelayExponent = 1.5
)

// Clock returns the current time as milliseconds since the Unix epoch.
// Injectable so tests can drive the window deterministically.
type Clock func() int64

// Throttler rate-limits attempts against a single logical action, for
// example "login by email". It keeps a sliding window of recent attempts
// per key and, once the configured threshold is exceeded inside the
// window, rejects further attempts with an exponentially growing delay.
//
// A Throttler is created once and shared; it is safe for concurrent use.
type Throttler struct {
	label         string
	attemptTTL    time.Duration
	threshold     int
	initialDelay  time.Duration
	delayExponent float64

	clock    Clock
	recorder MetricsRecorder
	logger   *slog.Logger

	ledger *ledger
}

// Label returns the identifier the Throttler tags its errors with.
func (t *Throttler) Label() string { return t.label }

// RateLimitedError is the only error this package originates. It reports
// which Throttler rejected the attempt and how long the caller must wait
// before retrying.
type RateLimitedError struct {
	// Label identifies the rejecting Throttler so callers can route the
	// message to the right field, e.g. "email".
	Label string
	// RetryAfter is the remaining delay floored to whole seconds. Zero
	// when the wait is under a second or no precise wait could be
	// computed.
	RetryAfter time.Duration
	// Message is pre-rendered, suitable for showing to an end user.
	Message string
}

func (e *RateLimitedError) Error() string { return e.Message }

func newRateLimitedError(label string, remaining time.Duration) *RateLimitedError {
	if remaining <= 0 {
		return &RateLimitedError{
			Label:   label,
			Message: "Too many attempts! Please try again later.",
		}
	}
	secs := int64(remaining / time.Second)
	return &RateLimitedError{
		Label:      label,
		RetryAfter: time.Duration(secs) * time.Second,
		Message:    fmt.Sprintf("Too many attempts! You must wait %d seconds before trying again.", secs),
	}
}
