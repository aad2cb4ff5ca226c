package throttle

import (
	"log/slog"
	"time"
)

// config collects the constructor inputs so they can be validated in one
// shot before the Throttler is built. Tags enforce the constraints New
// promises: fail fast on malformed configuration instead of misbehaving
// later.
type config struct {
	Label         string        `validate:"required"`
	AttemptTTL    time.Duration `validate:"gt=0"`
	Threshold     int           `validate:"gte=0"`
	InitialDelay  time.Duration `validate:"gt=0"`
	DelayExponent float64       `validate:"gte=0"`

	clock    Clock
	recorder MetricsRecorder
	logger   *slog.Logger
}

// Option customizes a Throttler at construction time.
type Option func(*config)

// WithAttemptTTL sets how long a recorded attempt keeps counting against
// the threshold. Default one hour.
func WithAttemptTTL(ttl time.Duration) Option {
	return func(c *config) { c.AttemptTTL = ttl }
}

// WithThreshold sets how many attempts are allowed inside the window
// before the delay kicks in. Default 10.
func WithThreshold(n int) Option {
	return func(c *config) { c.Threshold = n }
}

// WithInitialDelay sets the base delay applied once the threshold is
// exceeded. Default 15s.
func WithInitialDelay(d time.Duration) Option {
	return func(c *config) { c.InitialDelay = d }
}

// WithDelayExponent sets the backoff growth rate: the delay for an
// attempt k past the threshold is initialDelay * k^exponent. Default 1.5.
func WithDelayExponent(e float64) Option {
	return func(c *config) { c.DelayExponent = e }
}

// WithClock injects the time source, in milliseconds since epoch. Tests
// use this to drive the window deterministically.
func WithClock(clock Clock) Option {
	return func(c *config) { c.clock = clock }
}

// WithRecorder injects a custom metrics backend.
func WithRecorder(r MetricsRecorder) Option {
	return func(c *config) { c.recorder = r }
}

// WithLogger makes the Throttler log rejections. A nil logger (the
// default) keeps it silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
