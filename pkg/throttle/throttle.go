package throttle

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// New constructs a Throttler for the action identified by label, applying
// defaults for anything the options leave unset. It returns an error when
// the assembled configuration is invalid (empty label, non-positive TTL
// or initial delay, negative threshold or exponent).
func New(label string, opts ...Option) (*Throttler, error) {
	cfg := config{
		Label:         label,
		AttemptTTL:    DefaultAttemptTTL,
		Threshold:     DefaultThreshold,
		InitialDelay:  DefaultInitialDelay,
		DelayExponent: DefaultDelayExponent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	if cfg.clock == nil {
		cfg.clock = func() int64 { return time.Now().UnixMilli() }
	}
	if cfg.recorder == nil {
		cfg.recorder = &NoOpMetricsRecorder{}
	}

	return &Throttler{
		label:         cfg.Label,
		attemptTTL:    cfg.AttemptTTL,
		threshold:     cfg.Threshold,
		initialDelay:  cfg.InitialDelay,
		delayExponent: cfg.DelayExponent,
		clock:         cfg.clock,
		recorder:      cfg.recorder,
		logger:        cfg.logger,
		ledger:        &ledger{},
	}, nil
}

// Check decides whether one more attempt for key is admissible right now.
//
// When admitted it records the attempt and returns nil. When the key has
// exceeded the threshold inside the window it returns a *RateLimitedError
// carrying the remaining wait; the rejected call itself is not recorded,
// so hammering a throttled key does not push the backoff further out.
//
// key may be any comparable value; nil conventionally means "count
// globally, regardless of caller identity".
func (t *Throttler) Check(key any) error {
	start := time.Now()
	now := t.clock()

	t.ledger.mu.Lock()
	t.ledger.pruneLocked(now - t.attemptTTL.Milliseconds())
	remaining, limited := t.delayForLocked(key, now)
	if !limited {
		t.ledger.appendLocked(key, now)
	}
	t.ledger.mu.Unlock()

	tags := map[string]string{"label": t.label}
	t.recorder.Add("throttle.check", 1, tags)
	t.recorder.Observe("throttle.check.latency", float64(time.Since(start).Microseconds())/1000.0, tags)

	if !limited {
		return nil
	}

	t.recorder.Add("throttle.rejected", 1, tags)
	err := newRateLimitedError(t.label, remaining)
	if t.logger != nil {
		t.logger.Info("attempt rate limited", "label", t.label, "retry_after", err.RetryAfter.String())
	}
	return err
}

// delayForLocked computes the wait still owed for key at time now. It is
// a pure read over the already-pruned ledger: n matching attempts plus
// the one being evaluated, measured against the threshold, with the
// backoff anchored at the newest matching attempt.
//
// Caller holds the ledger mutex.
func (t *Throttler) delayForLocked(key any, now int64) (time.Duration, bool) {
	n, last, ok := t.ledger.observeLocked(key)
	if !ok {
		return 0, false
	}
	over := float64(n+1) - float64(t.threshold)
	if over <= 0 {
		return 0, false
	}
	delayMs := float64(t.initialDelay.Milliseconds()) * math.Pow(over, t.delayExponent)
	remainingMs := float64(last) + delayMs - float64(now)
	if remainingMs <= 0 {
		return 0, false
	}
	return time.Duration(remainingMs * float64(time.Millisecond)), true
}

// checkRemaining reports whether key still has attempts left, without
// recording anything. Used by Do before running guarded work.
func (t *Throttler) checkRemaining(key any) error {
	now := t.clock()

	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()

	t.ledger.pruneLocked(now - t.attemptTTL.Milliseconds())
	n, _, _ := t.ledger.observeLocked(key)
	if t.threshold-n > 0 {
		return nil
	}
	remaining, _ := t.delayForLocked(key, now)
	return newRateLimitedError(t.label, remaining)
}

// recordFailure appends an attempt for key at the current time.
func (t *Throttler) recordFailure(key any) {
	now := t.clock()

	t.ledger.mu.Lock()
	t.ledger.pruneLocked(now - t.attemptTTL.Milliseconds())
	t.ledger.appendLocked(key, now)
	t.ledger.mu.Unlock()

	t.recorder.Add("throttle.recorded", 1, map[string]string{"label": t.label})
}
