// Package throttle provides in-process admission control with exponential
// backoff for keys that keep failing.
//
// The primary entry points are Throttler.Check, which gates an action and
// counts every admitted call, and Do, which wraps a unit of work and counts
// only failures:
//
//	if err := loginThrottler.Check(email); err != nil { ... }
//
//	err := throttle.Do([]throttle.Guard{{Throttler: byEmail, Key: email}}, func() error {
//		return attemptLogin(email, password)
//	})
//
// # Overview
//
// Each Throttler keeps a sliding window of recent attempts:
//
//   - Every recorded attempt is a (key, timestamp) pair.
//   - Attempts older than the TTL stop counting and are pruned.
//   - Once a key accumulates more than the threshold inside the window, the
//     next attempt is rejected with a delay that grows exponentially with the
//     number of attempts past the threshold.
//
// Unlike token buckets, which meter a steady request rate, this models "a few
// honest mistakes are free, sustained failure gets pushed away" — the shape
// wanted for login forms, password resets, and similar abuse targets.
//
// # Core Types
//
// A Throttler is configured at construction and immutable afterwards:
//
//   - attempt TTL: how long an attempt keeps counting (default 1h)
//   - threshold: attempts allowed inside the window before delay kicks in
//     (default 10)
//   - initial delay: base delay once the threshold is exceeded (default 15s)
//   - delay exponent: growth rate; attempt k past the threshold waits
//     initialDelay * k^exponent from the most recent attempt (default 1.5)
//
// Keys are opaque comparable values. The same Throttler can track any number
// of keys; its TTL eviction runs across all of them, while the delay decision
// looks only at the key being checked. nil is the conventional key for "count
// globally, regardless of caller identity".
//
// # Rejection Semantics
//
// A rejected Check returns *RateLimitedError and records nothing: a flood of
// rejected calls does not push the backoff further out than the admitted
// attempts already did. The error carries the Throttler's label (so a caller
// guarding one form with several Throttlers can route the message to the
// right field), the remaining wait floored to whole seconds, and a
// pre-rendered user-facing message. Detect it with errors.As:
//
//	var rle *throttle.RateLimitedError
//	if errors.As(err, &rle) {
//		// rle.RetryAfter, rle.Message
//	}
//
// # Guarding Work
//
// Do composes any number of (Throttler, key) guards around one unit of work.
// Guards are checked in order before the work runs; a guard with no attempts
// left rejects immediately and the work never starts. If the work returns an
// error, every guard records one attempt and the original error is passed
// through unchanged — this package never wraps or replaces foreign errors.
// Successful work records nothing.
//
// # Concurrency
//
// A Throttler is safe for concurrent use by multiple goroutines. The
// prune/evaluate/append sequence of each call runs as one critical section,
// so racing callers cannot both observe an under-threshold count and both
// slip in. State is local to the process; this is not a distributed limiter
// and nothing is shared across replicas or persisted across restarts.
//
// No operation blocks: a rejection reports how long to wait, and the caller
// decides whether and when to retry.
//
// # Time
//
// Operations sample an injectable millisecond clock once per call; the delay
// arithmetic itself never reads the wall clock. Tests supply a fake clock via
// WithClock to drive window expiry and backoff deterministically.
//
// # Configuration
//
// Throttlers are built with the Functional Options pattern:
//
//	t, err := throttle.New("email",
//		throttle.WithThreshold(5),
//		throttle.WithInitialDelay(2*time.Second),
//		throttle.WithDelayExponent(2),
//		throttle.WithRecorder(myMetrics),
//	)
//
// New validates the assembled configuration and fails fast on a malformed
// one (empty label, non-positive TTL or delay, negative threshold or
// exponent).
//
// # Limitations and Notes
//
//   - Ledger size is bounded by the threshold plus whatever transiently
//     overshoots it, not by key cardinality: entries expire by TTL, and a
//     throttled key stops accumulating because rejections are not recorded.
//   - Checks and appends scan linearly; at the bounded sizes above this is
//     microseconds. If you need thousands of attempts in-window per
//     Throttler, reconsider the threshold before reconsidering this package.
//   - Remaining waits shorter than a second floor to "0 seconds" in the
//     rendered message; callers wanting finer wording can format
//     RateLimitedError.RetryAfter themselves.
package throttle
