package throttle

import "sync"

// attempt is one recorded call: who made it and when, in epoch millis.
type attempt struct {
	key any
	ts  int64
}

// ledger is the working set of attempts inside the TTL window for one
// Throttler, ordered newest first. It is the Throttler's only mutable
// state and is shared by every caller of that Throttler, whatever key
// they use.
//
// All access goes through the mutex; callers compose prune, evaluate and
// append into one critical section so the read-modify-write of a Check is
// atomic as a unit. Entry volume is bounded by the threshold plus
// concurrent overshoot, so the linear scans below stay cheap.
type ledger struct {
	mu      sync.Mutex
	entries []attempt
}

// pruneLocked drops every entry older than cutoff. Entries are ordered
// newest first and never reordered, so the expired ones sit contiguously
// at the tail: walk back from the end and truncate, O(k) for k expired.
func (l *ledger) pruneLocked(cutoff int64) {
	i := len(l.entries)
	for i > 0 && l.entries[i-1].ts < cutoff {
		i--
	}
	l.entries = l.entries[:i]
}

// appendLocked records an attempt at the front, keeping descending-time
// order. The copy is O(n), acceptable at the bounded sizes above.
func (l *ledger) appendLocked(key any, ts int64) {
	l.entries = append(l.entries, attempt{})
	copy(l.entries[1:], l.entries)
	l.entries[0] = attempt{key: key, ts: ts}
}

// observeLocked returns how many entries match key and the newest
// matching timestamp. ok is false when none match.
func (l *ledger) observeLocked(key any) (n int, last int64, ok bool) {
	for _, a := range l.entries {
		if a.key == key {
			if !ok {
				last = a.ts
				ok = true
			}
			n++
		}
	}
	return n, last, ok
}

func (l *ledger) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
