package throttle

// Guard pairs a Throttler with the key to count attempts under. The same
// unit of work is often guarded several ways at once, for example per
// username and per source IP, each with its own Throttler and key.
type Guard struct {
	Throttler *Throttler
	Key       any
}

// Do runs work guarded by the given pairs, counting only failures.
//
// Before the work runs, each guard is checked in the order supplied; if
// any has no attempts left the work does not run and that guard's
// *RateLimitedError is returned (first offending guard wins). Otherwise
// the work executes. A nil result mutates no ledger. A non-nil result
// records one attempt on every guard's ledger and is returned unchanged,
// so callers still see the work's original error.
//
// This differs from Check, which counts every admitted call: Do charges
// the caller only when the guarded work actually fails.
func Do(guards []Guard, work func() error) error {
	for _, g := range guards {
		if err := g.Throttler.checkRemaining(g.Key); err != nil {
			return err
		}
	}

	err := work()
	if err != nil {
		for _, g := range guards {
			g.Throttler.recordFailure(g.Key)
		}
	}
	return err
}
