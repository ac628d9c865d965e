package subscribe

import (
	"sync"
	"time"
)

// filterUpdateLimiter bounds how often one subscriber may replace its
// filter (S7): at most burst UpdateFilter requests per window, sliding.
// Requests beyond the limit are dropped by the caller, not queued, so the
// stream stays open and simply keeps serving the last accepted filter.
type filterUpdateLimiter struct {
	window time.Duration
	burst  int
	now    func() time.Time

	mu      sync.Mutex
	updates []time.Time
}

// newFilterUpdateLimiter constructs a limiter allowing up to burst filter
// updates per window. A non-positive window or burst disables limiting
// entirely (allowUpdate always reports true).
func newFilterUpdateLimiter(window time.Duration, burst int, timeSource func() time.Time) *filterUpdateLimiter {
	if window <= 0 || burst <= 0 {
		return &filterUpdateLimiter{window: window, burst: burst}
	}
	if timeSource == nil {
		timeSource = time.Now
	}
	return &filterUpdateLimiter{window: window, burst: burst, now: timeSource}
}

// allowUpdate reports whether a filter update arriving now may proceed. A
// denied update must be dropped silently, per S7, never surfaced as an
// InvalidArgument.
func (l *filterUpdateLimiter) allowUpdate() bool {
	if l == nil || l.burst <= 0 || l.window <= 0 {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)
	kept := l.updates[:0]
	for _, ts := range l.updates {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	l.updates = kept
	if len(l.updates) >= l.burst {
		return false
	}
	l.updates = append(l.updates, now)
	return true
}
