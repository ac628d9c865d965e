package subscribe

import (
	"testing"
	"time"
)

func TestFilterUpdateLimiterDropsExcessUpdates(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := newFilterUpdateLimiter(time.Minute, 2, func() time.Time { return now })

	if !limiter.allowUpdate() || !limiter.allowUpdate() {
		t.Fatal("expected first two filter updates within burst to be allowed")
	}
	if limiter.allowUpdate() {
		t.Fatal("expected third filter update within the window to be dropped")
	}

	now = now.Add(30 * time.Second)
	if limiter.allowUpdate() {
		t.Fatal("expected update still inside the sliding window to be dropped")
	}

	now = now.Add(31 * time.Second)
	if !limiter.allowUpdate() {
		t.Fatal("expected update to be allowed once the window has slid past it")
	}
}

func TestFilterUpdateLimiterDisabledAllowsEveryUpdate(t *testing.T) {
	limiter := newFilterUpdateLimiter(0, 0, nil)
	for i := 0; i < 5; i++ {
		if !limiter.allowUpdate() {
			t.Fatal("zero-configured limiter should never drop an update")
		}
	}
}
