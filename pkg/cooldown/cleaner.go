package cooldown

import (
	"context"
	"time"
)

// RunCleaner sweeps expired windows every interval until ctx is done. Call
// from main or the host's lifecycle. Lookup behavior is identical without the
// cleaner; the sweep only bounds memory for senders that never come back.
func (t *Tracker) RunCleaner(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.clearExpired()
		}
	}
}
