// Package cooldown tracks per-sender, per-command rate limit windows. Entries
// are expiry instants; an expired entry never gates and never reports a
// nonzero remaining time, whether or not the background cleaner has swept it
// yet. The clock is injected so time-dependent tests stay deterministic.
package cooldown

import (
	"sync"
	"time"

	"commandkit/pkg/platform"
)

type key struct {
	senderID string
	command  string
}

// Tracker is the cooldown store. Safe for concurrent use; entries are
// independent, there is no cross-key coordination.
type Tracker struct {
	mu    sync.Mutex
	until map[key]time.Time
	clock platform.Clock
}

// New creates a Tracker on the given clock. A nil clock means wall time.
func New(clock platform.Clock) *Tracker {
	if clock == nil {
		clock = platform.SystemClock{}
	}
	return &Tracker{
		until: make(map[key]time.Time),
		clock: clock,
	}
}

// Remaining returns how long the sender is still gated for the command, zero
// when no window is active. Never negative. Expired entries are deleted on
// the way out.
func (t *Tracker) Remaining(senderID, command string) time.Duration {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	k := key{senderID: senderID, command: command}
	until, ok := t.until[k]
	if !ok {
		return 0
	}
	if !until.After(now) {
		delete(t.until, k)
		return 0
	}
	return until.Sub(now)
}

// Allowed reports whether the sender may execute the command right now.
func (t *Tracker) Allowed(senderID, command string) bool {
	return t.Remaining(senderID, command) == 0
}

// Record opens a new window for the sender and command. Non-positive windows
// are a no-op, matching the "zero cooldown means inactive" contract.
func (t *Tracker) Record(senderID, command string, window time.Duration) {
	if window <= 0 {
		return
	}
	until := t.clock.Now().Add(window)

	t.mu.Lock()
	t.until[key{senderID: senderID, command: command}] = until
	t.mu.Unlock()
}

// Reset removes any window for the sender and command.
func (t *Tracker) Reset(senderID, command string) {
	t.mu.Lock()
	delete(t.until, key{senderID: senderID, command: command})
	t.mu.Unlock()
}

// Len reports how many windows are stored, expired ones included.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.until)
}

// clearExpired sweeps entries whose window has passed.
func (t *Tracker) clearExpired() {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	for k, until := range t.until {
		if !until.After(now) {
			delete(t.until, k)
		}
	}
}
