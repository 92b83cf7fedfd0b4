package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"commandkit/pkg/platform"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time            { return c.now }
func (c *fakeClock) Advance(d time.Duration)   { c.now = c.now.Add(d) }
func (c *fakeClock) Clock() platform.Clock     { return platform.ClockFunc(func() time.Time { return c.now }) }

func TestTrackerWindowArithmetic(t *testing.T) {
	clk := newFakeClock()
	tr := New(clk.Clock())

	assert.True(t, tr.Allowed("s1", "heal"))
	assert.Zero(t, tr.Remaining("s1", "heal"))

	tr.Record("s1", "heal", 10*time.Second)
	assert.False(t, tr.Allowed("s1", "heal"))
	assert.Equal(t, 10*time.Second, tr.Remaining("s1", "heal"))

	// remaining strictly decreases over the window and never goes negative
	clk.Advance(1 * time.Second)
	assert.Equal(t, 9*time.Second, tr.Remaining("s1", "heal"))
	clk.Advance(8 * time.Second)
	assert.Equal(t, 1*time.Second, tr.Remaining("s1", "heal"))

	// allowed again at exactly T+N
	clk.Advance(1 * time.Second)
	assert.Zero(t, tr.Remaining("s1", "heal"))
	assert.True(t, tr.Allowed("s1", "heal"))

	clk.Advance(time.Hour)
	assert.Zero(t, tr.Remaining("s1", "heal"))
}

func TestTrackerKeysAreIndependent(t *testing.T) {
	clk := newFakeClock()
	tr := New(clk.Clock())

	tr.Record("s1", "heal", 10*time.Second)

	assert.True(t, tr.Allowed("s2", "heal"), "other sender unaffected")
	assert.True(t, tr.Allowed("s1", "shop"), "other command unaffected")
	assert.False(t, tr.Allowed("s1", "heal"))
}

func TestTrackerZeroWindowIsNoop(t *testing.T) {
	clk := newFakeClock()
	tr := New(clk.Clock())

	tr.Record("s1", "shop", 0)
	tr.Record("s1", "shop", -time.Second)
	assert.True(t, tr.Allowed("s1", "shop"))
	assert.Zero(t, tr.Len())
}

func TestTrackerReset(t *testing.T) {
	clk := newFakeClock()
	tr := New(clk.Clock())

	tr.Record("s1", "heal", time.Minute)
	tr.Reset("s1", "heal")
	assert.True(t, tr.Allowed("s1", "heal"))
}

func TestTrackerLazyExpiryDeletesEntries(t *testing.T) {
	clk := newFakeClock()
	tr := New(clk.Clock())

	tr.Record("s1", "heal", time.Second)
	assert.Equal(t, 1, tr.Len())

	clk.Advance(2 * time.Second)
	assert.Zero(t, tr.Remaining("s1", "heal"))
	assert.Zero(t, tr.Len(), "expired entry removed on lookup")
}

func TestTrackerClearExpiredSweep(t *testing.T) {
	clk := newFakeClock()
	tr := New(clk.Clock())

	tr.Record("s1", "heal", time.Second)
	tr.Record("s2", "heal", time.Hour)

	clk.Advance(2 * time.Second)
	tr.clearExpired()

	assert.Equal(t, 1, tr.Len())
	assert.False(t, tr.Allowed("s2", "heal"))
}
