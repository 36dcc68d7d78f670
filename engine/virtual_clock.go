package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/simon/game"
)

// VirtualClock is a manually advanced game.Scheduler
// Callbacks run synchronously inside Advance, in deadline order and, for equal
// deadlines, in the order they were scheduled
type VirtualClock struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending map[game.TimerCategory]*virtualTimer
}

type virtualTimer struct {
	deadline time.Time
	period   time.Duration // Zero for one-shot timers
	seq      uint64
	fn       func()
}

// NewVirtualClock creates a clock frozen at start
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{
		now:     start,
		pending: make(map[game.TimerCategory]*virtualTimer),
	}
}

// Now returns the current virtual time
func (c *VirtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After implements game.Scheduler
func (c *VirtualClock) After(cat game.TimerCategory, d time.Duration, fn func()) {
	c.arm(cat, d, 0, fn)
}

// Every implements game.Scheduler; the first call happens one period from now
func (c *VirtualClock) Every(cat game.TimerCategory, d time.Duration, fn func()) {
	if d <= 0 {
		panic("engine: non-positive interval for Every")
	}
	c.arm(cat, d, d, fn)
}

func (c *VirtualClock) arm(cat game.TimerCategory, d, period time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.pending[cat] = &virtualTimer{
		deadline: c.now.Add(d),
		period:   period,
		seq:      c.seq,
		fn:       fn,
	}
}

// Cancel implements game.Scheduler
func (c *VirtualClock) Cancel(cat game.TimerCategory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, cat)
}

// CancelAll drops every pending timer
func (c *VirtualClock) CancelAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.pending)
}

// Pending reports whether a timer is armed in cat
func (c *VirtualClock) Pending(cat game.TimerCategory) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[cat]
	return ok
}

// PendingCount returns the number of armed timers across all categories
func (c *VirtualClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// NextDeadline returns the time until the earliest armed timer
func (c *VirtualClock) NextDeadline() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, t := c.earliestLocked(time.Time{}, false)
	if t == nil {
		return 0, false
	}
	return t.deadline.Sub(c.now), true
}

// Advance moves the clock forward by d, firing every timer that falls due
// Returns the number of callbacks run
func (c *VirtualClock) Advance(d time.Duration) int {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	fired := 0
	for {
		c.mu.Lock()
		cat, t := c.earliestLocked(target, true)
		if t == nil {
			c.now = target
			c.mu.Unlock()
			return fired
		}
		c.now = t.deadline
		if t.period > 0 {
			// Re-arm before running so the callback may supersede it
			c.seq++
			c.pending[cat] = &virtualTimer{
				deadline: t.deadline.Add(t.period),
				period:   t.period,
				seq:      c.seq,
				fn:       t.fn,
			}
		} else {
			delete(c.pending, cat)
		}
		c.mu.Unlock()

		t.fn()
		fired++
	}
}

// earliestLocked finds the next armed timer, ignoring those past limit when bounded
func (c *VirtualClock) earliestLocked(limit time.Time, bounded bool) (game.TimerCategory, *virtualTimer) {
	var (
		bestCat game.TimerCategory
		best    *virtualTimer
	)
	for cat, t := range c.pending {
		if bounded && t.deadline.After(limit) {
			continue
		}
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.seq < best.seq) {
			bestCat, best = cat, t
		}
	}
	return bestCat, best
}
