package vtest

import (
	"sort"
	"sync"
	"time"
)

// Clock is a manually advanced scheduler for tests.
type Clock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*clockTimer
}

type clockTimer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewClock returns a Clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// AfterFunc schedules fn to run once the clock has been advanced by d.
// It implements vango.Scheduler.
func (c *Clock) AfterFunc(d time.Duration, fn func()) func() {
	c.mu.Lock()
	c.seq++
	t := &clockTimer{at: c.now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.remove(t)
	}
}

// Advance moves the clock forward by d and runs every timer that comes due,
// in deadline order. Timers scheduled by a callback run in the same call if
// their deadline falls within the advanced window.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDue(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.remove(next)
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of timers that have neither fired nor been
// cancelled.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *Clock) nextDue(target time.Duration) *clockTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.Slice(c.timers, func(i, j int) bool {
		if c.timers[i].at != c.timers[j].at {
			return c.timers[i].at < c.timers[j].at
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	if c.timers[0].at > target {
		return nil
	}
	return c.timers[0]
}

func (c *Clock) remove(t *clockTimer) {
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}
