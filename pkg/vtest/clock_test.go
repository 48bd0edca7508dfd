package vtest

import (
	"testing"
	"time"
)

func TestClockFiresInDeadlineOrder(t *testing.T) {
	c := NewClock()
	var order []string
	c.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	c.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	c.Advance(20 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("after 20ms order = %v, want [a b]", order)
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", c.Pending())
	}

	c.Advance(10 * time.Millisecond)
	if len(order) != 3 || order[2] != "c" {
		t.Errorf("order = %v, want [a b c]", order)
	}
	if c.Now() != 30*time.Millisecond {
		t.Errorf("Now() = %v, want 30ms", c.Now())
	}
}

func TestClockCancel(t *testing.T) {
	c := NewClock()
	fired := false
	cancel := c.AfterFunc(time.Millisecond, func() { fired = true })

	cancel()
	cancel()
	c.Advance(time.Second)

	if fired {
		t.Error("cancelled timer fired")
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", c.Pending())
	}
}

func TestClockNestedScheduling(t *testing.T) {
	c := NewClock()
	var at []time.Duration
	c.AfterFunc(10*time.Millisecond, func() {
		at = append(at, c.Now())
		c.AfterFunc(10*time.Millisecond, func() { at = append(at, c.Now()) })
	})

	c.Advance(25 * time.Millisecond)

	if len(at) != 2 || at[0] != 10*time.Millisecond || at[1] != 20*time.Millisecond {
		t.Errorf("fired at %v, want [10ms 20ms]", at)
	}
}

func TestClockCallbackCancelsSibling(t *testing.T) {
	c := NewClock()
	var cancelB func()
	bFired := false
	c.AfterFunc(10*time.Millisecond, func() { cancelB() })
	cancelB = c.AfterFunc(10*time.Millisecond, func() { bFired = true })

	c.Advance(10 * time.Millisecond)
	if bFired {
		t.Error("timer cancelled by an earlier callback fired")
	}
}
