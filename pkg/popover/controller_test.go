package popover

import (
	"testing"
	"time"

	"github.com/vango-dev/vango-ui/pkg/dom"
	"github.com/vango-dev/vango-ui/pkg/vango"
	"github.com/vango-dev/vango-ui/pkg/vdom"
	"github.com/vango-dev/vango-ui/pkg/vtest"
)

var (
	click        = dom.Event{Type: dom.Click, Button: dom.ButtonPrimary}
	pointerEnter = dom.Event{Type: dom.PointerEnter}
	pointerLeave = dom.Event{Type: dom.PointerLeave}
)

// fixture renders c with a trigger and content and an unrelated sibling,
// assigning HIDs the way a session does.
type fixture struct {
	c       *Controller
	doc     *dom.Document
	outside *vdom.VNode
	trigger *vdom.VNode
	content *vdom.VNode
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	doc := dom.NewDocument()
	f := &fixture{
		c:   New(append([]Option{WithDocument(doc)}, opts...)...),
		doc: doc,
	}
	f.render()
	return f
}

func (f *fixture) render() {
	f.trigger = vdom.Button(vdom.Text("Open"))
	f.content = vdom.P(vdom.Text("Details"))
	f.outside = vdom.Div(vdom.Text("elsewhere"))
	page := vdom.Div(Render(f.c, f.trigger, f.content), f.outside)
	vtest.Mount(page)
}

func (f *fixture) pointerDown(target *vdom.VNode) {
	f.doc.Publish(dom.Event{Type: dom.PointerDown, Target: target.HID, Button: dom.ButtonPrimary})
}

func TestOpenCloseSequences(t *testing.T) {
	tests := []struct {
		name string
		ops  string // o=open c=close t=toggle
		want State
	}{
		{"initial", "", StateClosed},
		{"open", "o", StateOpen},
		{"open close", "oc", StateClosed},
		{"close open", "co", StateOpen},
		{"open open", "oo", StateOpen},
		{"close close", "cc", StateClosed},
		{"open close open", "oco", StateOpen},
		{"toggle", "t", StateOpen},
		{"toggle toggle", "tt", StateClosed},
		{"open toggle", "ot", StateClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for _, op := range tt.ops {
				switch op {
				case 'o':
					c.Open()
				case 'c':
					c.Close()
				case 't':
					c.Toggle()
				}
			}
			if c.State() != tt.want {
				t.Errorf("State() = %v, want %v", c.State(), tt.want)
			}
		})
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	f := newFixture(t)

	f.c.Open()
	f.c.Open()

	if !f.c.IsOpen() {
		t.Fatal("Expected popover to be open")
	}
	if n := f.doc.ListenerCount(); n != 1 {
		t.Errorf("ListenerCount() = %d, want 1 after repeated Open", n)
	}

	f.c.Close()
	f.c.Close()
	if n := f.doc.ListenerCount(); n != 0 {
		t.Errorf("ListenerCount() = %d, want 0 after Close", n)
	}
}

func TestDefaultOpen(t *testing.T) {
	doc := dom.NewDocument()
	c := New(WithDefaultOpen(true), WithDocument(doc))

	if !c.IsOpen() {
		t.Error("Expected default-open popover to start open")
	}
	if doc.ListenerCount() != 1 {
		t.Errorf("ListenerCount() = %d, want 1", doc.ListenerCount())
	}

	if New(WithDefaultOpen(true), WithDisabled(true)).IsOpen() {
		t.Error("Expected disabled popover to start closed")
	}
}

func TestDisableWhileOpenForcesClosed(t *testing.T) {
	f := newFixture(t)
	f.c.Open()

	f.c.SetDisabled(true)
	if f.c.IsOpen() {
		t.Fatal("Expected disabling to close the popover")
	}
	if n := f.doc.ListenerCount(); n != 0 {
		t.Errorf("ListenerCount() = %d, want 0 after disable", n)
	}

	f.c.Open()
	f.c.Toggle()
	f.c.HandleEvent(RegionTrigger, click)
	if f.c.IsOpen() {
		t.Error("Expected Open to be ignored while disabled")
	}

	f.c.SetDisabled(false)
	if f.c.IsOpen() {
		t.Error("Re-enabling must not reopen")
	}
	f.c.Open()
	if !f.c.IsOpen() {
		t.Error("Expected Open to work after re-enabling")
	}
}

func TestClickScenario(t *testing.T) {
	f := newFixture(t)

	f.pointerDown(f.trigger)
	f.c.HandleEvent(RegionTrigger, click)
	if !f.c.IsOpen() {
		t.Fatal("Expected activation on trigger to open")
	}
	f.render()

	f.pointerDown(f.content)
	if !f.c.IsOpen() {
		t.Fatal("Expected pointerdown inside content to keep the popover open")
	}

	f.pointerDown(f.outside)
	if f.c.IsOpen() {
		t.Fatal("Expected activation on unrelated element to close")
	}
	if n := f.doc.ListenerCount(); n != 0 {
		t.Errorf("ListenerCount() = %d, want 0", n)
	}
}

func TestClickOnTriggerWhileOpenToggles(t *testing.T) {
	f := newFixture(t)
	f.c.HandleEvent(RegionTrigger, click)
	f.render()

	f.pointerDown(f.trigger)
	f.c.HandleEvent(RegionTrigger, click)

	if f.c.IsOpen() {
		t.Error("Expected second activation on trigger to close")
	}
}

func TestClickModeIgnoresOtherEvents(t *testing.T) {
	c := New()

	c.HandleEvent(RegionTrigger, dom.Event{Type: dom.Click, Button: dom.ButtonSecondary})
	c.HandleEvent(RegionTrigger, pointerEnter)
	c.HandleEvent(RegionTrigger, dom.Event{Type: dom.FocusIn})
	c.HandleEvent(RegionContent, click)

	if c.IsOpen() {
		t.Error("Expected only primary click on the trigger to open")
	}
}

func TestDismissalClosesExactlyOnce(t *testing.T) {
	var notifications []bool
	open := false
	doc := dom.NewDocument()
	c := New(
		WithDocument(doc),
		WithOnOpenChange(func(v bool) { notifications = append(notifications, v) }),
	)
	trigger := vdom.Button(vdom.Text("Open"))
	outside := vdom.Div()

	renderPage := func() {
		c.Sync(open)
		page := vdom.Div(Render(c, trigger, vdom.P()), outside)
		vtest.Mount(page)
	}
	renderPage()

	c.HandleEvent(RegionTrigger, click)
	open = notifications[len(notifications)-1]
	renderPage()

	// Two outside presses before the parent re-renders.
	doc.Publish(dom.Event{Type: dom.PointerDown, Target: outside.HID})
	doc.Publish(dom.Event{Type: dom.PointerDown, Target: outside.HID})

	want := []bool{true, false}
	if len(notifications) != len(want) {
		t.Fatalf("notifications = %v, want %v", notifications, want)
	}
	for i := range want {
		if notifications[i] != want[i] {
			t.Fatalf("notifications = %v, want %v", notifications, want)
		}
	}

	open = false
	renderPage()
	if c.IsOpen() || doc.ListenerCount() != 0 {
		t.Errorf("IsOpen() = %v, ListenerCount() = %d after sync", c.IsOpen(), doc.ListenerCount())
	}
}

func TestDismissalMissingRootCountsAsOutside(t *testing.T) {
	doc := dom.NewDocument()
	c := New(WithDocument(doc), WithDefaultOpen(true))

	// Never rendered: no roots recorded.
	doc.Publish(dom.Event{Type: dom.PointerDown, Target: "h7"})
	if c.IsOpen() {
		t.Error("Expected pointerdown with no roots to close")
	}
}

func TestDismissalIgnoresNonPrimaryButton(t *testing.T) {
	f := newFixture(t, WithDefaultOpen(true))
	f.render()

	f.doc.Publish(dom.Event{Type: dom.PointerDown, Target: f.outside.HID, Button: dom.ButtonSecondary})
	if !f.c.IsOpen() {
		t.Error("Expected secondary button press to be ignored")
	}
}

func TestDismissalFocusAndEscape(t *testing.T) {
	f := newFixture(t, WithDefaultOpen(true))
	f.render()

	f.doc.Publish(dom.Event{Type: dom.FocusIn, Target: f.content.HID})
	if !f.c.IsOpen() {
		t.Fatal("Expected focus inside content to keep the popover open")
	}
	f.doc.Publish(dom.Event{Type: dom.FocusIn, Target: f.outside.HID})
	if f.c.IsOpen() {
		t.Fatal("Expected focus moving outside to close")
	}

	f.c.Open()
	f.doc.Publish(dom.Event{Type: dom.KeyDown, Key: "a"})
	if !f.c.IsOpen() {
		t.Fatal("Expected other keys to be ignored")
	}
	f.doc.Publish(dom.Event{Type: dom.KeyDown, Key: dom.KeyEscape})
	if f.c.IsOpen() {
		t.Error("Expected Escape to close")
	}
}

func TestMultiplePopoversOwnIndependentListeners(t *testing.T) {
	doc := dom.NewDocument()
	a := New(WithDocument(doc))
	b := New(WithDocument(doc))

	a.Open()
	b.Open()
	if n := doc.ListenerCount(); n != 2 {
		t.Fatalf("ListenerCount() = %d, want 2", n)
	}

	a.Close()
	if n := doc.ListenerCount(); n != 1 {
		t.Errorf("ListenerCount() = %d, want 1", n)
	}
	if !b.IsOpen() {
		t.Error("Closing one popover must not close the other")
	}
}

func TestDisposeWhileOpenReleasesListener(t *testing.T) {
	clock := vtest.NewClock()
	doc := dom.NewDocument()
	c := New(WithDocument(doc), WithTrigger(TriggerHover), WithScheduler(clock))

	c.HandleEvent(RegionTrigger, pointerEnter)
	c.HandleEvent(RegionTrigger, pointerLeave)
	c.Dispose()
	c.Dispose()

	if n := doc.ListenerCount(); n != 0 {
		t.Errorf("ListenerCount() = %d, want 0", n)
	}
	if n := clock.Pending(); n != 0 {
		t.Errorf("Pending() = %d, want 0 timers after Dispose", n)
	}

	c.Close()
	c.Open()
	if doc.ListenerCount() != 0 {
		t.Error("Open after Dispose must not subscribe")
	}
}

func TestOwnerDisposeReleasesPopover(t *testing.T) {
	doc := dom.NewDocument()
	clock := vtest.NewClock()

	root := vango.NewOwner(nil)
	dom.DocumentContext.Provide(root, doc)
	vango.SchedulerContext.Provide(root, clock)
	component := vango.NewOwner(root)

	c := New(WithOwner(component), WithTrigger(TriggerHover))
	c.HandleEvent(RegionTrigger, pointerEnter)
	c.HandleEvent(RegionTrigger, pointerLeave)

	if doc.ListenerCount() != 1 || clock.Pending() != 1 {
		t.Fatalf("listeners = %d, timers = %d; want 1, 1", doc.ListenerCount(), clock.Pending())
	}

	root.Dispose()

	if doc.ListenerCount() != 0 || clock.Pending() != 0 {
		t.Errorf("listeners = %d, timers = %d after owner dispose; want 0, 0", doc.ListenerCount(), clock.Pending())
	}
}

func TestControlMode(t *testing.T) {
	if New().Mode() != Uncontrolled {
		t.Error("Expected Uncontrolled without a callback")
	}
	if New(WithOpen(true)).Mode() != Uncontrolled {
		t.Error("An external value without a callback stays Uncontrolled")
	}
	if New(WithOnOpenChange(func(bool) {})).Mode() != Controlled {
		t.Error("Expected Controlled with a callback")
	}
}

func TestUncontrolledIgnoresSync(t *testing.T) {
	c := New()
	c.Sync(true)
	if c.IsOpen() {
		t.Error("Sync must not change an uncontrolled popover")
	}
}

func TestControlledNotifications(t *testing.T) {
	doc := dom.NewDocument()
	var notifications []bool
	c := New(
		WithDocument(doc),
		WithOnOpenChange(func(v bool) { notifications = append(notifications, v) }),
	)

	c.Open()
	c.Open()
	if c.IsOpen() {
		t.Fatal("Controlled popover must not open before the external value changes")
	}
	if len(notifications) != 1 || !notifications[0] {
		t.Fatalf("notifications = %v, want [true]", notifications)
	}
	if doc.ListenerCount() != 0 {
		t.Error("Listener must not be armed before Sync")
	}

	c.Sync(true)
	if !c.IsOpen() {
		t.Fatal("Expected displayed state to follow Sync(true)")
	}
	if doc.ListenerCount() != 1 {
		t.Errorf("ListenerCount() = %d, want 1", doc.ListenerCount())
	}

	c.Toggle()
	c.Close()
	if len(notifications) != 2 || notifications[1] {
		t.Fatalf("notifications = %v, want [true false]", notifications)
	}
	if !c.IsOpen() {
		t.Error("Displayed state must stay open until Sync(false)")
	}

	c.Sync(false)
	if c.IsOpen() || doc.ListenerCount() != 0 {
		t.Errorf("IsOpen() = %v, ListenerCount() = %d after Sync(false)", c.IsOpen(), doc.ListenerCount())
	}
}

func TestControlledRejectedRequest(t *testing.T) {
	calls := 0
	c := New(WithOnOpenChange(func(bool) { calls++ }))

	c.Open()
	// Parent keeps the value closed and re-renders.
	c.Sync(false)
	c.Open()

	if calls != 2 {
		t.Errorf("callback called %d times, want 2", calls)
	}
}

func TestControlledSyncInsideCallback(t *testing.T) {
	var c *Controller
	c = New(WithOnOpenChange(func(v bool) { c.Sync(v) }))

	c.Open()
	if !c.IsOpen() {
		t.Error("Expected immediate Sync from the callback to open")
	}
	c.Close()
	if c.IsOpen() {
		t.Error("Expected immediate Sync from the callback to close")
	}
}

func TestControlledExternalValueWinsOverDefaultOpen(t *testing.T) {
	c := New(WithOnOpenChange(func(bool) {}), WithOpen(false), WithDefaultOpen(true))
	if c.IsOpen() {
		t.Error("Expected external value to take precedence over DefaultOpen")
	}

	c = New(WithOnOpenChange(func(bool) {}), WithDefaultOpen(true))
	if !c.IsOpen() {
		t.Error("Expected DefaultOpen to seed the mirror without an external value")
	}
}

func TestControlledDisableForcesMirrorClosed(t *testing.T) {
	doc := dom.NewDocument()
	var notifications []bool
	c := New(
		WithDocument(doc),
		WithOpen(true),
		WithOnOpenChange(func(v bool) { notifications = append(notifications, v) }),
	)

	c.SetDisabled(true)
	if c.IsOpen() || doc.ListenerCount() != 0 {
		t.Fatalf("IsOpen() = %v, ListenerCount() = %d after disable", c.IsOpen(), doc.ListenerCount())
	}
	if len(notifications) != 1 || notifications[0] {
		t.Errorf("notifications = %v, want [false]", notifications)
	}

	c.Sync(true)
	if c.IsOpen() {
		t.Error("Sync(true) must be ignored while disabled")
	}
}

func TestHoverCloseDelay(t *testing.T) {
	clock := vtest.NewClock()
	c := New(WithTrigger(TriggerHover), WithScheduler(clock), WithHoverCloseDelay(100*time.Millisecond))

	c.HandleEvent(RegionTrigger, pointerEnter)
	c.HandleEvent(RegionTrigger, pointerLeave)

	clock.Advance(99 * time.Millisecond)
	if !c.IsOpen() {
		t.Fatal("Expected popover to stay open before the delay elapses")
	}
	clock.Advance(time.Millisecond)
	if c.IsOpen() {
		t.Error("Expected popover to close once the delay elapses")
	}
}

func TestHoverReentryCancelsClose(t *testing.T) {
	clock := vtest.NewClock()
	c := New(WithTrigger(TriggerHover), WithScheduler(clock))

	c.HandleEvent(RegionTrigger, pointerEnter)
	for i := 0; i < 5; i++ {
		c.HandleEvent(RegionTrigger, pointerLeave)
		clock.Advance(DefaultHoverCloseDelay / 2)
		c.HandleEvent(RegionTrigger, pointerEnter)
	}
	clock.Advance(time.Second)

	if !c.IsOpen() {
		t.Error("Expected re-entry within the delay to cancel every pending close")
	}
	if clock.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", clock.Pending())
	}
}

func TestHoverScenario(t *testing.T) {
	clock := vtest.NewClock()
	c := New(WithTrigger(TriggerHover), WithScheduler(clock))

	c.HandleEvent(RegionTrigger, pointerEnter)
	if !c.IsOpen() {
		t.Fatal("Expected pointer-enter on trigger to open immediately")
	}

	c.HandleEvent(RegionTrigger, pointerLeave)
	clock.Advance(50 * time.Millisecond)
	c.HandleEvent(RegionContent, pointerEnter)
	clock.Advance(time.Second)
	if !c.IsOpen() {
		t.Fatal("Expected crossing to the content within the delay to keep it open")
	}

	c.HandleEvent(RegionContent, pointerLeave)
	clock.Advance(DefaultHoverCloseDelay + time.Millisecond)
	if c.IsOpen() {
		t.Error("Expected leaving the content to close after the delay")
	}
}

func TestHoverLeaveOneRegionWhileInOther(t *testing.T) {
	clock := vtest.NewClock()
	c := New(WithTrigger(TriggerHover), WithScheduler(clock))

	c.HandleEvent(RegionTrigger, pointerEnter)
	c.HandleEvent(RegionContent, pointerEnter)
	c.HandleEvent(RegionTrigger, pointerLeave)

	if clock.Pending() != 0 {
		t.Error("No close should be scheduled while the content is hovered")
	}
}

// heldScheduler hands out callbacks that ignore cancellation, like a timer
// whose callback is already queued on the loop when cancel is called.
type heldScheduler struct {
	fns []func()
}

func (s *heldScheduler) AfterFunc(d time.Duration, fn func()) func() {
	s.fns = append(s.fns, fn)
	return func() {}
}

func TestHoverCancelWinsOverQueuedClose(t *testing.T) {
	sched := &heldScheduler{}
	c := New(WithTrigger(TriggerHover), WithScheduler(sched))

	c.HandleEvent(RegionTrigger, pointerEnter)
	c.HandleEvent(RegionTrigger, pointerLeave)
	c.HandleEvent(RegionContent, pointerEnter)

	for _, fn := range sched.fns {
		fn()
	}
	if !c.IsOpen() {
		t.Error("A close that was cancelled before running must not fire")
	}
}

func TestHoverStartingNewDelayCancelsPending(t *testing.T) {
	clock := vtest.NewClock()
	closes := 0
	var c *Controller
	c = New(
		WithTrigger(TriggerHover),
		WithScheduler(clock),
		WithOnOpenChange(func(v bool) {
			if !v {
				closes++
			}
			c.Sync(v)
		}),
	)

	c.HandleEvent(RegionTrigger, pointerEnter)
	c.HandleEvent(RegionTrigger, pointerLeave)
	c.HandleEvent(RegionContent, pointerLeave)
	if clock.Pending() != 1 {
		t.Fatalf("Pending() = %d, want a single outstanding timer", clock.Pending())
	}

	clock.Advance(time.Second)
	if closes != 1 {
		t.Errorf("close notified %d times, want 1", closes)
	}
}

func TestHoverDisableCancelsPendingClose(t *testing.T) {
	clock := vtest.NewClock()
	c := New(WithTrigger(TriggerHover), WithScheduler(clock))

	c.HandleEvent(RegionTrigger, pointerEnter)
	c.HandleEvent(RegionTrigger, pointerLeave)
	c.SetDisabled(true)

	if clock.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0 after disable", clock.Pending())
	}
	c.HandleEvent(RegionTrigger, pointerEnter)
	if c.IsOpen() {
		t.Error("Expected hover to be ignored while disabled")
	}
}

func TestHoverModeIgnoresClick(t *testing.T) {
	c := New(WithTrigger(TriggerHover), WithScheduler(vtest.NewClock()))
	c.HandleEvent(RegionTrigger, click)
	if c.IsOpen() {
		t.Error("Expected click to be ignored in hover mode")
	}
}

func TestPosition(t *testing.T) {
	c := New(WithSide(SideRight), WithAlign(AlignStart), WithOffset(4))

	if _, ok := c.Position(); ok {
		t.Error("Expected no position before geometry is recorded")
	}

	c.SetGeometry(Rect{X: 10, Y: 20, Width: 30, Height: 10}, Size{Width: 50, Height: 50})
	pt, ok := c.Position()
	if !ok || pt != (Point{X: 44, Y: 20}) {
		t.Errorf("Position() = %+v, %v; want {44 20}, true", pt, ok)
	}
}

func TestDefaultSchedulerAppliesCloseOnCaller(t *testing.T) {
	c := New(WithTrigger(TriggerHover), WithHoverCloseDelay(time.Millisecond))

	c.HandleEvent(RegionTrigger, pointerEnter)
	c.HandleEvent(RegionTrigger, pointerLeave)

	select {
	case <-c.Pending():
	case <-time.After(time.Second):
		t.Fatal("hover close timer did not fire")
	}
	// The timer goroutine only queued the close.
	if c.state != StateOpen {
		t.Fatal("state changed off the caller's goroutine")
	}
	if c.IsOpen() {
		t.Error("Expected the queued close to apply on the next call")
	}
}

func TestDefaultSchedulerEnterLeaveLoop(t *testing.T) {
	c := New(WithTrigger(TriggerHover), WithHoverCloseDelay(time.Millisecond))

	for i := 0; i < 200; i++ {
		c.HandleEvent(RegionTrigger, pointerEnter)
		if !c.IsOpen() {
			t.Fatalf("iteration %d: pointerenter did not open", i)
		}
		c.HandleEvent(RegionTrigger, pointerLeave)
		_ = c.IsOpen()
	}

	deadline := time.After(time.Second)
	for c.IsOpen() {
		select {
		case <-c.Pending():
			c.RunPending()
		case <-deadline:
			t.Fatal("hover close never applied")
		}
	}
}

func TestPendingNilWithScheduler(t *testing.T) {
	c := New(WithTrigger(TriggerHover), WithScheduler(vtest.NewClock()))
	if c.Pending() != nil {
		t.Error("Expected Pending to be nil when a scheduler is configured")
	}
	c.RunPending()
}

func TestHandleEventUnknownRegion(t *testing.T) {
	c := New(WithTrigger(TriggerHover), WithScheduler(vtest.NewClock()))
	c.HandleEvent(Region(2), pointerEnter)
	c.HandleEvent(Region(7), pointerLeave)
	if c.IsOpen() {
		t.Error("Expected events for an unknown region to be ignored")
	}
}
