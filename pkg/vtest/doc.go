// Package vtest provides testing helpers for Vango components.
//
// # Virtual Time
//
// Clock is a manual vango.Scheduler. Timers only fire when the test
// advances the clock, and they fire synchronously on the calling
// goroutine, so component code that normally runs on a session loop can
// be driven step by step:
//
//	clock := vtest.NewClock()
//	c := popover.New(popover.WithTrigger(popover.TriggerHover), popover.WithScheduler(clock))
//	c.HandleEvent(popover.RegionTrigger, dom.Event{Type: dom.PointerLeave})
//	clock.Advance(150 * time.Millisecond)
//
// # Trees
//
// Mount assigns hydration IDs as a session would, so tests can publish
// events that target elements found with FindAttr:
//
//	page := vtest.Mount(vdom.Div(popover.Render(c, trigger, content), other))
//	doc.Publish(dom.Event{Type: dom.PointerDown, Target: other.HID})
//
// # Render Assertions
//
// Assertions render the node and fail with a clipped excerpt of the markup:
//
//	vtest.ExpectAttribute(t, node, "aria-expanded", "true")
//	vtest.ExpectNotContains(t, node, `data-state="open"`)
package vtest
