// Package popover implements the Popover interaction model: open/closed
// state, click and hover triggers, controlled and uncontrolled usage,
// disabling, placement of the floating content, and dismissal on outside
// interaction.
//
// A Controller owns the state machine and is driven by DOM events routed
// from the trigger and content elements:
//
//	c := popover.New(
//	    popover.WithTrigger(popover.TriggerHover),
//	    popover.WithSide(popover.SideTop),
//	    popover.WithOwner(owner),
//	)
//	node := popover.Render(c, ui.Button(ui.WithChildren("Info")), vdom.P(vdom.Text("Details")))
//
// # Control Modes
//
// A Controller is Controlled when an OnOpenChange callback is supplied and
// Uncontrolled otherwise. The mode is fixed at construction. In Controlled
// mode Open and Close only ask the owner of the value to change it by
// calling the callback; the displayed state follows the value passed to
// Sync. In Uncontrolled mode the Controller owns the state.
//
// # Threading
//
// A Controller is not safe for concurrent use. All calls, including the
// hover close timer, must happen on one goroutine: the session event loop
// on the server. Pass a vango.Scheduler that dispatches onto that loop, or
// create the Controller under an owner that provides one.
//
// Without a scheduler, fired timers are queued and applied on the caller's
// goroutine by the next call into the Controller. Hosts that need the close
// to show up without further input select on Pending and call RunPending.
//
// # Dismissal
//
// While open, the Controller holds one subscription on the session
// dom.Document. A primary pointerdown or a focusin whose target lies
// outside both the trigger and the content closes the popover, as does the
// Escape key. The subscription is released on every path out of the open
// state, including Dispose.
package popover
