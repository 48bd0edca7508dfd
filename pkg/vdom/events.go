package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// Mouse and pointer events

// OnClick handles click events (primary activation, including keyboard
// activation of buttons).
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnPointerDown handles pointerdown events.
func OnPointerDown(handler any) EventHandler { return event("pointerdown", handler) }

// OnPointerEnter handles pointerenter events. They do not bubble.
func OnPointerEnter(handler any) EventHandler { return event("pointerenter", handler) }

// OnPointerLeave handles pointerleave events. They do not bubble.
func OnPointerLeave(handler any) EventHandler { return event("pointerleave", handler) }

// Focus and keyboard events

// OnFocusIn handles focusin events (bubbles, unlike focus).
func OnFocusIn(handler any) EventHandler { return event("focusin", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }
