package dom

// Type is a DOM event type name.
type Type string

const (
	Click        Type = "click"
	PointerDown  Type = "pointerdown"
	PointerEnter Type = "pointerenter"
	PointerLeave Type = "pointerleave"
	FocusIn      Type = "focusin"
	KeyDown      Type = "keydown"
)

// Mouse buttons as reported by PointerEvent.button.
const (
	ButtonPrimary   = 0
	ButtonAuxiliary = 1
	ButtonSecondary = 2
)

// KeyEscape is the KeyboardEvent.key value of the Escape key.
const KeyEscape = "Escape"

// Event is a DOM event delivered to a handler or a document listener.
type Event struct {
	Type Type `json:"type"`

	// Target is the hydration ID of the element the event was dispatched
	// to. Empty means the document itself (or an element outside the
	// rendered tree).
	Target string `json:"hid"`

	// Button is the pointer button for pointer and click events.
	Button int `json:"button,omitempty"`

	// Key is the key value for keyboard events.
	Key string `json:"key,omitempty"`

	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
}

// IsPrimary reports whether the event is a primary-button activation.
func (e Event) IsPrimary() bool {
	return e.Button == ButtonPrimary
}

// Valid reports whether the type is one this package knows.
func (t Type) Valid() bool {
	switch t {
	case Click, PointerDown, PointerEnter, PointerLeave, FocusIn, KeyDown:
		return true
	}
	return false
}

// Handler returns the vdom prop name for the event type ("onclick").
func (t Type) Handler() string {
	return "on" + string(t)
}
