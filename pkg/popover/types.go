package popover

import (
	"errors"
	"fmt"
	"strings"
)

// State is the open/closed state of a popover.
type State uint8

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Trigger selects how the trigger element opens the popover.
type Trigger uint8

const (
	// TriggerClick toggles on primary activation of the trigger.
	TriggerClick Trigger = iota
	// TriggerHover opens on pointer enter and closes after the pointer
	// has left both trigger and content for the hover close delay.
	TriggerHover
)

func (t Trigger) String() string {
	if t == TriggerHover {
		return "hover"
	}
	return "click"
}

// ParseTrigger parses "click" or "hover".
func ParseTrigger(s string) (Trigger, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "click":
		return TriggerClick, nil
	case "hover":
		return TriggerHover, nil
	}
	return TriggerClick, fmt.Errorf("%w: trigger %q", ErrInvalidOption, s)
}

// ControlMode says who owns the open state.
type ControlMode uint8

const (
	Uncontrolled ControlMode = iota
	Controlled
)

func (m ControlMode) String() string {
	if m == Controlled {
		return "controlled"
	}
	return "uncontrolled"
}

// Region identifies which part of the popover an event was dispatched to.
type Region uint8

const (
	RegionTrigger Region = iota
	RegionContent
)

func (r Region) String() string {
	if r == RegionContent {
		return "content"
	}
	return "trigger"
}

// Reason records why a popover closed.
type Reason string

const (
	ReasonRequest  Reason = "request"
	ReasonToggle   Reason = "toggle"
	ReasonOutside  Reason = "outside"
	ReasonFocus    Reason = "focus"
	ReasonEscape   Reason = "escape"
	ReasonHover    Reason = "hover"
	ReasonDisabled Reason = "disabled"
)

// ErrInvalidOption is wrapped by the Parse functions.
var ErrInvalidOption = errors.New("popover: invalid option")
