package popover

import (
	"log/slog"

	"github.com/vango-dev/vango-ui/pkg/dom"
	"github.com/vango-dev/vango-ui/pkg/vango"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

// Controller is the popover state machine.
type Controller struct {
	cfg    config
	mode   ControlMode
	logger *slog.Logger

	state    State
	disabled bool
	disposed bool

	// requested is the value asked for through onOpenChange that has not
	// been confirmed by Sync yet. Controlled mode only.
	requested    State
	hasRequested bool

	hovered     [2]bool
	cancelClose func()
	closeGen    uint64

	// pending receives hover close callbacks when no scheduler was
	// configured. It is drained on the caller's goroutine.
	pending *vango.Queue

	unsubscribe func()

	triggerRoot *vdom.VNode
	contentRoot *vdom.VNode

	geometry    bool
	triggerRect Rect
	contentSize Size
}

// New creates a Controller. The control mode is Controlled if and only if
// WithOnOpenChange is given.
func New(opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.owner != nil {
		if cfg.scheduler == nil {
			cfg.scheduler = vango.SchedulerContext.Use(cfg.owner)
		}
		if cfg.document == nil {
			cfg.document = dom.DocumentContext.Use(cfg.owner)
		}
	}
	var pending *vango.Queue
	if cfg.scheduler == nil {
		pending = vango.NewQueue()
		cfg.scheduler = vango.NewScheduler(pending)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Controller{
		cfg:      cfg,
		disabled: cfg.disabled,
		pending:  pending,
		logger:   logger.With("component", "popover", "trigger", cfg.trigger.String()),
	}

	if cfg.onOpenChange != nil {
		c.mode = Controlled
	}

	initial := cfg.defaultOpen
	if c.mode == Controlled && cfg.open != nil {
		initial = *cfg.open
	}
	if initial && !c.disabled {
		c.setState(StateOpen)
	}

	if cfg.owner != nil {
		cfg.owner.OnCleanup(c.Dispose)
	}
	return c
}

// State returns the displayed state.
func (c *Controller) State() State {
	c.RunPending()
	return c.state
}

// IsOpen reports whether the popover is displayed open.
func (c *Controller) IsOpen() bool {
	c.RunPending()
	return c.state == StateOpen
}

// Pending receives a value when a hover close timer has fired on a
// Controller created without a scheduler or owner. The host should then
// call RunPending from the goroutine that uses the Controller. Pending
// returns nil when a scheduler is configured.
func (c *Controller) Pending() <-chan struct{} {
	if c.pending == nil {
		return nil
	}
	return c.pending.Ready()
}

// RunPending applies fired hover close timers of a Controller created
// without a scheduler. Every other method calls it first, so expired
// timers are never observed late by the caller.
func (c *Controller) RunPending() {
	if c.pending != nil {
		c.pending.Drain()
	}
}

// Mode returns the control mode fixed at construction.
func (c *Controller) Mode() ControlMode { return c.mode }

// Trigger returns the trigger mode.
func (c *Controller) Trigger() Trigger { return c.cfg.trigger }

// Placement returns the configured placement.
func (c *Controller) Placement() Placement { return c.cfg.placement.normalize() }

// Disabled reports whether the popover is disabled.
func (c *Controller) Disabled() bool { return c.disabled }

// ID returns the content element id, if one was configured.
func (c *Controller) ID() string { return c.cfg.id }

// Open opens the popover. It is a no-op when disabled, disposed or already
// open (or, when controlled, already asked to open).
func (c *Controller) Open() {
	c.RunPending()
	if c.disposed || c.disabled || c.target() == StateOpen {
		return
	}
	c.transition(StateOpen, "")
}

// Close closes the popover. It is a no-op when already closed.
func (c *Controller) Close() {
	c.RunPending()
	c.close(ReasonRequest)
}

// Toggle opens a closed popover and closes an open one.
func (c *Controller) Toggle() {
	c.RunPending()
	if c.target() == StateOpen {
		c.close(ReasonToggle)
		return
	}
	c.Open()
}

// HandleEvent interprets an event dispatched to the trigger or content
// element according to the trigger mode. Events are ignored while
// disabled or for an unknown region.
func (c *Controller) HandleEvent(region Region, ev dom.Event) {
	c.RunPending()
	if c.disposed || c.disabled || region > RegionContent {
		return
	}

	switch c.cfg.trigger {
	case TriggerClick:
		if region == RegionTrigger && ev.Type == dom.Click && ev.IsPrimary() {
			c.Toggle()
		}

	case TriggerHover:
		switch ev.Type {
		case dom.PointerEnter:
			c.hovered[region] = true
			if c.cancelHoverClose() {
				c.cfg.metrics.hoverCancelled()
			}
			c.Open()
		case dom.PointerLeave:
			c.hovered[region] = false
			if !c.hovered[RegionTrigger] && !c.hovered[RegionContent] {
				c.scheduleHoverClose()
			}
		}
	}
}

// SetDisabled sets the disabled flag. Disabling an open popover closes it
// and blocks Open until the flag is cleared.
func (c *Controller) SetDisabled(disabled bool) {
	c.RunPending()
	if c.disposed || c.disabled == disabled {
		return
	}
	c.disabled = disabled
	if !disabled {
		return
	}

	c.cancelHoverClose()
	c.hovered = [2]bool{}

	wasOpen := c.target() == StateOpen
	c.hasRequested = false
	if c.state == StateOpen {
		c.setState(StateClosed)
	}
	if wasOpen {
		c.cfg.metrics.transition(StateClosed, c.mode, ReasonDisabled)
		c.logger.Debug("popover closed", "reason", ReasonDisabled)
		c.notify(StateClosed)
	}
}

// Sync sets the displayed state of a controlled popover to the externally
// owned value. It never calls OnOpenChange. Opening is ignored while
// disabled. Sync does nothing on an uncontrolled popover.
func (c *Controller) Sync(open bool) {
	c.RunPending()
	if c.disposed || c.mode != Controlled {
		return
	}
	c.hasRequested = false

	next := StateClosed
	if open && !c.disabled {
		next = StateOpen
	}
	if next == c.state {
		return
	}
	if next == StateClosed {
		c.cancelHoverClose()
	}
	c.setState(next)
}

// Dispose releases the dismissal listener and cancels any pending hover
// close. The Controller ignores all calls afterwards. It is safe to call
// more than once.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.cancelHoverClose()
	c.releaseDismissal()
	c.disposed = true
	c.triggerRoot = nil
	c.contentRoot = nil
}

// SetRoots records the rendered trigger and content roots used to decide
// whether a document event is outside the popover. A nil root contains
// nothing.
func (c *Controller) SetRoots(trigger, content *vdom.VNode) {
	c.triggerRoot = trigger
	c.contentRoot = content
}

// SetGeometry records the measured trigger box and content size so the
// next render can place the content with Resolve.
func (c *Controller) SetGeometry(trigger Rect, content Size) {
	c.geometry = true
	c.triggerRect = trigger
	c.contentSize = content
}

// Position returns where the content should be drawn, and false if no
// geometry has been recorded.
func (c *Controller) Position() (Point, bool) {
	if !c.geometry {
		return Point{}, false
	}
	return Resolve(c.triggerRect, c.contentSize, c.cfg.placement), true
}

// target is the state the popover is displaying or, when controlled, has
// asked to move to.
func (c *Controller) target() State {
	if c.hasRequested {
		return c.requested
	}
	return c.state
}

func (c *Controller) close(reason Reason) {
	if c.disposed || c.target() == StateClosed {
		return
	}
	c.transition(StateClosed, reason)
}

func (c *Controller) transition(to State, reason Reason) {
	if to == StateClosed {
		c.cancelHoverClose()
	}

	if c.mode == Controlled {
		c.requested = to
		c.hasRequested = true
	} else {
		c.setState(to)
	}

	c.cfg.metrics.transition(to, c.mode, reason)
	c.logger.Debug("popover transition", "to", to.String(), "reason", reason, "mode", c.mode.String())
	c.notify(to)
}

func (c *Controller) notify(s State) {
	if c.cfg.onOpenChange != nil {
		c.cfg.onOpenChange(s == StateOpen)
	}
}

// setState changes the displayed state and arms or releases the dismissal
// listener to match.
func (c *Controller) setState(s State) {
	c.state = s
	if s == StateOpen {
		c.armDismissal()
	} else {
		c.releaseDismissal()
	}
}

func (c *Controller) scheduleHoverClose() {
	c.cancelHoverClose()
	if c.target() == StateClosed {
		return
	}

	gen := c.closeGen
	c.cancelClose = c.cfg.scheduler.AfterFunc(c.cfg.hoverCloseDelay, func() {
		if c.disposed || gen != c.closeGen {
			return
		}
		c.cancelClose = nil
		c.closeGen++
		if c.hovered[RegionTrigger] || c.hovered[RegionContent] {
			return
		}
		c.close(ReasonHover)
	})
}

// cancelHoverClose cancels the pending hover close, if any, and reports
// whether there was one. Bumping the generation makes a callback that was
// already handed to the loop return without closing.
func (c *Controller) cancelHoverClose() bool {
	if c.cancelClose == nil {
		return false
	}
	c.cancelClose()
	c.cancelClose = nil
	c.closeGen++
	return true
}
