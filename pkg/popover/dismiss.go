package popover

import (
	"github.com/vango-dev/vango-ui/pkg/dom"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

// armDismissal subscribes to document events. At most one subscription is
// held per Controller.
func (c *Controller) armDismissal() {
	if c.unsubscribe != nil || c.cfg.document == nil {
		return
	}
	c.unsubscribe = c.cfg.document.Subscribe(c.handleDocumentEvent,
		dom.PointerDown, dom.FocusIn, dom.KeyDown)
	c.cfg.metrics.listenerArmed()
}

func (c *Controller) releaseDismissal() {
	if c.unsubscribe == nil {
		return
	}
	c.unsubscribe()
	c.unsubscribe = nil
	c.cfg.metrics.listenerReleased()
}

func (c *Controller) handleDocumentEvent(ev dom.Event) {
	c.RunPending()
	if c.disposed || c.state != StateOpen {
		return
	}

	switch ev.Type {
	case dom.PointerDown:
		if ev.IsPrimary() && c.outside(ev.Target) {
			c.close(ReasonOutside)
		}
	case dom.FocusIn:
		if c.outside(ev.Target) {
			c.close(ReasonFocus)
		}
	case dom.KeyDown:
		if ev.Key == dom.KeyEscape {
			c.close(ReasonEscape)
		}
	}
}

// outside reports whether hid is in neither the trigger nor the content
// subtree. A root that has not been rendered contains nothing, so events
// fall outside it.
func (c *Controller) outside(hid string) bool {
	return !vdom.Contains(c.triggerRoot, hid) && !vdom.Contains(c.contentRoot, hid)
}
