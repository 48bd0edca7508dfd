package popover

import (
	"fmt"

	"github.com/vango-dev/vango-ui/pkg/dom"
	"github.com/vango-dev/vango-ui/pkg/ui"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

const contentBaseClasses = "z-50 w-72 rounded-md border bg-popover p-4 text-popover-foreground shadow-md outline-none"

// Position classes used when no geometry has been measured.
var sideClasses = map[Side]string{
	SideTop:    "bottom-full mb-2",
	SideRight:  "left-full ml-2",
	SideBottom: "top-full mt-2",
	SideLeft:   "right-full mr-2",
}

var alignClasses = map[Side]map[Align]string{
	SideTop: {
		AlignStart:  "left-0",
		AlignCenter: "left-1/2 -translate-x-1/2",
		AlignEnd:    "right-0",
	},
	SideBottom: {
		AlignStart:  "left-0",
		AlignCenter: "left-1/2 -translate-x-1/2",
		AlignEnd:    "right-0",
	},
	SideLeft: {
		AlignStart:  "top-0",
		AlignCenter: "top-1/2 -translate-y-1/2",
		AlignEnd:    "bottom-0",
	},
	SideRight: {
		AlignStart:  "top-0",
		AlignCenter: "top-1/2 -translate-y-1/2",
		AlignEnd:    "bottom-0",
	},
}

// Render builds the popover markup for the current state of c and records
// the trigger and content roots on c for outside hit testing. The content
// is only rendered while c is open.
//
// A controlled popover should be synced with the external value before
// rendering.
func Render(c *Controller, trigger, content *vdom.VNode, className ...string) *vdom.VNode {
	p := c.Placement()
	open := c.IsOpen()

	triggerEl := vdom.Div(
		vdom.Class("inline-block"),
		vdom.Data("popover-trigger", "true"),
		vdom.Data("state", c.State().String()),
		vdom.AriaHasPopup("dialog"),
		vdom.AriaExpanded(open),
		regionHandlers(c, RegionTrigger),
		trigger,
	)
	if c.ID() != "" {
		triggerEl.Props["aria-controls"] = c.ID()
	}
	if c.Disabled() {
		triggerEl.Props["aria-disabled"] = "true"
		triggerEl.Props["data-disabled"] = "true"
	}

	if !open {
		c.SetRoots(triggerEl, nil)
		return vdom.Div(
			vdom.Class("relative inline-block"),
			triggerEl,
		)
	}

	var position any
	classes := []string{contentBaseClasses}
	if pt, ok := c.Position(); ok {
		position = vdom.StyleAttr(fmt.Sprintf("position: fixed; left: %gpx; top: %gpx", pt.X, pt.Y))
	} else {
		classes = append(classes, "absolute", sideClasses[p.Side], alignClasses[p.Side][p.Align])
	}
	classes = append(classes, className...)

	contentEl := vdom.Div(
		vdom.Class(ui.CN(classes...)),
		vdom.Role("dialog"),
		vdom.Data("state", "open"),
		vdom.Data("side", string(p.Side)),
		vdom.Data("align", string(p.Align)),
		vdom.Data("popover-content", "true"),
		position,
		regionHandlers(c, RegionContent),
		content,
	)
	if c.ID() != "" {
		contentEl.Props["id"] = c.ID()
	}

	c.SetRoots(triggerEl, contentEl)
	return vdom.Div(
		vdom.Class("relative inline-block"),
		triggerEl,
		contentEl,
	)
}

// regionHandlers returns the event handlers the trigger mode listens to on
// the given region.
func regionHandlers(c *Controller, region Region) []any {
	handle := func(ev dom.Event) { c.HandleEvent(region, ev) }

	switch c.Trigger() {
	case TriggerHover:
		return []any{vdom.OnPointerEnter(handle), vdom.OnPointerLeave(handle)}
	default:
		if region == RegionTrigger {
			return []any{vdom.OnClick(handle)}
		}
		return nil
	}
}
