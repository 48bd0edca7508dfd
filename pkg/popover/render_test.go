package popover

import (
	"testing"

	"github.com/vango-dev/vango-ui/pkg/dom"
	"github.com/vango-dev/vango-ui/pkg/vdom"
	"github.com/vango-dev/vango-ui/pkg/vtest"
)

func TestRenderClosed(t *testing.T) {
	c := New(WithID("menu"))
	node := Render(c, vdom.Button(vdom.Text("Menu")), vdom.P(vdom.Text("Items")))

	vtest.ExpectAttribute(t, node, "aria-expanded", "false")
	vtest.ExpectAttribute(t, node, "aria-controls", "menu")
	vtest.ExpectAttribute(t, node, "data-on-click", "true")
	vtest.ExpectNotContains(t, node, "Items")
	vtest.ExpectNotContains(t, node, `role="dialog"`)
}

func TestRenderOpenUsesClassFallback(t *testing.T) {
	c := New(WithID("menu"), WithSide(SideTop), WithAlign(AlignEnd), WithDefaultOpen(true))
	node := Render(c, vdom.Button(vdom.Text("Menu")), vdom.P(vdom.Text("Items")), "w-96")

	vtest.ExpectAttribute(t, node, "aria-expanded", "true")
	vtest.ExpectAttribute(t, node, "role", "dialog")
	vtest.ExpectAttribute(t, node, "id", "menu")
	vtest.ExpectAttribute(t, node, "data-side", "top")
	vtest.ExpectAttribute(t, node, "data-align", "end")
	vtest.ExpectContains(t, node, "bottom-full mb-2 right-0 w-96")
	vtest.ExpectContains(t, node, "Items")
}

func TestRenderOpenUsesResolvedPosition(t *testing.T) {
	c := New(WithDefaultOpen(true))
	c.SetGeometry(Rect{X: 100, Y: 50, Width: 40, Height: 20}, Size{Width: 80, Height: 30})
	node := Render(c, vdom.Button(), vdom.P())

	vtest.ExpectAttribute(t, node, "style", "position: fixed; left: 80px; top: 70px")
	vtest.ExpectNotContains(t, node, "top-full")
}

func TestRenderHoverHandlers(t *testing.T) {
	c := New(WithTrigger(TriggerHover), WithDefaultOpen(true), WithScheduler(vtest.NewClock()))
	node := Render(c, vdom.Button(), vdom.P())

	trigger, content := node.Children[0], node.Children[1]
	for _, region := range []*vdom.VNode{trigger, content} {
		handlers := region.Handlers()
		if _, ok := handlers["onpointerenter"]; !ok {
			t.Errorf("missing onpointerenter on %v", region.Props["data-popover-trigger"])
		}
		if _, ok := handlers["onpointerleave"]; !ok {
			t.Errorf("missing onpointerleave on %v", region.Props["data-popover-trigger"])
		}
		if _, ok := handlers["onclick"]; ok {
			t.Error("hover popover must not listen to click")
		}
	}
}

func TestRenderDisabled(t *testing.T) {
	c := New(WithDisabled(true))
	node := Render(c, vdom.Button(), vdom.P())

	vtest.ExpectAttribute(t, node, "aria-disabled", "true")
	vtest.ExpectAttribute(t, node, "data-disabled", "true")
}

func TestRenderHandlersDriveController(t *testing.T) {
	c := New()
	node := Render(c, vdom.Button(), vdom.P())

	handler, ok := node.Children[0].Handlers()["onclick"].(func(ev dom.Event))
	if !ok {
		t.Fatalf("onclick handler has type %T", node.Children[0].Handlers()["onclick"])
	}
	handler(click)
	if !c.IsOpen() {
		t.Error("Expected the rendered click handler to open the popover")
	}
}

func TestRenderRecordsRoots(t *testing.T) {
	c := New(WithDefaultOpen(true))
	content := vdom.P(vdom.Text("x"))
	node := Render(c, vdom.Button(), content)
	vdom.AssignHIDs(node, vdom.NewHIDGenerator())

	if c.outside(content.HID) {
		t.Error("Expected content to be inside the popover")
	}
	if !c.outside("h99") {
		t.Error("Expected unknown HID to be outside")
	}
}
