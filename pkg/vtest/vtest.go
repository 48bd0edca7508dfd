package vtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/vango-ui/pkg/render"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

// maxReport bounds how much markup a failed assertion prints.
const maxReport = 400

// Mount assigns hydration IDs to node with a fresh generator, as a session
// does before rendering, and returns node.
func Mount(node *vdom.VNode) *vdom.VNode {
	vdom.AssignHIDs(node, vdom.NewHIDGenerator())
	return node
}

// Render renders node and fails the test if the renderer returns an error.
func Render(t testing.TB, node *vdom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

// RenderToString renders node, returning "" if rendering fails. HIDs appear
// only if they were assigned before the call.
func RenderToString(node *vdom.VNode) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// FindAttr returns the first element in document order whose prop attr
// formats to value, or nil. Render-time markers such as data-hid are not
// props and cannot be found this way.
func FindAttr(root *vdom.VNode, attr, value string) *vdom.VNode {
	var found *vdom.VNode
	vdom.Walk(root, func(n *vdom.VNode) bool {
		if found != nil {
			return false
		}
		if v, ok := n.Props[attr]; ok && fmt.Sprint(v) == value {
			found = n
			return false
		}
		return true
	})
	return found
}

// ExpectContains fails the test unless the rendered node contains want.
func ExpectContains(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	if html := Render(t, node); !strings.Contains(html, want) {
		t.Errorf("rendered output lacks %q\n%s", want, clip(html))
	}
}

// ExpectNotContains fails the test if the rendered node contains unwanted.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unwanted string) {
	t.Helper()
	if html := Render(t, node); strings.Contains(html, unwanted) {
		t.Errorf("rendered output has %q\n%s", unwanted, clip(html))
	}
}

// ExpectAttribute fails the test unless the rendered node has an element
// carrying attr="value". Attributes written by the renderer count.
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := Render(t, node)
	if strings.Contains(html, " "+attr+`="`+value+`"`) {
		return
	}
	if i := strings.Index(html, " "+attr+`="`); i >= 0 {
		t.Errorf("%s has a different value than %q\n%s", attr, value, clip(html[i:]))
		return
	}
	t.Errorf("no element has %s\n%s", attr, clip(html))
}

func clip(s string) string {
	if len(s) <= maxReport {
		return s
	}
	return s[:maxReport] + fmt.Sprintf("... (%d more bytes)", len(s)-maxReport)
}
