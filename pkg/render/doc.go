// Package render serializes VNode trees to HTML.
//
// Elements carry their hydration ID as a data-hid attribute and every
// attached handler as a data-on-<event> marker, which is all the thin
// client needs to route DOM events back to the session:
//
//	vdom.AssignHIDs(tree, vdom.NewHIDGenerator())
//	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(tree)
//
// Attributes are written in sorted order so output is deterministic.
package render
