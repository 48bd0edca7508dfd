// Package vdom provides the virtual DOM used by vango-ui components.
//
// VNode is the in-memory representation of elements, text and fragments.
// Props holds attributes and event handlers, built from Attr and
// EventHandler values passed to the element factories:
//
//	Div(Class("card"), ID("main"),
//	    H2(Text("Title")),
//	    OnClick(handler),
//	)
//
// # Hydration IDs
//
// AssignHIDs walks a rendered tree and gives every element a hydration ID
// ("h1", "h2", ...). The client reports event targets by HID, and Contains
// answers whether a target lies inside a given subtree, which is how
// components detect interaction outside themselves.
package vdom
