package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindComponent              // Nested component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes and event handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText
	Comp     Component // For KindComponent
	HID      string    // Hydration ID (assigned by AssignHIDs)
}

// Props holds attributes and event handlers.
type Props map[string]any

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if isHandlerKey(key) {
			return true
		}
	}
	return false
}

// Handlers returns the event handlers of the node keyed by event prop
// name ("onclick", "onpointerenter", ...).
func (v *VNode) Handlers() map[string]any {
	if v == nil || v.Kind != KindElement {
		return nil
	}
	var handlers map[string]any
	for key, value := range v.Props {
		if !isHandlerKey(key) {
			continue
		}
		if handlers == nil {
			handlers = make(map[string]any)
		}
		handlers[key] = value
	}
	return handlers
}

// Prop returns the value of a prop, or nil.
func (v *VNode) Prop(key string) any {
	if v == nil || v.Props == nil {
		return nil
	}
	return v.Props[key]
}

func isHandlerKey(key string) bool {
	return strings.HasPrefix(key, "on") && len(key) > 2
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
// Handler is usually func() or a func taking the event payload; the host
// that dispatches events decides which signatures it supports.
type EventHandler struct {
	Event   string // "onclick", "onpointerenter", etc.
	Handler any
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
