// Package dom models the browser events that reach vango-ui components and
// the document-level event target that global listeners subscribe to.
//
// Events identify their target by hydration ID (see vdom.AssignHIDs). A
// Document is owned by one session and is only used from that session's
// event loop; its lock exists so that diagnostics such as ListenerCount can
// be read from other goroutines.
package dom
