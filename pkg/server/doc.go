// Package server hosts the vango-ui playground: a chi router serving a demo
// page whose components run on the server and receive browser events over
// a WebSocket.
//
// Every WebSocket connection gets its own Session with an owner tree, an
// event loop and a document-level event target. Client events are
// published to the document first, then dispatched to the element
// handler, and the page is re-rendered and sent back as HTML after every
// unit of work on the loop (events and timer callbacks alike).
//
// # Routes
//
//	GET /         demo page
//	GET /live     WebSocket endpoint
//	GET /metrics  Prometheus metrics
//	GET /healthz  liveness probe
package server
