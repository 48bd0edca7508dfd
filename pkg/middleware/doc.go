// Package middleware provides net/http middleware for the playground
// server: Prometheus request metrics and OpenTelemetry server spans.
//
// Both work with any router; with chi, the route pattern ("/live") is used
// as the metric label and span name instead of the raw path.
//
//	r := chi.NewRouter()
//	r.Use(middleware.NewMetrics(middleware.WithRegistry(reg)).Handler)
//	r.Use(middleware.OpenTelemetry())
//
// The tracing middleware extracts the incoming trace context with the
// configured propagator, so spans started by handlers (and requests made
// with the api clients) join the caller's trace.
package middleware
