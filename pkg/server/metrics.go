package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the playground's session and event metrics. A nil
// *Metrics records nothing.
type Metrics struct {
	activeSessions prometheus.Gauge
	sessionsTotal  prometheus.Counter
	eventsTotal    *prometheus.CounterVec
	eventDuration  *prometheus.HistogramVec
	rendersSent    prometheus.Counter
	wsErrors       *prometheus.CounterVec
}

// NewMetrics registers the server metrics on reg under the vango_ui
// namespace.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	const ns, sub = "vango_ui", "playground"

	return &Metrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "active_sessions",
			Help:      "Number of connected playground sessions",
		}),
		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "sessions_total",
			Help:      "Total number of playground sessions",
		}),
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "events_total",
			Help:      "Client events processed by type",
		}, []string{"type"}),
		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "event_duration_seconds",
			Help:      "Time spent dispatching a client event",
			Buckets:   prometheus.DefBuckets,
		}, []string{"type"}),
		rendersSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "renders_sent_total",
			Help:      "HTML updates sent to clients",
		}),
		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: sub,
			Name:      "websocket_errors_total",
			Help:      "WebSocket errors by type",
		}, []string{"type"}),
	}
}

func (m *Metrics) sessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
	m.sessionsTotal.Inc()
}

func (m *Metrics) sessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

func (m *Metrics) event(eventType string, d time.Duration) {
	if m == nil {
		return
	}
	m.eventsTotal.WithLabelValues(eventType).Inc()
	m.eventDuration.WithLabelValues(eventType).Observe(d.Seconds())
}

func (m *Metrics) renderSent() {
	if m == nil {
		return
	}
	m.rendersSent.Inc()
}

func (m *Metrics) wsError(kind string) {
	if m == nil {
		return
	}
	m.wsErrors.WithLabelValues(kind).Inc()
}
