package popover

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures popover metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vango_ui").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics collects popover metrics. A nil *Metrics records nothing, and
// one Metrics is meant to be shared by every Controller of a process.
//
// Metrics collected:
//   - vango_ui_popover_transitions_total: accepted transitions by target state
//   - vango_ui_popover_dismissals_total: closes by reason
//   - vango_ui_popover_hover_close_cancels_total: pending hover closes cancelled by re-entry
//   - vango_ui_popover_dismiss_listeners: dismissal listeners currently armed
type Metrics struct {
	transitions  *prometheus.CounterVec
	dismissals   *prometheus.CounterVec
	hoverCancels prometheus.Counter
	listeners    prometheus.Gauge
}

// NewMetrics registers popover metrics on the configured registry.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "vango_ui"
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   "popover",
			Name:        "transitions_total",
			Help:        "Accepted popover state transitions",
			ConstLabels: config.ConstLabels,
		}, []string{"to", "mode"}),

		dismissals: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   "popover",
			Name:        "dismissals_total",
			Help:        "Popover closes by reason",
			ConstLabels: config.ConstLabels,
		}, []string{"reason"}),

		hoverCancels: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   "popover",
			Name:        "hover_close_cancels_total",
			Help:        "Pending hover closes cancelled before firing",
			ConstLabels: config.ConstLabels,
		}),

		listeners: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   "popover",
			Name:        "dismiss_listeners",
			Help:        "Document-level dismissal listeners currently armed",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) transition(to State, mode ControlMode, reason Reason) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(to.String(), mode.String()).Inc()
	if to == StateClosed && reason != "" {
		m.dismissals.WithLabelValues(string(reason)).Inc()
	}
}

func (m *Metrics) hoverCancelled() {
	if m != nil {
		m.hoverCancels.Inc()
	}
}

func (m *Metrics) listenerArmed() {
	if m != nil {
		m.listeners.Inc()
	}
}

func (m *Metrics) listenerReleased() {
	if m != nil {
		m.listeners.Dec()
	}
}
