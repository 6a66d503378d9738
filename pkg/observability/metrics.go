package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/envschema/pkg/domain"
)

const namespace = "envschema"

// Status label values.
const (
	StatusResolved = "resolved"
	StatusFailed   = "failed"
)

// Metrics counts resolved and failed variables.
type Metrics struct {
	Variables *prometheus.CounterVec
	Failed    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Variables: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "variables_total",
				Help:      "Total number of variables looked up, by outcome.",
			},
			[]string{"status"},
		),
		Failed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "variables_failed",
			Help:      "Number of variables that were missing or invalid in the last resolution.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Variables, m.Failed)
	}
	return m
}

// Reset zeroes the failure gauge before a new resolution.
func (m *Metrics) Reset() {
	m.Failed.Set(0)
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnResolve: func(*domain.VariableEvent) {
			m.Variables.WithLabelValues(StatusResolved).Inc()
		},
		OnFailure: func(*domain.VariableEvent) {
			m.Variables.WithLabelValues(StatusFailed).Inc()
			m.Failed.Inc()
		},
	}
}
