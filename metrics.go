package thoughtmodel

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics reports training and query activity of one or more Thoughts to Prometheus. A nil
// *Metrics is valid and reports nothing.
type Metrics struct {
	reinforceTotal    prometheus.Counter
	updateCycles      prometheus.Counter
	reinforceDuration prometheus.Histogram
	resetTotal        prometheus.Counter
	queries           *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with reg. If reg is nil, the metrics are
// created but not registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		reinforceTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "thoughtmodel_reinforce_total",
			Help: "Total Reinforce calls that ran to completion",
		}),
		updateCycles: f.NewCounter(prometheus.CounterOpts{
			Name: "thoughtmodel_update_cycles_total",
			Help: "Total weight update cycles run by Reinforce",
		}),
		reinforceDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "thoughtmodel_reinforce_duration_seconds",
			Help:    "Duration of a single Reinforce call",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
		resetTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "thoughtmodel_reset_weights_total",
			Help: "Total calls to Thought.ResetWeights that succeeded",
		}),
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "thoughtmodel_queries_total",
			Help: "Total queries by type",
		}, []string{"type"}),
	}
}

func (m *Metrics) reinforced(cycles int, d time.Duration) {
	if m == nil {
		return
	}

	m.reinforceTotal.Inc()
	m.updateCycles.Add(float64(cycles))
	m.reinforceDuration.Observe(d.Seconds())
}

func (m *Metrics) reset() {
	if m == nil {
		return
	}

	m.resetTotal.Inc()
}

func (m *Metrics) query(kind string) {
	if m == nil {
		return
	}

	m.queries.WithLabelValues(kind).Inc()
}
