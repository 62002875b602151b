package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the convert module.
type Metrics struct {
	// Operation outcomes by operation and result
	Operations *prometheus.CounterVec

	// Operation latency by operation
	Duration *prometheus.HistogramVec

	// Batch sizes as submitted by callers
	BatchSize prometheus.Histogram
}

// New creates a Metrics instance with all convert module metrics registered.
func New() *Metrics {
	return &Metrics{
		Operations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "chrono_convert_operations_total",
			Help: "Total conversion operations by operation and outcome",
		}, []string{"operation", "outcome"}), // outcome: "ok", "invalid"

		Duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chrono_convert_duration_seconds",
			Help:    "Duration of conversion operations",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}, []string{"operation"}),

		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "chrono_convert_batch_size",
			Help:    "Number of values submitted per batch parse request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		}),
	}
}

// IncOperation records one operation outcome.
func (m *Metrics) IncOperation(operation, outcome string) {
	if m != nil {
		m.Operations.WithLabelValues(operation, outcome).Inc()
	}
}

// ObserveDuration records an operation's duration.
func (m *Metrics) ObserveDuration(operation string, d time.Duration) {
	if m != nil {
		m.Duration.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// ObserveBatchSize records the size of a submitted batch.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}
