package transport

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records per-operation request counts and latency. A nil *Metrics
// records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(registry prometheus.Registerer) *Metrics {
	requests := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "stripe_client_requests_total",
			Help: "The total number of Stripe API requests by operation and outcome",
		},
		[]string{"operation", "method", "outcome"},
	)

	duration := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stripe_client_request_duration_seconds",
			Help:    "Stripe API request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	return &Metrics{
		requests: requests,
		duration: duration,
	}
}

func (m *Metrics) observe(operation, method string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = strings.ToLower(string(Categorize(err)))
	}

	m.requests.WithLabelValues(operation, method, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
