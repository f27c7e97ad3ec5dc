package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travel"

// RequestsTotal counts backend requests.
// Labels:
//   - resource: users, packages, bookings, trips or expenses
//   - method: HTTP method
//   - code: HTTP status code, or "network_error" when no response arrived
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Total number of backend API requests.",
	},
	[]string{"resource", "method", "code"},
)

// RequestDuration measures backend round trips, including failed ones.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gateway",
		Name:      "request_duration_seconds",
		Help:      "Duration of backend API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource", "method"},
)
