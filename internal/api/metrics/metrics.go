// Package metrics defines and registers the custom Prometheus metrics of the
// travel BFF. It is the single source of truth for metric names, labels, and
// help strings. Collectors register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travel"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "invalid_input" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts bookings created through the BFF.
// Label:
//   - source: "package" or "transport_option"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by source.",
	},
	[]string{"source"},
)

// BookingTransitionsTotal counts booking status changes.
// Label:
//   - status: the resulting booking status
var BookingTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_transitions_total",
		Help:      "Total number of booking status changes, by resulting status.",
	},
	[]string{"status"},
)

// ── Expense metrics ───────────────────────────────────────────────────────────

// ExpensesRecordedTotal counts expenses created.
// Label:
//   - category: the expense category (e.g. "food", "transport")
var ExpensesRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_recorded_total",
		Help:      "Total number of expenses recorded, by category.",
	},
	[]string{"category"},
)

// ── View metrics ──────────────────────────────────────────────────────────────

// ViewBuildDuration measures loading plus aggregation of a composed view.
// Label:
//   - view: "dashboard", "history", "catalog" or "admin_overview"
var ViewBuildDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "view_build_duration_seconds",
		Help:      "Duration of loading and aggregating a view.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"view"},
)
