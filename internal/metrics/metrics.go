// Package metrics defines and registers the Prometheus metrics for the
// CoachDesk API. It is the single source of truth for metric names, labels,
// and help strings; everything registers against the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coachdesk"

// AuthOutcomesTotal counts authentication attempts by scheme and outcome.
// Labels:
//   - scheme: "customer", "admin"
//   - outcome: "ok", "unauthenticated"
var AuthOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_outcomes_total",
		Help:      "Authentication attempts by session scheme and outcome.",
	},
	[]string{"scheme", "outcome"},
)

// RequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP method
//   - status: numeric response status
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests handled, by method and status.",
	},
	[]string{"method", "status"},
)

// StoreErrorsTotal counts upstream data-store failures surfaced as 500s.
// Label:
//   - op: short operation name (e.g. "customer_update", "trainer_list")
var StoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Data-store operation failures, by operation.",
	},
	[]string{"op"},
)
