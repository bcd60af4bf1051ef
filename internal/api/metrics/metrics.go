// Package metrics defines the console gateway's Prometheus metrics. It is
// the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts completed upstream calls.
// Labels:
//   - method: HTTP method of the call
//   - status: numeric status code returned by the upstream
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of upstream API calls, by method and status.",
	},
	[]string{"method", "status"},
)

// UpstreamErrorsTotal counts failed upstream calls.
// Labels:
//   - method: HTTP method of the call
//   - reason: numeric status code, or "network" when no response arrived
var UpstreamErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_errors_total",
		Help:      "Total number of upstream API calls that failed.",
	},
	[]string{"method", "reason"},
)

// UpstreamLatencySeconds observes how long upstream calls take, including
// calls that end in a non-2xx.
// Label:
//   - method: HTTP method of the call
var UpstreamLatencySeconds = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_latency_seconds",
		Help:      "Upstream API call duration in seconds, by method.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Guard metrics ─────────────────────────────────────────────────────────────

// PermissionDenialsTotal counts permission-guard denials.
// Labels:
//   - module: console module the operator tried to reach
//   - action: action that was denied
var PermissionDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denials_total",
		Help:      "Total number of requests denied by the permission guard.",
	},
	[]string{"module", "action"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsActive tracks sessions currently held in the store.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Number of console sessions currently persisted.",
	},
)

// ── Export metrics ────────────────────────────────────────────────────────────

// ExportsTotal counts export attempts.
// Labels:
//   - resource: exported resource (e.g. "leads")
//   - result: "ok", "error", or "in_flight"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of spreadsheet exports, by resource and result.",
	},
	[]string{"resource", "result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEntriesTotal counts audit entries handed to the dispatcher.
// Label:
//   - result: "written" or "dropped"
var AuditEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Total number of console audit entries, by outcome.",
	},
	[]string{"result"},
)
