// Package metrics defines and registers all custom Prometheus metrics for the
// course-discovery services. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry through
// promauto at package initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "discovery"

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheRequestsTotal counts read-through cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of response-cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CourseRowsTotal counts CSV rows handled during catalog uploads.
// Label:
//   - result: "saved" or "skipped"
var CourseRowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "course_rows_total",
		Help:      "Total number of uploaded CSV rows, labelled by outcome (saved/skipped).",
	},
	[]string{"result"},
)

// CoursesIndexedTotal counts submissions to the search index.
// Label:
//   - result: "ok" or "error"
var CoursesIndexedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_indexed_total",
		Help:      "Total number of course documents submitted to the search index.",
	},
	[]string{"result"},
)

// SearchRequestsTotal counts search requests by where the response came from.
// Label:
//   - source: "cache", "elasticsearch", or "fallback"
var SearchRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_requests_total",
		Help:      "Total number of course searches, labelled by response source.",
	},
	[]string{"source"},
)

// ── Recommendation metrics ────────────────────────────────────────────────────

// RecommendationsTotal counts recommendation requests by generation source.
// Label:
//   - source: "gemini" or "simulated"
var RecommendationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendations_total",
		Help:      "Total number of recommendation requests, labelled by generation source.",
	},
	[]string{"source"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register/login attempts.
// Labels:
//   - operation: "register" or "login"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register/login attempts, labelled by operation and result.",
	},
	[]string{"operation", "result"},
)
