// Package metrics defines and registers all custom Prometheus metrics for the
// job tracker API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default Prometheus registry at package
// init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobtracker"

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsCreatedTotal counts newly created job applications.
// Label:
//   - status: the initial status of the application (usually "applied")
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job applications created, by initial status.",
	},
	[]string{"status"},
)

// JobStatusChangesTotal counts job status transitions.
// Labels:
//   - from: the previous status
//   - to: the new status
var JobStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_status_changes_total",
		Help:      "Total number of job status transitions, by old and new status.",
	},
	[]string{"from", "to"},
)

// ── Feedback metrics ──────────────────────────────────────────────────────────

// FeedbackSubmittedTotal counts feedback submissions.
// Label:
//   - rating: the submitted rating ("1" … "5")
var FeedbackSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_submitted_total",
		Help:      "Total number of feedback entries submitted, by rating.",
	},
	[]string{"rating"},
)

// FeedbackRateLimitedTotal counts feedback submissions rejected by the
// rate limiter.
var FeedbackRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_rate_limited_total",
		Help:      "Total number of feedback submissions rejected by the rate limiter.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsPublishedTotal counts notifications delivered to the broker.
// Label:
//   - event: the notification event name (e.g. "job-status-updated")
var NotificationsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_published_total",
		Help:      "Total number of notifications delivered to the broker.",
	},
	[]string{"event"},
)

// NotificationsDroppedTotal counts notifications lost to a full queue or a
// broker failure. Delivery is best-effort, so drops surface here instead of
// failing the request.
// Label:
//   - event: the notification event name
var NotificationsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notifications dropped before delivery.",
	},
	[]string{"event"},
)

// WebsocketClientsConnected tracks the number of currently connected
// websocket clients.
// Label:
//   - audience: "all" or "admin"
var WebsocketClientsConnected = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "websocket_clients_connected",
		Help:      "Current number of connected websocket clients, by audience.",
	},
	[]string{"audience"},
)
