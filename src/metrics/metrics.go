// Package metrics exposes prometheus counters for form activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResponsesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "formcraft",
		Name:      "responses_submitted_total",
		Help:      "Public form submissions stored.",
	})

	ViewsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "formcraft",
		Name:      "views_recorded_total",
		Help:      "Public form page loads recorded.",
	})

	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "formcraft",
		Name:      "notifications_total",
		Help:      "Submission notifications by result (enqueued, sent, failed, skipped).",
	}, []string{"result"})

	AnalyticsCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "formcraft",
		Name:      "analytics_cache_total",
		Help:      "Form analytics cache lookups by result (hit, miss, error).",
	}, []string{"result"})
)
