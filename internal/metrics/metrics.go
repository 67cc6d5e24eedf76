// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warblr_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "warblr_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "warblr_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "warblr_auth_success_total",
			Help: "Total number of successful authentications",
		},
	)

	// Signup metrics
	SignupsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "warblr_signups_total",
			Help: "Total number of successful signups",
		},
	)

	// Message metrics
	MessagesCreatedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "warblr_messages_created_total",
			Help: "Total number of messages created",
		},
	)

	// Follow graph metrics
	FollowsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "warblr_follows_total",
			Help: "Total number of follow edges created",
		},
	)
)
