// Package metrics register prometheus collectors of the job board API
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	StoreCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_record_store_calls_total",
			Help: "Total number of record store calls by table, operation and outcome",
		},
		[]string{"table", "op", "outcome"},
	)

	StoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobboard_record_store_duration_seconds",
			Help:    "Duration of record store calls in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"table", "op"},
	)

	SchedulingSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_scheduling_submissions_total",
			Help: "Interview scheduling submissions by action (create, update)",
		},
		[]string{"action"},
	)
)
