package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP requests by method, route template and response status.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbes_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hobbes_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	// Filters rejected due to operands that can't be coerced into column type.
	FilterRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbes_filter_rejected_total",
			Help: "Total number of rejected search filters",
		},
		[]string{"entity", "field"},
	)
	SearchCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbes_search_cache_total",
			Help: "Search cache lookups by result",
		},
		[]string{"entity", "result"},
	)
	TasksEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbes_tasks_enqueued_total",
			Help: "Total number of enqueued background tasks",
		},
		[]string{"task"},
	)
)
