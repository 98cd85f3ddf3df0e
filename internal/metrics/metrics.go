package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pgms_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pgms_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// RentsGenerated counts rent rows created by bulk generation
	RentsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pgms_rents_generated_total",
			Help: "Total number of rent rows created by generation",
		},
	)

	// PaymentsConfirmed counts rent payments confirmed by tenants or the owner
	PaymentsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pgms_payments_confirmed_total",
			Help: "Total number of rent payments confirmed",
		},
	)
)
