// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "entry_workbench"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// EntryTransitionsTotal counts entry transition attempts by operation and outcome
	// (ok, validation, forbidden, invalid_state, conflict, not_found, error).
	EntryTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entry_transitions_total",
		Help:      "Entry transition attempts by operation and outcome.",
	}, []string{"operation", "outcome"})

	RFPTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rfp_transitions_total",
		Help:      "RFP transition attempts by operation and outcome.",
	}, []string{"operation", "outcome"})

	BookingResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_resolutions_total",
		Help:      "Booking reference resolutions by result (none, verified, unverified).",
	}, []string{"result"})

	BookingCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_cache_requests_total",
		Help:      "Booking cache lookups by result (hit, miss, error).",
	}, []string{"result"})
)
