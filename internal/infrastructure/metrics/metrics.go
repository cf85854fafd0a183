// Package metrics declares the engine's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ListingNumbersAllocated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "estatehub_listing_numbers_allocated_total",
			Help: "Total number of listing numbers issued",
		},
	)

	CommissionRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estatehub_commission_rejections_total",
			Help: "Total number of rejected commission splits",
		},
		[]string{"reason"},
	)

	RecruiterBonusesIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "estatehub_recruiter_bonuses_issued_total",
			Help: "Total number of recruiter bonus records created",
		},
	)

	SLANotificationsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estatehub_sla_notifications_emitted_total",
			Help: "Total number of SLA threshold events emitted",
		},
		[]string{"kind"},
	)

	DispatchOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estatehub_dispatch_outcomes_total",
			Help: "Notification dispatch results per event type",
		},
		[]string{"event_type", "outcome"},
	)

	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "estatehub_sla_sweep_duration_seconds",
			Help:    "Duration of SLA sweep cycles in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estatehub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estatehub_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Dispatch outcome labels
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
)
