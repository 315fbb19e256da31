package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingsCreated counts bookings written to the ledger, online or offline
	BookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookings",
			Name:      "created_total",
			Help:      "The total number of created bookings",
		},
		[]string{"kind", "channel"},
	)

	// PaymentsVerified counts payment verification attempts by result
	PaymentsVerified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payments",
			Name:      "verified_total",
			Help:      "The total number of payment verification attempts",
		},
		[]string{"result"},
	)

	BookingsDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookings",
			Name:      "deleted_total",
			Help:      "The total number of bookings removed by cleanup",
		},
		[]string{"kind", "trigger"},
	)

	BookingsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookings",
			Name:      "expired_total",
			Help:      "The total number of stale pending bookings marked failed",
		},
	)

	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifications",
			Name:      "dispatched_total",
			Help:      "The total number of booking notification dispatches by outcome",
		},
		[]string{"outcome"},
	)

	// MessagesProcessed The total number of processed messages (counter)
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messages",
			Name:      "processed_total",
			Help:      "The total number of processed messages",
		},
		[]string{"topic", "handler"},
	)

	MessagesProcessingFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messages",
			Name:      "processing_failed_total",
			Help:      "The total number of message processing failures",
		},
		[]string{"topic", "handler"},
	)
)
