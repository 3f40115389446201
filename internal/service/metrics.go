package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "checkout",
			Name:      "orders_placed_total",
			Help:      "Total number of orders created by checkout",
		},
	)

	checkoutFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "checkout",
			Name:      "failures_total",
			Help:      "Total number of failed checkouts by reason",
		},
		[]string{"reason"},
	)

	reservationRollbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "checkout",
			Name:      "reservation_rollbacks_total",
			Help:      "Total number of multi-line reservations rolled back",
		},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "checkout",
			Name:      "duration_seconds",
			Help:      "Histogram of checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	orderTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Total number of applied status transitions by target status",
		},
		[]string{"status"},
	)

	rejectedTransitions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "rejected_transitions_total",
			Help:      "Total number of illegal status transitions requested",
		},
	)

	notificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "notifications_failed_total",
			Help:      "Total number of order events that could not be handed to the notifier",
		},
	)
)

var (
	abandonedCarts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "cart",
			Name:      "abandoned_total",
			Help:      "Total number of carts flagged abandoned by the sweeper",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersPlaced,
		checkoutFailures,
		reservationRollbacks,
		checkoutDuration,

		orderTransitions,
		rejectedTransitions,
		notificationsFailed,

		abandonedCarts,
	)
}
