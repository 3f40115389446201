package notify

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "notifier",
			Name:      "events_published_total",
			Help:      "Total number of order events handed to the producer by type",
		},
		[]string{"type"},
	)

	publishFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "notifier",
			Name:      "publish_failures_total",
			Help:      "Total number of order events that failed to reach the broker",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsPublished,
		publishFailures,
	)
}
