package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymslot_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymslot_orders_created_total",
			Help: "Total number of orders created",
		},
	)

	OrderTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_order_transitions_total",
			Help: "Total number of order status transitions",
		},
		[]string{"to_status"},
	)

	CapacityExhaustedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymslot_capacity_exhausted_total",
			Help: "Total number of order attempts rejected because the slot was full",
		},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymslot_notifications_total",
			Help: "Total number of notifications queued or delivered",
		},
		[]string{"kind", "status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordOrderCreated() {
	OrdersCreatedTotal.Inc()
}

func RecordOrderTransition(toStatus string) {
	OrderTransitionsTotal.WithLabelValues(toStatus).Inc()
}

func RecordCapacityExhausted() {
	CapacityExhaustedTotal.Inc()
}

func RecordNotification(kind, status string) {
	NotificationsTotal.WithLabelValues(kind, status).Inc()
}
