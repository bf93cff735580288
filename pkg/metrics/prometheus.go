package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	PaymentsProcessed prometheus.Counter
	PaymentsDeclined  prometheus.Counter
	BookingsSaved     prometheus.Counter
	PaymentLatency    prometheus.Histogram
	ErrorsCount       *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		PaymentsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_processed_total",
			Help:      "The total number of approved payments",
		}),
		PaymentsDeclined: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_declined_total",
			Help:      "The total number of declined payments",
		}),
		BookingsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_saved_total",
			Help:      "The total number of booking records written",
		}),
		PaymentLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payment_processing_time_seconds",
			Help:      "Time taken by gateway charge calls",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
