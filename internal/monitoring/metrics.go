package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector registers and records the Prometheus metrics exposed on
// the metrics port.
type MetricsCollector struct {
	registry *prometheus.Registry

	estimateRequests *prometheus.CounterVec
	estimateDuration *prometheus.HistogramVec
	mealsLogged      prometheus.Counter
	mealsDeleted     prometheus.Counter
	persistFailures  *prometheus.CounterVec
}

// NewMetricsCollector creates a collector with its own registry.
func NewMetricsCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()

	estimateRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimate_requests_total",
			Help: "AI estimation requests by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	estimateDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estimate_duration_seconds",
			Help:    "Latency of AI estimation requests",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
		[]string{"kind"},
	)

	mealsLogged := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meals_logged_total",
		Help: "Meals appended to the log",
	})

	mealsDeleted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meals_deleted_total",
		Help: "Meals removed from the log",
	})

	persistFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persist_failures_total",
			Help: "Failed writes to the backing store, by store",
		},
		[]string{"store"},
	)

	registry.MustRegister(estimateRequests, estimateDuration, mealsLogged, mealsDeleted, persistFailures)

	return &MetricsCollector{
		registry:         registry,
		estimateRequests: estimateRequests,
		estimateDuration: estimateDuration,
		mealsLogged:      mealsLogged,
		mealsDeleted:     mealsDeleted,
		persistFailures:  persistFailures,
	}
}

// Registry returns the registry for the metrics HTTP handler.
func (mc *MetricsCollector) Registry() *prometheus.Registry {
	return mc.registry
}

// RecordEstimate records one gateway round trip.
func (mc *MetricsCollector) RecordEstimate(kind string, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	mc.estimateRequests.WithLabelValues(kind, outcome).Inc()
	mc.estimateDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordMealLogged records a successful append to the meal log.
func (mc *MetricsCollector) RecordMealLogged() {
	mc.mealsLogged.Inc()
}

// RecordMealDeleted records a removal from the meal log.
func (mc *MetricsCollector) RecordMealDeleted() {
	mc.mealsDeleted.Inc()
}

// RecordPersistFailure records a failed write for the named store.
func (mc *MetricsCollector) RecordPersistFailure(store string) {
	mc.persistFailures.WithLabelValues(store).Inc()
}
