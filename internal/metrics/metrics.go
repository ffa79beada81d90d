package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Labels use the chi route pattern, never the raw path, to keep
	// cardinality bounded by the routing table.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "counters_http_requests_total",
		Help: "HTTP requests processed, by method, route pattern and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "counters_http_request_duration_seconds",
		Help:    "HTTP request latencies in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	HTTPInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "counters_http_inflight_requests",
		Help: "HTTP requests currently being served.",
	})

	StoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "counters_store_operations_total",
		Help: "Counter store operations, by operation and outcome (ok, not_found, error).",
	}, []string{"operation", "outcome"})
)

// RegisterRowsGauge exposes the number of counter rows, read from count at
// scrape time with the given timeout. Errors report -1.
func RegisterRowsGauge(reg prometheus.Registerer, count func(context.Context) (int64, error), timeout time.Duration) error {
	return reg.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "counters_rows",
		Help: "Rows in the counters table.",
	}, func() float64 {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		n, err := count(ctx)
		if err != nil {
			return -1
		}
		return float64(n)
	}))
}
