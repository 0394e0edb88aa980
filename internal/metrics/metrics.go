// Package metrics registers the prometheus collectors for the HTTP surface
// and the calculation pipeline.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculations_total",
			Help: "Total number of risk calculations",
		},
		[]string{"horizon", "outcome"},
	)

	riskReduction = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "calculation_risk_reduction_pp",
			Help:    "Absolute risk reduction per successful calculation in percentage points",
			Buckets: []float64{0, 1, 2, 5, 10, 15, 20, 30, 40, 60},
		},
	)
)

// RecordHTTPRequest tracks one handled request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordCalculation tracks one calculation by horizon and outcome.
func RecordCalculation(horizon, outcome string) {
	calculationsTotal.WithLabelValues(horizon, outcome).Inc()
}

// ObserveRiskReduction tracks the ARR of one successful calculation.
func ObserveRiskReduction(arrPp float64) {
	riskReduction.Observe(arrPp)
}
