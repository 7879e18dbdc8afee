// Package metrics exposes Prometheus collectors for microgrid API calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APICallsTotal tracks the total number of API calls by target, operation and status code.
	APICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "microgrid_api_calls_total",
			Help: "Total number of microgrid API calls",
		},
		[]string{"target", "operation", "status"},
	)

	// APICallDuration tracks the duration of API calls in seconds.
	APICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "microgrid_api_call_duration_seconds",
			Help:    "Duration of microgrid API calls in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10},
		},
		[]string{"target", "operation", "status"},
	)

	// APICallTimeoutsTotal tracks calls that hit their local deadline.
	APICallTimeoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "microgrid_api_call_timeouts_total",
			Help: "Total number of microgrid API calls that exceeded their deadline",
		},
		[]string{"target", "operation"},
	)

	// SimulatorRequestsTotal tracks requests handled by the microgrid simulator.
	SimulatorRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "microgrid_simulator_requests_total",
			Help: "Total number of requests handled by the microgrid simulator",
		},
		[]string{"method"},
	)
)

// RecordAPICall increments the call counter and records the call duration.
func RecordAPICall(target, operation, status string, durationSeconds float64) {
	APICallsTotal.WithLabelValues(target, operation, status).Inc()
	APICallDuration.WithLabelValues(target, operation, status).Observe(durationSeconds)
}

// RecordAPICallTimeout increments the timeout counter for a target/operation pair.
func RecordAPICallTimeout(target, operation string) {
	APICallTimeoutsTotal.WithLabelValues(target, operation).Inc()
}

// RecordSimulatorRequest increments the simulator request counter for a method.
func RecordSimulatorRequest(method string) {
	SimulatorRequestsTotal.WithLabelValues(method).Inc()
}
