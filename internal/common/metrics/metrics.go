// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_calls_total",
			Help: "Total number of outbound gateway calls by outcome",
		},
		[]string{"gateway", "outcome"},
	)

	GatewayFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_fallbacks_total",
			Help: "Total number of substitute payloads served instead of live data",
		},
		[]string{"gateway", "reason"},
	)

	GatewayCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gateway_call_duration_seconds",
			Help: "Duration of outbound gateway calls in seconds",
		},
		[]string{"gateway"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"route", "status"},
	)
)

// Gateway call outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeTimedOut = "timed_out"
	OutcomeFailed   = "failed"
	OutcomeNoData   = "no_data"
)
