package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_api_requests_total",
			Help: "Total inbound requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_upstream_requests_total",
			Help: "Total calls to the weather provider by method and status (0 when no response was received).",
		},
		[]string{"method", "status"},
	)

	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_upstream_request_duration_seconds",
			Help:    "Latency of calls to the weather provider.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	UpstreamFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_upstream_failures_total",
			Help: "Failed weather lookups by operation and failure kind.",
		},
		[]string{"operation", "kind"},
	)
)

func init() {
	prometheus.MustRegister(RequestCounter, UpstreamRequests, UpstreamLatency, UpstreamFailures)
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
