// Package metrics exposes Prometheus collectors for HTTP traffic, upstream
// provider calls and feed assembly.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "finpulse"

// Provider call outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeCached      = "cached"
	OutcomeUnavailable = "unavailable"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"method", "route"},
	)

	providerCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "calls_total",
			Help:      "Upstream provider calls by endpoint and outcome.",
		},
		[]string{"provider", "endpoint", "outcome"},
	)

	providerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "call_duration_seconds",
			Help:      "Duration of upstream provider calls that reached the network.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 11), // 10ms to ~10s
		},
		[]string{"provider", "endpoint"},
	)

	feedTiers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "tier_results_total",
			Help:      "Feed tier results (live, fixture, empty, skipped) per data category.",
		},
		[]string{"tier", "result"},
	)

	feedResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "responses_total",
			Help:      "Feed responses by liveness.",
		},
		[]string{"live"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		providerCalls,
		providerDuration,
		feedTiers,
		feedResponses,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one handled HTTP request.
func ObserveHTTP(method, route, status string, seconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveProviderCall records the outcome of one provider endpoint call.
// seconds is ignored for cached outcomes.
func ObserveProviderCall(provider, endpoint, outcome string, seconds float64) {
	providerCalls.WithLabelValues(provider, endpoint, outcome).Inc()
	if outcome != OutcomeCached {
		providerDuration.WithLabelValues(provider, endpoint).Observe(seconds)
	}
}

// ObserveTier records how a feed tier resolved.
func ObserveTier(tier, result string) {
	feedTiers.WithLabelValues(tier, result).Inc()
}

// ObserveFeed records one assembled feed response.
func ObserveFeed(live bool) {
	if live {
		feedResponses.WithLabelValues("true").Inc()
		return
	}
	feedResponses.WithLabelValues("false").Inc()
}
