// Package metrics registers the Prometheus collectors for the chat pipeline.
// Everything uses the default registry; cmd/server exposes it via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Turn outcomes recorded by TurnsTotal.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeUserNotFound  = "user_not_found"
	OutcomeProviderError = "provider_error"
)

var (
	// TurnsTotal counts handled chat turns by outcome.
	TurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "teddy_chat_turns_total",
		Help: "Chat turns handled, partitioned by outcome.",
	}, []string{"outcome"})

	// CompletionDuration observes completion-provider call latency.
	CompletionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "teddy_completion_duration_seconds",
		Help:    "Latency of completion provider calls.",
		Buckets: prometheus.DefBuckets,
	})

	// SessionCacheSize tracks the current number of cached sessions.
	SessionCacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "teddy_session_cache_size",
		Help: "Number of sessions currently held in the cache.",
	})

	// SessionEvictions counts sessions dropped by the capacity policy.
	SessionEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teddy_session_evictions_total",
		Help: "Sessions evicted from the cache by the capacity policy.",
	})

	// RequestDuration observes inbound HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "teddy_http_request_duration_seconds",
		Help:    "Latency of inbound HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
