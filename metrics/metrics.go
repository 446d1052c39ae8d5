// Package metrics holds the Prometheus instruments for plan generation.
//
// Instruments are package globals registered with the default registry, so
// any package can record into them without plumbing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlansGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbyplan_plans_generated_total",
			Help: "Plan generation requests by outcome",
		},
		[]string{"result"},
	)

	PlanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hobbyplan_plan_generation_duration_seconds",
			Help:    "Duration of complete plan generation in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)

	TextGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbyplan_text_generations_total",
			Help: "Seven-day text plans by source and reason for fallback",
		},
		[]string{"source", "reason"},
	)

	VideoSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbyplan_video_selections_total",
			Help: "Videos assigned to plan days by fallback tier",
		},
		[]string{"tier"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbyplan_http_requests_total",
			Help: "HTTP requests by api, method and status code",
		},
		[]string{"api", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hobbyplan_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"api"},
	)

	UpstreamCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbyplan_upstream_calls_total",
			Help: "Calls to external services by call and result",
		},
		[]string{"call", "result"},
	)

	SearchCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbyplan_search_cache_total",
			Help: "Video search cache lookups by result",
		},
		[]string{"result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hobbyplan_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hobbyplan_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)
