package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis outcomes
const (
	OutcomeCompleted = "completed"
	OutcomeFallback  = "fallback"
	OutcomeStuck     = "stuck"
	OutcomeEmpty     = "empty_catalog"
	OutcomeCached    = "cached"
)

var (
	// Analysis pipeline
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathfinder_analyses_total",
			Help: "Total number of analysis runs by outcome",
		},
		[]string{"track", "outcome"},
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathfinder_analysis_duration_seconds",
			Help:    "Wall-clock duration of analysis runs",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60},
		},
		[]string{"track"},
	)

	// Language model calls
	LLMCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathfinder_llm_calls_total",
			Help: "Total number of Gemini calls by kind and status code",
		},
		[]string{"kind", "status"},
	)

	LLMCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathfinder_llm_call_duration_seconds",
			Help:    "Duration of Gemini calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	LLMRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathfinder_llm_retries_total",
			Help: "Total number of Gemini retries after quota errors",
		},
		[]string{"kind"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pathfinder_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathfinder_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathfinder_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// WebSocket
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pathfinder_ws_connections",
			Help: "Current number of progress stream connections",
		},
	)

	// Catalog
	CatalogPrograms = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pathfinder_catalog_programs",
			Help: "Programs in the default catalog by partition",
		},
		[]string{"partition"},
	)
)

func RecordAnalysis(track, outcome string, duration time.Duration) {
	AnalysesTotal.WithLabelValues(track, outcome).Inc()
	AnalysisDuration.WithLabelValues(track).Observe(duration.Seconds())
}

// RecordLLMCall records a Gemini call; status 0 means the request never got
// a response.
func RecordLLMCall(kind string, status int, duration time.Duration) {
	LLMCallsTotal.WithLabelValues(kind, strconv.Itoa(status)).Inc()
	LLMCallDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func RecordLLMRetry(kind string) {
	LLMRetriesTotal.WithLabelValues(kind).Inc()
}

func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func SetCatalogSizes(undergraduate, postgraduate, excluded int) {
	CatalogPrograms.WithLabelValues("ug").Set(float64(undergraduate))
	CatalogPrograms.WithLabelValues("pg").Set(float64(postgraduate))
	CatalogPrograms.WithLabelValues("excluded").Set(float64(excluded))
}
