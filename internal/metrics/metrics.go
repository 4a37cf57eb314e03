// Package metrics implements the observability hooks with Prometheus
// collectors. Collectors register on a caller-provided registry so tests
// and servers do not share global state.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/vibegrid/pkg/observability"
	"github.com/matzehuels/vibegrid/pkg/pipeline"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Generation metrics
	GenerationsTotal     *prometheus.CounterVec
	GenerationDuration   *prometheus.HistogramVec
	GenerationScore      *prometheus.HistogramVec
	GenerationIterations *prometheus.HistogramVec
	FallbacksTotal       *prometheus.CounterVec
	GenerationsInFlight  prometheus.Gauge

	// Cache metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec
	CacheBytesTotal  *prometheus.CounterVec

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with every collector registered.
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		GenerationsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "vibegrid_generations_total",
				Help: "Total layout generations by content type, vibe, mode and status",
			},
			[]string{"content_type", "vibe", "mode", "status"}, // status: success, cached, error
		),

		GenerationDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vibegrid_generation_duration_seconds",
				Help:    "Layout generation duration in seconds by mode",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"mode"},
		),

		GenerationScore: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vibegrid_generation_score",
				Help:    "Total score of returned layouts by vibe",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
			[]string{"vibe"},
		),

		GenerationIterations: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vibegrid_generation_iterations",
				Help:    "Candidates tried per search by vibe",
				Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200},
			},
			[]string{"vibe"},
		),

		FallbacksTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "vibegrid_fallbacks_total",
				Help: "Searches that found no valid candidate and returned the fallback layout",
			},
			[]string{"vibe"},
		),

		GenerationsInFlight: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "vibegrid_generations_in_flight",
				Help: "Generations currently running",
			},
		),

		CacheHitsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "vibegrid_cache_hits_total",
				Help: "Total number of cache hits by key type",
			},
			[]string{"key_type"},
		),

		CacheMissesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "vibegrid_cache_misses_total",
				Help: "Total number of cache misses by key type",
			},
			[]string{"key_type"},
		),

		CacheBytesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "vibegrid_cache_written_bytes_total",
				Help: "Total bytes written to the cache by key type",
			},
			[]string{"key_type"},
		),

		HTTPRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "vibegrid_http_requests_total",
				Help: "Total HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),

		HTTPRequestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vibegrid_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Register installs m as the process-wide observability hooks.
func (m *Metrics) Register() {
	observability.SetGenerationHooks(generationHooks{m})
	observability.SetCacheHooks(cacheHooks{m})
	observability.SetHTTPHooks(httpHooks{m})
}

// =============================================================================
// Hook implementations
// =============================================================================

type generationHooks struct{ m *Metrics }

func (h generationHooks) OnGenerateStart(context.Context, string, string) {
	h.m.GenerationsInFlight.Inc()
}

func (h generationHooks) OnGenerateComplete(_ context.Context, r observability.GenerationResult) {
	// Score requests have no matching start event.
	if r.Mode != pipeline.ModeScore {
		h.m.GenerationsInFlight.Dec()
	}

	status := "success"
	switch {
	case r.Err != nil:
		status = "error"
	case r.CacheHit:
		status = "cached"
	}
	h.m.GenerationsTotal.WithLabelValues(r.ContentType, r.VibeID, r.Mode, status).Inc()
	h.m.GenerationDuration.WithLabelValues(r.Mode).Observe(r.Duration.Seconds())
	if r.Err != nil || r.CacheHit {
		return
	}
	h.m.GenerationScore.WithLabelValues(r.VibeID).Observe(float64(r.Score))
	if r.Mode == pipeline.ModeScore {
		return
	}
	h.m.GenerationIterations.WithLabelValues(r.VibeID).Observe(float64(r.Iterations))
	if r.Fallback {
		h.m.FallbacksTotal.WithLabelValues(r.VibeID).Inc()
	}
}

type cacheHooks struct{ m *Metrics }

func (h cacheHooks) OnCacheHit(_ context.Context, keyType string) {
	h.m.CacheHitsTotal.WithLabelValues(keyType).Inc()
}

func (h cacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.m.CacheMissesTotal.WithLabelValues(keyType).Inc()
}

func (h cacheHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.m.CacheBytesTotal.WithLabelValues(keyType).Add(float64(size))
}

type httpHooks struct{ m *Metrics }

func (h httpHooks) OnResponse(_ context.Context, method, route string, statusCode int, d time.Duration) {
	h.m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	h.m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ observability.GenerationHooks = generationHooks{}
	_ observability.CacheHooks      = cacheHooks{}
	_ observability.HTTPHooks       = httpHooks{}
)
