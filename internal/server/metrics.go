package server

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "fengshui"

// Metrics holds the server's Prometheus collectors. It implements both
// observability hook interfaces.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	boardsCreated prometheus.Counter
	drags         prometheus.Counter
	dragDistance  prometheus.Histogram
	scores        prometheus.Histogram
}

// NewMetrics creates collectors on a private registry, so several servers
// can coexist in one process.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		boardsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "boards_created_total",
			Help:      "Total number of boards created",
		}),
		drags: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "drags_total",
			Help:      "Total number of completed drags",
		}),
		dragDistance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "drag_distance_units",
			Help:      "Distance an item moved in one drag, in canvas units",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 8),
		}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "score",
			Help:      "Appeal score after each recomputation",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
	}

	m.registry.MustRegister(
		m.requests, m.duration,
		m.boardsCreated, m.drags, m.dragDistance, m.scores,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) OnDragStart(string, float64, float64) {}

func (m *Metrics) OnDragEnd(_ string, fromX, fromY, toX, toY float64) {
	m.drags.Inc()
	m.dragDistance.Observe(math.Hypot(toX-fromX, toY-fromY))
}

func (m *Metrics) OnScore(score float64, _ int, _ time.Duration) {
	m.scores.Observe(score)
}

func (m *Metrics) OnRequest(context.Context, string, string) {}

// OnResponse labels requests by chi route pattern; board ids never appear in
// label values.
func (m *Metrics) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	route := "unmatched"
	if rctx := chi.RouteContext(ctx); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			route = p
		}
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(d.Seconds())
}
