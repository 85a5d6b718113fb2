package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	basecache "github.com/riskibarqy/golf-scoring/internal/platform/cache"
)

const metricsNamespace = "golf_scoring"

// Metrics owns the service registry and the collectors recorded by the HTTP
// layer.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rateLimited     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"method", "route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "public_scoring_rate_limited_total",
			Help:      "Public scoring requests rejected by the per-client limiter.",
		}, []string{"route"}),
	}
	registry.MustRegister(m.requests, m.requestDuration, m.rateLimited)
	return m
}

// ObserveRequest records one finished request. route is the mux pattern, so
// label cardinality stays bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveRateLimited(route string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(route).Inc()
}

// RegisterCache exposes hit, miss and invalidation counts of the repository
// cache.
func (m *Metrics) RegisterCache(store *basecache.Store) {
	if m == nil || store == nil {
		return
	}
	m.registry.MustRegister(newCacheCollector(store))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

type cacheCollector struct {
	store         *basecache.Store
	hits          *prometheus.Desc
	misses        *prometheus.Desc
	invalidations *prometheus.Desc
	entries       *prometheus.Desc
}

func newCacheCollector(store *basecache.Store) *cacheCollector {
	return &cacheCollector{
		store:         store,
		hits:          prometheus.NewDesc(metricsNamespace+"_cache_hits_total", "Repository cache hits.", nil, nil),
		misses:        prometheus.NewDesc(metricsNamespace+"_cache_misses_total", "Repository cache misses.", nil, nil),
		invalidations: prometheus.NewDesc(metricsNamespace+"_cache_invalidations_total", "Repository cache invalidations.", nil, nil),
		entries:       prometheus.NewDesc(metricsNamespace+"_cache_entries", "Live repository cache entries.", nil, nil),
	}
}

func (c *cacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.invalidations
	ch <- c.entries
}

func (c *cacheCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.store.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.invalidations, prometheus.CounterValue, float64(stats.Invalidations))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(stats.Entries))
}
