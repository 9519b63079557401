package observability

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Global metrics instance for singleton pattern
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Resolution metrics
	Resolutions       *prometheus.CounterVec
	ResolutionMisses  prometheus.Counter
	RemoteQueryErrors prometheus.Counter

	// Sitemap metrics
	SitemapEntries   prometheus.Counter
	SitemapFallbacks prometheus.Counter
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	// Use singleton pattern to avoid duplicate registration in tests
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	// Return existing collector if already created
	if globalCollector != nil {
		return globalCollector
	}

	// Create a new registry for this collector
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	resolutions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Successful path resolutions by fallback tier",
		},
		[]string{"tier"},
	)

	resolutionMisses := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolution_misses_total",
			Help:      "Resolutions that exhausted every fallback tier",
		},
	)

	remoteQueryErrors := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_query_errors_total",
			Help:      "Failed remote content queries",
		},
	)

	sitemapEntries := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sitemap_entries_synthesized_total",
			Help:      "URL entries synthesized into the sitemap",
		},
	)

	sitemapFallbacks := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sitemap_fallbacks_total",
			Help:      "Sitemap requests served unenriched after a failure",
		},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		resolutions,
		resolutionMisses,
		remoteQueryErrors,
		sitemapEntries,
		sitemapFallbacks,
	)

	globalCollector = &Collector{
		registry:          registry,
		HTTPRequests:      httpRequests,
		HTTPDuration:      httpDuration,
		Resolutions:       resolutions,
		ResolutionMisses:  resolutionMisses,
		RemoteQueryErrors: remoteQueryErrors,
		SitemapEntries:    sitemapEntries,
		SitemapFallbacks:  sitemapFallbacks,
	}
	return globalCollector
}

// Handler returns an HTTP handler serving the collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed HTTP request
func (c *Collector) ObserveRequest(method, route, status string, seconds float64) {
	c.HTTPRequests.WithLabelValues(method, route, status).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}
