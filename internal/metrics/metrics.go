// Package metrics exposes Prometheus collectors for the estimator.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "capcost"

var histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20}

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	requestTotal        *prometheus.CounterVec
	requestLatency      *prometheus.HistogramVec
	classifierFallbacks *prometheus.CounterVec
	classifierLatency   *prometheus.HistogramVec
	cacheLookups        *prometheus.CounterVec
	estimates           *prometheus.CounterVec
}

// New creates collectors and registers them with reg. Registering twice
// against the same registry reuses the existing collectors.
func New(reg *prometheus.Registry) *Metrics {
	m := newMetrics(reg, reg)
	m.register()
	return m
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns collectors registered with the global Prometheus registry
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = newMetrics(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
		defaultMetrics.register()
	})
	return defaultMetrics
}

func newMetrics(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	return &Metrics{
		registerer: reg,
		gatherer:   gatherer,
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
		classifierFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "fallbacks_total",
			Help:      "Classifications answered by the keyword fallback, by reason",
		}, []string{"reason"}),
		classifierLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "request_duration_seconds",
			Help:      "Latency of external classifier calls including retries",
			Buckets:   histogramBuckets,
		}, []string{"outcome"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "cache_lookups_total",
			Help:      "Classification cache lookups by result",
		}, []string{"result"}),
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "estimates_total",
			Help:      "Estimates produced by category and request path",
		}, []string{"category", "path"}),
	}
}

func (m *Metrics) register() {
	vecs := []**prometheus.CounterVec{&m.requestTotal, &m.classifierFallbacks, &m.cacheLookups, &m.estimates}
	for _, v := range vecs {
		if err := m.registerer.Register(*v); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
					*v = existing
				}
			}
		}
	}

	hists := []**prometheus.HistogramVec{&m.requestLatency, &m.classifierLatency}
	for _, h := range hists {
		if err := m.registerer.Register(*h); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
					*h = existing
				}
			}
		}
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveRequest records one HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	m.requestTotal.With(labels).Inc()
	m.requestLatency.With(labels).Observe(duration.Seconds())
}

// ClassifierFallback counts one keyword fallback
func (m *Metrics) ClassifierFallback(reason string) {
	if m == nil {
		return
	}
	m.classifierFallbacks.WithLabelValues(reason).Inc()
}

// ObserveClassifier records one external classifier call
func (m *Metrics) ObserveClassifier(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.classifierLatency.WithLabelValues(outcome).Observe(duration.Seconds())
}

// CacheLookup counts a classification cache hit or miss
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// EstimateProduced counts one estimate
func (m *Metrics) EstimateProduced(category, path string) {
	if m == nil {
		return
	}
	m.estimates.WithLabelValues(category, path).Inc()
}
