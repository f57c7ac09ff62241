package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ClassifierFallback("timeout")
	m.ClassifierFallback("timeout")
	m.ClassifierFallback("malformed")
	m.EstimateProduced("saas-b2b", "direct")
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)

	tests := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"timeout fallbacks", m.classifierFallbacks.WithLabelValues("timeout"), 2},
		{"malformed fallbacks", m.classifierFallbacks.WithLabelValues("malformed"), 1},
		{"estimates", m.estimates.WithLabelValues("saas-b2b", "direct"), 1},
		{"cache hits", m.cacheLookups.WithLabelValues("hit"), 1},
		{"cache misses", m.cacheLookups.WithLabelValues("miss"), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tt.c); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestRegisterTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New(reg)
	second := New(reg)

	first.EstimateProduced("fintech", "describe")
	second.EstimateProduced("fintech", "describe")

	if got := testutil.ToFloat64(first.estimates.WithLabelValues("fintech", "describe")); got != 2 {
		t.Errorf("shared counter = %v, want 2", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ClassifierFallback("x")
	m.ObserveRequest("GET", "/", 200, time.Millisecond)
	m.EstimateProduced("x", "y")
	m.CacheLookup(true)
	m.ObserveClassifier("ok", time.Second)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveRequest(http.MethodPost, "/api/estimate/direct", http.StatusOK, 30*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `capcost_api_http_requests_total{method="POST",route="/api/estimate/direct",status="200"} 1`) {
		t.Errorf("metrics output missing request counter:\n%s", body)
	}
}
