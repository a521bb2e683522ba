// Package telemetry exports Prometheus metrics for the vlink server.
package telemetry

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all vlink Prometheus metrics
type Metrics struct {
	Classifications *prometheus.CounterVec
	Extractions     *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// Provider wraps the metrics and their HTTP handler
type Provider struct {
	Metrics *Metrics
}

// NewProvider registers the metrics on the default registry.
// Call it once per process; promauto panics on duplicate registration.
func NewProvider() *Provider {
	return &Provider{Metrics: initMetrics()}
}

var (
	defaultProvider *Provider
	defaultOnce     sync.Once
)

// Default returns the process-wide Provider, creating it on first use
func Default() *Provider {
	defaultOnce.Do(func() {
		defaultProvider = NewProvider()
	})
	return defaultProvider
}

func initMetrics() *Metrics {
	return &Metrics{
		Classifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vlink_classifications_total",
			Help: "URLs classified, by provider and content type",
		}, []string{"provider", "content_type"}),

		Extractions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vlink_extractions_total",
			Help: "URL extractions from text, by source and result",
		}, []string{"source", "result"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vlink_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}, []string{"route"}),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

// RecordClassification counts one classified URL. Non-provider URLs are
// recorded with provider "none".
func (p *Provider) RecordClassification(provider, contentType string) {
	if provider == "" {
		provider = "none"
	}
	if contentType == "" {
		contentType = "none"
	}
	p.Metrics.Classifications.WithLabelValues(provider, contentType).Inc()
}

// RecordExtraction counts one extraction attempt
func (p *Provider) RecordExtraction(source string, found bool) {
	result := "found"
	if !found {
		result = "empty"
	}
	p.Metrics.Extractions.WithLabelValues(source, result).Inc()
}

// ObserveRequest records how long a route took
func (p *Provider) ObserveRequest(route string, d time.Duration) {
	p.Metrics.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
}
