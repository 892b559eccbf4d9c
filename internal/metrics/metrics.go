package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Predictions      *prometheus.CounterVec
	Probability      prometheus.Histogram
	ScoringErrors    *prometheus.CounterVec
	RequestDurations *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "creditpath",
			Name:      "predictions_total",
			Help:      "Scored borrowers by risk band.",
		}, []string{"risk_band"}),
		Probability: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "creditpath",
			Name:      "default_probability",
			Help:      "Distribution of reported default probabilities.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 9),
		}),
		ScoringErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "creditpath",
			Name:      "scoring_errors_total",
			Help:      "Failed scoring requests by error kind.",
		}, []string{"kind"}),
		RequestDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "creditpath",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(
		m.Predictions,
		m.Probability,
		m.ScoringErrors,
		m.RequestDurations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
