package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder collects indicator and HTTP metrics on its own Prometheus registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry        *prometheus.Registry
	computeDuration *prometheus.HistogramVec
	computeFailures *prometheus.CounterVec
	runs            *prometheus.CounterVec
	runCandles      prometheus.Histogram
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder with Go runtime and process
// collectors registered.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		computeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "argo_indicators_compute_duration_seconds",
				Help:    "Duration of a single indicator computation in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"indicator"},
		),
		computeFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argo_indicators_compute_failures_total",
				Help: "Total number of indicator computations that panicked",
			},
			[]string{"indicator"},
		),
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argo_indicators_runs_total",
				Help: "Total number of runner invocations by outcome",
			},
			[]string{"status"},
		),
		runCandles: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "argo_indicators_run_candles",
				Help:    "Number of candles per runner invocation",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argo_indicators_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		httpLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "argo_indicators_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}
}

// RecordCompute records the duration of one indicator computation.
func (r *Recorder) RecordCompute(indicator string, d time.Duration) {
	if r == nil {
		return
	}

	r.computeDuration.WithLabelValues(indicator).Observe(d.Seconds())
}

// RecordFailure records an indicator that failed during a run.
func (r *Recorder) RecordFailure(indicator string) {
	if r == nil {
		return
	}

	r.computeFailures.WithLabelValues(indicator).Inc()
}

// RecordRun records a finished run. status is "ok", "partial" or "cancelled".
func (r *Recorder) RecordRun(status string, candles int) {
	if r == nil {
		return
	}

	r.runs.WithLabelValues(status).Inc()
	r.runCandles.Observe(float64(candles))
}

// RecordHTTPRequest records a served HTTP request.
func (r *Recorder) RecordHTTPRequest(route, method, status string, d time.Duration) {
	if r == nil {
		return
	}

	r.httpRequests.WithLabelValues(route, method, status).Inc()
	r.httpLatency.WithLabelValues(route).Observe(d.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
