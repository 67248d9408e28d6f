package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	requestSeconds *prometheus.HistogramVec
	recomputes     *prometheus.CounterVec
	records        prometheus.Gauge
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launch_dashboard",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		requestSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "launch_dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		recomputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launch_dashboard",
			Name:      "view_recomputes_total",
			Help:      "Derived view recomputations by view id.",
		}, []string{"view"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "launch_dashboard",
			Name:      "dataset_records",
			Help:      "Launch records loaded at startup.",
		}),
	}

	reg.MustRegister(
		m.requests,
		m.requestSeconds,
		m.recomputes,
		m.records,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveRequest(route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestSeconds.WithLabelValues(route).Observe(dur.Seconds())
}

func (m *Metrics) ViewRecomputed(view string) {
	if m == nil {
		return
	}
	m.recomputes.WithLabelValues(view).Inc()
}

func (m *Metrics) SetDatasetRecords(n int) {
	if m == nil {
		return
	}
	m.records.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
