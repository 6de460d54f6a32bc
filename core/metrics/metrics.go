package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "devicesync"

// Metrics holds the job metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	missingComponents *prometheus.GaugeVec
	componentsCreated *prometheus.CounterVec
	jobRuns           *prometheus.CounterVec
	jobDuration       *prometheus.HistogramVec
}

// New creates the job metrics and registers them, together with the Go runtime
// and process collectors, on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		missingComponents: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "missing_components",
			Help:      "Components defined by device type templates but missing on devices, as of the last scan.",
		}, []string{"category", "exempt"}),
		componentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "components_created_total",
			Help:      "Components created from device type templates.",
		}, []string{"category"}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Synchronization job runs by job and final status.",
		}, []string{"job", "status"}),
		jobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Synchronization job duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"job"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.missingComponents,
		m.componentsCreated,
		m.jobRuns,
		m.jobDuration,
	)
	return m
}

// SetMissing records the number of missing components found for a category.
func (m *Metrics) SetMissing(category string, exempt bool, n int) {
	if m == nil {
		return
	}
	m.missingComponents.WithLabelValues(category, strconv.FormatBool(exempt)).Set(float64(n))
}

// AddCreated increments the created component counter for a category.
func (m *Metrics) AddCreated(category string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.componentsCreated.WithLabelValues(category).Add(float64(n))
}

// ObserveJob records a finished job run.
func (m *Metrics) ObserveJob(job, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.jobRuns.WithLabelValues(job, status).Inc()
	m.jobDuration.WithLabelValues(job).Observe(elapsed.Seconds())
}

// Handler returns an HTTP handler exposing the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
