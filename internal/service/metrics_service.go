package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes the application's Prometheus collectors.
type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	schedulerRuns *prometheus.CounterVec
	placements    *prometheus.CounterVec
	commits       prometheus.Counter
	exportJobs    *prometheus.CounterVec
}

// NewMetrics registers all collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		schedulerRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_runs_total",
			Help: "Scheduling engine runs by algorithm.",
		}, []string{"algorithm"}),
		placements: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_placements_total",
			Help: "Applicant placements by outcome (scheduled or unmatched).",
		}, []string{"outcome"}),
		commits: factory.NewCounter(prometheus.CounterOpts{
			Name: "scheduler_commits_total",
			Help: "Committed schedule proposals.",
		}),
		exportJobs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "export_jobs_total",
			Help: "Roster export jobs by format.",
		}, []string{"format"}),
	}
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// RecordSchedulerRun records one engine run and its placement outcomes.
func (m *Metrics) RecordSchedulerRun(algorithm string, scheduled, unmatched int) {
	m.schedulerRuns.WithLabelValues(algorithm).Inc()
	m.placements.WithLabelValues("scheduled").Add(float64(scheduled))
	m.placements.WithLabelValues("unmatched").Add(float64(unmatched))
}

// RecordCommit records one committed proposal.
func (m *Metrics) RecordCommit() {
	m.commits.Inc()
}

// RecordExport records one queued export job.
func (m *Metrics) RecordExport(format string) {
	m.exportJobs.WithLabelValues(format).Inc()
}
