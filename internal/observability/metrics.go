package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for form submissions.
type Metrics struct {
	Submissions        *prometheus.CounterVec   // labels: profile, outcome
	SubmissionDuration *prometheus.HistogramVec // labels: profile
	InFlight           prometheus.Gauge
}

// NewMetrics creates and registers all submission metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Submissions, m.SubmissionDuration, m.InFlight)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "palmwatch",
			Name:      "submissions_total",
			Help:      "Form submissions by profile and outcome.",
		}, []string{"profile", "outcome"}),
		SubmissionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "palmwatch",
			Name:      "submission_duration_seconds",
			Help:      "Time from trigger activation to the trigger being ready again.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"profile"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "palmwatch",
			Name:      "submissions_in_flight",
			Help:      "Submissions currently waiting on /assess.",
		}),
	}
}

// WriteTextfile dumps the default registry in the node-exporter textfile
// collector format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
