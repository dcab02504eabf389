// Package metrics defines prometheus instrumentation of the fetch pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/umputun/meteoscope/pkg/domain"
)

const namespace = "meteoscope"

// Metrics holds counters and histograms of the fetch pipeline
type Metrics struct {
	FetchAttempts  *prometheus.CounterVec   // labels: source, outcome={success,network_error,timeout,permanent}
	FetchDuration  *prometheus.HistogramVec // labels: source
	Verdicts       *prometheus.CounterVec   // labels: source, verdict={unchanged,changed,invalid}
	RecordsApplied *prometheus.CounterVec   // labels: source, action={inserted,updated,unchanged}
	CyclesSkipped  *prometheus.CounterVec   // labels: source
}

// NewMetrics creates and registers all metrics with the default prometheus registry
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates metrics which are not registered anywhere,
// safe to call from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FetchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_attempts_total",
			Help:      "Fetch cycles by source and transport outcome.",
		}, []string{"source", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching a payload, retries included.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"source"}),
		Verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verdicts_total",
			Help:      "Integrity verdicts by source.",
		}, []string{"source", "verdict"}),
		RecordsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_applied_total",
			Help:      "Records reconciled into the store by source and action.",
		}, []string{"source", "action"}),
		CyclesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_skipped_total",
			Help:      "Scheduled cycles skipped because one was already running.",
		}, []string{"source"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.FetchAttempts, m.FetchDuration, m.Verdicts, m.RecordsApplied,
		m.CyclesSkipped}
}

// ObserveCycle records the outcome of one fetch cycle
func (m *Metrics) ObserveCycle(res domain.CycleResult) {
	outcome := string(res.Failure)
	if res.Failure == domain.FailureNone {
		outcome = "success"
	}
	m.FetchAttempts.WithLabelValues(res.Source, outcome).Inc()
	m.FetchDuration.WithLabelValues(res.Source).Observe(res.Duration.Seconds())
	if res.Verdict != "" {
		m.Verdicts.WithLabelValues(res.Source, string(res.Verdict)).Inc()
	}
	m.RecordsApplied.WithLabelValues(res.Source, "inserted").Add(float64(res.Applied.Inserted))
	m.RecordsApplied.WithLabelValues(res.Source, "updated").Add(float64(res.Applied.Updated))
	m.RecordsApplied.WithLabelValues(res.Source, "unchanged").Add(float64(res.Applied.Unchanged))
}

// CycleSkipped counts a coalesced scheduled trigger
func (m *Metrics) CycleSkipped(source string) {
	m.CyclesSkipped.WithLabelValues(source).Inc()
}
