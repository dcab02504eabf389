package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/umputun/meteoscope/pkg/domain"
)

var qualities = []domain.DataQuality{domain.QualityValid, domain.QualityPartial, domain.QualityStale,
	domain.QualityInvalid, domain.QualityUnavailable}

// HealthCollector exports source health gauges. Values are read from the snapshot function on
// every scrape, so quality decay caused by time passing shows up without a new fetch cycle.
type HealthCollector struct {
	snapshot    func() []domain.SourceHealth
	quality     *prometheus.Desc
	reliability *prometheus.Desc
	failures    *prometheus.Desc
}

// NewHealthCollector makes a collector over the given health snapshot function
func NewHealthCollector(snapshot func() []domain.SourceHealth) *HealthCollector {
	return &HealthCollector{
		snapshot: snapshot,
		quality: prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "source_quality"),
			"Current data quality of a source, 1 for the active classification.", []string{"source", "quality"}, nil),
		reliability: prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "source_reliability_percent"),
			"Transport success percent over the reliability window.", []string{"source"}, nil),
		failures: prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "source_consecutive_failures"),
			"Consecutive transport failures of a source.", []string{"source"}, nil),
	}
}

// Describe implements prometheus.Collector
func (c *HealthCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.quality
	ch <- c.reliability
	ch <- c.failures
}

// Collect implements prometheus.Collector
func (c *HealthCollector) Collect(ch chan<- prometheus.Metric) {
	for _, h := range c.snapshot() {
		for _, q := range qualities {
			v := 0.0
			if q == h.Quality {
				v = 1
			}
			ch <- prometheus.MustNewConstMetric(c.quality, prometheus.GaugeValue, v, h.Source, string(q))
		}
		ch <- prometheus.MustNewConstMetric(c.reliability, prometheus.GaugeValue, h.Reliability(), h.Source)
		ch <- prometheus.MustNewConstMetric(c.failures, prometheus.GaugeValue, float64(h.ConsecutiveFailures), h.Source)
	}
}
