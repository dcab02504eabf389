package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/meteoscope/pkg/domain"
)

func TestAggregate(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	ago := func(d time.Duration) *time.Time { v := now.Add(-d); return &v }

	valid := func(name string) domain.SourceHealth {
		return domain.SourceHealth{Source: name, Interval: time.Hour, Attempts: 10, Successes: 10,
			LastSuccess: ago(10 * time.Minute), Quality: domain.QualityValid}
	}

	tests := []struct {
		name      string
		sources   []domain.SourceHealth
		threshold float64
		status    domain.OverallStatus
		risks     []string
	}{
		{
			name:    "all valid",
			sources: []domain.SourceHealth{valid("forecast-xml"), valid("alert-rss")},
			status:  domain.StatusHealthy,
			risks:   []string{},
		},
		{
			name: "unavailable wins over partial",
			sources: []domain.SourceHealth{
				func() domain.SourceHealth {
					h := valid("forecast-xml")
					h.Quality, h.ConsecutiveFailures = domain.QualityUnavailable, 3
					return h
				}(),
				func() domain.SourceHealth { h := valid("alert-rss"); h.Quality = domain.QualityPartial; return h }(),
			},
			status: domain.StatusUnhealthy,
			risks:  []string{"forecast-xml: 3 consecutive failures"},
		},
		{
			name: "invalid is unhealthy",
			sources: []domain.SourceHealth{
				func() domain.SourceHealth { h := valid("alert-rss"); h.Quality = domain.QualityInvalid; return h }(),
			},
			status: domain.StatusUnhealthy,
			risks:  []string{},
		},
		{
			name: "stale is degraded with risk",
			sources: []domain.SourceHealth{
				func() domain.SourceHealth {
					h := valid("forecast-xml")
					h.LastSuccess, h.Quality = ago(200*time.Minute), domain.QualityStale
					return h
				}(),
			},
			status: domain.StatusDegraded,
			risks:  []string{"forecast-xml: stale data"},
		},
		{
			name: "never succeeded",
			sources: []domain.SourceHealth{
				{Source: "alert-rss", Interval: 10 * time.Minute, Quality: domain.QualityStale},
			},
			status: domain.StatusDegraded,
			risks:  []string{"alert-rss: stale data"},
		},
		{
			name: "reliability at threshold is fine",
			sources: []domain.SourceHealth{
				func() domain.SourceHealth {
					h := valid("alert-rss")
					h.Attempts, h.Successes = 5, 4
					return h
				}(),
			},
			threshold: 80,
			status:    domain.StatusHealthy,
			risks:     []string{},
		},
		{
			name: "reliability below threshold degrades",
			sources: []domain.SourceHealth{
				func() domain.SourceHealth {
					h := valid("alert-rss")
					h.Attempts, h.Successes, h.ConsecutiveFailures = 5, 4, 1
					return h
				}(),
			},
			threshold: 85,
			status:    domain.StatusDegraded,
			risks:     []string{"alert-rss: low reliability 80.0%", "alert-rss: 1 consecutive failures"},
		},
		{
			name: "risks sorted by source",
			sources: []domain.SourceHealth{
				func() domain.SourceHealth { h := valid("zz"); h.LastSuccess = nil; return h }(),
				func() domain.SourceHealth { h := valid("aa"); h.LastSuccess = nil; return h }(),
			},
			status: domain.StatusHealthy,
			risks:  []string{"aa: stale data", "zz: stale data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := domain.RecordCounts{Regions: 3, Forecasts: 15, ActiveAlerts: 2}
			res := Aggregate(tt.sources, counts, tt.threshold, 90*time.Minute, now)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.risks, res.Risks)
			assert.Equal(t, 3, res.Regions)
			assert.Equal(t, 2, res.ActiveAlerts)
			assert.Equal(t, "1h 30m 0s", res.UptimeText)
			assert.Equal(t, now, res.CheckedAt)
			assert.Len(t, res.Sources, len(tt.sources))
		})
	}
}

func TestAggregate_DoesNotReorderInput(t *testing.T) {
	in := []domain.SourceHealth{{Source: "b", Quality: domain.QualityValid}, {Source: "a", Quality: domain.QualityValid}}
	res := Aggregate(in, domain.RecordCounts{}, 0, 0, time.Now())
	assert.Equal(t, "b", in[0].Source)
	assert.Equal(t, "a", res.Sources[0].Source)
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0h 0m 0s", FormatUptime(0))
	assert.Equal(t, "0h 0m 59s", FormatUptime(59*time.Second+900*time.Millisecond))
	assert.Equal(t, "26h 3m 7s", FormatUptime(26*time.Hour+3*time.Minute+7*time.Second))
	assert.Equal(t, "0h 0m 0s", FormatUptime(-time.Second))
}
