// Package status derives the system-wide status from source health and record counts.
package status

import (
	"fmt"
	"sort"
	"time"

	"github.com/umputun/meteoscope/pkg/domain"
)

// DefaultReliabilityThreshold is the reliability percent below which a source is a risk
const DefaultReliabilityThreshold = 80.0

// Aggregate combines health of all sources into one status. It reads only its arguments.
func Aggregate(sources []domain.SourceHealth, counts domain.RecordCounts, threshold float64,
	uptime time.Duration, now time.Time) domain.SystemStatus {
	if threshold <= 0 {
		threshold = DefaultReliabilityThreshold
	}

	sorted := make([]domain.SourceHealth, len(sources))
	copy(sorted, sources)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Source < sorted[j].Source })

	res := domain.SystemStatus{
		Status:       domain.StatusHealthy,
		Regions:      counts.Regions,
		Forecasts:    counts.Forecasts,
		ActiveAlerts: counts.ActiveAlerts,
		Uptime:       uptime,
		UptimeText:   FormatUptime(uptime),
		Sources:      sorted,
		Risks:        []string{},
		CheckedAt:    now,
	}

	for _, h := range sorted {
		switch h.Quality {
		case domain.QualityUnavailable, domain.QualityInvalid:
			res.Status = domain.StatusUnhealthy
		case domain.QualityPartial, domain.QualityStale:
			res.Status = worse(res.Status, domain.StatusDegraded)
		}
		if h.Reliability() < threshold {
			res.Status = worse(res.Status, domain.StatusDegraded)
		}
		res.Risks = append(res.Risks, Risks(h, threshold, now)...)
	}
	return res
}

// Risks returns human-readable risk conditions of one source
func Risks(h domain.SourceHealth, threshold float64, now time.Time) []string {
	var res []string
	if rel := h.Reliability(); rel < threshold {
		res = append(res, fmt.Sprintf("%s: low reliability %.1f%%", h.Source, rel))
	}
	if h.ConsecutiveFailures > 0 {
		res = append(res, fmt.Sprintf("%s: %d consecutive failures", h.Source, h.ConsecutiveFailures))
	}
	if h.LastSuccess == nil || (h.Interval > 0 && now.Sub(*h.LastSuccess) > h.Interval) {
		res = append(res, fmt.Sprintf("%s: stale data", h.Source))
	}
	return res
}

// FormatUptime renders duration as "Xh Ym Zs"
func FormatUptime(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%dh %dm %ds", secs/3600, secs%3600/60, secs%60)
}

func worse(a, b domain.OverallStatus) domain.OverallStatus {
	rank := map[domain.OverallStatus]int{domain.StatusHealthy: 0, domain.StatusDegraded: 1, domain.StatusUnhealthy: 2}
	if rank[b] > rank[a] {
		return b
	}
	return a
}
