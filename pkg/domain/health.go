package domain

import "time"

// DataQuality is the trust classification of a source
type DataQuality string

const (
	QualityValid       DataQuality = "Valid"
	QualityPartial     DataQuality = "Partial"
	QualityStale       DataQuality = "Stale"
	QualityInvalid     DataQuality = "Invalid"
	QualityUnavailable DataQuality = "Unavailable"
)

// SourceHealth is the per-source health record, written only by the health tracker
type SourceHealth struct {
	Source              string        `db:"source" json:"source"`
	Kind                SyncKind      `db:"kind" json:"kind"`
	Interval            time.Duration `db:"interval_ns" json:"interval"`
	ConsecutiveFailures int           `db:"consecutive_failures" json:"consecutive_failures"`
	Attempts            int           `db:"attempts" json:"attempts_in_window"`
	Successes           int           `db:"successes" json:"successes_in_window"`
	AvgResponse         time.Duration `db:"avg_response_ns" json:"avg_response"`
	LastAttempt         *time.Time    `db:"last_attempt" json:"last_attempt,omitempty"`
	LastSuccess         *time.Time    `db:"last_success" json:"last_success,omitempty"`
	LastFailure         *time.Time    `db:"last_failure" json:"last_failure,omitempty"`
	LastError           string        `db:"last_error" json:"last_error,omitempty"`
	LastDecode          DecodeState   `db:"last_decode" json:"last_decode,omitempty"`
	Quality             DataQuality   `db:"quality" json:"data_quality"`
	UpdatedAt           time.Time     `db:"updated_at" json:"updated_at"`
}

// Reliability returns success percentage over the window, 100 when nothing was attempted
func (h SourceHealth) Reliability() float64 {
	if h.Attempts == 0 {
		return 100
	}
	return float64(h.Successes) * 100 / float64(h.Attempts)
}

// OverallStatus is the system-wide status
type OverallStatus string

const (
	StatusHealthy   OverallStatus = "healthy"
	StatusDegraded  OverallStatus = "degraded"
	StatusUnhealthy OverallStatus = "unhealthy"
)

// RecordCounts carries store-side numbers the status aggregator needs
type RecordCounts struct {
	Regions      int
	Forecasts    int
	ActiveAlerts int
}

// SystemStatus is derived on demand and never persisted
type SystemStatus struct {
	Status       OverallStatus  `json:"status"`
	Regions      int            `json:"regions"`
	Forecasts    int            `json:"forecasts"`
	ActiveAlerts int            `json:"active_alerts"`
	Uptime       time.Duration  `json:"-"`
	UptimeText   string         `json:"uptime"`
	Sources      []SourceHealth `json:"sources"`
	Risks        []string       `json:"risks"`
	CheckedAt    time.Time      `json:"checked_at"`
}
