package domain

import "time"

// Severity is the alert level
type Severity string

const (
	SeverityYellow Severity = "YELLOW"
	SeverityOrange Severity = "ORANGE"
	SeverityRed    Severity = "RED"
)

// KnownSeverities lists recognized levels ordered by importance
var KnownSeverities = []Severity{SeverityYellow, SeverityOrange, SeverityRed}

// IsKnown reports whether s is one of the recognized levels
func (s Severity) IsKnown() bool {
	for _, k := range KnownSeverities {
		if s == k {
			return true
		}
	}
	return false
}

// ForecastRecord is one region-day forecast. Key: (Region, Date)
type ForecastRecord struct {
	Region        string    `db:"region" json:"region"`
	Date          string    `db:"forecast_date" json:"date"` // YYYY-MM-DD
	TempMin       *float64  `db:"temp_min" json:"temp_min"`
	TempMax       *float64  `db:"temp_max" json:"temp_max"`
	Condition     string    `db:"condition" json:"condition"`
	ConditionCode string    `db:"condition_code" json:"condition_code,omitempty"`
	IssuedDate    string    `db:"issued_date" json:"issued_date,omitempty"`
	Partial       bool      `db:"partial" json:"partial"`
	SnapshotHash  string    `db:"snapshot_hash" json:"-"`
	FetchedAt     time.Time `db:"fetched_at" json:"fetched_at"`
}

// AlertRecord is an immutable weather alert. Key: ExternalID
type AlertRecord struct {
	ExternalID    string    `db:"external_id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Severity      Severity  `db:"severity" json:"level"`
	SeverityKnown bool      `db:"severity_known" json:"severity_known"`
	ValidFrom     time.Time `db:"valid_from" json:"valid_from"`
	ValidUntil    time.Time `db:"valid_until" json:"valid_until"`
	TimeRange     string    `db:"time_range" json:"time_range,omitempty"`
	Description   string    `db:"description" json:"description"`
	Zones         string    `db:"zones" json:"zones"`
	Link          string    `db:"link" json:"link,omitempty"`
	PublishedAt   time.Time `db:"published_at" json:"published_at"`
	SnapshotHash  string    `db:"snapshot_hash" json:"-"`
	FetchedAt     time.Time `db:"fetched_at" json:"fetched_at"`
}

// Active reports whether the alert is still in force at the given time
func (a AlertRecord) Active(now time.Time) bool { return now.Before(a.ValidUntil) }

// AlertFilter selects active alerts
type AlertFilter struct {
	Level Severity // empty for all levels
	Limit int      // zero for no limit
}

// ApplyResult counts what the reconciler did with one cycle's records
type ApplyResult struct {
	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
}

// Total returns the number of records considered
func (r ApplyResult) Total() int { return r.Inserted + r.Updated + r.Unchanged }
