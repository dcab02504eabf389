// Package service exposes weather data and pipeline health to the API layer.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/meteoscope/pkg/domain"
	"github.com/umputun/meteoscope/pkg/repository"
	"github.com/umputun/meteoscope/pkg/status"
)

//go:generate moq -out mocks/forecast_store.go -pkg mocks -skip-ensure -fmt goimports . ForecastStore
//go:generate moq -out mocks/alert_store.go -pkg mocks -skip-ensure -fmt goimports . AlertStore
//go:generate moq -out mocks/health_reader.go -pkg mocks -skip-ensure -fmt goimports . HealthReader
//go:generate moq -out mocks/fetch_scheduler.go -pkg mocks -skip-ensure -fmt goimports . FetchScheduler
//go:generate moq -out mocks/pinger.go -pkg mocks -skip-ensure -fmt goimports . Pinger

const (
	// ForecastDays is the number of most recent forecast days returned per region
	ForecastDays = 5
	// DefaultRegion is served when no region is requested
	DefaultRegion = "Bucuresti"
	// SearchLimit caps region search results
	SearchLimit = 20
	// LevelOther groups alerts with unrecognized severity in counts
	LevelOther = "OTHER"
)

// ForecastStore reads forecast records
type ForecastStore interface {
	ForecastsForRegion(ctx context.Context, region string, limit int) ([]domain.ForecastRecord, error)
	Regions(ctx context.Context) ([]string, error)
	SearchRegions(ctx context.Context, prefix string, limit int) ([]string, error)
	Stats(ctx context.Context) (repository.ForecastStats, error)
}

// AlertStore reads alert records
type AlertStore interface {
	ActiveAlerts(ctx context.Context, now time.Time, filter domain.AlertFilter) ([]domain.AlertRecord, error)
	CountActiveBySeverity(ctx context.Context, now time.Time) (map[domain.Severity]int, error)
	CountActive(ctx context.Context, now time.Time) (int, error)
}

// HealthReader provides current source health
type HealthReader interface {
	Get(name string) (domain.SourceHealth, bool)
	Snapshot() []domain.SourceHealth
}

// FetchScheduler runs fetch cycles on demand
type FetchScheduler interface {
	TriggerNow(source string) error
	TriggerAll() map[string]error
	Results() []domain.CycleResult
	Sources() []domain.Source
	Running() bool
}

// Pinger checks the database connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// Params defines dependencies and options of the weather service
type Params struct {
	Forecasts            ForecastStore
	Alerts               AlertStore
	Health               HealthReader
	Scheduler            FetchScheduler
	DB                   Pinger
	Clock                clockwork.Clock
	StartedAt            time.Time
	ReliabilityThreshold float64
	AlertLimit           int // default number of alerts listed
}

// WeatherService combines stored records with source health
type WeatherService struct {
	forecasts  ForecastStore
	alerts     AlertStore
	health     HealthReader
	scheduler  FetchScheduler
	db         Pinger
	clock      clockwork.Clock
	startedAt  time.Time
	threshold  float64
	alertLimit int
}

// RegionForecast is the forecast of one region with the trust flag of its source
type RegionForecast struct {
	Region  string                  `json:"region"`
	Days    []domain.ForecastRecord `json:"forecasts"`
	Quality domain.DataQuality      `json:"data_quality"`
}

// HealthReport tells whether the service itself works, regardless of upstream sources
type HealthReport struct {
	Status    string    `json:"status"` // ok or error
	Database  string    `json:"database"`
	Scheduler string    `json:"scheduler"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// OK reports whether database and scheduler both work
func (h HealthReport) OK() bool { return h.Status == "ok" }

// AlertList is the active alerts with the trust flag of their source
type AlertList struct {
	Alerts  []domain.AlertRecord `json:"alerts"`
	Count   int                  `json:"count"`
	Quality domain.DataQuality   `json:"data_quality"`
}

// AlertCounts holds active alerts per level
type AlertCounts struct {
	Total   int            `json:"total"`
	ByLevel map[string]int `json:"by_level"`
}

// SourceInfo is source health with derived values for display
type SourceInfo struct {
	domain.SourceHealth
	URL         string  `json:"url"`
	Reliability float64 `json:"reliability_percent"`
	Fresh       bool    `json:"is_fresh"`
}

// SourcesReport lists sources along with the data they produced
type SourcesReport struct {
	Sources []SourceInfo        `json:"sources"`
	Summary domain.RecordCounts `json:"summary"`
}

// NewWeatherService creates a new weather service
func NewWeatherService(params Params) *WeatherService {
	if params.Clock == nil {
		params.Clock = clockwork.NewRealClock()
	}
	if params.StartedAt.IsZero() {
		params.StartedAt = params.Clock.Now()
	}
	if params.ReliabilityThreshold <= 0 {
		params.ReliabilityThreshold = status.DefaultReliabilityThreshold
	}
	if params.AlertLimit <= 0 {
		params.AlertLimit = 50
	}
	return &WeatherService{
		forecasts:  params.Forecasts,
		alerts:     params.Alerts,
		health:     params.Health,
		scheduler:  params.Scheduler,
		db:         params.DB,
		clock:      params.Clock,
		startedAt:  params.StartedAt,
		threshold:  params.ReliabilityThreshold,
		alertLimit: params.AlertLimit,
	}
}

// Forecast returns the most recent forecast days of the region. Lookup falls back to a
// case-insensitive match; an unknown region gives an empty Days list.
func (s *WeatherService) Forecast(ctx context.Context, region string) (RegionForecast, error) {
	if region = strings.TrimSpace(region); region == "" {
		region = DefaultRegion
	}
	days, err := s.forecasts.ForecastsForRegion(ctx, region, ForecastDays)
	if err != nil {
		return RegionForecast{}, fmt.Errorf("get forecast for %s: %w", region, err)
	}
	res := RegionForecast{Region: region, Days: days, Quality: s.kindQuality(domain.SyncState)}
	if len(days) > 0 {
		res.Region = days[0].Region
	}
	return res, nil
}

// ActiveAlerts returns alerts in force now, newest published first, with the quality of the alert source.
// An empty list from an unavailable source is told apart by Quality.
func (s *WeatherService) ActiveAlerts(ctx context.Context, filter domain.AlertFilter) (AlertList, error) {
	filter.Level = domain.Severity(strings.ToUpper(strings.TrimSpace(string(filter.Level))))
	if filter.Limit <= 0 {
		filter.Limit = s.alertLimit
	}
	alerts, err := s.alerts.ActiveAlerts(ctx, s.clock.Now(), filter)
	if err != nil {
		return AlertList{}, fmt.Errorf("get active alerts: %w", err)
	}
	if alerts == nil {
		alerts = []domain.AlertRecord{}
	}
	return AlertList{Alerts: alerts, Count: len(alerts), Quality: s.kindQuality(domain.SyncEvent)}, nil
}

// AlertCounts returns active alerts per level, unknown levels are counted as OTHER
func (s *WeatherService) AlertCounts(ctx context.Context) (AlertCounts, error) {
	bySeverity, err := s.alerts.CountActiveBySeverity(ctx, s.clock.Now())
	if err != nil {
		return AlertCounts{}, fmt.Errorf("count alerts: %w", err)
	}
	res := AlertCounts{ByLevel: map[string]int{LevelOther: 0}}
	for _, sev := range domain.KnownSeverities {
		res.ByLevel[string(sev)] = 0
	}
	for sev, n := range bySeverity {
		res.Total += n
		if sev.IsKnown() {
			res.ByLevel[string(sev)] += n
			continue
		}
		res.ByLevel[LevelOther] += n
	}
	return res, nil
}

// Regions returns all regions with forecasts
func (s *WeatherService) Regions(ctx context.Context) ([]string, error) {
	regions, err := s.forecasts.Regions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get regions: %w", err)
	}
	return regions, nil
}

// SearchRegions returns regions starting with the query, case-insensitive
func (s *WeatherService) SearchRegions(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}
	regions, err := s.forecasts.SearchRegions(ctx, query, SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search regions: %w", err)
	}
	return regions, nil
}

// Status returns the system-wide status derived from current health and record counts
func (s *WeatherService) Status(ctx context.Context) (domain.SystemStatus, error) {
	counts, err := s.counts(ctx)
	if err != nil {
		return domain.SystemStatus{}, err
	}
	now := s.clock.Now()
	return status.Aggregate(s.health.Snapshot(), counts, s.threshold, now.Sub(s.startedAt), now), nil
}

// Sources returns per-source health with a summary of stored data
func (s *WeatherService) Sources(ctx context.Context) (SourcesReport, error) {
	counts, err := s.counts(ctx)
	if err != nil {
		return SourcesReport{}, err
	}
	urls := map[string]string{}
	for _, src := range s.scheduler.Sources() {
		urls[src.Name] = src.URL
	}

	res := SourcesReport{Summary: counts, Sources: []SourceInfo{}}
	for _, h := range s.health.Snapshot() {
		res.Sources = append(res.Sources, SourceInfo{
			SourceHealth: h,
			URL:          urls[h.Source],
			Reliability:  h.Reliability(),
			Fresh:        h.Quality == domain.QualityValid || h.Quality == domain.QualityPartial,
		})
	}
	return res, nil
}

// TriggerFetch starts a background cycle of the source, rejected if one is in flight
func (s *WeatherService) TriggerFetch(source string) error {
	return s.scheduler.TriggerNow(source)
}

// TriggerAll starts background cycles of all sources
func (s *WeatherService) TriggerAll() map[string]error {
	return s.scheduler.TriggerAll()
}

// Results returns the last cycle result of every source
func (s *WeatherService) Results() []domain.CycleResult {
	return s.scheduler.Results()
}

// counts collects record counters concurrently
func (s *WeatherService) counts(ctx context.Context) (domain.RecordCounts, error) {
	var res domain.RecordCounts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.forecasts.Stats(gctx)
		if err != nil {
			return fmt.Errorf("forecast stats: %w", err)
		}
		res.Regions, res.Forecasts = st.Regions, st.Forecasts
		return nil
	})
	g.Go(func() error {
		n, err := s.alerts.CountActive(gctx, s.clock.Now())
		if err != nil {
			return fmt.Errorf("count alerts: %w", err)
		}
		res.ActiveAlerts = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.RecordCounts{}, err
	}
	return res, nil
}

// Health checks database connectivity and the scheduler state
func (s *WeatherService) Health(ctx context.Context) HealthReport {
	res := HealthReport{Status: "ok", Database: "connected", Scheduler: "running", CheckedAt: s.clock.Now()}
	if err := s.db.Ping(ctx); err != nil {
		res.Status, res.Database, res.Error = "error", "disconnected", err.Error()
	}
	if !s.scheduler.Running() {
		res.Status, res.Scheduler = "error", "stopped"
	}
	return res
}

// kindQuality returns the worst quality among sources of the kind
func (s *WeatherService) kindQuality(kind domain.SyncKind) domain.DataQuality {
	rank := map[domain.DataQuality]int{domain.QualityValid: 0, domain.QualityPartial: 1, domain.QualityStale: 2,
		domain.QualityInvalid: 3, domain.QualityUnavailable: 4}
	res := domain.DataQuality("")
	for _, src := range s.scheduler.Sources() {
		if src.Kind != kind {
			continue
		}
		h, ok := s.health.Get(src.Name)
		if !ok {
			continue
		}
		if res == "" || rank[h.Quality] > rank[res] {
			res = h.Quality
		}
	}
	return res
}
