package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/meteoscope/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// default ANM endpoints
const (
	DefaultForecastURL = "http://www.meteoromania.ro/anm/prognoza-orase-xml.php"
	DefaultAlertsURL   = "http://www.meteoromania.ro/anm2/avertizari-rss.php"
)

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Fetch    FetchConfig    `yaml:"fetch" json:"fetch" jsonschema:"description=Upstream fetch and retry settings"`
	Health   HealthConfig   `yaml:"health" json:"health" jsonschema:"description=Source health classification constants"`
	Alerts   AlertsConfig   `yaml:"alerts" json:"alerts" jsonschema:"description=Alert handling settings"`
	Sources  []SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=Upstream sources, defaults to the ANM forecast and alert feeds"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen       string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL      string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for the alerts RSS feed"`
	TriggerLimit time.Duration `yaml:"trigger_limit" json:"trigger_limit" jsonschema:"default=10s,description=Minimal interval between manual fetch triggers"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:meteoscope.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// FetchConfig holds transport and retry settings
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Per-attempt request timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=meteoscope/1.0,description=User agent for upstream requests"`
	Retry     RetryConfig   `yaml:"retry" json:"retry" jsonschema:"description=Retry policy"`
}

// RetryConfig defines the backoff policy of the retry coordinator
type RetryConfig struct {
	Attempts     int           `yaml:"attempts" json:"attempts" jsonschema:"default=3,minimum=1,description=Maximum attempts per fetch"`
	InitialDelay time.Duration `yaml:"initial_delay" json:"initial_delay" jsonschema:"default=500ms,description=Delay before the second attempt"`
	MaxDelay     time.Duration `yaml:"max_delay" json:"max_delay" jsonschema:"default=10s,description=Backoff delay cap"`
	Jitter       float64       `yaml:"jitter" json:"jitter" jsonschema:"default=0.1,minimum=0,maximum=1,description=Backoff jitter factor"`
}

// HealthConfig holds the health tracker constants
type HealthConfig struct {
	ReliabilityWindow      int     `yaml:"reliability_window" json:"reliability_window" jsonschema:"default=50,minimum=1,description=Number of recent attempts used for reliability"`
	StaleFactor            float64 `yaml:"stale_factor" json:"stale_factor" jsonschema:"default=1.5,description=Source is stale after interval multiplied by this factor"`
	UnavailableFactor      float64 `yaml:"unavailable_factor" json:"unavailable_factor" jsonschema:"default=6,description=Source is unavailable after interval multiplied by this factor"`
	MaxConsecutiveFailures int     `yaml:"max_consecutive_failures" json:"max_consecutive_failures" jsonschema:"default=3,minimum=1,description=Consecutive failures making a source unavailable"`
	ReliabilityThreshold   float64 `yaml:"reliability_threshold" json:"reliability_threshold" jsonschema:"default=80,minimum=0,maximum=100,description=Reliability percent below which a risk is reported"`
}

// AlertsConfig holds alert settings
type AlertsConfig struct {
	DefaultValidity time.Duration `yaml:"default_validity" json:"default_validity" jsonschema:"default=24h,description=Validity of alerts without an explicit time range"`
	ListLimit       int           `yaml:"list_limit" json:"list_limit" jsonschema:"default=50,description=Default number of alerts returned by the API"`
}

// SourceConfig describes one upstream feed
type SourceConfig struct {
	Name     string        `yaml:"name" json:"name" jsonschema:"required,description=Unique source name"`
	Kind     string        `yaml:"kind" json:"kind" jsonschema:"required,enum=state,enum=event,description=Synchronization kind"`
	URL      string        `yaml:"url" json:"url" jsonschema:"required,description=Endpoint URL"`
	Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"description=Expected update interval, also the polling interval"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"description=Per-attempt timeout override"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults applied, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills zero values with defaults
func (c *Config) SetDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
	if c.Server.TriggerLimit == 0 {
		c.Server.TriggerLimit = 10 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:meteoscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// fetch
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 15 * time.Second
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "meteoscope/1.0"
	}
	if c.Fetch.Retry.Attempts == 0 {
		c.Fetch.Retry.Attempts = 3
	}
	if c.Fetch.Retry.InitialDelay == 0 {
		c.Fetch.Retry.InitialDelay = 500 * time.Millisecond
	}
	if c.Fetch.Retry.MaxDelay == 0 {
		c.Fetch.Retry.MaxDelay = 10 * time.Second
	}
	if c.Fetch.Retry.Jitter == 0 {
		c.Fetch.Retry.Jitter = 0.1
	}

	// health
	if c.Health.ReliabilityWindow == 0 {
		c.Health.ReliabilityWindow = 50
	}
	if c.Health.StaleFactor == 0 {
		c.Health.StaleFactor = 1.5
	}
	if c.Health.UnavailableFactor == 0 {
		c.Health.UnavailableFactor = 6
	}
	if c.Health.MaxConsecutiveFailures == 0 {
		c.Health.MaxConsecutiveFailures = 3
	}
	if c.Health.ReliabilityThreshold == 0 {
		c.Health.ReliabilityThreshold = 80
	}

	// alerts
	if c.Alerts.DefaultValidity == 0 {
		c.Alerts.DefaultValidity = 24 * time.Hour
	}
	if c.Alerts.ListLimit == 0 {
		c.Alerts.ListLimit = 50
	}

	// sources
	if len(c.Sources) == 0 {
		c.Sources = []SourceConfig{
			{Name: "forecast-xml", Kind: string(domain.SyncState), URL: DefaultForecastURL, Interval: time.Hour},
			{Name: "alert-rss", Kind: string(domain.SyncEvent), URL: DefaultAlertsURL, Interval: 10 * time.Minute},
		}
	}
	for i := range c.Sources {
		if c.Sources[i].Interval == 0 {
			c.Sources[i].Interval = 30 * time.Minute
		}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate fetch config
	if cfg.Fetch.Timeout < 100*time.Millisecond {
		return fmt.Errorf("fetch timeout must be at least 100ms")
	}
	if cfg.Fetch.Retry.Attempts < 1 {
		return fmt.Errorf("fetch.retry.attempts must be at least 1")
	}
	if cfg.Fetch.Retry.Jitter < 0 || cfg.Fetch.Retry.Jitter > 1 {
		return fmt.Errorf("fetch.retry.jitter must be between 0 and 1")
	}
	if cfg.Fetch.Retry.MaxDelay < cfg.Fetch.Retry.InitialDelay {
		return fmt.Errorf("fetch.retry.max_delay must not be less than initial_delay")
	}

	// validate health config
	if cfg.Health.ReliabilityWindow < 1 {
		return fmt.Errorf("health.reliability_window must be at least 1")
	}
	if cfg.Health.StaleFactor < 1 {
		return fmt.Errorf("health.stale_factor must be at least 1")
	}
	if cfg.Health.UnavailableFactor <= cfg.Health.StaleFactor {
		return fmt.Errorf("health.unavailable_factor must be greater than stale_factor")
	}
	if cfg.Health.MaxConsecutiveFailures < 1 {
		return fmt.Errorf("health.max_consecutive_failures must be at least 1")
	}
	if cfg.Health.ReliabilityThreshold < 0 || cfg.Health.ReliabilityThreshold > 100 {
		return fmt.Errorf("health.reliability_threshold must be between 0 and 100")
	}

	// validate sources
	names := make(map[string]bool, len(cfg.Sources))
	for i, src := range cfg.Sources {
		if src.Name == "" {
			return fmt.Errorf("sources[%d].name is required", i)
		}
		if names[src.Name] {
			return fmt.Errorf("duplicate source name %q", src.Name)
		}
		names[src.Name] = true
		if src.URL == "" {
			return fmt.Errorf("source %q: url is required", src.Name)
		}
		if _, err := domain.ParseSyncKind(src.Kind); err != nil {
			return fmt.Errorf("source %q: %w", src.Name, err)
		}
		if src.Interval < time.Minute {
			return fmt.Errorf("source %q: interval must be at least 1 minute", src.Name)
		}
	}

	return nil
}

// DomainSources converts source configs into domain sources
func (c *Config) DomainSources() ([]domain.Source, error) {
	res := make([]domain.Source, 0, len(c.Sources))
	for _, s := range c.Sources {
		kind, err := domain.ParseSyncKind(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", s.Name, err)
		}
		timeout := s.Timeout
		if timeout == 0 {
			timeout = c.Fetch.Timeout
		}
		res = append(res, domain.Source{Name: s.Name, Kind: kind, URL: s.URL, Interval: s.Interval, Timeout: timeout})
	}
	return res, nil
}
