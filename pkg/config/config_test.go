package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/meteoscope/pkg/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

fetch:
  timeout: 5s
  retry:
    attempts: 4
    initial_delay: 1s
    max_delay: 20s

health:
  reliability_window: 20
  reliability_threshold: 90

sources:
  - name: forecast
    kind: state
    url: https://example.com/forecast.xml
    interval: 30m
  - name: alerts
    kind: event
    url: https://example.com/alerts.rss
    interval: 5m
    timeout: 3s
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 4, cfg.Fetch.Retry.Attempts)
		assert.Equal(t, time.Second, cfg.Fetch.Retry.InitialDelay)
		assert.Equal(t, 20, cfg.Health.ReliabilityWindow)
		assert.InDelta(t, 90.0, cfg.Health.ReliabilityThreshold, 0.001)
		assert.InDelta(t, 1.5, cfg.Health.StaleFactor, 0.001)
		require.Len(t, cfg.Sources, 2)
		assert.Equal(t, "forecast", cfg.Sources[0].Name)
		assert.Equal(t, 5*time.Minute, cfg.Sources[1].Interval)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8081", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, 3, cfg.Fetch.Retry.Attempts)
		assert.Equal(t, 50, cfg.Health.ReliabilityWindow)
		assert.Equal(t, 3, cfg.Health.MaxConsecutiveFailures)
		assert.InDelta(t, 6.0, cfg.Health.UnavailableFactor, 0.001)
		assert.Equal(t, 24*time.Hour, cfg.Alerts.DefaultValidity)

		require.Len(t, cfg.Sources, 2)
		assert.Equal(t, "forecast-xml", cfg.Sources[0].Name)
		assert.Equal(t, DefaultForecastURL, cfg.Sources[0].URL)
		assert.Equal(t, time.Hour, cfg.Sources[0].Interval)
		assert.Equal(t, "alert-rss", cfg.Sources[1].Name)
		assert.Equal(t, 10*time.Minute, cfg.Sources[1].Interval)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("METEO_FORECAST_URL", "https://mirror.example.com/forecast.xml")
		cfg, err := Load(writeConfig(t, `
sources:
  - name: forecast
    kind: state
    url: ${METEO_FORECAST_URL}
    interval: 1h
`))
		require.NoError(t, err)
		assert.Equal(t, "https://mirror.example.com/forecast.xml", cfg.Sources[0].URL)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "bad kind", mutate: func(c *Config) { c.Sources[0].Kind = "stream" }, errMsg: "unknown sync kind"},
		{name: "duplicate name", mutate: func(c *Config) { c.Sources[1].Name = c.Sources[0].Name }, errMsg: "duplicate source name"},
		{name: "missing url", mutate: func(c *Config) { c.Sources[0].URL = "" }, errMsg: "url is required"},
		{name: "short interval", mutate: func(c *Config) { c.Sources[0].Interval = time.Second }, errMsg: "interval must be at least"},
		{name: "factors", mutate: func(c *Config) { c.Health.UnavailableFactor = 1 }, errMsg: "unavailable_factor"},
		{name: "threshold", mutate: func(c *Config) { c.Health.ReliabilityThreshold = 120 }, errMsg: "reliability_threshold"},
		{name: "jitter", mutate: func(c *Config) { c.Fetch.Retry.Jitter = 2 }, errMsg: "jitter"},
		{name: "server timeout", mutate: func(c *Config) { c.Server.Timeout = time.Millisecond }, errMsg: "server timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_DomainSources(t *testing.T) {
	cfg := Default()
	cfg.Sources[1].Timeout = 2 * time.Second

	sources, err := cfg.DomainSources()
	require.NoError(t, err)
	require.Len(t, sources, 2)

	assert.Equal(t, domain.Source{Name: "forecast-xml", Kind: domain.SyncState, URL: DefaultForecastURL,
		Interval: time.Hour, Timeout: 15 * time.Second}, sources[0])
	assert.Equal(t, domain.SyncEvent, sources[1].Kind)
	assert.Equal(t, 2*time.Second, sources[1].Timeout)

	cfg.Sources[0].Kind = "bad"
	_, err = cfg.DomainSources()
	require.Error(t, err)
}
