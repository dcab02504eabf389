package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: configPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	forecast, err := os.ReadFile("testdata/forecast.xml")
	require.NoError(t, err)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write(forecast)
	}))
	defer upstream.Close()

	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")
	configContent := fmt.Sprintf(`
server:
  listen: "127.0.0.1:%d"
  timeout: 5s
fetch:
  timeout: 2s
  retry:
    attempts: 1
sources:
  - name: forecast-xml
    kind: state
    url: %s/forecast.xml
    interval: 1h
`, port, upstream.URL)
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: configPath, DBPath: filepath.Join(tmpDir, "meteo.db")}) }()

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	get := func(path string) (int, string) {
		resp, err := http.Get(base + path)
		if err != nil {
			return 0, ""
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(body)
	}

	require.Eventually(t, func() bool {
		code, body := get("/ping")
		return code == http.StatusOK && body == "pong"
	}, 5*time.Second, 50*time.Millisecond, "server is not responding")

	// the first cycle runs on start and stores the forecast
	require.Eventually(t, func() bool {
		code, body := get("/api/v1/regions")
		return code == http.StatusOK && strings.Contains(body, "Bucuresti")
	}, 5*time.Second, 50*time.Millisecond, "forecast is not ingested")

	// health is recorded right after the records are applied
	assert.Eventually(t, func() bool {
		code, body := get("/api/v1/forecast/Bucuresti")
		return code == http.StatusOK && strings.Contains(body, `"data_quality":"Valid"`)
	}, 5*time.Second, 50*time.Millisecond)

	assert.Eventually(t, func() bool {
		code, body := get("/api/v1/status")
		return code == http.StatusOK && strings.Contains(body, `"status":"healthy"`)
	}, 5*time.Second, 50*time.Millisecond)

	code, body := get("/api/v1/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"database":"connected"`)
	assert.Contains(t, body, `"scheduler":"running"`)

	code, body = get("/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `meteoscope_source_quality{quality="Valid",source="forecast-xml"} 1`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server shutdown timeout")
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		SetupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		SetupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		SetupLog(true, "secret1", "secret2")
	})
}
