package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/meteoscope/pkg/domain"
	"github.com/umputun/meteoscope/pkg/service"
	"github.com/umputun/meteoscope/server/mocks"
)

func TestServer_rssAlertsHandler(t *testing.T) {
	alerts := []domain.AlertRecord{
		{ExternalID: "ro-1", Title: "Cod portocaliu de ninsori", Severity: domain.SeverityOrange, SeverityKnown: true,
			Description: "Ninsori abundente", Zones: "Brasov, Covasna",
			ValidFrom:   time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC),
			ValidUntil:  time.Date(2026, 1, 13, 10, 0, 0, 0, time.UTC),
			PublishedAt: time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)},
	}

	t.Run("all levels", func(t *testing.T) {
		weather := &mocks.WeatherServiceMock{
			ActiveAlertsFunc: func(ctx context.Context, filter domain.AlertFilter) (service.AlertList, error) {
				return service.AlertList{Alerts: alerts, Count: len(alerts), Quality: domain.QualityValid}, nil
			},
		}
		w := serve(t, weather, http.MethodGet, "/rss/alerts")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))

		require.Len(t, weather.ActiveAlertsCalls(), 1)
		assert.Equal(t, domain.AlertFilter{Limit: rssAlertsLimit}, weather.ActiveAlertsCalls()[0].Filter)

		parsed, err := gofeed.NewParser().Parse(strings.NewReader(w.Body.String()))
		require.NoError(t, err)
		assert.Equal(t, "Meteoscope - Active Weather Alerts", parsed.Title)
		require.NotNil(t, parsed.UpdatedParsed)
		assert.True(t, testNow.Equal(*parsed.UpdatedParsed), "build date from the server clock, got %v", parsed.UpdatedParsed)
		require.Len(t, parsed.Items, 1)
		assert.Equal(t, "[ORANGE] Cod portocaliu de ninsori", parsed.Items[0].Title)
		assert.Contains(t, parsed.Items[0].Description, "Zones: Brasov, Covasna")
	})

	t.Run("level filter", func(t *testing.T) {
		weather := &mocks.WeatherServiceMock{
			ActiveAlertsFunc: func(ctx context.Context, filter domain.AlertFilter) (service.AlertList, error) {
				return service.AlertList{Quality: domain.QualityValid}, nil
			},
		}
		w := serve(t, weather, http.MethodGet, "/rss/alerts?level=red")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.SeverityRed, weather.ActiveAlertsCalls()[0].Filter.Level)
		assert.Contains(t, w.Body.String(), "Meteoscope - Active RED Weather Alerts")
		assert.Contains(t, w.Body.String(), "http://meteo.example.com/rss/alerts?level=RED")
	})

	t.Run("store error", func(t *testing.T) {
		weather := &mocks.WeatherServiceMock{
			ActiveAlertsFunc: func(ctx context.Context, filter domain.AlertFilter) (service.AlertList, error) {
				return service.AlertList{}, errors.New("db closed")
			},
		}
		w := serve(t, weather, http.MethodGet, "/rss/alerts")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to generate RSS feed")
	})
}
