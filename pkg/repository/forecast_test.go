package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/meteoscope/pkg/domain"
)

func fp(v float64) *float64 { return &v }

func TestForecastRepository_ApplyForecasts(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	t0 := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	full := domain.ForecastRecord{Region: "Bucuresti", Date: "2026-10-19", TempMin: fp(5), TempMax: fp(14),
		Condition: "Clear Sky", SnapshotHash: "h1", FetchedAt: t0}
	other := domain.ForecastRecord{Region: "Iasi", Date: "2026-10-19", TempMin: fp(1), TempMax: fp(9),
		Condition: "Fog", SnapshotHash: "h1", FetchedAt: t0}

	res, err := repos.Forecast.ApplyForecasts(ctx, []domain.ForecastRecord{full, other})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplyResult{Inserted: 2}, res)

	t.Run("identical re-apply is a no-op", func(t *testing.T) {
		again := full
		again.FetchedAt = t0.Add(time.Hour)
		again.SnapshotHash = "h2"
		res, err := repos.Forecast.ApplyForecasts(ctx, []domain.ForecastRecord{again})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplyResult{Unchanged: 1}, res)

		stored, err := repos.Forecast.GetForecast(ctx, "Bucuresti", "2026-10-19")
		require.NoError(t, err)
		assert.True(t, stored.FetchedAt.Equal(t0))
		assert.Equal(t, "h1", stored.SnapshotHash)
	})

	t.Run("newer partial replaces older complete", func(t *testing.T) {
		partial := domain.ForecastRecord{Region: "Bucuresti", Date: "2026-10-19", TempMin: nil, TempMax: fp(16),
			Condition: "Cloudy", Partial: true, SnapshotHash: "h3", FetchedAt: t0.Add(2 * time.Hour)}
		res, err := repos.Forecast.ApplyForecasts(ctx, []domain.ForecastRecord{partial})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplyResult{Updated: 1}, res)

		stored, err := repos.Forecast.GetForecast(ctx, "Bucuresti", "2026-10-19")
		require.NoError(t, err)
		assert.Nil(t, stored.TempMin)
		require.NotNil(t, stored.TempMax)
		assert.InDelta(t, 16.0, *stored.TempMax, 0.001)
		assert.True(t, stored.Partial)
		assert.Equal(t, "h3", stored.SnapshotHash)
	})

	t.Run("older fetch never overwrites", func(t *testing.T) {
		old := full
		old.FetchedAt = t0.Add(-time.Hour)
		res, err := repos.Forecast.ApplyForecasts(ctx, []domain.ForecastRecord{old})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplyResult{Unchanged: 1}, res)

		stored, err := repos.Forecast.GetForecast(ctx, "Bucuresti", "2026-10-19")
		require.NoError(t, err)
		assert.Equal(t, "Cloudy", stored.Condition)
	})

	t.Run("missing key", func(t *testing.T) {
		stored, err := repos.Forecast.GetForecast(ctx, "Arad", "2026-10-19")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})
}

func TestForecastRepository_Atomic(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	// the trigger fails the second record, the whole batch must roll back
	_, err := repos.DB.Exec("CREATE TRIGGER fail_brasov BEFORE INSERT ON forecasts WHEN NEW.region = 'Brasov' BEGIN SELECT RAISE(ABORT, 'boom'); END")
	require.NoError(t, err)

	batch := []domain.ForecastRecord{
		{Region: "Cluj", Date: "2026-10-19", Condition: "Fog", FetchedAt: time.Now()},
		{Region: "Brasov", Date: "2026-10-19", Condition: "Fog", FetchedAt: time.Now()},
	}
	_, err = repos.Forecast.ApplyForecasts(ctx, batch)
	require.Error(t, err)

	stored, err := repos.Forecast.GetForecast(ctx, "Cluj", "2026-10-19")
	require.NoError(t, err)
	assert.Nil(t, stored, "no partial-cycle visibility")
}

func TestForecastRepository_Queries(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	now := time.Now()

	var recs []domain.ForecastRecord
	for d := 15; d <= 21; d++ {
		recs = append(recs, domain.ForecastRecord{Region: "Bucuresti", Date: time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Condition: "Clear Sky", FetchedAt: now})
	}
	recs = append(recs,
		domain.ForecastRecord{Region: "Buzau", Date: "2026-10-19", FetchedAt: now},
		domain.ForecastRecord{Region: "Cluj-Napoca", Date: "2026-10-19", FetchedAt: now},
		domain.ForecastRecord{Region: "Bu_test", Date: "2026-10-19", FetchedAt: now},
	)
	_, err := repos.Forecast.ApplyForecasts(ctx, recs)
	require.NoError(t, err)

	t.Run("five most recent days ascending", func(t *testing.T) {
		res, err := repos.Forecast.ForecastsForRegion(ctx, "Bucuresti", 5)
		require.NoError(t, err)
		require.Len(t, res, 5)
		assert.Equal(t, "2026-10-17", res[0].Date)
		assert.Equal(t, "2026-10-21", res[4].Date)
	})

	t.Run("case-insensitive fallback", func(t *testing.T) {
		res, err := repos.Forecast.ForecastsForRegion(ctx, "cluj-napoca", 5)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Cluj-Napoca", res[0].Region)
	})

	t.Run("unknown region is empty", func(t *testing.T) {
		res, err := repos.Forecast.ForecastsForRegion(ctx, "Atlantis", 5)
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("regions", func(t *testing.T) {
		res, err := repos.Forecast.Regions(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bu_test", "Bucuresti", "Buzau", "Cluj-Napoca"}, res)
	})

	t.Run("search", func(t *testing.T) {
		res, err := repos.Forecast.SearchRegions(ctx, "bu", 20)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bu_test", "Bucuresti", "Buzau"}, res)

		res, err = repos.Forecast.SearchRegions(ctx, "bu_", 20)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bu_test"}, res, "underscore is literal")

		res, err = repos.Forecast.SearchRegions(ctx, "b", 1)
		require.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("stats", func(t *testing.T) {
		st, err := repos.Forecast.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, st.Regions)
		assert.Equal(t, 10, st.Forecasts)
	})
}
