package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/meteoscope/pkg/domain"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func TestRepositories_Init(t *testing.T) {
	repos := setupTestDB(t)
	require.NoError(t, repos.Ping(context.Background()))

	for _, table := range []string{"forecasts", "alerts", "snapshots", "source_health", "fetch_attempts"} {
		var count int
		err := repos.DB.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s", table)
	}
}

func TestSnapshotRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	snap, err := repos.Snapshot.GetSnapshot(ctx, "forecast-xml")
	require.NoError(t, err)
	assert.Nil(t, snap)

	fetched := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Snapshot.SaveSnapshot(ctx, domain.ContentSnapshot{Source: "forecast-xml", Hash: "h1",
		Payload: []byte("<a/>"), FetchedAt: fetched}))
	require.NoError(t, repos.Snapshot.SaveSnapshot(ctx, domain.ContentSnapshot{Source: "forecast-xml", Hash: "h2",
		Payload: []byte("<b/>"), Partial: true, FetchedAt: fetched.Add(time.Hour)}))

	snap, err = repos.Snapshot.GetSnapshot(ctx, "forecast-xml")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "h2", snap.Hash)
	assert.Equal(t, []byte("<b/>"), snap.Payload)
	assert.True(t, snap.Partial)
	assert.True(t, snap.FetchedAt.Equal(fetched.Add(time.Hour)))
}

func TestHealthRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	h, attempts, err := repos.Health.LoadHealth(ctx, "alert-rss", 50)
	require.NoError(t, err)
	assert.Nil(t, h)
	assert.Empty(t, attempts)

	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	for i := range 5 {
		attempt := domain.FetchAttempt{Source: "alert-rss", StartedAt: now.Add(time.Duration(i) * time.Minute),
			Latency: time.Duration(i+1) * time.Second}
		if i == 2 {
			attempt.Outcome = domain.FailureTimeout
			attempt.Retries = 2
		}
		health := domain.SourceHealth{Source: "alert-rss", Kind: domain.SyncEvent, Interval: 10 * time.Minute,
			Attempts: i + 1, LastSuccess: &now, LastDecode: domain.DecodePartial, Quality: domain.QualityPartial, UpdatedAt: now}
		require.NoError(t, repos.Health.SaveHealth(ctx, attempt, health))
	}

	h, attempts, err = repos.Health.LoadHealth(ctx, "alert-rss", 3)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, 5, h.Attempts)
	assert.Equal(t, 10*time.Minute, h.Interval)
	assert.Equal(t, domain.QualityPartial, h.Quality)
	assert.Equal(t, domain.DecodePartial, h.LastDecode)
	require.NotNil(t, h.LastSuccess)
	assert.True(t, h.LastSuccess.Equal(now))
	assert.Nil(t, h.LastFailure)

	require.Len(t, attempts, 3, "window limits loaded attempts")
	assert.Equal(t, domain.FailureTimeout, attempts[0].Outcome)
	assert.Equal(t, 2, attempts[0].Retries)
	assert.Equal(t, 5*time.Second, attempts[2].Latency, "oldest first")
}

func TestHealthRepository_PrunesAttemptLog(t *testing.T) {
	repos := setupTestDB(t)
	repos.Health.keepTotal = 3
	ctx := context.Background()

	for range 6 {
		require.NoError(t, repos.Health.SaveHealth(ctx, domain.FetchAttempt{Source: "s", StartedAt: time.Now()},
			domain.SourceHealth{Source: "s", UpdatedAt: time.Now()}))
	}
	var count int
	require.NoError(t, repos.DB.Get(&count, "SELECT COUNT(*) FROM fetch_attempts WHERE source = 's'"))
	assert.Equal(t, 3, count)
}

func TestRepositories_Ping(t *testing.T) {
	repos := setupTestDB(t)
	require.NoError(t, repos.Ping(context.Background()))

	require.NoError(t, repos.Close())
	require.Error(t, repos.Ping(context.Background()), "closed database fails ping")
}

func TestCriticalError(t *testing.T) {
	err := &criticalError{err: errors.New("constraint failed")}
	assert.ErrorIs(t, err, &criticalError{})
	assert.Equal(t, "constraint failed", err.Error())
	assert.True(t, isLockError(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.False(t, isLockError(errors.New("no such table")))
	assert.False(t, isLockError(nil))
}
