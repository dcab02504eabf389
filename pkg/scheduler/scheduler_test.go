package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/meteoscope/pkg/decode"
	"github.com/umputun/meteoscope/pkg/domain"
	"github.com/umputun/meteoscope/pkg/health"
	"github.com/umputun/meteoscope/pkg/metrics"
	"github.com/umputun/meteoscope/pkg/scheduler/mocks"
	"github.com/umputun/meteoscope/pkg/verify"
)

var (
	forecastSrc = domain.Source{Name: "forecast-xml", Kind: domain.SyncState, URL: "http://example.com/f.xml", Interval: time.Hour}
	alertSrc    = domain.Source{Name: "alert-rss", Kind: domain.SyncEvent, URL: "http://example.com/a.rss", Interval: 10 * time.Minute}
)

type pipeline struct {
	fetcher    *mocks.FetcherMock
	verifier   *mocks.VerifierMock
	decoder    *mocks.DecoderMock
	reconciler *mocks.ReconcilerMock
	health     *mocks.HealthTrackerMock
	clock      *clockwork.FakeClock
}

// newPipeline makes mocks for a successful changed cycle
func newPipeline() *pipeline {
	p := &pipeline{clock: clockwork.NewFakeClockAt(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))}
	p.fetcher = &mocks.FetcherMock{FetchFunc: func(context.Context, domain.Source) domain.FetchOutcome {
		return domain.FetchOutcome{Success: true, Payload: []byte("<x/>"), Latency: 200 * time.Millisecond, AttemptsUsed: 1}
	}}
	p.verifier = &mocks.VerifierMock{
		CheckFunc: func(context.Context, string, []byte) (verify.Result, error) {
			return verify.Result{Verdict: domain.VerdictChanged, Hash: "h1"}, nil
		},
		AcceptFunc: func(context.Context, domain.ContentSnapshot) error { return nil },
	}
	p.decoder = &mocks.DecoderMock{DecodeFunc: func(kind domain.SyncKind, _ []byte, meta decode.Meta) (decode.Result, error) {
		return decode.Result{Kind: kind, Forecasts: []domain.ForecastRecord{{Region: "Arad", SnapshotHash: meta.SnapshotHash}},
			Total: 2, Valid: 1, Partial: true}, nil
	}}
	p.reconciler = &mocks.ReconcilerMock{ApplyFunc: func(context.Context, decode.Result) (domain.ApplyResult, error) {
		return domain.ApplyResult{Inserted: 1}, nil
	}}
	p.health = &mocks.HealthTrackerMock{RecordFunc: func(_ context.Context, obs health.Observation) (domain.SourceHealth, error) {
		return domain.SourceHealth{Source: obs.Attempt.Source, Quality: domain.QualityValid}, nil
	}}
	return p
}

func (p *pipeline) scheduler(sources ...domain.Source) *Scheduler {
	return NewScheduler(Params{Sources: sources, Fetcher: p.fetcher, Verifier: p.verifier, Decoder: p.decoder,
		Reconciler: p.reconciler, Health: p.health, Metrics: metrics.NewMetricsForTesting(), Clock: p.clock})
}

func TestScheduler_RunOnce_Changed(t *testing.T) {
	p := newPipeline()
	s := p.scheduler(forecastSrc)

	res, err := s.RunOnce(context.Background(), "forecast-xml")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictChanged, res.Verdict)
	assert.Equal(t, domain.DecodePartial, res.Decode)
	assert.Equal(t, domain.ApplyResult{Inserted: 1}, res.Applied)
	assert.Equal(t, 1, res.Attempts)
	assert.Empty(t, res.Error)

	require.Len(t, p.decoder.DecodeCalls(), 1)
	assert.Equal(t, domain.SyncState, p.decoder.DecodeCalls()[0].Kind)
	assert.Equal(t, "h1", p.decoder.DecodeCalls()[0].Meta.SnapshotHash)

	require.Len(t, p.verifier.AcceptCalls(), 1)
	snap := p.verifier.AcceptCalls()[0].Snap
	assert.Equal(t, "h1", snap.Hash)
	assert.True(t, snap.Partial)
	assert.Equal(t, []byte("<x/>"), snap.Payload)

	require.Len(t, p.health.RecordCalls(), 1)
	obs := p.health.RecordCalls()[0].Obs
	assert.True(t, obs.Attempt.Succeeded())
	assert.Equal(t, domain.VerdictChanged, obs.Verdict)
	assert.Equal(t, domain.DecodePartial, obs.Decode)

	assert.Equal(t, []domain.CycleResult{res}, s.Results())
}

func TestScheduler_RunOnce_Unchanged(t *testing.T) {
	for _, partial := range []bool{false, true} {
		p := newPipeline()
		p.verifier.CheckFunc = func(context.Context, string, []byte) (verify.Result, error) {
			return verify.Result{Verdict: domain.VerdictUnchanged, Hash: "h1",
				Previous: &domain.ContentSnapshot{Hash: "h1", Partial: partial}}, nil
		}
		s := p.scheduler(forecastSrc)

		res, err := s.RunOnce(context.Background(), "forecast-xml")
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictUnchanged, res.Verdict)
		assert.Empty(t, p.decoder.DecodeCalls(), "heartbeat is not decoded")
		assert.Empty(t, p.reconciler.ApplyCalls())
		assert.Empty(t, p.verifier.AcceptCalls())

		require.Len(t, p.health.RecordCalls(), 1)
		want := domain.DecodeOK
		if partial {
			want = domain.DecodePartial
		}
		assert.Equal(t, want, p.health.RecordCalls()[0].Obs.Decode)
	}
}

func TestScheduler_RunOnce_Invalid(t *testing.T) {
	p := newPipeline()
	p.verifier.CheckFunc = func(context.Context, string, []byte) (verify.Result, error) {
		return verify.Result{Verdict: domain.VerdictInvalid, Hash: "bad", Reason: "integrity failure: unclosed elements"}, nil
	}
	s := p.scheduler(alertSrc)

	res, err := s.RunOnce(context.Background(), "alert-rss")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictInvalid, res.Verdict)
	assert.Equal(t, domain.DecodeFailed, res.Decode)
	assert.Contains(t, res.Error, "unclosed")
	assert.Empty(t, p.decoder.DecodeCalls())
	assert.Empty(t, p.verifier.AcceptCalls(), "invalid payload never stored")

	obs := p.health.RecordCalls()[0].Obs
	assert.True(t, obs.Attempt.Succeeded(), "upstream answered")
	assert.Equal(t, domain.VerdictInvalid, obs.Verdict)
}

func TestScheduler_RunOnce_DecodeFailure(t *testing.T) {
	p := newPipeline()
	p.decoder.DecodeFunc = func(domain.SyncKind, []byte, decode.Meta) (decode.Result, error) {
		return decode.Result{}, errors.New("decode failure: no usable entries")
	}
	s := p.scheduler(forecastSrc)

	res, err := s.RunOnce(context.Background(), "forecast-xml")
	require.NoError(t, err)
	assert.Equal(t, domain.DecodeFailed, res.Decode)
	assert.Empty(t, p.reconciler.ApplyCalls())
	assert.Empty(t, p.verifier.AcceptCalls())
	assert.Equal(t, domain.DecodeFailed, p.health.RecordCalls()[0].Obs.Decode)
}

func TestScheduler_RunOnce_TransportFailure(t *testing.T) {
	p := newPipeline()
	p.fetcher.FetchFunc = func(context.Context, domain.Source) domain.FetchOutcome {
		return domain.FetchOutcome{AttemptsUsed: 3, Latency: 4 * time.Second, FailureKind: domain.FailureTimeout,
			Err: errors.New("transient network failure: deadline exceeded")}
	}
	s := p.scheduler(alertSrc)

	res, err := s.RunOnce(context.Background(), "alert-rss")
	require.NoError(t, err)
	assert.Equal(t, domain.FailureTimeout, res.Failure)
	assert.Equal(t, 3, res.Attempts)
	assert.Contains(t, res.Error, "deadline exceeded")
	assert.Empty(t, p.verifier.CheckCalls())

	obs := p.health.RecordCalls()[0].Obs
	assert.Equal(t, domain.FailureTimeout, obs.Attempt.Outcome)
	assert.Equal(t, 2, obs.Attempt.Retries)
	assert.Equal(t, 4*time.Second, obs.Attempt.Latency)
}

func TestScheduler_RunOnce_StoreFailure(t *testing.T) {
	p := newPipeline()
	p.reconciler.ApplyFunc = func(context.Context, decode.Result) (domain.ApplyResult, error) {
		return domain.ApplyResult{}, errors.New("database is locked")
	}
	s := p.scheduler(forecastSrc)

	res, err := s.RunOnce(context.Background(), "forecast-xml")
	require.NoError(t, err)
	assert.Contains(t, res.Error, "database is locked")
	assert.Empty(t, p.verifier.AcceptCalls(), "snapshot not moved past unapplied records")
	assert.Empty(t, p.health.RecordCalls(), "store failure is not a source failure")
}

func TestScheduler_RunOnce_Cancelled(t *testing.T) {
	p := newPipeline()
	ctx, cancel := context.WithCancel(context.Background())
	p.fetcher.FetchFunc = func(ctx context.Context, _ domain.Source) domain.FetchOutcome {
		cancel()
		return domain.FetchOutcome{AttemptsUsed: 1, FailureKind: domain.FailureNetwork, Err: ctx.Err()}
	}
	s := p.scheduler(forecastSrc)

	res, err := s.RunOnce(ctx, "forecast-xml")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", res.Error)
	assert.Empty(t, p.health.RecordCalls())
}

func TestScheduler_UnknownSource(t *testing.T) {
	s := newPipeline().scheduler(forecastSrc)
	_, err := s.RunOnce(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrUnknownSource)
	require.ErrorIs(t, s.TriggerNow("nope"), domain.ErrUnknownSource)
}

func TestScheduler_TriggerNotRunning(t *testing.T) {
	s := newPipeline().scheduler(forecastSrc)
	require.ErrorIs(t, s.TriggerNow("forecast-xml"), ErrNotRunning)
}

func TestScheduler_Running(t *testing.T) {
	s := newPipeline().scheduler(forecastSrc)
	assert.False(t, s.Running(), "not started")
	s.Start(context.Background())
	assert.True(t, s.Running())
	s.Stop()
	assert.False(t, s.Running(), "stopped")
}

func TestScheduler_TriggerRejectedWhileInFlight(t *testing.T) {
	p := newPipeline()
	release := make(chan struct{})
	var fetches atomic.Int32
	p.fetcher.FetchFunc = func(ctx context.Context, _ domain.Source) domain.FetchOutcome {
		fetches.Add(1)
		select {
		case <-release:
		case <-ctx.Done():
		}
		return domain.FetchOutcome{Success: true, Payload: []byte("<x/>"), AttemptsUsed: 1}
	}
	s := p.scheduler(forecastSrc, alertSrc)
	s.Start(context.Background())
	defer s.Stop()

	require.NoError(t, s.TriggerNow("forecast-xml"))
	require.Eventually(t, func() bool { return fetches.Load() == 1 }, time.Second, 5*time.Millisecond)

	err := s.TriggerNow("forecast-xml")
	require.ErrorIs(t, err, domain.ErrCycleInProgress)
	_, err = s.RunOnce(context.Background(), "forecast-xml")
	require.ErrorIs(t, err, domain.ErrCycleInProgress)

	// scheduled tick finding a cycle in flight is skipped
	s.tick(context.Background(), s.workers["forecast-xml"])
	assert.Equal(t, int32(1), fetches.Load())

	// other sources are independent
	triggers := s.TriggerAll()
	require.ErrorIs(t, triggers["forecast-xml"], domain.ErrCycleInProgress)
	require.NoError(t, triggers["alert-rss"])

	close(release)
	require.Eventually(t, func() bool { return len(s.Results()) == 2 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return s.TriggerNow("forecast-xml") == nil }, time.Second, 5*time.Millisecond,
		"accepted again after the cycle completed")
}

func TestScheduler_PeriodicCycles(t *testing.T) {
	p := newPipeline()
	s := p.scheduler(forecastSrc, alertSrc)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Start(ctx)
	defer s.Stop()

	require.NoError(t, p.clock.BlockUntilContext(ctx, 2), "both tickers registered")
	assert.Empty(t, p.fetcher.FetchCalls(), "no cycle before the first tick")

	p.clock.Advance(10 * time.Minute)
	require.Eventually(t, func() bool { return len(p.fetcher.FetchCalls()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "alert-rss", p.fetcher.FetchCalls()[0].Src.Name)

	p.clock.Advance(50 * time.Minute)
	require.Eventually(t, func() bool { return len(p.fetcher.FetchCalls()) >= 3 }, time.Second, 5*time.Millisecond)

	names := map[string]int{}
	for _, c := range p.fetcher.FetchCalls() {
		names[c.Src.Name]++
	}
	assert.Equal(t, 1, names["forecast-xml"])
	assert.GreaterOrEqual(t, names["alert-rss"], 2)
}

func TestScheduler_RunOnStart(t *testing.T) {
	p := newPipeline()
	s := NewScheduler(Params{Sources: []domain.Source{forecastSrc, alertSrc}, Fetcher: p.fetcher, Verifier: p.verifier,
		Decoder: p.decoder, Reconciler: p.reconciler, Health: p.health, Clock: p.clock, RunOnStart: true})
	s.Start(context.Background())
	require.Eventually(t, func() bool { return len(s.Results()) == 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	res := s.Results()
	assert.Equal(t, "alert-rss", res[0].Source)
	assert.Equal(t, "forecast-xml", res[1].Source)
	assert.Len(t, s.Sources(), 2)
	require.ErrorIs(t, s.TriggerNow("alert-rss"), ErrNotRunning, "stopped scheduler rejects triggers")
}
