// Package health keeps the per-source health record and derives its data quality.
// Tracker is the only writer of SourceHealth.
package health

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/jonboulle/clockwork"

	"github.com/umputun/meteoscope/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store persists health records and the attempt log
type Store interface {
	SaveHealth(ctx context.Context, attempt domain.FetchAttempt, health domain.SourceHealth) error
	LoadHealth(ctx context.Context, source string, window int) (*domain.SourceHealth, []domain.FetchAttempt, error)
}

// Config defines the classification constants
type Config struct {
	Window                 int     // attempts kept for reliability and latency
	StaleFactor            float64 // stale after Interval*StaleFactor without success
	UnavailableFactor      float64 // unavailable after Interval*UnavailableFactor without success
	MaxConsecutiveFailures int     // unavailable at this many consecutive transport failures
}

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{Window: 50, StaleFactor: 1.5, UnavailableFactor: 6, MaxConsecutiveFailures: 3}
}

// Observation is the outcome of one fetch cycle as seen by the tracker
type Observation struct {
	Attempt domain.FetchAttempt
	Verdict domain.Verdict     // empty when the transport failed
	Decode  domain.DecodeState // decode state of the content now being served
	Error   string
}

type sourceState struct {
	src    domain.Source
	since  time.Time // tracking start, reference point before the first success
	window []domain.FetchAttempt
	health domain.SourceHealth
}

// Tracker maintains per-source health
type Tracker struct {
	store Store
	cfg   Config
	clock clockwork.Clock

	mu      sync.RWMutex
	sources map[string]*sourceState
}

// NewTracker makes a tracker for the given sources
func NewTracker(store Store, cfg Config, clock clockwork.Clock, sources ...domain.Source) *Tracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	def := DefaultConfig()
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.StaleFactor <= 0 {
		cfg.StaleFactor = def.StaleFactor
	}
	if cfg.UnavailableFactor <= 0 {
		cfg.UnavailableFactor = def.UnavailableFactor
	}
	if cfg.MaxConsecutiveFailures <= 0 {
		cfg.MaxConsecutiveFailures = def.MaxConsecutiveFailures
	}

	t := &Tracker{store: store, cfg: cfg, clock: clock, sources: make(map[string]*sourceState, len(sources))}
	now := clock.Now()
	for _, src := range sources {
		st := &sourceState{src: src, since: now}
		st.health = domain.SourceHealth{Source: src.Name, Kind: src.Kind, Interval: src.Interval}
		st.health.Quality = t.classify(st, now)
		t.sources[src.Name] = st
	}
	return t
}

// Restore loads persisted health and attempt windows for all sources
func (t *Tracker) Restore(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, st := range t.sources {
		h, attempts, err := t.store.LoadHealth(ctx, name, t.cfg.Window)
		if err != nil {
			return fmt.Errorf("load health for %s: %w", name, err)
		}
		if h == nil {
			continue
		}
		st.health = *h
		st.health.Kind, st.health.Interval = st.src.Kind, st.src.Interval
		st.window = attempts
		t.recount(st)
		st.health.Quality = t.classify(st, t.clock.Now())
		lgr.Printf("[DEBUG] restored health for %s: %s, %d attempts in window", name, st.health.Quality, len(attempts))
	}
	return nil
}

// Record applies one observation to the source's health and persists it
func (t *Tracker) Record(ctx context.Context, obs Observation) (domain.SourceHealth, error) {
	t.mu.Lock()
	st, ok := t.sources[obs.Attempt.Source]
	if !ok {
		t.mu.Unlock()
		return domain.SourceHealth{}, fmt.Errorf("%w: %s", domain.ErrUnknownSource, obs.Attempt.Source)
	}

	now := t.clock.Now()
	h := &st.health
	h.LastAttempt = &now
	st.window = append(st.window, obs.Attempt)
	if len(st.window) > t.cfg.Window {
		st.window = st.window[len(st.window)-t.cfg.Window:]
	}

	switch {
	case !obs.Attempt.Succeeded():
		h.ConsecutiveFailures++
		h.LastFailure = &now
		h.LastError = obs.Error
	case obs.Verdict == domain.VerdictInvalid || obs.Decode == domain.DecodeFailed:
		// upstream answered, but with content we can't use
		h.ConsecutiveFailures = 0
		h.LastDecode = domain.DecodeFailed
		h.LastError = obs.Error
	default:
		h.ConsecutiveFailures = 0
		h.LastSuccess = &now
		h.LastDecode = obs.Decode
		h.LastError = ""
	}

	t.recount(st)
	h.Quality = t.classify(st, now)
	h.UpdatedAt = now
	res := *h
	t.mu.Unlock()

	if err := t.store.SaveHealth(ctx, obs.Attempt, res); err != nil {
		return res, fmt.Errorf("save health for %s: %w", res.Source, err)
	}
	return res, nil
}

// Get returns current health of a source, quality evaluated at the current time
func (t *Tracker) Get(name string) (domain.SourceHealth, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	st, ok := t.sources[name]
	if !ok {
		return domain.SourceHealth{}, false
	}
	h := st.health
	h.Quality = t.classify(st, t.clock.Now())
	return h, true
}

// Snapshot returns health of all sources ordered by name
func (t *Tracker) Snapshot() []domain.SourceHealth {
	t.mu.RLock()
	defer t.mu.RUnlock()
	now := t.clock.Now()
	res := make([]domain.SourceHealth, 0, len(t.sources))
	for _, st := range t.sources {
		h := st.health
		h.Quality = t.classify(st, now)
		res = append(res, h)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Source < res[j].Source })
	return res
}

// recount refreshes window-derived counters
func (t *Tracker) recount(st *sourceState) {
	var successes int
	var total time.Duration
	for _, a := range st.window {
		if a.Succeeded() {
			successes++
		}
		total += a.Latency
	}
	st.health.Attempts = len(st.window)
	st.health.Successes = successes
	st.health.AvgResponse = 0
	if len(st.window) > 0 {
		st.health.AvgResponse = total / time.Duration(len(st.window))
	}
}

// classify derives data quality, the first matching rule wins
func (t *Tracker) classify(st *sourceState, now time.Time) domain.DataQuality {
	h := st.health
	interval := st.src.Interval
	staleAfter := time.Duration(float64(interval) * t.cfg.StaleFactor)
	unavailableAfter := time.Duration(float64(interval) * t.cfg.UnavailableFactor)

	ref := st.since
	if h.LastSuccess != nil {
		ref = *h.LastSuccess
	}
	age := now.Sub(ref)

	switch {
	case h.ConsecutiveFailures >= t.cfg.MaxConsecutiveFailures:
		return domain.QualityUnavailable
	case age > unavailableAfter:
		return domain.QualityUnavailable
	case h.LastDecode == domain.DecodeFailed:
		return domain.QualityInvalid
	case h.LastSuccess == nil:
		return domain.QualityStale
	case age > staleAfter:
		return domain.QualityStale
	case h.LastDecode == domain.DecodePartial:
		return domain.QualityPartial
	default:
		return domain.QualityValid
	}
}
