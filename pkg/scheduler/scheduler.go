// Package scheduler runs the fetch cycle of every source on its own interval.
// Each source has one worker; a source never runs two cycles at once.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/umputun/meteoscope/pkg/decode"
	"github.com/umputun/meteoscope/pkg/domain"
	"github.com/umputun/meteoscope/pkg/health"
	"github.com/umputun/meteoscope/pkg/metrics"
	"github.com/umputun/meteoscope/pkg/verify"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/verifier.go -pkg mocks -skip-ensure -fmt goimports . Verifier
//go:generate moq -out mocks/decoder.go -pkg mocks -skip-ensure -fmt goimports . Decoder
//go:generate moq -out mocks/reconciler.go -pkg mocks -skip-ensure -fmt goimports . Reconciler
//go:generate moq -out mocks/health_tracker.go -pkg mocks -skip-ensure -fmt goimports . HealthTracker

// ErrNotRunning is returned by manual triggers before Start or after Stop
var ErrNotRunning = errors.New("scheduler is not running")

// Fetcher performs one logical fetch with retries
type Fetcher interface {
	Fetch(ctx context.Context, src domain.Source) domain.FetchOutcome
}

// Verifier checks payload integrity and keeps accepted snapshots
type Verifier interface {
	Check(ctx context.Context, source string, payload []byte) (verify.Result, error)
	Accept(ctx context.Context, snap domain.ContentSnapshot) error
}

// Decoder turns a payload into records of the given kind
type Decoder interface {
	Decode(kind domain.SyncKind, payload []byte, meta decode.Meta) (decode.Result, error)
}

// Reconciler writes decoded records to the store
type Reconciler interface {
	Apply(ctx context.Context, res decode.Result) (domain.ApplyResult, error)
}

// HealthTracker receives cycle outcomes, it is the only writer of source health
type HealthTracker interface {
	Record(ctx context.Context, obs health.Observation) (domain.SourceHealth, error)
}

// Params defines dependencies and options of the scheduler
type Params struct {
	Sources    []domain.Source
	Fetcher    Fetcher
	Verifier   Verifier
	Decoder    Decoder
	Reconciler Reconciler
	Health     HealthTracker
	Metrics    *metrics.Metrics // optional
	Clock      clockwork.Clock
	RunOnStart bool // run a cycle for every source right after Start
}

// Scheduler manages periodic fetch cycles of all sources
type Scheduler struct {
	fetcher    Fetcher
	verifier   Verifier
	decoder    Decoder
	reconciler Reconciler
	health     HealthTracker
	metrics    *metrics.Metrics
	clock      clockwork.Clock
	runOnStart bool

	sources []domain.Source
	workers map[string]*worker

	mu      sync.Mutex
	ctx     context.Context // set while running, manual cycles run under it
	cancel  context.CancelFunc
	group   *errgroup.Group
	manual  sync.WaitGroup
	results map[string]domain.CycleResult
}

// worker holds per-source state; sem guards against overlapping cycles
type worker struct {
	src domain.Source
	sem *semaphore.Weighted
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.Clock == nil {
		params.Clock = clockwork.NewRealClock()
	}
	s := &Scheduler{
		fetcher:    params.Fetcher,
		verifier:   params.Verifier,
		decoder:    params.Decoder,
		reconciler: params.Reconciler,
		health:     params.Health,
		metrics:    params.Metrics,
		clock:      params.Clock,
		runOnStart: params.RunOnStart,
		sources:    params.Sources,
		workers:    make(map[string]*worker, len(params.Sources)),
		results:    make(map[string]domain.CycleResult, len(params.Sources)),
	}
	for _, src := range params.Sources {
		s.workers[src.Name] = &worker{src: src, sem: semaphore.NewWeighted(1)}
	}
	return s
}

// Start launches one worker per source
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, s.cancel = context.WithCancel(ctx)
	s.group, ctx = errgroup.WithContext(ctx)
	s.ctx = ctx

	for _, src := range s.sources {
		w := s.workers[src.Name]
		s.group.Go(func() error {
			s.run(ctx, w)
			return nil
		})
		lgr.Printf("[INFO] scheduled %s (%s) every %v, %s", src.Name, src.Kind, src.Interval, src.URL)
	}
	lgr.Printf("[INFO] scheduler started with %d sources", len(s.sources))
}

// Stop cancels all cycles and waits for workers to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	s.mu.Lock()
	cancel, group := s.cancel, s.group
	s.ctx = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if group != nil {
		if err := group.Wait(); err != nil {
			lgr.Printf("[WARN] scheduler worker error: %v", err)
		}
	}
	s.manual.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Running reports whether the scheduler is started and not stopped
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx != nil
}

// TriggerNow starts a cycle of the source in background. It returns immediately,
// domain.ErrCycleInProgress if the source is already fetching.
func (s *Scheduler) TriggerNow(source string) error {
	w, ok := s.workers[source]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSource, source)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return ErrNotRunning
	}
	if !w.sem.TryAcquire(1) {
		return fmt.Errorf("%w: %s", domain.ErrCycleInProgress, source)
	}

	ctx := s.ctx
	s.manual.Add(1)
	go func() {
		defer s.manual.Done()
		defer w.sem.Release(1)
		lgr.Printf("[INFO] manual fetch of %s", source)
		s.cycle(ctx, w.src)
	}()
	return nil
}

// TriggerAll triggers every source, result maps source name to its trigger error, nil if accepted
func (s *Scheduler) TriggerAll() map[string]error {
	res := make(map[string]error, len(s.sources))
	for _, src := range s.sources {
		res[src.Name] = s.TriggerNow(src.Name)
	}
	return res
}

// RunOnce runs a cycle of the source synchronously
func (s *Scheduler) RunOnce(ctx context.Context, source string) (domain.CycleResult, error) {
	w, ok := s.workers[source]
	if !ok {
		return domain.CycleResult{}, fmt.Errorf("%w: %s", domain.ErrUnknownSource, source)
	}
	if !w.sem.TryAcquire(1) {
		return domain.CycleResult{}, fmt.Errorf("%w: %s", domain.ErrCycleInProgress, source)
	}
	defer w.sem.Release(1)
	return s.cycle(ctx, w.src), nil
}

// Sources returns the scheduled sources
func (s *Scheduler) Sources() []domain.Source {
	res := make([]domain.Source, len(s.sources))
	copy(res, s.sources)
	return res
}

// Results returns the last cycle result of every source which ran at least once, ordered by source
func (s *Scheduler) Results() []domain.CycleResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]domain.CycleResult, 0, len(s.results))
	for _, r := range s.results {
		res = append(res, r)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Source < res[j].Source })
	return res
}

// run is the periodic loop of one source
func (s *Scheduler) run(ctx context.Context, w *worker) {
	ticker := s.clock.NewTicker(w.src.Interval)
	defer ticker.Stop()

	if s.runOnStart {
		s.tick(ctx, w)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.tick(ctx, w)
		}
	}
}

// tick runs a scheduled cycle unless one is already in flight for the source
func (s *Scheduler) tick(ctx context.Context, w *worker) {
	if !w.sem.TryAcquire(1) {
		lgr.Printf("[DEBUG] cycle of %s still running, scheduled trigger skipped", w.src.Name)
		if s.metrics != nil {
			s.metrics.CycleSkipped(w.src.Name)
		}
		return
	}
	defer w.sem.Release(1)
	s.cycle(ctx, w.src)
}

// cycle runs fetch, verify, decode and reconcile for the source, then reports to the health tracker.
// Pipeline failures end up in health; store failures are logged and leave health untouched.
func (s *Scheduler) cycle(ctx context.Context, src domain.Source) domain.CycleResult {
	start := s.clock.Now()
	res := domain.CycleResult{Source: src.Name, StartedAt: start}

	outcome := s.fetcher.Fetch(ctx, src)
	res.Attempts = outcome.AttemptsUsed
	obs := health.Observation{Attempt: domain.FetchAttempt{
		Source:    src.Name,
		StartedAt: start,
		Outcome:   outcome.FailureKind,
		Latency:   outcome.Latency,
		Retries:   max(outcome.AttemptsUsed-1, 0),
	}}

	track := true
	switch {
	case !outcome.Success && ctx.Err() != nil:
		// shutdown, not a source failure
		res.Error = "cancelled"
		track = false
		lgr.Printf("[DEBUG] cycle of %s cancelled", src.Name)
	case !outcome.Success:
		res.Failure = outcome.FailureKind
		if outcome.Err != nil {
			res.Error = outcome.Err.Error()
		}
		obs.Error = res.Error
		lgr.Printf("[WARN] fetch %s failed after %d attempts: %s", src.Name, outcome.AttemptsUsed, res.Error)
	default:
		obs.Attempt.Outcome = domain.FailureNone
		if err := s.process(ctx, src, outcome.Payload, &res, &obs); err != nil {
			res.Error = err.Error()
			track = false
			lgr.Printf("[ERROR] cycle of %s failed: %v", src.Name, err)
		}
	}
	res.Duration = s.clock.Since(start)

	if track && s.health != nil {
		if _, err := s.health.Record(ctx, obs); err != nil {
			lgr.Printf("[ERROR] failed to record health of %s: %v", src.Name, err)
		}
	}
	if s.metrics != nil {
		s.metrics.ObserveCycle(res)
	}

	s.mu.Lock()
	s.results[src.Name] = res
	s.mu.Unlock()
	return res
}

// process handles a fetched payload. Verdict and decode state go to res and obs,
// the returned error is set only for store failures.
func (s *Scheduler) process(ctx context.Context, src domain.Source, payload []byte, res *domain.CycleResult, obs *health.Observation) error {
	check, err := s.verifier.Check(ctx, src.Name, payload)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	res.Verdict, obs.Verdict = check.Verdict, check.Verdict

	switch check.Verdict {
	case domain.VerdictUnchanged:
		// heartbeat, the stored content keeps its decode state
		res.Decode = domain.DecodeOK
		if check.Previous != nil && check.Previous.Partial {
			res.Decode = domain.DecodePartial
		}
		obs.Decode = res.Decode
		lgr.Printf("[DEBUG] %s unchanged, %s", src.Name, check.Hash)
		return nil
	case domain.VerdictInvalid:
		res.Decode, obs.Decode = domain.DecodeFailed, domain.DecodeFailed
		res.Error, obs.Error = check.Reason, check.Reason
		lgr.Printf("[WARN] %s payload rejected: %s", src.Name, check.Reason)
		return nil
	}

	fetchedAt := s.clock.Now()
	decoded, err := s.decoder.Decode(src.Kind, payload, decode.Meta{SnapshotHash: check.Hash, FetchedAt: fetchedAt})
	if err != nil {
		res.Decode, obs.Decode = domain.DecodeFailed, domain.DecodeFailed
		res.Error, obs.Error = err.Error(), err.Error()
		lgr.Printf("[WARN] %s payload not decodable: %v", src.Name, err)
		return nil
	}

	applied, err := s.reconciler.Apply(ctx, decoded)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	res.Applied = applied
	res.Decode, obs.Decode = decoded.State(), decoded.State()

	// snapshot goes last, a failed apply must not turn the next fetch into a heartbeat
	snap := domain.ContentSnapshot{Source: src.Name, Hash: check.Hash, Payload: payload, FetchedAt: fetchedAt, Partial: decoded.Partial}
	if err := s.verifier.Accept(ctx, snap); err != nil {
		lgr.Printf("[WARN] failed to store snapshot of %s: %v", src.Name, err)
	}

	lgr.Printf("[INFO] %s updated, %d/%d entries decoded, inserted:%d, updated:%d, unchanged:%d, partial:%v",
		src.Name, decoded.Valid, decoded.Total, applied.Inserted, applied.Updated, applied.Unchanged, decoded.Partial)
	return nil
}
