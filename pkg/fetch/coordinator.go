package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jonboulle/clockwork"

	"github.com/umputun/meteoscope/pkg/domain"
)

//go:generate moq -out mocks/transport.go -pkg mocks -skip-ensure -fmt goimports . Transport

// Transport retrieves raw payloads from an endpoint
type Transport interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// RetryPolicy defines attempts and backoff of the coordinator
type RetryPolicy struct {
	Attempts     int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Jitter       float64
}

// Coordinator performs one logical fetch with bounded retries and exponential backoff.
// It does no persistence and no health accounting, callers own both.
type Coordinator struct {
	transport Transport
	policy    RetryPolicy
	clock     clockwork.Clock
}

// NewCoordinator makes a coordinator with the given transport and policy
func NewCoordinator(transport Transport, policy RetryPolicy, clock clockwork.Clock) *Coordinator {
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Coordinator{transport: transport, policy: policy, clock: clock}
}

// Fetch runs up to policy.Attempts attempts against the source. Cancelling ctx aborts both
// the in-flight request and any backoff wait.
func (c *Coordinator) Fetch(ctx context.Context, src domain.Source) domain.FetchOutcome {
	start := c.clock.Now()
	var payload []byte
	var lastErr error
	attempts := 0

	rpt := repeater.NewBackoff(c.policy.Attempts, c.policy.InitialDelay,
		repeater.WithMaxDelay(c.policy.MaxDelay),
		repeater.WithBackoffType(repeater.BackoffExponential),
		repeater.WithJitter(c.policy.Jitter),
	)

	err := rpt.Do(ctx, func() error {
		attempts++
		body, err := c.attempt(ctx, src)
		if err != nil {
			lastErr = err
			lgr.Printf("[DEBUG] fetch %s attempt %d/%d failed: %v", src.Name, attempts, c.policy.Attempts, err)
			if Classify(err) == domain.FailurePermanent {
				return fmt.Errorf("%w: %w", domain.ErrPermanent, err)
			}
			return fmt.Errorf("%w: %w", domain.ErrTransient, err)
		}
		payload = body
		return nil
	}, domain.ErrPermanent)

	outcome := domain.FetchOutcome{Latency: c.clock.Since(start), AttemptsUsed: attempts}
	if err == nil {
		outcome.Success = true
		outcome.Payload = payload
		return outcome
	}

	if lastErr == nil { // cancelled before the first attempt
		lastErr = err
	}
	outcome.FailureKind = Classify(lastErr)
	if outcome.FailureKind == domain.FailurePermanent {
		outcome.Err = fmt.Errorf("%w: %w", domain.ErrPermanent, lastErr)
	} else {
		outcome.Err = fmt.Errorf("%w: %w", domain.ErrTransient, lastErr)
	}
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		outcome.Err = fmt.Errorf("fetch cancelled: %w", ctx.Err())
	}
	return outcome
}

// attempt makes a single request bounded by the source timeout
func (c *Coordinator) attempt(ctx context.Context, src domain.Source) ([]byte, error) {
	if src.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, src.Timeout)
		defer cancel()
	}
	return c.transport.Fetch(ctx, src.URL)
}
