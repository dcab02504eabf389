// Package reconcile merges decoded records into the store, per sync kind.
package reconcile

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	"github.com/jonboulle/clockwork"

	"github.com/umputun/meteoscope/pkg/decode"
	"github.com/umputun/meteoscope/pkg/domain"
)

//go:generate moq -out mocks/forecast_store.go -pkg mocks -skip-ensure -fmt goimports . ForecastStore
//go:generate moq -out mocks/alert_store.go -pkg mocks -skip-ensure -fmt goimports . AlertStore

// ForecastStore applies forecast records transactionally, newer fetch wins per (region, date)
type ForecastStore interface {
	ApplyForecasts(ctx context.Context, records []domain.ForecastRecord) (domain.ApplyResult, error)
}

// AlertStore inserts alerts transactionally, existing ids are ignored
type AlertStore interface {
	InsertAlerts(ctx context.Context, alerts []domain.AlertRecord) (domain.ApplyResult, error)
}

// Reconciler dispatches decoded results to the store matching their kind
type Reconciler struct {
	forecasts ForecastStore
	alerts    AlertStore
	clock     clockwork.Clock
}

// New makes a reconciler
func New(forecasts ForecastStore, alerts AlertStore, clock clockwork.Clock) *Reconciler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Reconciler{forecasts: forecasts, alerts: alerts, clock: clock}
}

// Apply writes one cycle's records in a single transaction. Nothing is written on error.
func (r *Reconciler) Apply(ctx context.Context, res decode.Result) (domain.ApplyResult, error) {
	now := r.clock.Now()
	switch res.Kind {
	case domain.SyncState:
		if len(res.Forecasts) == 0 {
			return domain.ApplyResult{}, nil
		}
		records := make([]domain.ForecastRecord, len(res.Forecasts))
		for i, rec := range res.Forecasts {
			if rec.FetchedAt.IsZero() {
				rec.FetchedAt = now
			}
			records[i] = rec
		}
		applied, err := r.forecasts.ApplyForecasts(ctx, records)
		if err != nil {
			return domain.ApplyResult{}, fmt.Errorf("reconcile forecasts: %w", err)
		}
		lgr.Printf("[DEBUG] forecasts reconciled, inserted:%d, updated:%d, unchanged:%d",
			applied.Inserted, applied.Updated, applied.Unchanged)
		return applied, nil

	case domain.SyncEvent:
		if len(res.Alerts) == 0 {
			return domain.ApplyResult{}, nil
		}
		alerts := make([]domain.AlertRecord, len(res.Alerts))
		for i, a := range res.Alerts {
			if a.FetchedAt.IsZero() {
				a.FetchedAt = now
			}
			alerts[i] = a
		}
		applied, err := r.alerts.InsertAlerts(ctx, alerts)
		if err != nil {
			return domain.ApplyResult{}, fmt.Errorf("reconcile alerts: %w", err)
		}
		lgr.Printf("[DEBUG] alerts reconciled, new:%d, known:%d", applied.Inserted, applied.Unchanged)
		return applied, nil
	}
	return domain.ApplyResult{}, fmt.Errorf("reconcile: unsupported sync kind %q", res.Kind)
}
