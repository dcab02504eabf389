// Package decode turns verified upstream payloads into typed records. There is one decoder
// per sync kind: forecasts for state sources, alerts for event sources.
package decode

import (
	"fmt"
	"time"

	"github.com/umputun/meteoscope/pkg/domain"
)

// Meta carries per-payload values stamped on every decoded record
type Meta struct {
	SnapshotHash string
	FetchedAt    time.Time
}

// Result of decoding one payload. Exactly one of Forecasts or Alerts is used, selected by Kind.
type Result struct {
	Kind      domain.SyncKind
	Forecasts []domain.ForecastRecord
	Alerts    []domain.AlertRecord
	Total     int // entries seen in the payload
	Valid     int // entries turned into records
	Partial   bool
}

// State returns decode state for health accounting
func (r Result) State() domain.DecodeState {
	if r.Partial {
		return domain.DecodePartial
	}
	return domain.DecodeOK
}

// Records returns the number of decoded records
func (r Result) Records() int {
	if r.Kind == domain.SyncState {
		return len(r.Forecasts)
	}
	return len(r.Alerts)
}

// Decoder dispatches payloads to the decoder matching the source kind
type Decoder struct {
	forecasts *ForecastDecoder
	alerts    *AlertDecoder
}

// New makes a decoder. defaultValidity applies to alerts without an explicit time range.
func New(defaultValidity time.Duration) *Decoder {
	return &Decoder{forecasts: NewForecastDecoder(), alerts: NewAlertDecoder(defaultValidity)}
}

// Decode parses payload according to kind. Errors wrap domain.ErrDecode.
func (d *Decoder) Decode(kind domain.SyncKind, payload []byte, meta Meta) (Result, error) {
	switch kind {
	case domain.SyncState:
		return d.forecasts.Decode(payload, meta)
	case domain.SyncEvent:
		return d.alerts.Decode(payload, meta)
	default:
		return Result{}, fmt.Errorf("%w: unsupported sync kind %q", domain.ErrDecode, kind)
	}
}
