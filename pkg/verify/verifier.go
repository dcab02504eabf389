// Package verify implements payload integrity checks against the last accepted snapshot.
package verify

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/jonboulle/clockwork"
	"golang.org/x/net/html/charset"

	"github.com/umputun/meteoscope/pkg/domain"
)

//go:generate moq -out mocks/snapshot_store.go -pkg mocks -skip-ensure -fmt goimports . SnapshotStore

// SnapshotStore keeps the last accepted payload per source
type SnapshotStore interface {
	GetSnapshot(ctx context.Context, source string) (*domain.ContentSnapshot, error)
	SaveSnapshot(ctx context.Context, snap domain.ContentSnapshot) error
}

// Result of a verification
type Result struct {
	Verdict  domain.Verdict
	Hash     string
	Previous *domain.ContentSnapshot // stored snapshot before this check, nil if none
	Reason   string                  // why the payload was rejected
}

// Verifier hashes payloads and checks their structure
type Verifier struct {
	store SnapshotStore
	clock clockwork.Clock
}

// New makes a verifier backed by the given store, nil clock means the real one
func New(store SnapshotStore, clock clockwork.Clock) *Verifier {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Verifier{store: store, clock: clock}
}

// Hash returns hex-encoded sha256 of the payload
func Hash(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Check compares the payload with the stored snapshot and validates its structure.
// Invalid payloads are never stored. The returned error is set only for store failures.
func (v *Verifier) Check(ctx context.Context, source string, payload []byte) (Result, error) {
	prev, err := v.store.GetSnapshot(ctx, source)
	if err != nil {
		return Result{}, fmt.Errorf("get snapshot for %s: %w", source, err)
	}

	res := Result{Hash: Hash(payload), Previous: prev}
	if prev != nil && prev.Hash == res.Hash {
		res.Verdict = domain.VerdictUnchanged
		return res, nil
	}

	if err := WellFormed(payload); err != nil {
		res.Verdict = domain.VerdictInvalid
		res.Reason = err.Error()
		return res, nil
	}

	res.Verdict = domain.VerdictChanged
	return res, nil
}

// Accept stores a changed payload as the new snapshot for the source
func (v *Verifier) Accept(ctx context.Context, snap domain.ContentSnapshot) error {
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = v.clock.Now()
	}
	if err := v.store.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot for %s: %w", snap.Source, err)
	}
	return nil
}

var utf8BOM = []byte("\xEF\xBB\xBF")

// WellFormed checks that the payload is a non-empty, complete XML document
func WellFormed(payload []byte) error {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(bytes.TrimSpace(payload), utf8BOM))
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: empty payload", domain.ErrIntegrity)
	}
	if trimmed[0] != '<' {
		return fmt.Errorf("%w: payload is not markup", domain.ErrIntegrity)
	}

	dec := xml.NewDecoder(bytes.NewReader(trimmed))
	dec.CharsetReader = charset.NewReaderLabel
	depth, elements := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrIntegrity, err)
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
			elements++
		case xml.EndElement:
			depth--
		}
	}
	if elements == 0 {
		return fmt.Errorf("%w: no elements", domain.ErrIntegrity)
	}
	if depth != 0 {
		return fmt.Errorf("%w: unclosed elements", domain.ErrIntegrity)
	}
	return nil
}
