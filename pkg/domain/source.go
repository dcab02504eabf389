package domain

import (
	"fmt"
	"time"
)

// SyncKind defines how a source's payloads relate to previously stored data
type SyncKind string

const (
	// SyncState marks a source whose latest payload replaces the previous view of each key
	SyncState SyncKind = "state"
	// SyncEvent marks a source whose payload is a stream of individually identified occurrences
	SyncEvent SyncKind = "event"
)

// ParseSyncKind converts a config value into a SyncKind
func ParseSyncKind(s string) (SyncKind, error) {
	switch SyncKind(s) {
	case SyncState, SyncEvent:
		return SyncKind(s), nil
	}
	return "", fmt.Errorf("unknown sync kind %q", s)
}

// Source represents one upstream feed
type Source struct {
	Name     string
	Kind     SyncKind
	URL      string
	Interval time.Duration // expected update interval
	Timeout  time.Duration // per-attempt timeout, zero means transport default
}
