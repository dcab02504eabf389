package domain

import "time"

// FailureKind classifies why a fetch failed
type FailureKind string

const (
	FailureNone      FailureKind = ""
	FailureNetwork   FailureKind = "network_error"
	FailureTimeout   FailureKind = "timeout"
	FailurePermanent FailureKind = "permanent"
)

// FetchOutcome is the result of one logical fetch, possibly spanning several attempts
type FetchOutcome struct {
	Success      bool
	Payload      []byte
	Latency      time.Duration // total time spent, including backoff waits
	AttemptsUsed int
	FailureKind  FailureKind
	Err          error
}

// FetchAttempt is an immutable log entry for one coordinator invocation
type FetchAttempt struct {
	Source    string
	StartedAt time.Time
	Outcome   FailureKind // FailureNone for success
	Latency   time.Duration
	Retries   int
}

// Succeeded reports whether the attempt reached the upstream and got a payload
func (a FetchAttempt) Succeeded() bool { return a.Outcome == FailureNone }

// Verdict is the integrity verifier's judgement on a payload
type Verdict string

const (
	VerdictUnchanged Verdict = "unchanged"
	VerdictChanged   Verdict = "changed"
	VerdictInvalid   Verdict = "invalid"
)

// ContentSnapshot is the last accepted payload for a source
type ContentSnapshot struct {
	Source    string    `db:"source"`
	Hash      string    `db:"hash"`
	Payload   []byte    `db:"payload"`
	FetchedAt time.Time `db:"fetched_at"`
	Partial   bool      `db:"partial"` // decode of this payload produced flagged records
}

// DecodeState summarizes the decode result of the payload accepted by a cycle
type DecodeState string

const (
	DecodeNone    DecodeState = ""
	DecodeOK      DecodeState = "ok"
	DecodePartial DecodeState = "partial"
	DecodeFailed  DecodeState = "failed"
)

// CycleResult describes what one fetch cycle did for a source
type CycleResult struct {
	Source    string        `json:"source"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Attempts  int           `json:"attempts"`
	Failure   FailureKind   `json:"failure,omitempty"`
	Verdict   Verdict       `json:"verdict,omitempty"`
	Decode    DecodeState   `json:"decode,omitempty"`
	Applied   ApplyResult   `json:"applied"`
	Error     string        `json:"error,omitempty"`
}
