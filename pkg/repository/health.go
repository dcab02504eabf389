package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/meteoscope/pkg/domain"
)

// HealthRepository persists source health and the attempt log
type HealthRepository struct {
	db        *sqlx.DB
	keepTotal int // attempts kept per source in the log
}

// healthSQL represents a health record for SQL operations
type healthSQL struct {
	Source              string     `db:"source"`
	Kind                string     `db:"kind"`
	IntervalNS          int64      `db:"interval_ns"`
	ConsecutiveFailures int        `db:"consecutive_failures"`
	Attempts            int        `db:"attempts"`
	Successes           int        `db:"successes"`
	AvgResponseNS       int64      `db:"avg_response_ns"`
	LastAttempt         *time.Time `db:"last_attempt"`
	LastSuccess         *time.Time `db:"last_success"`
	LastFailure         *time.Time `db:"last_failure"`
	LastError           string     `db:"last_error"`
	LastDecode          string     `db:"last_decode"`
	Quality             string     `db:"quality"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

// attemptSQL represents a fetch attempt for SQL operations
type attemptSQL struct {
	Source    string    `db:"source"`
	StartedAt time.Time `db:"started_at"`
	Outcome   string    `db:"outcome"`
	LatencyNS int64     `db:"latency_ns"`
	Retries   int       `db:"retries"`
}

// NewHealthRepository creates a new health repository
func NewHealthRepository(db *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: db, keepTotal: 500}
}

// SaveHealth appends the attempt to the log and replaces the health record, in one transaction
func (r *HealthRepository) SaveHealth(ctx context.Context, attempt domain.FetchAttempt, h domain.SourceHealth) error {
	upsert := `
		INSERT INTO source_health (source, kind, interval_ns, consecutive_failures, attempts, successes,
			avg_response_ns, last_attempt, last_success, last_failure, last_error, last_decode, quality, updated_at)
		VALUES (:source, :kind, :interval_ns, :consecutive_failures, :attempts, :successes,
			:avg_response_ns, :last_attempt, :last_success, :last_failure, :last_error, :last_decode, :quality, :updated_at)
		ON CONFLICT(source) DO UPDATE SET
			kind = excluded.kind,
			interval_ns = excluded.interval_ns,
			consecutive_failures = excluded.consecutive_failures,
			attempts = excluded.attempts,
			successes = excluded.successes,
			avg_response_ns = excluded.avg_response_ns,
			last_attempt = excluded.last_attempt,
			last_success = excluded.last_success,
			last_failure = excluded.last_failure,
			last_error = excluded.last_error,
			last_decode = excluded.last_decode,
			quality = excluded.quality,
			updated_at = excluded.updated_at
	`
	insertAttempt := `
		INSERT INTO fetch_attempts (source, started_at, outcome, latency_ns, retries)
		VALUES (:source, :started_at, :outcome, :latency_ns, :retries)
	`
	prune := `
		DELETE FROM fetch_attempts WHERE source = ? AND id NOT IN (
			SELECT id FROM fetch_attempts WHERE source = ? ORDER BY id DESC LIMIT ?
		)
	`

	return inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, insertAttempt, attemptSQL{
			Source:    attempt.Source,
			StartedAt: utc(attempt.StartedAt),
			Outcome:   string(attempt.Outcome),
			LatencyNS: int64(attempt.Latency),
			Retries:   attempt.Retries,
		}); err != nil {
			return fmt.Errorf("insert attempt: %w", err)
		}
		if _, err := tx.ExecContext(ctx, prune, attempt.Source, attempt.Source, r.keepTotal); err != nil {
			return fmt.Errorf("prune attempts: %w", err)
		}
		if _, err := tx.NamedExecContext(ctx, upsert, toHealthSQL(h)); err != nil {
			return fmt.Errorf("save health: %w", err)
		}
		return nil
	})
}

// LoadHealth returns the stored health record and the last window attempts, oldest first.
// The record is nil when nothing was stored for the source.
func (r *HealthRepository) LoadHealth(ctx context.Context, source string, window int) (*domain.SourceHealth, []domain.FetchAttempt, error) {
	var row healthSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM source_health WHERE source = ?", source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load health: %w", err)
	}

	var rows []attemptSQL
	err = r.db.SelectContext(ctx, &rows, `
		SELECT source, started_at, outcome, latency_ns, retries FROM (
			SELECT * FROM fetch_attempts WHERE source = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, source, window)
	if err != nil {
		return nil, nil, fmt.Errorf("load attempts: %w", err)
	}

	attempts := make([]domain.FetchAttempt, len(rows))
	for i, a := range rows {
		attempts[i] = domain.FetchAttempt{
			Source:    a.Source,
			StartedAt: a.StartedAt,
			Outcome:   domain.FailureKind(a.Outcome),
			Latency:   time.Duration(a.LatencyNS),
			Retries:   a.Retries,
		}
	}
	h := row.toDomain()
	return &h, attempts, nil
}

func toHealthSQL(h domain.SourceHealth) healthSQL {
	return healthSQL{
		Source:              h.Source,
		Kind:                string(h.Kind),
		IntervalNS:          int64(h.Interval),
		ConsecutiveFailures: h.ConsecutiveFailures,
		Attempts:            h.Attempts,
		Successes:           h.Successes,
		AvgResponseNS:       int64(h.AvgResponse),
		LastAttempt:         utcPtr(h.LastAttempt),
		LastSuccess:         utcPtr(h.LastSuccess),
		LastFailure:         utcPtr(h.LastFailure),
		LastError:           h.LastError,
		LastDecode:          string(h.LastDecode),
		Quality:             string(h.Quality),
		UpdatedAt:           utc(h.UpdatedAt),
	}
}

func (h healthSQL) toDomain() domain.SourceHealth {
	return domain.SourceHealth{
		Source:              h.Source,
		Kind:                domain.SyncKind(h.Kind),
		Interval:            time.Duration(h.IntervalNS),
		ConsecutiveFailures: h.ConsecutiveFailures,
		Attempts:            h.Attempts,
		Successes:           h.Successes,
		AvgResponse:         time.Duration(h.AvgResponseNS),
		LastAttempt:         h.LastAttempt,
		LastSuccess:         h.LastSuccess,
		LastFailure:         h.LastFailure,
		LastError:           h.LastError,
		LastDecode:          domain.DecodeState(h.LastDecode),
		Quality:             domain.DataQuality(h.Quality),
		UpdatedAt:           h.UpdatedAt,
	}
}
