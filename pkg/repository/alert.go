package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/meteoscope/pkg/domain"
)

// AlertRepository handles alert records
type AlertRepository struct {
	db *sqlx.DB
}

// alertSQL represents an alert for SQL operations
type alertSQL struct {
	ExternalID    string    `db:"external_id"`
	Title         string    `db:"title"`
	Severity      string    `db:"severity"`
	SeverityKnown bool      `db:"severity_known"`
	ValidFrom     time.Time `db:"valid_from"`
	ValidUntil    time.Time `db:"valid_until"`
	TimeRange     string    `db:"time_range"`
	Description   string    `db:"description"`
	Zones         string    `db:"zones"`
	Link          string    `db:"link"`
	PublishedAt   time.Time `db:"published_at"`
	SnapshotHash  string    `db:"snapshot_hash"`
	FetchedAt     time.Time `db:"fetched_at"`
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *sqlx.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// InsertAlerts stores new alerts in one transaction. Alerts already stored are left untouched.
func (r *AlertRepository) InsertAlerts(ctx context.Context, alerts []domain.AlertRecord) (domain.ApplyResult, error) {
	query := `
		INSERT INTO alerts (external_id, title, severity, severity_known, valid_from, valid_until, time_range,
			description, zones, link, published_at, snapshot_hash, fetched_at)
		VALUES (:external_id, :title, :severity, :severity_known, :valid_from, :valid_until, :time_range,
			:description, :zones, :link, :published_at, :snapshot_hash, :fetched_at)
		ON CONFLICT(external_id) DO NOTHING
	`
	var res domain.ApplyResult
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res = domain.ApplyResult{}
		for _, a := range alerts {
			result, err := tx.NamedExecContext(ctx, query, toAlertSQL(a))
			if err != nil {
				return fmt.Errorf("insert alert %s: %w", a.ExternalID, err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("rows affected: %w", err)
			}
			if affected == 0 {
				res.Unchanged++
				continue
			}
			res.Inserted++
		}
		return nil
	})
	if err != nil {
		return domain.ApplyResult{}, fmt.Errorf("insert alerts: %w", err)
	}
	return res, nil
}

// GetAlert returns an alert by external id, nil if absent
func (r *AlertRepository) GetAlert(ctx context.Context, id string) (*domain.AlertRecord, error) {
	var rows []alertSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM alerts WHERE external_id = ?", id); err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	a := rows[0].toDomain()
	return &a, nil
}

// ActiveAlerts returns alerts valid at now, newest published first
func (r *AlertRepository) ActiveAlerts(ctx context.Context, now time.Time, filter domain.AlertFilter) ([]domain.AlertRecord, error) {
	query := "SELECT * FROM alerts WHERE valid_until > ?"
	args := []any{utc(now)}
	if filter.Level != "" {
		query += " AND severity = ?"
		args = append(args, string(filter.Level))
	}
	query += " ORDER BY published_at DESC, external_id ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	var rows []alertSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get active alerts: %w", err)
	}
	res := make([]domain.AlertRecord, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, nil
}

// CountActiveBySeverity returns number of active alerts per severity
func (r *AlertRepository) CountActiveBySeverity(ctx context.Context, now time.Time) (map[domain.Severity]int, error) {
	var rows []struct {
		Severity string `db:"severity"`
		Count    int    `db:"cnt"`
	}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT severity, COUNT(*) AS cnt FROM alerts WHERE valid_until > ? GROUP BY severity", utc(now))
	if err != nil {
		return nil, fmt.Errorf("count active alerts: %w", err)
	}
	res := make(map[domain.Severity]int, len(rows))
	for _, row := range rows {
		res[domain.Severity(row.Severity)] = row.Count
	}
	return res, nil
}

// CountActive returns number of alerts valid at now
func (r *AlertRepository) CountActive(ctx context.Context, now time.Time) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM alerts WHERE valid_until > ?", utc(now)); err != nil {
		return 0, fmt.Errorf("count active alerts: %w", err)
	}
	return count, nil
}

func toAlertSQL(a domain.AlertRecord) alertSQL {
	return alertSQL{
		ExternalID:    a.ExternalID,
		Title:         a.Title,
		Severity:      string(a.Severity),
		SeverityKnown: a.SeverityKnown,
		ValidFrom:     utc(a.ValidFrom),
		ValidUntil:    utc(a.ValidUntil),
		TimeRange:     a.TimeRange,
		Description:   a.Description,
		Zones:         a.Zones,
		Link:          a.Link,
		PublishedAt:   utc(a.PublishedAt),
		SnapshotHash:  a.SnapshotHash,
		FetchedAt:     utc(a.FetchedAt),
	}
}

func (a alertSQL) toDomain() domain.AlertRecord {
	return domain.AlertRecord{
		ExternalID:    a.ExternalID,
		Title:         a.Title,
		Severity:      domain.Severity(a.Severity),
		SeverityKnown: a.SeverityKnown,
		ValidFrom:     a.ValidFrom,
		ValidUntil:    a.ValidUntil,
		TimeRange:     a.TimeRange,
		Description:   a.Description,
		Zones:         a.Zones,
		Link:          a.Link,
		PublishedAt:   a.PublishedAt,
		SnapshotHash:  a.SnapshotHash,
		FetchedAt:     a.FetchedAt,
	}
}
