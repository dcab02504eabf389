package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/meteoscope/pkg/domain"
)

// ForecastRepository handles forecast records
type ForecastRepository struct {
	db *sqlx.DB
}

// NewForecastRepository creates a new forecast repository
func NewForecastRepository(db *sqlx.DB) *ForecastRepository {
	return &ForecastRepository{db: db}
}

// upsertForecastSQL replaces a row only with a fetch at least as recent, and only when fields differ
const upsertForecastSQL = `
	INSERT INTO forecasts (region, forecast_date, temp_min, temp_max, condition, condition_code,
		issued_date, partial, snapshot_hash, fetched_at)
	VALUES (:region, :forecast_date, :temp_min, :temp_max, :condition, :condition_code,
		:issued_date, :partial, :snapshot_hash, :fetched_at)
	ON CONFLICT(region, forecast_date) DO UPDATE SET
		temp_min = excluded.temp_min,
		temp_max = excluded.temp_max,
		condition = excluded.condition,
		condition_code = excluded.condition_code,
		issued_date = excluded.issued_date,
		partial = excluded.partial,
		snapshot_hash = excluded.snapshot_hash,
		fetched_at = excluded.fetched_at
	WHERE excluded.fetched_at >= forecasts.fetched_at AND (
		forecasts.temp_min IS NOT excluded.temp_min OR
		forecasts.temp_max IS NOT excluded.temp_max OR
		forecasts.condition IS NOT excluded.condition OR
		forecasts.condition_code IS NOT excluded.condition_code OR
		forecasts.issued_date IS NOT excluded.issued_date OR
		forecasts.partial IS NOT excluded.partial
	)
`

// ApplyForecasts writes all records in one transaction. A record replaces the stored one
// for its (region, date) when fetched at the same time or later, regardless of completeness.
func (r *ForecastRepository) ApplyForecasts(ctx context.Context, records []domain.ForecastRecord) (domain.ApplyResult, error) {
	var res domain.ApplyResult
	err := inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res = domain.ApplyResult{}
		for _, rec := range records {
			rec.FetchedAt = utc(rec.FetchedAt)

			var exists int
			if err := tx.GetContext(ctx, &exists,
				"SELECT COUNT(*) FROM forecasts WHERE region = ? AND forecast_date = ?", rec.Region, rec.Date); err != nil {
				return fmt.Errorf("check forecast %s/%s: %w", rec.Region, rec.Date, err)
			}

			result, err := tx.NamedExecContext(ctx, upsertForecastSQL, rec)
			if err != nil {
				return fmt.Errorf("upsert forecast %s/%s: %w", rec.Region, rec.Date, err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("rows affected: %w", err)
			}

			switch {
			case affected == 0:
				res.Unchanged++
			case exists == 0:
				res.Inserted++
			default:
				res.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return domain.ApplyResult{}, fmt.Errorf("apply forecasts: %w", err)
	}
	return res, nil
}

// GetForecast returns the record for a key, nil if absent
func (r *ForecastRepository) GetForecast(ctx context.Context, region, date string) (*domain.ForecastRecord, error) {
	var recs []domain.ForecastRecord
	err := r.db.SelectContext(ctx, &recs, "SELECT * FROM forecasts WHERE region = ? AND forecast_date = ?", region, date)
	if err != nil {
		return nil, fmt.Errorf("get forecast: %w", err)
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// ForecastsForRegion returns up to limit most recent forecast days for the region, ordered by date.
// Exact name match is tried first, then a case-insensitive one.
func (r *ForecastRepository) ForecastsForRegion(ctx context.Context, region string, limit int) ([]domain.ForecastRecord, error) {
	query := `
		SELECT * FROM (
			SELECT * FROM forecasts WHERE %s ORDER BY forecast_date DESC LIMIT ?
		) ORDER BY forecast_date ASC
	`
	var recs []domain.ForecastRecord
	if err := r.db.SelectContext(ctx, &recs, fmt.Sprintf(query, "region = ?"), region, limit); err != nil {
		return nil, fmt.Errorf("get forecasts for %s: %w", region, err)
	}
	if len(recs) > 0 {
		return recs, nil
	}

	// fallback to case-insensitive match
	if err := r.db.SelectContext(ctx, &recs, fmt.Sprintf(query, "region = ? COLLATE NOCASE"), region, limit); err != nil {
		return nil, fmt.Errorf("get forecasts for %s: %w", region, err)
	}
	return recs, nil
}

// Regions returns all regions having forecasts
func (r *ForecastRepository) Regions(ctx context.Context) ([]string, error) {
	var regions []string
	if err := r.db.SelectContext(ctx, &regions, "SELECT DISTINCT region FROM forecasts ORDER BY region ASC"); err != nil {
		return nil, fmt.Errorf("get regions: %w", err)
	}
	return regions, nil
}

// SearchRegions returns regions starting with prefix, case-insensitive
func (r *ForecastRepository) SearchRegions(ctx context.Context, prefix string, limit int) ([]string, error) {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	var regions []string
	err := r.db.SelectContext(ctx, &regions,
		`SELECT DISTINCT region FROM forecasts WHERE region LIKE ? ESCAPE '\' ORDER BY region ASC LIMIT ?`,
		escaped+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search regions: %w", err)
	}
	return regions, nil
}

// ForecastStats holds forecast table counters
type ForecastStats struct {
	Regions   int `db:"regions"`
	Forecasts int `db:"forecasts"`
}

// Stats returns number of regions and forecast rows
func (r *ForecastRepository) Stats(ctx context.Context) (ForecastStats, error) {
	var st ForecastStats
	err := r.db.GetContext(ctx, &st, "SELECT COUNT(DISTINCT region) AS regions, COUNT(*) AS forecasts FROM forecasts")
	if err != nil {
		return ForecastStats{}, fmt.Errorf("forecast stats: %w", err)
	}
	return st, nil
}
