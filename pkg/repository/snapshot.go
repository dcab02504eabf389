package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/meteoscope/pkg/domain"
)

// SnapshotRepository keeps the last accepted payload per source
type SnapshotRepository struct {
	db *sqlx.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetSnapshot retrieves the snapshot of a source, nil if none stored yet
func (r *SnapshotRepository) GetSnapshot(ctx context.Context, source string) (*domain.ContentSnapshot, error) {
	var snap domain.ContentSnapshot
	err := r.db.GetContext(ctx, &snap, "SELECT source, hash, payload, partial, fetched_at FROM snapshots WHERE source = ?", source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return &snap, nil
}

// SaveSnapshot stores the snapshot, replacing the previous one
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snap domain.ContentSnapshot) error {
	query := `
		INSERT INTO snapshots (source, hash, payload, partial, fetched_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(source) DO UPDATE SET
			hash = excluded.hash, payload = excluded.payload, partial = excluded.partial, fetched_at = excluded.fetched_at
	`
	return inTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, query, snap.Source, snap.Hash, snap.Payload, snap.Partial, utc(snap.FetchedAt)); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		return nil
	})
}
