package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/device-provision/internal/logger"
	"github.com/MKhiriev/device-provision/models"
)

// historyRepository is the SQLite-backed implementation of
// [HistoryRepository]. All operations run against the "provision_history"
// table using the embedded [*DB] connection.
type historyRepository struct {
	*DB
	logger *logger.Logger
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the
// provided database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{DB: db, logger: logger}
}

func (r *historyRepository) Append(ctx context.Context, entry models.HistoryEntry) error {
	query, args, err := sq.Insert(entry.TableName()).
		Columns("target_kind", "target", "payload", "created_at").
		Values(entry.TargetKind, entry.Target, entry.Payload, entry.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("target", entry.Target).Msg("failed to insert history entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrHistoryNotSaved
	}

	return nil
}

func (r *historyRepository) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	query, args, err := sq.Select("id", "target_kind", "target", "payload", "created_at").
		From(models.HistoryEntry{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Int("limit", limit).Msg("failed to query history entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0, limit)
	for rows.Next() {
		var entry models.HistoryEntry
		if err = rows.Scan(&entry.ID, &entry.TargetKind, &entry.Target, &entry.Payload, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

func (r *historyRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := sq.Delete(models.HistoryEntry{}.TableName()).
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Time("cutoff", cutoff).Msg("failed to prune history entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}
