// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/device-provision/internal/logger"
	"github.com/MKhiriev/device-provision/models"
)

const (
	insertHistorySQL = `INSERT INTO provision_history (target_kind,target,payload,created_at) VALUES (?,?,?,?)`
	selectHistorySQL = `SELECT id, target_kind, target, payload, created_at FROM provision_history ORDER BY created_at DESC, id DESC LIMIT 10`
	deleteHistorySQL = `DELETE FROM provision_history WHERE created_at < ?`
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) HistoryRepository {
	t.Helper()
	storeDB := &DB{DB: db, logger: logger.Nop()}
	return NewHistoryRepository(storeDB, logger.Nop())
}

var historyColumns = []string{"id", "target_kind", "target", "payload", "created_at"}

// ── Append ──────────────────────────────────────────────────────────────────

func TestHistoryRepository_Append_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	now := time.Now()
	entry := models.HistoryEntry{
		TargetKind: models.TargetApplication,
		Target:     "HelloWorldApp",
		Payload:    []byte(`{"listenPort":48484}`),
		CreatedAt:  now,
	}

	mock.ExpectExec(regexp.QuoteMeta(insertHistorySQL)).
		WithArgs(entry.TargetKind, entry.Target, entry.Payload, entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Append(context.Background(), entry)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_Append_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(insertHistorySQL)).
		WillReturnError(errors.New("database is locked"))

	err := repo.Append(context.Background(), models.HistoryEntry{
		TargetKind: models.TargetDevice,
		Target:     "9f0c8ba4",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestHistoryRepository_Append_ZeroRowsAffected(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(insertHistorySQL)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Append(context.Background(), models.HistoryEntry{
		TargetKind: models.TargetApplication,
		Target:     "HelloWorldApp",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHistoryNotSaved)
}

// ── List ────────────────────────────────────────────────────────────────────

func TestHistoryRepository_List_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	now := time.Now()
	rows := sqlmock.NewRows(historyColumns).
		AddRow(int64(2), models.TargetDevice, "9f0c8ba4", []byte(`{}`), now).
		AddRow(int64(1), models.TargetApplication, "HelloWorldApp", []byte(`{}`), now.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(selectHistorySQL)).WillReturnRows(rows)

	entries, err := repo.List(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].ID)
	assert.Equal(t, models.TargetDevice, entries[0].TargetKind)
	assert.Equal(t, "9f0c8ba4", entries[0].Target)
	assert.Equal(t, int64(1), entries[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_List_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectHistorySQL)).
		WillReturnRows(sqlmock.NewRows(historyColumns))

	entries, err := repo.List(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryRepository_List_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectHistorySQL)).
		WillReturnError(errors.New("disk I/O error"))

	entries, err := repo.List(context.Background(), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.Nil(t, entries)
}

func TestHistoryRepository_List_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	rows := sqlmock.NewRows(historyColumns).
		AddRow("not-an-id", models.TargetApplication, "HelloWorldApp", []byte(`{}`), "not-a-time")

	mock.ExpectQuery(regexp.QuoteMeta(selectHistorySQL)).WillReturnRows(rows)

	entries, err := repo.List(context.Background(), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.Nil(t, entries)
}

// ── PruneBefore ─────────────────────────────────────────────────────────────

func TestHistoryRepository_PruneBefore_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	cutoff := time.Now().Add(-90 * 24 * time.Hour)
	mock.ExpectExec(regexp.QuoteMeta(deleteHistorySQL)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	pruned, err := repo.PruneBefore(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(3), pruned)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_PruneBefore_NothingToPrune(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(deleteHistorySQL)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	pruned, err := repo.PruneBefore(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Zero(t, pruned)
}

func TestHistoryRepository_PruneBefore_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(deleteHistorySQL)).
		WillReturnError(errors.New("database is locked"))

	_, err := repo.PruneBefore(context.Background(), time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
