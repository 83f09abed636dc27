// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the local provisioning history in a SQLite
// database. The history is an audit log of every configuration record the
// service generated, queryable newest-first and pruned in the background.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/device-provision/models"
)

// HistoryRepository is the persistence contract for provisioning-history
// entries.
type HistoryRepository interface {
	// Append stores one history entry. The entry's ID is assigned by the
	// database and ignored on input.
	Append(ctx context.Context, entry models.HistoryEntry) error

	// List returns up to limit entries, newest first.
	List(ctx context.Context, limit int) ([]models.HistoryEntry, error)

	// PruneBefore deletes entries created before cutoff and returns the
	// number of deleted rows.
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
