package store

import (
	"context"

	"github.com/MKhiriev/device-provision/internal/config"
	"github.com/MKhiriev/device-provision/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	History HistoryRepository
}

// NewStorages opens the history database and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.HistoryDBPath, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		History: NewHistoryRepository(db, logger),
	}, nil
}
