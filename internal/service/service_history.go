package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/device-provision/internal/store"
	"github.com/MKhiriev/device-provision/models"
)

const defaultHistoryLimit = 50

type historyService struct {
	history store.HistoryRepository
}

// NewHistoryService exposes the provisioning history store as a read-only
// service.
func NewHistoryService(history store.HistoryRepository) HistoryService {
	return &historyService{history: history}
}

func (s *historyService) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing provisioning history: %w", err)
	}

	return entries, nil
}
