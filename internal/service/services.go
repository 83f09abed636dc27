package service

import (
	"github.com/MKhiriev/device-provision/internal/adapter"
	"github.com/MKhiriev/device-provision/internal/config"
	"github.com/MKhiriev/device-provision/internal/deviceconfig"
	"github.com/MKhiriev/device-provision/internal/logger"
	"github.com/MKhiriev/device-provision/internal/store"
)

// Services aggregates every service the transport layer depends on.
type Services struct {
	ProvisionService ProvisionService
	HistoryService   HistoryService
	HistoryJob       HistoryJob
}

// NewServices wires the service layer from its collaborators.
func NewServices(api adapter.ManagementAPI, storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Services {
	builder := deviceconfig.New()
	policy := RetentionPolicy{
		Interval:  cfg.PruneInterval,
		Retention: cfg.Retention,
	}

	return &Services{
		ProvisionService: NewProvisionService(api, builder, storages.History, logger),
		HistoryService:   NewHistoryService(storages.History),
		HistoryJob:       NewHistoryJob(storages.History, policy, logger),
	}
}
