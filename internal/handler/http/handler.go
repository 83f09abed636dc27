// Package http exposes the provisioning service over HTTP.
//
// Routes are mounted by [Handler.Init] on a chi router. All responses are
// JSON; errors are mapped to HTTP status codes by statusFromError.
package http

import (
	"github.com/MKhiriev/device-provision/internal/config"
	"github.com/MKhiriev/device-provision/internal/logger"
	"github.com/MKhiriev/device-provision/internal/service"
	"github.com/MKhiriev/device-provision/internal/utils"
)

type Handler struct {
	services *service.Services
	version  string
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  cfg.Version,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
