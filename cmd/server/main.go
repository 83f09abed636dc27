package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/device-provision/internal/adapter"
	"github.com/MKhiriev/device-provision/internal/config"
	transporthttp "github.com/MKhiriev/device-provision/internal/handler/http"
	"github.com/MKhiriev/device-provision/internal/logger"
	"github.com/MKhiriev/device-provision/internal/server"
	"github.com/MKhiriev/device-provision/internal/service"
	"github.com/MKhiriev/device-provision/internal/store"
	"github.com/MKhiriev/device-provision/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("provision-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	api := adapter.NewManagementAPI(adapter.HTTPClientConfig{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.RequestTimeout,
	})

	services := service.NewServices(api, storages, cfg.Workers, log)
	handler := transporthttp.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.New(services.HistoryJob).Run(ctx)
	defer services.HistoryJob.Stop()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
