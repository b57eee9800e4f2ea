package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-label-keeper/internal/config"
	"github.com/MKhiriev/go-label-keeper/internal/handler"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/server"
	"github.com/MKhiriev/go-label-keeper/internal/service"
	"github.com/MKhiriev/go-label-keeper/internal/store"
	"github.com/MKhiriev/go-label-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("labels-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("labels-server", cfg.App.LogLevel)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, storages)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
