package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/device-notes/internal/config"
	"github.com/MKhiriev/device-notes/internal/handler"
	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/server"
	"github.com/MKhiriev/device-notes/internal/service"
	"github.com/MKhiriev/device-notes/internal/store"
	"github.com/MKhiriev/device-notes/internal/utils"
	"github.com/MKhiriev/device-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("device-notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, utils.NewSystemClock(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Documents.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing document store")
		}
	}()

	services := service.NewServices(storages, *cfg, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	handlers, err := handler.NewHandlers(services, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
