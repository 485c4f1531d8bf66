package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/secret-decoder/internal/config"
	"github.com/MKhiriev/secret-decoder/internal/handler"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/server"
	"github.com/MKhiriev/secret-decoder/internal/service"
	"github.com/MKhiriev/secret-decoder/internal/store"
	"github.com/MKhiriev/secret-decoder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("secret-bundle-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(cfg.BundleDir, log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
