package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/secret-decoder/internal/client"
	"github.com/MKhiriev/secret-decoder/internal/config"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/models"
	"github.com/awnumar/memguard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// Wipe locked key buffers on interrupt and on every normal exit.
	memguard.CatchInterrupt()
	defer memguard.Purge()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)

	log := logger.NewClientLogger("secret-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		memguard.SafeExit(1)
	}
}
