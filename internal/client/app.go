package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/secret-decoder/internal/adapter"
	"github.com/MKhiriev/secret-decoder/internal/config"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/service"
	"github.com/MKhiriev/secret-decoder/internal/tui"
	"github.com/MKhiriev/secret-decoder/models"
)

// App is the reveal client: a bundle source, the reveal pipeline and the
// terminal UI that drives it.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the client from cfg. The UI receives every pipeline state
// through a relay registered as the pipeline observer.
func NewApp(cfg *config.ClientConfig, info models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	source, err := adapter.NewBundleSource(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create bundle source: %w", err)
	}

	relay := tui.NewStateRelay()
	services, err := service.NewClientServices(source, cfg, logger, service.WithStateObserver(relay.Observe))
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return &App{
		services: services,
		ui:       tui.New(services.Pipeline, relay, info, logger),
		logger:   logger,
	}, nil
}

// Run blocks until the user quits or the process receives a termination
// signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Msg("client started")
	defer a.logger.Info().Msg("client stopped")

	return a.ui.Run(ctx)
}
