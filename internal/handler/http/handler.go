package http

import (
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/service"
)

// Handler serves the bundle files and the server version.
type Handler struct {
	bundle  service.BundleService
	appInfo service.AppInfoService

	logger *logger.Logger
}

func NewHandler(bundle service.BundleService, appInfo service.AppInfoService, logger *logger.Logger) *Handler {
	logger.Info().Msg("bundle http handler created")
	return &Handler{
		bundle:  bundle,
		appInfo: appInfo,
		logger:  logger,
	}
}
