package adapter

import (
	"github.com/MKhiriev/secret-decoder/internal/config"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/store"
)

// NewBundleSource picks the HTTP source when a bundle URL is configured and
// the local directory otherwise.
func NewBundleSource(cfg *config.ClientConfig, logger *logger.Logger) (BundleSource, error) {
	if cfg.BundleURL != "" {
		logger.Info().Str("url", cfg.BundleURL).Msg("using remote bundle")
		return NewHTTPBundleSource(cfg, logger)
	}

	logger.Info().Str("dir", cfg.BundleDir).Msg("using local bundle")
	return NewLocalBundleSource(store.NewFileBundleStorage(cfg.BundleDir, logger)), nil
}
