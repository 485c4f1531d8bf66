package service

import (
	"fmt"

	"github.com/MKhiriev/secret-decoder/internal/adapter"
	"github.com/MKhiriev/secret-decoder/internal/config"
	"github.com/MKhiriev/secret-decoder/internal/crypto"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/store"
	"github.com/MKhiriev/secret-decoder/internal/utils"
)

// Services bundles what the bundle server exposes.
type Services struct {
	AppInfoService AppInfoService
	BundleService  BundleService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfo,
		BundleService:  NewBundleService(storages.Bundle, logger),
	}, nil
}

// ClientServices bundles what the reveal client runs.
type ClientServices struct {
	Pipeline RevealPipeline
}

// NewClientServices wires the pipeline to source. Pipeline options such as
// a state observer are passed through.
func NewClientServices(source adapter.BundleSource, cfg *config.ClientConfig, logger *logger.Logger, opts ...PipelineOption) (*ClientServices, error) {
	cipher, err := crypto.NewPasscodeCipher(cfg.KDF.Salt, cfg.KDF.Iterations)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	materializer := NewResourceMaterializer(utils.NewUUIDGenerator(), "", logger)

	return &ClientServices{
		Pipeline: NewRevealPipeline(source, cipher, materializer, logger, opts...),
	}, nil
}

// NewEncoder wires an [EncoderService] to the bundle directory of cfg.
func NewEncoder(cfg *config.EncoderConfig, logger *logger.Logger) (EncoderService, error) {
	cipher, err := crypto.NewPasscodeCipher(cfg.KDF.Salt, cfg.KDF.Iterations)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	storages := store.NewStorages(cfg.BundleDir, logger)
	return NewEncoderService(storages.Bundle, cipher, cfg.KDF.Iterations, logger), nil
}
