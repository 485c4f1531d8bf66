package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/store"
	"github.com/MKhiriev/secret-decoder/models"
)

type bundleService struct {
	reader store.BundleReader

	logger *logger.Logger
}

// NewBundleService constructs a [BundleService] over a published bundle.
func NewBundleService(reader store.BundleReader, logger *logger.Logger) BundleService {
	return &bundleService{reader: reader, logger: logger}
}

// Token implements [BundleService].
func (s *bundleService) Token(ctx context.Context) (string, error) {
	token, err := s.reader.LoadToken(ctx)
	if err != nil {
		return "", mapBundleError(err)
	}
	return token, nil
}

// Record implements [BundleService].
func (s *bundleService) Record(ctx context.Context, kind models.AssetKind) (models.EncryptedRecord, error) {
	record, err := s.reader.LoadRecord(ctx, kind)
	if err != nil {
		return "", mapBundleError(err)
	}
	return record, nil
}

// Manifest implements [BundleService].
func (s *bundleService) Manifest(ctx context.Context) (models.BundleManifest, error) {
	manifest, err := s.reader.LoadManifest(ctx)
	if err != nil {
		return models.BundleManifest{}, mapBundleError(err)
	}
	return manifest.Published(), nil
}

// mapBundleError hides the storage details of a missing or unknown file
// behind [ErrAssetNotFound]; other failures are passed through wrapped.
func mapBundleError(err error) error {
	if errors.Is(err, store.ErrBundleFileNotFound) || errors.Is(err, store.ErrInvalidAssetKind) {
		return fmt.Errorf("%w: %w", ErrAssetNotFound, err)
	}
	return err
}
