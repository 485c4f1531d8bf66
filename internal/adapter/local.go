package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/secret-decoder/internal/store"
	"github.com/MKhiriev/secret-decoder/models"
)

type localBundleSource struct {
	reader store.BundleReader
}

// NewLocalBundleSource serves the bundle straight from storage, for running
// the client next to an unpacked bundle without a server.
func NewLocalBundleSource(reader store.BundleReader) BundleSource {
	return &localBundleSource{reader: reader}
}

// FetchToken implements [BundleSource].
func (l *localBundleSource) FetchToken(ctx context.Context) (string, error) {
	token, err := l.reader.LoadToken(ctx)
	if err != nil {
		return "", fmt.Errorf("load token: %w", mapStoreError(err))
	}
	if token == "" {
		return "", fmt.Errorf("load token: %w", ErrEmptyResponse)
	}

	return token, nil
}

// FetchRecord implements [BundleSource].
func (l *localBundleSource) FetchRecord(ctx context.Context, kind models.AssetKind) (models.EncryptedRecord, error) {
	record, err := l.reader.LoadRecord(ctx, kind)
	if err != nil {
		return "", fmt.Errorf("load %s record: %w", kind, mapStoreError(err))
	}
	if record == "" {
		return "", fmt.Errorf("load %s record: %w", kind, ErrEmptyResponse)
	}

	return record, nil
}

// FetchManifest implements [BundleSource].
func (l *localBundleSource) FetchManifest(ctx context.Context) (models.BundleManifest, error) {
	manifest, err := l.reader.LoadManifest(ctx)
	if err != nil {
		return models.BundleManifest{}, fmt.Errorf("load manifest: %w", mapStoreError(err))
	}

	return manifest, nil
}

func mapStoreError(err error) error {
	if errors.Is(err, store.ErrBundleFileNotFound) {
		return fmt.Errorf("%w: %w", ErrAssetNotFound, err)
	}
	return err
}
