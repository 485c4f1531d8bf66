package store

import (
	"context"

	"github.com/MKhiriev/secret-decoder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bundle_storage_mock.go -package=mock

// BundleReader reads the published bundle: the verification token and one
// encrypted record per asset.
type BundleReader interface {
	// LoadToken returns the trimmed hex token. ErrBundleFileNotFound when
	// the bundle has none.
	LoadToken(ctx context.Context) (string, error)
	// LoadRecord returns the trimmed record of kind. ErrBundleFileNotFound
	// when the bundle does not carry the asset.
	LoadRecord(ctx context.Context, kind models.AssetKind) (models.EncryptedRecord, error)
	// LoadManifest returns the encoder summary, if one was written.
	LoadManifest(ctx context.Context) (models.BundleManifest, error)
}

// BundleWriter writes a bundle. Every file is replaced atomically.
type BundleWriter interface {
	SaveToken(ctx context.Context, token string) error
	SaveRecord(ctx context.Context, kind models.AssetKind, record models.EncryptedRecord) error
	SaveManifest(ctx context.Context, manifest models.BundleManifest) error
	// RemoveRecord deletes the record of kind. Removing a missing record is
	// not an error.
	RemoveRecord(ctx context.Context, kind models.AssetKind) error
	// ReplaceRecords makes records the complete record set of the bundle.
	// Every record is staged before the first one replaces its file, so a
	// failure while writing leaves the previous records untouched. Records
	// of kinds missing from records are removed.
	ReplaceRecords(ctx context.Context, records map[models.AssetKind]models.EncryptedRecord) error
}

// BundleStorage is a bundle directory opened for reading and writing.
type BundleStorage interface {
	BundleReader
	BundleWriter
	// Dir returns the directory backing the storage.
	Dir() string
}
