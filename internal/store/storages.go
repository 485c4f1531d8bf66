package store

import "github.com/MKhiriev/secret-decoder/internal/logger"

// Storages groups the storage backends handed to the service layer.
type Storages struct {
	Bundle BundleStorage
}

// NewStorages opens the bundle directory.
func NewStorages(bundleDir string, logger *logger.Logger) *Storages {
	return &Storages{
		Bundle: NewFileBundleStorage(bundleDir, logger),
	}
}
