package config

import "time"

// Default values applied to fields that no source has set.
const (
	DefaultKDFSalt              = "my-static-salt"
	DefaultKDFIterations        = 100_000
	DefaultVersion              = "dev"
	DefaultServerAddress        = "localhost:8080"
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultBundleDir            = "public"
	DefaultAdapterTimeout       = 10 * time.Second
)

// Defaults returns the configuration used when no source provides a value.
// Adapter.HTTPAddress has no default: an empty address selects the local
// bundle directory.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KDFSalt:       DefaultKDFSalt,
			KDFIterations: DefaultKDFIterations,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			BundleDir: DefaultBundleDir,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
