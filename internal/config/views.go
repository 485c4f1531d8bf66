package config

import (
	"fmt"
	"time"
)

// KDF carries the key-derivation parameters shared by every binary.
type KDF struct {
	Salt       string
	Iterations int
}

// ServerConfig is the bundle server view of [StructuredConfig].
type ServerConfig struct {
	KDF            KDF
	Version        string
	HTTPAddress    string
	RequestTimeout time.Duration
	BundleDir      string
}

// ClientConfig is the reveal client view of [StructuredConfig].
type ClientConfig struct {
	KDF KDF
	// BundleURL selects the HTTP bundle source. When empty the client reads
	// BundleDir directly.
	BundleURL      string
	BundleDir      string
	RequestTimeout time.Duration
	RetryCount     int
}

// EncoderConfig is the encoder CLI view of [StructuredConfig].
type EncoderConfig struct {
	KDF       KDF
	BundleDir string
}

// GetServerConfig builds and validates the server view from env, args and
// the optional config file.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		KDF:            kdfOf(cfg),
		Version:        cfg.App.Version,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		BundleDir:      cfg.Storage.BundleDir,
	}

	return serverCfg, serverCfg.validate()
}

// GetClientConfig builds and validates the client view from env, args and
// the optional config file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		KDF:            kdfOf(cfg),
		BundleURL:      cfg.Adapter.HTTPAddress,
		BundleDir:      cfg.Storage.BundleDir,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		RetryCount:     cfg.Adapter.RetryCount,
	}

	return clientCfg, clientCfg.validate()
}

// GetEncoderConfig builds the encoder view. The encoder parses its own
// command line, so instead of raw args it receives the already parsed
// values as overrides; they win over env and lose to the config file named in
// overrides.JSONFilePath or CONFIG.
func GetEncoderConfig(overrides *StructuredConfig) (*EncoderConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withOverrides(overrides).
		withConfigFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	encoderCfg := &EncoderConfig{
		KDF:       kdfOf(cfg),
		BundleDir: cfg.Storage.BundleDir,
	}

	return encoderCfg, encoderCfg.validate()
}

func kdfOf(cfg *StructuredConfig) KDF {
	return KDF{Salt: cfg.App.KDFSalt, Iterations: cfg.App.KDFIterations}
}
