// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// bundle server, the reveal client and the encoder. It is populated by
// merging values from environment variables, command-line flags and an
// optional JSON or YAML file, then filled with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the key-derivation parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the encrypted bundle on disk.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the bundle server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the client uses to reach the bundle server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values. The KDF parameters must match between
// the encoder that produced a bundle and the client that opens it.
type App struct {
	// KDFSalt is the PBKDF2 salt.
	// Env: APP_KDF_SALT
	KDFSalt string `env:"KDF_SALT"`

	// KDFIterations is the PBKDF2 iteration count.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups file-system settings.
type Storage struct {
	// BundleDir is the directory holding passcode-hash.txt and the
	// encoded-*.enc records.
	// Env: STORAGE_BUNDLE_DIR
	BundleDir string `env:"BUNDLE_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client side of the bundle transport. An empty
// HTTPAddress makes the client read the bundle directly from
// Storage.BundleDir.
type Adapter struct {
	// HTTPAddress is the bundle server base URL (e.g. "localhost:8080" or
	// "https://example.org/secret").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound fetch.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of extra attempts for a failed fetch.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. Config file (path resolved from sources 1 and 2)
//
// Fields left empty by every source take their value from [Defaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withConfigFile().
		build()
}
