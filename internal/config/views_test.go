package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetServerConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, KDF{Salt: DefaultKDFSalt, Iterations: DefaultKDFIterations}, cfg.KDF)
	assert.Equal(t, DefaultServerAddress, cfg.HTTPAddress)
	assert.Equal(t, DefaultServerRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultBundleDir, cfg.BundleDir)
	assert.Equal(t, DefaultVersion, cfg.Version)
}

func TestGetClientConfig_LocalByDefault(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.BundleURL)
	assert.Equal(t, DefaultBundleDir, cfg.BundleDir)
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS":     "http://localhost:9000",
		"ADAPTER_RETRY_COUNT": "4",
	})

	cfg, err := GetClientConfig([]string{"-fetch-timeout", "2s"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.BundleURL)
	assert.Equal(t, 4, cfg.RetryCount)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig([]string{"-retry", "many"})
	assert.Error(t, err)
}

func TestGetEncoderConfig_Overrides(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_KDF_SALT":       "env-salt",
		"STORAGE_BUNDLE_DIR": "/env/out",
	})

	cfg, err := GetEncoderConfig(&StructuredConfig{Storage: Storage{BundleDir: "/cli/out"}})
	require.NoError(t, err)

	assert.Equal(t, "env-salt", cfg.KDF.Salt)
	assert.Equal(t, DefaultKDFIterations, cfg.KDF.Iterations)
	assert.Equal(t, "/cli/out", cfg.BundleDir)
}

func TestViewValidation(t *testing.T) {
	assert.ErrorIs(t, (&ServerConfig{KDF: KDF{Salt: "s", Iterations: 1}}).validate(), ErrInvalidServerConfigs)
	assert.ErrorIs(t, (&ServerConfig{KDF: KDF{Iterations: 1}}).validate(), ErrInvalidAppConfigs)
	assert.ErrorIs(t, (&ClientConfig{KDF: KDF{Salt: "s", Iterations: 1}}).validate(), ErrInvalidStorageConfigs)
	assert.ErrorIs(t, (&ClientConfig{KDF: KDF{Salt: "s", Iterations: 1}, BundleURL: "x"}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&EncoderConfig{KDF: KDF{Salt: "s", Iterations: 1}}).validate(), ErrInvalidStorageConfigs)
	assert.NoError(t, (&EncoderConfig{KDF: KDF{Salt: "s", Iterations: 1}, BundleDir: "out"}).validate())
}
