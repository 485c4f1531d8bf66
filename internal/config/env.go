package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// saltFileEnv names a file holding the KDF salt, for deployments that mount
// secrets as files. APP_KDF_SALT wins when both are set.
const saltFileEnv = "APP_KDF_SALT_FILE"

// parseEnv fills cfg from the process environment using the env and
// envPrefix tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.App.KDFSalt != "" {
		return nil
	}
	path, ok := os.LookupEnv(saltFileEnv)
	if !ok || path == "" {
		return nil
	}

	salt, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s for env configs: %w", saltFileEnv, err)
	}
	cfg.App.KDFSalt = strings.TrimRight(string(salt), "\r\n")
	return nil
}
