// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application constraints before it is used at startup. Defaults have been
// applied by then, so only explicitly bad values can fail here.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.KDFIterations < 0 {
		return fmt.Errorf("%w: negative kdf iterations", ErrInvalidAppConfigs)
	}
	if cfg.Adapter.RetryCount < 0 {
		return fmt.Errorf("%w: negative retry count", ErrInvalidAdapterConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (k KDF) validate() error {
	if k.Salt == "" || k.Iterations < 1 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.KDF.validate(); err != nil {
		return err
	}

	if cfg.HTTPAddress == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.BundleDir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.KDF.validate(); err != nil {
		return err
	}

	if cfg.BundleURL == "" && cfg.BundleDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.BundleURL != "" && cfg.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *EncoderConfig) validate() error {
	if err := cfg.KDF.validate(); err != nil {
		return err
	}

	if cfg.BundleDir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
