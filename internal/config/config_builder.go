package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// source is one layer of configuration, named for error messages.
type source struct {
	name string
	cfg  *StructuredConfig
}

// configBuilder collects configuration layers in precedence order. Errors
// are accumulated so that every broken source is reported at once.
type configBuilder struct {
	sources []source
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{sources: make([]source, 0, 4)}
}

func (b *configBuilder) add(name string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", name, err))
		return b
	}
	b.sources = append(b.sources, source{name: name, cfg: cfg})
	return b
}

// build merges the layers in order, so that a non-zero field of a later
// layer overrides the same field of an earlier one. Remaining zero fields
// are then filled from [Defaults].
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, src := range b.sources {
		if err := mergo.Merge(merged, src.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s configs: %w", src.name, err)
		}
	}

	if err := mergo.Merge(merged, Defaults()); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := new(StructuredConfig)
	return b.add("env", cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := ParseFlags(args)
	return b.add("flags", cfg, err)
}

// withOverrides appends a config assembled by the caller, for example from
// cobra flags of the encoder.
func (b *configBuilder) withOverrides(cfg *StructuredConfig) *configBuilder {
	if cfg == nil {
		return b
	}
	return b.add("overrides", cfg, nil)
}

// withConfigFile loads the config file named by the last layer that sets
// JSONFilePath. The file layer goes on top of every other one.
func (b *configBuilder) withConfigFile() *configBuilder {
	path := ""
	for _, src := range b.sources {
		if src.cfg.JSONFilePath != "" {
			path = src.cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	cfg, err := parseConfigFile(path)
	return b.add("file "+path, cfg, err)
}
