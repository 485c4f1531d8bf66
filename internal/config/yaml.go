package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// parseConfigFile reads the config file named by CONFIG or -config. Files
// ending in .yaml or .yml are YAML; anything else is JSON.
func parseConfigFile(path string) (*StructuredConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(path)
	default:
		return parseJSON(path)
	}
}

func parseYAML(yamlFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}

	var yamlCfg StructuredJSONConfig
	if err = yaml.UnmarshalStrict(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return yamlCfg.structured(), nil
}

// UnmarshalYAML accepts durations as strings like "30s" or as integer
// nanoseconds.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case int:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %v", value)
	}
}
