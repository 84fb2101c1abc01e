// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config mirrors the builder flags so a bundle recipe can be checked into a
// repository next to its pattern files:
//
//	sources:
//	  - https://curl.se/ca/cacert.pem
//	  - supplement.pem
//	out: roots.pem
//	include: include.txt
//	exclude: exclude.txt
//	comment: true
//
// Values given explicitly on the command line take precedence over the file.
type Config struct {
	Sources        []string `json:"sources,omitempty" yaml:"sources,omitempty"`
	Out            string   `json:"out,omitempty" yaml:"out,omitempty"`
	Include        string   `json:"include,omitempty" yaml:"include,omitempty"`
	Exclude        string   `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Comment        *bool    `json:"comment,omitempty" yaml:"comment,omitempty"`
	TimeoutSeconds int      `json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty"`
}

// detectConfigFormat determines the configuration file format based on file extension.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig reads the config file at configPath from fs. The format is
// chosen by extension: .yaml and .yml are YAML, anything else is JSON.
func loadConfig(fs afero.Fs, configPath string) (*Config, error) {
	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
		return nil, err
	}

	if config.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid config file: timeoutSeconds must not be negative, got %d", config.TimeoutSeconds)
	}

	return config, nil
}
