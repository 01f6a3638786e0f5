// Package config loads and persists the application configuration from a
// YAML file, with PITCHPERFECT_* environment variable overrides layered on
// top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const envPrefix = "PITCHPERFECT_"

// Theme preference values. Empty means "follow the terminal".
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config is the persisted application configuration.
type Config struct {
	// APIURL is the base URL of the analysis service
	APIURL string `koanf:"api_url" yaml:"api_url"`

	// Theme is "dark", "light", or empty for terminal detection
	Theme string `koanf:"theme" yaml:"theme"`

	// RequestTimeoutSeconds bounds each analysis upload
	RequestTimeoutSeconds int `koanf:"request_timeout_seconds" yaml:"request_timeout_seconds"`

	// DebugLog, when set, is a file path receiving debug logs
	DebugLog string `koanf:"debug_log" yaml:"debug_log,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		APIURL:                "http://localhost:8000",
		Theme:                 "",
		RequestTimeoutSeconds: 300,
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, "pitchperfect", "config.yaml"), nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PITCHPERFECT_API_URL, PITCHPERFECT_THEME,
// ...). A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path, creating the
// parent directory if necessary.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url is required")
	}
	switch c.Theme {
	case "", ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid theme %q: must be dark or light", c.Theme)
	}
	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive")
	}
	return nil
}
