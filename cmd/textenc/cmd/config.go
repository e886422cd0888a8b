package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults. Flags override file values.
type Config struct {
	Scheme string    `yaml:"scheme"`
	Hex    HexConfig `yaml:"hex"`
}

// HexConfig holds hex presentation preferences.
type HexConfig struct {
	Case string `yaml:"case"` // "upper" or "lower"
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Scheme: "base64",
		Hex:    HexConfig{Case: "upper"},
	}
}

// LoadConfig loads configuration from the specified path. Missing fields
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Hex.Case != "upper" && cfg.Hex.Case != "lower" {
		return nil, fmt.Errorf("invalid hex case %q: must be \"upper\" or \"lower\"", cfg.Hex.Case)
	}
	return cfg, nil
}

// SaveConfig saves the configuration to the specified path.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the default configuration path for the
// current platform.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./textenc.yaml"
	}
	return filepath.Join(homeDir, ".config", "textenc", "config.yaml")
}

// ConfigExists checks if a configuration file exists.
func ConfigExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
