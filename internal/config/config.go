// Package config manages shardctl's non-secret CLI preferences: default
// logging behavior and default checksum inclusion on encode. It never
// stores secrets, shares, or key material.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the persisted CLI preferences.
type Config struct {
	// LogLevel is the default zap level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// LogJSON selects JSON-encoded logs over the console encoder.
	LogJSON bool `yaml:"log_json"`
	// DefaultChecksum controls whether `encode` appends a CRC-24 segment
	// when --no-checksum is not passed explicitly.
	DefaultChecksum bool `yaml:"default_checksum"`

	// ConfigDir is not serialized; it records where this Config was
	// loaded from so Save writes back to the same place.
	ConfigDir string `yaml:"-"`
}

// Default returns the preferences used when no config file exists.
func Default() Config {
	return Config{
		LogLevel:        "info",
		LogJSON:         false,
		DefaultChecksum: true,
	}
}

// DefaultConfigDir returns ~/.config/shardctl, the conventional location
// for this tool's preferences file.
func DefaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "shardctl")
}

// fileName is the preferences file within a config directory.
const fileName = "config.yaml"

// Load reads preferences from configDir (DefaultConfigDir if empty). A
// missing file is not an error: it yields Default() preferences.
func Load(configDir string) (Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	path := filepath.Join(configDir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.ConfigDir = configDir
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	cfg.ConfigDir = configDir
	return cfg, nil
}

// Exists reports whether a preferences file is present in configDir.
func Exists(configDir string) bool {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	_, err := os.Stat(filepath.Join(configDir, fileName))
	return err == nil
}

// Save writes the preferences back to disk, creating ConfigDir if needed.
func (c *Config) Save() error {
	if c.ConfigDir == "" {
		c.ConfigDir = DefaultConfigDir()
	}
	if err := os.MkdirAll(c.ConfigDir, 0o700); err != nil {
		return fmt.Errorf("config: creating %s: %w", c.ConfigDir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}

	path := filepath.Join(c.ConfigDir, fileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}
