// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	UI     UIConfig     `yaml:"ui"`
}

// ServerConfig holds sync-server settings.
type ServerConfig struct {
	// URL is the base URL of the TodayView sync API.
	URL string `yaml:"url"`

	// APIToken authenticates against the sync API. Leave empty to use the
	// keyring / TODAYVIEW_TOKEN lookup (see credentials.go).
	APIToken string `yaml:"api_token,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode bool `yaml:"vim_mode"`

	// RefreshSeconds is the polling interval for remote task refresh.
	RefreshSeconds int `yaml:"refresh_seconds,omitempty"`

	// Notifications enables desktop notifications for overdue tasks.
	Notifications bool `yaml:"notifications"`

	// RollbackOnError controls what happens to optimistic local changes
	// (completion, deletion, reorder) when the remote call fails: false
	// keeps the local state and surfaces the error in the status bar,
	// true refetches from the server, discarding the local change.
	RollbackOnError bool `yaml:"rollback_on_error"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{},
		UI: UIConfig{
			VimMode:        true,
			RefreshSeconds: 60,
			Notifications:  true,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "todayview")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Owner read/write only: the file may carry a token.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// RefreshInterval returns the polling interval with a sane floor.
func (c *Config) RefreshInterval() int {
	if c.UI.RefreshSeconds < 10 {
		return 60
	}
	return c.UI.RefreshSeconds
}
