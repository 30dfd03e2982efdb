// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "todayview"
	keyringUser    = "api-token"
	credFileName   = ".credentials"
)

// DataDir returns the path to the data directory for secure storage.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/todayview/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, "todayview")
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// GetToken retrieves the API token from available sources.
// Priority: 1. TODAYVIEW_TOKEN env var, 2. System keyring, 3. Credentials file
func GetToken() (string, error) {
	if token := os.Getenv("TODAYVIEW_TOKEN"); token != "" {
		return strings.TrimSpace(token), nil
	}

	token, err := keyring.Get(keyringService, keyringUser)
	if err == nil && token != "" {
		return strings.TrimSpace(token), nil
	}

	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	credPath := filepath.Join(dataDir, credFileName)
	data, err := os.ReadFile(credPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil // No token stored
		}
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// SaveToken stores the API token securely.
// Tries system keyring first, falls back to credentials file.
func SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := keyring.Set(keyringService, keyringUser, token); err == nil {
		return nil
	}

	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	credPath := filepath.Join(dataDir, credFileName)
	if err := os.WriteFile(credPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	return nil
}

// ClearToken removes the stored API token from all locations.
func ClearToken() error {
	_ = keyring.Delete(keyringService, keyringUser)

	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	credPath := filepath.Join(dataDir, credFileName)
	if err := os.Remove(credPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}

	return nil
}

// ResolveToken returns the token to authenticate with: the config file's
// token when set, otherwise whatever GetToken finds.
func (c *Config) ResolveToken() (string, error) {
	if c.Server.APIToken != "" {
		return c.Server.APIToken, nil
	}
	return GetToken()
}
