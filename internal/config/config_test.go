package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Server.URL = "https://today.example.com/api"
	cfg.UI.RefreshSeconds = 120
	cfg.UI.RollbackOnError = true

	if err := Save(cfg); err != nil {
		t.Fatalf("unexpected error saving config: %v", err)
	}

	// The file may carry a token, so it must be owner-only.
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("unexpected error resolving config path: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 0600", perm)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}
	if loaded.Server.URL != cfg.Server.URL {
		t.Errorf("Server.URL = %q, want %q", loaded.Server.URL, cfg.Server.URL)
	}
	if loaded.UI.RefreshSeconds != 120 {
		t.Errorf("UI.RefreshSeconds = %d, want 120", loaded.UI.RefreshSeconds)
	}
	if !loaded.UI.RollbackOnError {
		t.Error("UI.RollbackOnError should survive the round trip")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.UI.VimMode {
		t.Error("default config should enable vim mode")
	}
	if cfg.UI.RefreshSeconds != 60 {
		t.Errorf("default RefreshSeconds = %d, want 60", cfg.UI.RefreshSeconds)
	}
	if cfg.UI.RollbackOnError {
		t.Error("default config should keep optimistic state on remote failure")
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("unexpected error resolving config path: %v", err)
	}
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0600); err != nil {
		t.Fatalf("failed to seed config file: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}

func TestRefreshInterval(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    int
	}{
		{"zero falls back to default", 0, 60},
		{"below floor falls back to default", 5, 60},
		{"at floor", 10, 10},
		{"above floor", 300, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.UI.RefreshSeconds = tt.seconds
			if got := cfg.RefreshInterval(); got != tt.want {
				t.Errorf("RefreshInterval() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveTokenPrefersConfigValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TODAYVIEW_TOKEN", "env-token")

	cfg := DefaultConfig()
	cfg.Server.APIToken = "config-token"

	token, err := cfg.ResolveToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "config-token" {
		t.Errorf("token = %q, want the config file value", token)
	}
}

func TestResolveTokenFallsBackToEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", filepath.Join(t.TempDir(), "data"))
	t.Setenv("TODAYVIEW_TOKEN", "env-token")

	cfg := DefaultConfig()
	token, err := cfg.ResolveToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "env-token" {
		t.Errorf("token = %q, want the environment value", token)
	}
}
