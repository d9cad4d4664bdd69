package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.API.BaseURL != "http://localhost:8000" {
			t.Errorf("expected api base URL http://localhost:8000, got %s", config.API.BaseURL)
		}

		if config.API.RateLimit != 5.0 {
			t.Errorf("expected rate limit 5.0, got %f", config.API.RateLimit)
		}

		if config.Database.Path != "./tdx.db" {
			t.Errorf("expected database path ./tdx.db, got %s", config.Database.Path)
		}

		if config.UI.ItemsPerPage != 10 {
			t.Errorf("expected 10 items per page, got %d", config.UI.ItemsPerPage)
		}

		if config.UI.StatusFilter != "" {
			t.Errorf("expected no default status filter, got %s", config.UI.StatusFilter)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.API.BaseURL != defaultConfig.API.BaseURL {
			t.Errorf("created config base URL doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		t.Run("Missing File", func(t *testing.T) {
			if _, err := LoadConfig(configPath); err == nil {
				t.Error("expected error for missing config file")
			}
		})

		t.Run("Invalid TOML", func(t *testing.T) {
			if err := os.WriteFile(configPath, []byte("not [valid toml"), 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			if _, err := LoadConfig(configPath); err == nil {
				t.Error("expected error for invalid TOML")
			}
		})

		t.Run("Custom Values", func(t *testing.T) {
			content := `
[api]
base_url = "https://tasks.example.com"
timeout_seconds = 30
rate_limit = 2.5
bearer_token = "secret"

[ui]
items_per_page = 20
status_filter = "Done"
`
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			config, err := LoadConfig(configPath)
			if err != nil {
				t.Fatalf("failed to load config: %v", err)
			}

			if config.API.BaseURL != "https://tasks.example.com" {
				t.Errorf("expected custom base URL, got %s", config.API.BaseURL)
			}
			if config.API.BearerToken != "secret" {
				t.Errorf("expected bearer token to be set, got %q", config.API.BearerToken)
			}
			if config.UI.ItemsPerPage != 20 {
				t.Errorf("expected 20 items per page, got %d", config.UI.ItemsPerPage)
			}
			if config.UI.StatusFilter != "Done" {
				t.Errorf("expected Done status filter, got %s", config.UI.StatusFilter)
			}
		})
	})
}
