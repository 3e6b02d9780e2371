package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "indexer-url: https://indexer.example.com\n")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want :8080", cfg.Listen)
	}
	if cfg.PageSize != 1000 {
		t.Errorf("PageSize = %d, want 1000", cfg.PageSize)
	}
	if cfg.MaxPages != 10000 {
		t.Errorf("MaxPages = %d, want 10000", cfg.MaxPages)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if !cfg.RateLimitEnabled {
		t.Error("RateLimitEnabled = false, want true")
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v, want 1m", cfg.RateLimitWindow)
	}
	if cfg.PriceCacheTTL != 5*time.Minute {
		t.Errorf("PriceCacheTTL = %v, want 5m", cfg.PriceCacheTTL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadRequiresIndexerURL(t *testing.T) {
	path := writeConfig(t, "listen: :9000\n")

	if _, err := Load(path, nil); err == nil {
		t.Fatal("Load succeeded without indexer-url")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
indexer-url: https://indexer.example.com
indexer-key: secret
listen: :9090
redis-addr: redis:6379
pg-dsn: postgres://localhost/walletscope
rate-limit-enabled: false
page-size: 250
api-keys:
  abc123: 2
  def456: 1
`)

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.IndexerURL != "https://indexer.example.com" {
		t.Errorf("IndexerURL = %q", cfg.IndexerURL)
	}
	if cfg.IndexerKey != "secret" {
		t.Errorf("IndexerKey = %q", cfg.IndexerKey)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.PostgresDSN != "postgres://localhost/walletscope" {
		t.Errorf("PostgresDSN = %q", cfg.PostgresDSN)
	}
	if cfg.RateLimitEnabled {
		t.Error("RateLimitEnabled = true, want false")
	}
	if cfg.PageSize != 250 {
		t.Errorf("PageSize = %d, want 250", cfg.PageSize)
	}
	if got := cfg.APIKeys["abc123"]; got != 2 {
		t.Errorf("APIKeys[abc123] = %d, want 2", got)
	}
	if got := cfg.APIKeys["def456"]; got != 1 {
		t.Errorf("APIKeys[def456] = %d, want 1", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WALLETSCOPE_INDEXER_URL", "https://env.example.com")
	t.Setenv("WALLETSCOPE_LOG_LEVEL", "debug")

	path := writeConfig(t, "listen: :7000\n")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IndexerURL != "https://env.example.com" {
		t.Errorf("IndexerURL = %q", cfg.IndexerURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}
