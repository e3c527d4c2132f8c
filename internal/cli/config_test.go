package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
token = "tok123"
page_size = 50
max_retries = 5
retry_delay = "500ms"
`)

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig() = %v", err)
	}
	if cfg.Token != "tok123" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.PageSize != 50 {
		t.Errorf("PageSize = %d", cfg.PageSize)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d", cfg.MaxRetries)
	}
	d, err := cfg.retryDelay()
	if err != nil {
		t.Fatalf("retryDelay() = %v", err)
	}
	if d != 500*time.Millisecond {
		t.Errorf("retryDelay = %v", d)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	// Default location may be absent.
	if _, err := loadConfig(missing, false); err != nil {
		t.Errorf("implicit missing file should not error, got %v", err)
	}

	// An explicitly given path must exist.
	if _, err := loadConfig(missing, true); err == nil {
		t.Error("explicit missing file should error")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := writeConfig(t, `token = [broken`)
	if _, err := loadConfig(path, true); err == nil {
		t.Error("invalid TOML should error")
	}
}

func TestRetryDelayInvalid(t *testing.T) {
	cfg := fileConfig{RetryDelay: "soon"}
	if _, err := cfg.retryDelay(); err == nil {
		t.Error("invalid duration should error")
	}
}

func TestRetryDelayUnset(t *testing.T) {
	var cfg fileConfig
	d, err := cfg.retryDelay()
	if err != nil || d != 0 {
		t.Errorf("retryDelay() = %v, %v, want 0, nil", d, err)
	}
}
