package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commandhandlers.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dispatcher.Name != "commands" {
		t.Fatalf("unexpected dispatcher name: %q", cfg.Dispatcher.Name)
	}
	if cfg.Dispatcher.SlowThreshold != 20*time.Millisecond {
		t.Fatalf("unexpected slow threshold: %v", cfg.Dispatcher.SlowThreshold)
	}
	if cfg.Handlers.DeactivateSeed != 123 {
		t.Fatalf("unexpected deactivate seed: %d", cfg.Handlers.DeactivateSeed)
	}
	if cfg.Handlers.ReactivateUser != "Flerin" {
		t.Fatalf("unexpected reactivate user: %q", cfg.Handlers.ReactivateUser)
	}
	if cfg.Telemetry.Enabled {
		t.Fatalf("expected telemetry disabled")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[dispatcher]
name = "billing"
slow_threshold = "150ms"

[handlers]
reactivate_user = "ops"

[log]
level = "debug"
no_color = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dispatcher.Name != "billing" {
		t.Fatalf("unexpected dispatcher name: %q", cfg.Dispatcher.Name)
	}
	if cfg.Dispatcher.SlowThreshold != 150*time.Millisecond {
		t.Fatalf("unexpected slow threshold: %v", cfg.Dispatcher.SlowThreshold)
	}
	if cfg.Handlers.ReactivateUser != "ops" {
		t.Fatalf("unexpected reactivate user: %q", cfg.Handlers.ReactivateUser)
	}
	if cfg.Handlers.DeactivateSeed != 123 {
		t.Fatalf("undefined key should keep default, got %d", cfg.Handlers.DeactivateSeed)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.NoColor {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	if !cfg.Log.Timestamp {
		t.Fatalf("undefined timestamp should keep default")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[handlers]
deactivate_seed = 7
reactivate_user = "ops"
`)
	t.Setenv("COMMANDHANDLERS_HANDLERS_DEACTIVATE_SEED", "42")
	t.Setenv("COMMANDHANDLERS_DISPATCHER_SLOW_THRESHOLD", "1s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Handlers.DeactivateSeed != 42 {
		t.Fatalf("env should win over file, got %d", cfg.Handlers.DeactivateSeed)
	}
	if cfg.Handlers.ReactivateUser != "ops" {
		t.Fatalf("file value lost: %q", cfg.Handlers.ReactivateUser)
	}
	if cfg.Dispatcher.SlowThreshold != time.Second {
		t.Fatalf("unexpected slow threshold: %v", cfg.Dispatcher.SlowThreshold)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load error, got %v", err)
	}

	bad := writeConfig(t, "[dispatcher\nname = ")
	if _, err := Load(bad); err == nil {
		t.Fatalf("expected decode error")
	}

	t.Setenv("COMMANDHANDLERS_HANDLERS_DEACTIVATE_SEED", "not-a-number")
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("expected env error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Dispatcher.Name = " "
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing name error")
	}

	cfg = Default()
	cfg.Telemetry.Enabled = true
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing endpoint error")
	}

	cfg.Telemetry.Endpoint = "http://localhost:4318"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
