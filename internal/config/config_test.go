package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/todo?sslmode=disable")
	t.Setenv("APP_HOST", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	if cfg.AppHost != "127.0.0.1" {
		t.Errorf("expected default host 127.0.0.1, got %q", cfg.AppHost)
	}
	if cfg.AppPort != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.AppPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/todo?sslmode=disable")
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LOG_JSON", "true")

	cfg := Load()

	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
	if !cfg.LogJSON {
		t.Error("expected LogJSON to be true")
	}
}
