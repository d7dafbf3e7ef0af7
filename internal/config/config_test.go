package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"APP_ENV", "API_BASE_URL", "API_TIMEOUT", "LOG_LEVEL",
		"CONSOLE_LANG", "SESSION_BACKEND", "SESSION_DIR",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "console.yaml")
	yaml := `
api:
  base_url: https://masterstack.example/api
  timeout: 30s
log:
  level: warn
language: en
session:
  backend: redis
  redis:
    addr: redis.internal:6379
    db: 2
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.API.BaseURL != "https://masterstack.example/api" {
		t.Fatalf("unexpected base url: %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.API.Timeout)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("unexpected log level: %s", cfg.Log.Level)
	}
	if cfg.Language != "en" {
		t.Fatalf("unexpected language: %s", cfg.Language)
	}
	if cfg.Session.Backend != SessionBackendRedis || cfg.Session.Redis.DB != 2 {
		t.Fatalf("unexpected session config: %+v", cfg.Session)
	}
	// Untouched values keep their defaults.
	if cfg.Env != "dev" {
		t.Fatalf("unexpected env: %s", cfg.Env)
	}
}

func TestEnvOverridesWinOverYAML(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("API_BASE_URL", "http://env-wins:5000/api")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("CONSOLE_LANG", "en")

	path := filepath.Join(t.TempDir(), "console.yaml")
	yaml := `
api:
  base_url: http://yaml-loses:5000/api
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.API.BaseURL != "http://env-wins:5000/api" {
		t.Fatalf("env override lost: %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Fatalf("env timeout lost: %s", cfg.API.Timeout)
	}
	if cfg.Language != "en" {
		t.Fatalf("env language lost: %s", cfg.Language)
	}
}

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.API.BaseURL == "" || cfg.Session.Backend != SessionBackendFile {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Session.Dir == "" {
		t.Fatalf("session dir should default to a usable path")
	}
}

func TestValidationRejectsBadValues(t *testing.T) {
	clearConfigEnv(t)

	t.Setenv("SESSION_BACKEND", "vault")
	if _, err := Load(""); err == nil {
		t.Fatalf("unknown session backend should be rejected")
	}
	os.Unsetenv("SESSION_BACKEND")

	t.Setenv("CONSOLE_LANG", "fr")
	if _, err := Load(""); err == nil {
		t.Fatalf("unsupported language should be rejected")
	}
}
