package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Backend != BackendSQLite {
		t.Fatalf("expected sqlite default, got %q", cfg.Store.Backend)
	}
	if cfg.Store.Path != "quizmaster.db" {
		t.Fatalf("expected default path, got %q", cfg.Store.Path)
	}
}

func TestLoadParsesBackendSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "store:\n  backend: redis\nredis:\n  addr: localhost:6379\n  db: 2\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Backend != BackendRedis {
		t.Fatalf("expected redis backend, got %q", cfg.Store.Backend)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected redis settings: %+v", cfg.Redis)
	}
	if cfg.Redis.Prefix != "quizmaster" {
		t.Fatalf("expected default prefix kept, got %q", cfg.Redis.Prefix)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  backend: mongo\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
