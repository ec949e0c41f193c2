package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr=%q want=:8080", cfg.Server.Addr)
	}
	if cfg.Storage.DBPath != "data/roommate.db" {
		t.Fatalf("db path=%q", cfg.Storage.DBPath)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  host: 127.0.0.1
  port: 9000
storage:
  db_path: /tmp/custom.db
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Load(path)
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("addr=%q want=127.0.0.1:9000", cfg.Server.Addr)
	}
	if cfg.Storage.DBPath != "/tmp/custom.db" {
		t.Fatalf("db path=%q", cfg.Storage.DBPath)
	}
	// untouched keys keep their defaults
	if cfg.Storage.RoomsPath != "data/rooms.json" {
		t.Fatalf("rooms path=%q", cfg.Storage.RoomsPath)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("API_PORT", "9100")
	t.Setenv("DB_PATH", "/tmp/env.db")

	cfg := Load(path)
	if cfg.Server.Port != 9100 {
		t.Fatalf("port=%d want=9100", cfg.Server.Port)
	}
	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Fatalf("db path=%q want=/tmp/env.db", cfg.Storage.DBPath)
	}
}
