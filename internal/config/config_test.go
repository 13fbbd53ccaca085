package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ffpos/ffpos/internal/core/domain"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Dir != "data" {
		t.Errorf("expected default data dir, got %q", cfg.Storage.Dir)
	}
	if len(cfg.Users) != 2 {
		t.Errorf("expected demo users, got %d", len(cfg.Users))
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `storage:
  dir: /var/lib/pos
logging:
  development: true
users:
  - id: "9"
    username: owner
    password: secret
    role: admin
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Dir != "/var/lib/pos" {
		t.Errorf("dir not parsed: %q", cfg.Storage.Dir)
	}
	if !cfg.Logging.Development {
		t.Error("logging mode not parsed")
	}
	if len(cfg.Users) != 1 || cfg.Users[0].Username != "owner" {
		t.Errorf("users not parsed: %+v", cfg.Users)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("users: [broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestCredentials(t *testing.T) {
	cfg := Default()
	creds := cfg.Credentials()
	if len(creds) != 2 {
		t.Fatalf("expected 2 credentials, got %d", len(creds))
	}
	if creds[0].Role != domain.RoleAdmin || creds[1].Role != domain.RoleCashier {
		t.Errorf("roles not converted: %+v", creds)
	}
}
