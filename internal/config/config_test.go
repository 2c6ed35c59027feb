package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/mennaheldaly/Daytrader/internal/errors"
)

func TestLoadMissingConfigWritesTemplateAndUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Auth.Hasher != "sha256" {
		t.Errorf("Hasher = %q, want the sha256 default", cfg.Auth.Hasher)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Storage.DataDir != filepath.Join(dir, "data") {
		t.Errorf("DataDir = %q", cfg.Storage.DataDir)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("template config not written: %v", err)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[storage]
username = "menna"

[auth]
hasher = "bcrypt"

[logging]
level = "debug"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Username != "menna" {
		t.Errorf("Username = %q", cfg.Storage.Username)
	}
	if cfg.Auth.Hasher != "bcrypt" {
		t.Errorf("Hasher = %q", cfg.Auth.Hasher)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidHasher(t *testing.T) {
	dir := t.TempDir()
	content := `
[auth]
hasher = "md5"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load accepted an unknown hasher")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DAYTRADER_USER", "envuser")
	t.Setenv("DAYTRADER_AUTH_HASHER", "bcrypt")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Username != "envuser" {
		t.Errorf("Username = %q, want env override", cfg.Storage.Username)
	}
	if cfg.Auth.Hasher != "bcrypt" {
		t.Errorf("Hasher = %q, want env override", cfg.Auth.Hasher)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Storage: StorageConfig{DataDir: "/tmp/data", UsersDB: "/tmp/users.db"},
		Auth:    AuthConfig{Hasher: "sha256"},
		Logging: LoggingConfig{Level: "info"},
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate rejected a valid config: %v", err)
	}

	cfg.Logging.Level = "verbose"
	err := cfg.Validate()
	if err == nil {
		t.Error("Validate accepted an unknown log level")
	}
	if !apperrors.Is(err, apperrors.ErrConfigInvalid) {
		t.Errorf("validation error %v does not wrap ErrConfigInvalid", err)
	}

	cfg.Logging.Level = "info"
	cfg.Storage.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted an empty data dir")
	}
}
