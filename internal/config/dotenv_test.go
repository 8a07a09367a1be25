package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvPopulatesUnsetKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("MSF_CREDENTIAL=from-file\nPORT=7000\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envMsfCred, "")
	t.Setenv(envPort, "6000")
	os.Unsetenv(envMsfCred)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg := Load()
	if cfg.MySportsFeeds.Credential != "from-file" {
		t.Fatalf("expected credential from file, got %q", cfg.MySportsFeeds.Credential)
	}
	if cfg.Port != "6000" {
		t.Fatalf("expected existing env to win over file, got %s", cfg.Port)
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}
