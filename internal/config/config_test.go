package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/botwatch-dev/botwatch/internal/constant"
)

func TestLoadCreatesDefaults(t *testing.T) {
	baseDir := t.TempDir()

	cfg, err := Load(baseDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != constant.DefaultPort {
		t.Errorf("Port: got %d, want %d", cfg.Port, constant.DefaultPort)
	}
	if cfg.Auth.Required {
		t.Error("Auth must default to not required")
	}
	if cfg.Auth.JWTSecret == "" {
		t.Error("A JWT secret must be generated on first run")
	}

	if _, err := os.Stat(filepath.Join(baseDir, constant.ConfigFileName)); err != nil {
		t.Errorf("Config file was not written: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	baseDir := t.TempDir()

	cfg, err := Load(baseDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Port = 9999
	cfg.Auth.Required = true
	cfg.Log.Level = "debug"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(baseDir)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if reloaded.Port != 9999 {
		t.Errorf("Port: got %d, want 9999", reloaded.Port)
	}
	if !reloaded.AuthRequired() {
		t.Error("Auth.Required was not persisted")
	}
	if reloaded.LogLevel() != "debug" {
		t.Errorf("Log level: got %s, want debug", reloaded.LogLevel())
	}
	if reloaded.JWTSecret() != cfg.JWTSecret() {
		t.Error("JWT secret must survive reload")
	}
}

func TestReloadPicksUpChanges(t *testing.T) {
	baseDir := t.TempDir()

	cfg, err := Load(baseDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	other, err := Load(baseDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	other.Log.Level = "trace"
	if err := other.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := cfg.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if cfg.LogLevel() != "trace" {
		t.Errorf("Log level after reload: got %s, want trace", cfg.LogLevel())
	}
}
