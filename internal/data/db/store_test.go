package db

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	tmpDir := t.TempDir()
	store, err := NewStore(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store, tmpDir
}

func TestNewStore(t *testing.T) {
	store, tmpDir := setupTestStore(t)

	dbPath := filepath.Join(tmpDir, "db", "botwatch.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("Database file was not created at %s", dbPath)
	}

	if err := store.HealthCheck(); err != nil {
		t.Errorf("HealthCheck failed: %v", err)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if stats.BotCount != 0 || stats.TestCount != 0 || stats.UserCount != 0 {
		t.Errorf("Expected empty store, got %+v", stats)
	}
	if stats.DatabasePath != dbPath {
		t.Errorf("DatabasePath mismatch: got %s, want %s", stats.DatabasePath, dbPath)
	}
}
