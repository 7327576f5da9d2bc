package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home dir: %v", err)
	}

	expectedDB := filepath.Join(homeDir, "workspaces.db")
	if cfg.DatabasePath != expectedDB {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, expectedDB)
	}

	if cfg.Editor != "code" {
		t.Errorf("Editor = %q, want %q", cfg.Editor, "code")
	}

	if len(cfg.EditorArgs) != 0 {
		t.Errorf("EditorArgs = %v, want none", cfg.EditorArgs)
	}

	if cfg.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", cfg.Concurrency)
	}

	if cfg.LogLevel != "warn" || cfg.LogFormat != "text" {
		t.Errorf("log = %s/%s, want warn/text", cfg.LogLevel, cfg.LogFormat)
	}
}
