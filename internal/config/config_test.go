package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/wspace/internal/model"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.ini"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\ncommand = nvim\nargs = --clean -p\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	defaults := model.DefaultConfig()
	assert.Equal(t, "nvim", cfg.Editor)
	assert.Equal(t, []string{"--clean", "-p"}, cfg.EditorArgs)
	assert.Equal(t, defaults.Concurrency, cfg.Concurrency)
	assert.Equal(t, defaults.DatabasePath, cfg.DatabasePath)
	assert.Equal(t, defaults.LogLevel, cfg.LogLevel)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wspace", "config.ini")

	want := model.Config{
		Editor:       "subl",
		EditorArgs:   []string{"-n"},
		Concurrency:  2,
		DatabasePath: "/data/ws.db",
		LogLevel:     "debug",
		LogFormat:    "json",
	}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[editor]")
	assert.Contains(t, string(data), "[database]")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[editor\ncommand = code\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}
