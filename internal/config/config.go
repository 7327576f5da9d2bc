// Package config loads and saves the wspace ini configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/inovacc/wspace/internal/encoding"
	"github.com/inovacc/wspace/internal/model"
)

type editorSection struct {
	Command     string `ini:"command"`
	Args        string `ini:"args"`
	Concurrency int    `ini:"concurrency"`
}

type databaseSection struct {
	Path string `ini:"path"`
}

type logSection struct {
	Level  string `ini:"level"`
	Format string `ini:"format"`
}

// Load reads the config file at path on top of model.DefaultConfig.
// A missing file yields the defaults.
func Load(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	editor := editorSection{Command: cfg.Editor, Concurrency: cfg.Concurrency}
	if err := file.Section("editor").MapTo(&editor); err != nil {
		return cfg, fmt.Errorf("invalid [editor] section: %w", err)
	}

	database := databaseSection{Path: cfg.DatabasePath}
	if err := file.Section("database").MapTo(&database); err != nil {
		return cfg, fmt.Errorf("invalid [database] section: %w", err)
	}

	logs := logSection{Level: cfg.LogLevel, Format: cfg.LogFormat}
	if err := file.Section("log").MapTo(&logs); err != nil {
		return cfg, fmt.Errorf("invalid [log] section: %w", err)
	}

	cfg.Editor = editor.Command
	if editor.Args != "" {
		cfg.EditorArgs = strings.Fields(editor.Args)
	}

	cfg.Concurrency = editor.Concurrency
	cfg.DatabasePath = database.Path
	cfg.LogLevel = logs.Level
	cfg.LogFormat = logs.Format

	return cfg, nil
}

// Save writes cfg to path with owner-only permissions.
func Save(path string, cfg model.Config) error {
	file := ini.Empty()

	sections := []struct {
		name  string
		value any
	}{
		{"editor", &editorSection{Command: cfg.Editor, Args: strings.Join(cfg.EditorArgs, " "), Concurrency: cfg.Concurrency}},
		{"database", &databaseSection{Path: cfg.DatabasePath}},
		{"log", &logSection{Level: cfg.LogLevel, Format: cfg.LogFormat}},
	}

	for _, s := range sections {
		if err := file.Section(s.name).ReflectFrom(s.value); err != nil {
			return fmt.Errorf("failed to encode [%s] section: %w", s.name, err)
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return encoding.WriteFileSecure(path, buf.Bytes())
}
