package model

import (
	"github.com/inovacc/wspace/internal/params"
)

// Config holds the application configuration
type Config struct {
	// Editor is the command used to open workspace directories
	Editor string `json:"editor" yaml:"editor"`

	// EditorArgs are passed to the editor before the directory path
	EditorArgs []string `json:"editor_args,omitempty" yaml:"editor_args,omitempty"`

	// Concurrency bounds how many editor launches run at once when opening a workspace
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// DatabasePath is the location of the workspace database
	DatabasePath string `json:"database_path" yaml:"database_path"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `json:"log_level" yaml:"log_level"`

	// LogFormat is text or json
	LogFormat string `json:"log_format" yaml:"log_format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Editor:       "code", // VS Code as default
		Concurrency:  4,
		DatabasePath: params.DefaultDatabasePath(),
		LogLevel:     "warn",
		LogFormat:    "text",
	}
}
