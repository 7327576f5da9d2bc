// Package application holds the wspace name, version and config location.
package application

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	AppName = "wspace"

	// AppExeName is the command name shown in usage
	AppExeName = "wspace"

	// Version is reported by --version
	Version = "0.1.0"
)

// GetApplicationDirectory returns <user config dir>/wspace, where config.ini
// lives. The lookup runs once per process.
var GetApplicationDirectory = sync.OnceValues(func() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	return filepath.Join(base, AppName), nil
})
