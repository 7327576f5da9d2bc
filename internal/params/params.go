package params

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/wspace/internal/application"
)

const (
	// DatabaseFileName is the workspace database kept in the home directory
	DatabaseFileName = "workspaces.db"

	// ConfigFileName is the ini file kept in the application directory
	ConfigFileName = "config.ini"
)

// DefaultDatabasePath returns ~/workspaces.db, falling back to the working
// directory when the home directory cannot be resolved.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return filepath.Join(home, DatabaseFileName)
}

// ConfigPath returns the location of the configuration file.
func ConfigPath() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ConfigFileName), nil
}

// ExpandPath expands a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		path = filepath.Join(home, path[1:])
	}

	return filepath.Abs(path)
}
