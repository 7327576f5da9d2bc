package model

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicatePath indicates the workspace already holds a dir with that path
	ErrDuplicatePath = errors.New("directory already in workspace")

	// ErrEmptyName indicates a blank workspace name
	ErrEmptyName = errors.New("workspace name is required")

	// ErrEmptyPath indicates a blank dir path
	ErrEmptyPath = errors.New("directory path is required")
)

// ValidateName checks a workspace name before it is sent to storage.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	return nil
}

// ValidatePath checks a dir path before it is sent to storage.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}

	return nil
}
