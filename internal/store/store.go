package store

import (
	"context"

	"github.com/inovacc/wspace/internal/model"
)

// Store defines the persistence operations over workspaces and their dirs.
//
// Implementations return the typed errors of this package for expected
// conditions and never panic on them.
type Store interface {
	// Initialize creates any missing table or bucket. Calling it on an
	// initialized store is a no-op.
	Initialize(ctx context.Context) error

	// Workspace operations
	CreateWorkspace(ctx context.Context, name string) (int64, error)
	ListWorkspaces(ctx context.Context) ([]model.WorkspaceEntry, error)
	FindWorkspace(ctx context.Context, name string) (model.WorkspaceEntry, error)
	ListWorkspacesWithDirs(ctx context.Context) ([]model.WorkspaceListing, error)

	// Dir operations
	CreateDir(ctx context.Context, workspaceID int64, path string) (int64, error)
	ListDirs(ctx context.Context, workspaceID int64) ([]model.DirEntry, error)
	DeleteDir(ctx context.Context, dirID int64) error

	Ping(ctx context.Context) error
	Close() error
}
