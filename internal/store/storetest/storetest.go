// Package storetest holds the behaviour every store.Store backend must share.
//
// Backend packages call Run from their own tests with a factory that opens a
// fresh store at the given path.
package storetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/wspace/internal/model"
	"github.com/inovacc/wspace/internal/store"
)

// Factory opens a store backed by the file at path.
type Factory func(t *testing.T, path string) store.Store

// Open returns an initialized store in a temporary directory, closed on cleanup.
func Open(t *testing.T, factory Factory) store.Store {
	t.Helper()

	return OpenAt(t, factory, filepath.Join(t.TempDir(), "workspaces.db"))
}

// OpenAt is Open with an explicit database path.
func OpenAt(t *testing.T, factory Factory, path string) store.Store {
	t.Helper()

	s := factory(t, path)
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("failed to close store: %v", err)
		}
	})

	require.NoError(t, s.Initialize(context.Background()))

	return s
}

// Run executes the shared suite.
func Run(t *testing.T, factory Factory) {
	t.Run("EndToEnd", func(t *testing.T) { testEndToEnd(t, factory) })
	t.Run("DistinctNames", func(t *testing.T) { testDistinctNames(t, factory) })
	t.Run("DuplicateName", func(t *testing.T) { testDuplicateName(t, factory) })
	t.Run("EmptyName", func(t *testing.T) { testEmptyName(t, factory) })
	t.Run("CreateDirUnknownWorkspace", func(t *testing.T) { testCreateDirUnknownWorkspace(t, factory) })
	t.Run("DuplicatePathsAllowed", func(t *testing.T) { testDuplicatePathsAllowed(t, factory) })
	t.Run("DeleteTwice", func(t *testing.T) { testDeleteTwice(t, factory) })
	t.Run("ListDirsUnknownWorkspace", func(t *testing.T) { testListDirsUnknownWorkspace(t, factory) })
	t.Run("DirsScopedToWorkspace", func(t *testing.T) { testDirsScopedToWorkspace(t, factory) })
	t.Run("FindWorkspace", func(t *testing.T) { testFindWorkspace(t, factory) })
	t.Run("ListWorkspacesWithDirs", func(t *testing.T) { testListWorkspacesWithDirs(t, factory) })
	t.Run("InitializeIdempotent", func(t *testing.T) { testInitializeIdempotent(t, factory) })
	t.Run("Ping", func(t *testing.T) { testPing(t, factory) })
}

func testEndToEnd(t *testing.T, factory Factory) {
	ctx := context.Background()
	s := Open(t, factory)

	wsID, err := s.CreateWorkspace(ctx, "proj")
	require.NoError(t, err)
	assert.Equal(t, int64(1), wsID)

	x, err := s.CreateDir(ctx, wsID, "/x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), x)

	dirs, err := s.ListDirs(ctx, wsID)
	require.NoError(t, err)
	assert.Equal(t, []model.DirEntry{{ID: 1, Path: "/x"}}, dirs)

	y, err := s.CreateDir(ctx, wsID, "/y")
	require.NoError(t, err)
	assert.Equal(t, int64(2), y)

	dirs, err = s.ListDirs(ctx, wsID)
	require.NoError(t, err)
	assert.Equal(t, []model.DirEntry{{ID: 1, Path: "/x"}, {ID: 2, Path: "/y"}}, dirs)

	require.NoError(t, s.DeleteDir(ctx, 1))

	dirs, err = s.ListDirs(ctx, wsID)
	require.NoError(t, err)
	assert.Equal(t, []model.DirEntry{{ID: 2, Path: "/y"}}, dirs)

	_, err = s.CreateWorkspace(ctx, "proj")
	assert.ErrorIs(t, err, store.ErrDuplicateName)

	workspaces, err := s.ListWorkspaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.WorkspaceEntry{{ID: 1, Name: "proj"}}, workspaces)
}

func testDistinctNames(t *testing.T, factory Factory) {
	ctx := context.Background()
	s := Open(t, factory)

	a, err := s.CreateWorkspace(ctx, "alpha")
	require.NoError(t, err)

	b, err := s.CreateWorkspace(ctx, "beta")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotZero(t, a)
	assert.NotZero(t, b)

	workspaces, err := s.ListWorkspaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.WorkspaceEntry{{ID: a, Name: "alpha"}, {ID: b, Name: "beta"}}, workspaces)
}

func testDuplicateName(t *testing.T, factory Factory) {
	ctx := context.Background()
	s := Open(t, factory)

	_, err := s.CreateWorkspace(ctx, "proj")
	require.NoError(t, err)

	_, err = s.CreateWorkspace(ctx, "other")
	require.NoError(t, err)

	id, err := s.CreateWorkspace(ctx, "proj")
	assert.Zero(t, id)

	var dup *store.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "proj", dup.Name)

	workspaces, err := s.ListWorkspaces(ctx)
	require.NoError(t, err)
	assert.Len(t, workspaces, 2)
}

func testEmptyName(t *testing.T, factory Factory) {
	s := Open(t, factory)

	_, err := s.CreateWorkspace(context.Background(), "")
	assert.ErrorIs(t, err, model.ErrEmptyName)
}

func testCreateDirUnknownWorkspace(t *testing.T, factory Factory) {
	ctx := context.Background()
	s := Open(t, factory)

	_, err := s.CreateDir(ctx, 42, "/x")

	var fk *store.ForeignKeyError
	require.ErrorAs(t, err, &fk)
	assert.Equal(t, int64(42), fk.WorkspaceID)

	dirs, err := s.ListDirs(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func testDuplicatePathsAllowed(t *testing.T, factory Factory) {
	ctx := context.Background()
	s := Open(t, factory)

	wsID, err := s.CreateWorkspace(ctx, "proj")
	require.NoError(t, err)

	first, err := s.CreateDir(ctx, wsID, "/x")
	require.NoError(t, err)

	second, err := s.CreateDir(ctx, wsID, "/x")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	dirs, err := s.ListDirs(ctx, wsID)
	require.NoError(t, err)
	assert.Len(t, dirs, 2)
}

func testDeleteTwice(t *testing.T, factory Factory) {
	ctx := context.Background()
	s := Open(t, factory)

	wsID, err := s.CreateWorkspace(ctx, "proj")
	require.NoError(t, err)

	id, err := s.CreateDir(ctx, wsID, "/x")
	require.NoError(t, err)

	require.NoError(t, s.DeleteDir(ctx, id))

	err = s.DeleteDir(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.DeleteDir(ctx, 999)
	var nf *store.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "dir", nf.Entity)
}

func testListDirsUnknownWorkspace(t *testing.T, factory Factory) {
	s := Open(t, factory)

	dirs, err := s.ListDirs(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, dirs)
	assert.Empty(t, dirs)
}

func testDirsScopedToWorkspace(t *testing.T, factory Factory) {
	ctx := context.Background()
	s := Open(t, factory)

	a, err := s.CreateWorkspace(ctx, "a")
	require.NoError(t, err)

	b, err := s.CreateWorkspace(ctx, "b")
	require.NoError(t, err)

	_, err = s.CreateDir(ctx, a, "/a1")
	require.NoError(t, err)

	bDir, err := s.CreateDir(ctx, b, "/b1")
	require.NoError(t, err)

	_, err = s.CreateDir(ctx, a, "/a2")
	require.NoError(t, err)

	dirs, err := s.ListDirs(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, []model.DirEntry{{ID: bDir, Path: "/b1"}}, dirs)

	dirs, err = s.ListDirs(ctx, a)
	require.NoError(t, err)
	require.Len(t, dirs, 2)
	assert.Equal(t, "/a1", dirs[0].Path)
	assert.Equal(t, "/a2", dirs[1].Path)
}

func testFindWorkspace(t *testing.T, factory Factory) {
	ctx := context.Background()
	s := Open(t, factory)

	id, err := s.CreateWorkspace(ctx, "proj")
	require.NoError(t, err)

	got, err := s.FindWorkspace(ctx, "proj")
	require.NoError(t, err)
	assert.Equal(t, model.WorkspaceEntry{ID: id, Name: "proj"}, got)

	_, err = s.FindWorkspace(ctx, "missing")
	assert.True(t, store.IsNotFound(err))
}

func testListWorkspacesWithDirs(t *testing.T, factory Factory) {
	ctx := context.Background()
	s := Open(t, factory)

	listings, err := s.ListWorkspacesWithDirs(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)

	a, err := s.CreateWorkspace(ctx, "a")
	require.NoError(t, err)

	b, err := s.CreateWorkspace(ctx, "empty")
	require.NoError(t, err)

	d1, err := s.CreateDir(ctx, a, "/one")
	require.NoError(t, err)

	d2, err := s.CreateDir(ctx, a, "/two")
	require.NoError(t, err)

	listings, err = s.ListWorkspacesWithDirs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.WorkspaceListing{
		{ID: a, Name: "a", Dirs: []model.DirEntry{{ID: d1, Path: "/one"}, {ID: d2, Path: "/two"}}},
		{ID: b, Name: "empty", Dirs: []model.DirEntry{}},
	}, listings)
}

func testInitializeIdempotent(t *testing.T, factory Factory) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "workspaces.db")

	first := factory(t, path)
	require.NoError(t, first.Initialize(ctx))

	wsID, err := first.CreateWorkspace(ctx, "proj")
	require.NoError(t, err)

	_, err = first.CreateDir(ctx, wsID, "/x")
	require.NoError(t, err)

	require.NoError(t, first.Initialize(ctx))
	require.NoError(t, first.Close())

	second := OpenAt(t, factory, path)

	workspaces, err := second.ListWorkspaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.WorkspaceEntry{{ID: wsID, Name: "proj"}}, workspaces)

	dirs, err := second.ListDirs(ctx, wsID)
	require.NoError(t, err)
	assert.Len(t, dirs, 1)
}

func testPing(t *testing.T, factory Factory) {
	s := Open(t, factory)

	assert.NoError(t, s.Ping(context.Background()))
}
