package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/inovacc/wspace/internal/model"
	"github.com/inovacc/wspace/internal/process"
	"github.com/inovacc/wspace/internal/store"
)

type recordingLauncher struct {
	mu      sync.Mutex
	command string
	paths   []string
	fail    map[string]bool
}

func (r *recordingLauncher) Launch(command string, args ...string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := args[len(args)-1]
	r.command = command
	r.paths = append(r.paths, path)

	if r.fail[path] {
		return 0, &process.LaunchError{Command: command, Args: args, Err: errors.New("not found")}
	}

	return 7, nil
}

type harness struct {
	dir      string
	launcher *recordingLauncher
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	return &harness{dir: t.TempDir(), launcher: &recordingLauncher{fail: map[string]bool{}}}
}

func (h *harness) configPath() string {
	return filepath.Join(h.dir, "config.ini")
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	a := &app{stdout: &stdout, stderr: &stderr, launcher: h.launcher}

	cmd := newRootCmd(a)
	cmd.SetArgs(append(args, "--config", h.configPath(), "--db", filepath.Join(h.dir, "workspaces.db")))

	err := cmd.ExecuteContext(context.Background())
	require.NoError(t, a.close())

	return stdout.String(), err
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()

	out, err := h.run(t, args...)
	require.NoError(t, err)

	return out
}

func TestRoot_NoFlagsPrintsHelp(t *testing.T) {
	out := newHarness(t).mustRun(t)

	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--workspace")
}

func TestRoot_Version(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "alone", args: []string{"--version"}},
		{name: "before other flags", args: []string{"--version", "--log-level", "debug"}},
		{name: "after other flags", args: []string{"--log-level", "debug", "--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := newHarness(t).mustRun(t, tt.args...)

			assert.Equal(t, "wspace version 0.1.0\n", out)
		})
	}
}

func TestRoot_CreateWorkspace(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun(t, "-w", "proj")
	assert.Equal(t, "Created workspace \"proj\" (id 1)\n", out)

	_, err := h.run(t, "-w", "proj")
	assert.ErrorIs(t, err, store.ErrDuplicateName)

	out = h.mustRun(t, "-w", "other")
	assert.Contains(t, out, "(id 2)")
}

func TestRoot_AddPathCreatesWorkspace(t *testing.T) {
	h := newHarness(t)
	dir := filepath.Join(h.dir, "src")

	out := h.mustRun(t, "-w", "proj", "-p", dir)
	assert.Contains(t, out, "Added "+dir+" to \"proj\" (id 1)")

	out = h.mustRun(t, "--workspace", "proj", "--path", filepath.Join(h.dir, "lib"))
	assert.Contains(t, out, "(id 2)")

	_, err := h.run(t, "-w", "proj", "-p", dir)
	assert.ErrorIs(t, err, model.ErrDuplicatePath)
}

func TestRoot_PathRequiresWorkspace(t *testing.T) {
	_, err := newHarness(t).run(t, "-p", "/tmp")
	assert.ErrorContains(t, err, "--path requires --workspace")
}

func TestRoot_List(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun(t, "-l")
	assert.Contains(t, out, "No workspaces configured.")

	h.mustRun(t, "-w", "proj", "-p", "/src/a")
	h.mustRun(t, "-w", "proj", "-p", "/src/b")
	h.mustRun(t, "-w", "empty")

	out = h.mustRun(t, "-l")
	assert.Equal(t, "proj (id 1)\n  [1] /src/a\n  [2] /src/b\nempty (id 2)\n  (no directories)\n", out)

	out = h.mustRun(t, "-l", "-o", "json")

	var listings []model.WorkspaceListing
	require.NoError(t, json.Unmarshal([]byte(out), &listings))
	require.Len(t, listings, 2)
	assert.Equal(t, []model.DirEntry{{ID: 1, Path: "/src/a"}, {ID: 2, Path: "/src/b"}}, listings[0].Dirs)
	assert.Empty(t, listings[1].Dirs)

	out = h.mustRun(t, "-l", "-o", "yaml")

	listings = nil
	require.NoError(t, yaml.Unmarshal([]byte(out), &listings))
	assert.Len(t, listings, 2)
}

func TestRoot_InvalidOutput(t *testing.T) {
	_, err := newHarness(t).run(t, "-l", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestRoot_VisualNeedsTerminal(t *testing.T) {
	if isTerminal() {
		t.Skip("running attached to a terminal")
	}

	_, err := newHarness(t).run(t, "-v")
	assert.ErrorIs(t, err, errNoTerminal)
}

func TestWorkspaceCommands(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun(t, "workspace", "list")
	assert.Contains(t, out, "No workspaces configured.")

	h.mustRun(t, "workspace", "add", "alpha")
	h.mustRun(t, "workspace", "add", "beta")

	out = h.mustRun(t, "workspace", "ls")
	assert.Equal(t, "   1  alpha\n   2  beta\n", out)

	out = h.mustRun(t, "workspace", "list", "-o", "json")

	var entries []model.WorkspaceEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []model.WorkspaceEntry{{ID: 1, Name: "alpha"}, {ID: 2, Name: "beta"}}, entries)

	_, err := h.run(t, "workspace", "add", "alpha")
	assert.ErrorIs(t, err, store.ErrDuplicateName)
}

func TestDirCommands(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "dir", "add", "ghost", "/x")
	assert.ErrorIs(t, err, store.ErrNotFound)

	h.mustRun(t, "workspace", "add", "proj")

	out := h.mustRun(t, "dir", "add", "proj", "/src/a")
	assert.Equal(t, "Added /src/a to \"proj\" (id 1)\n", out)
	h.mustRun(t, "dir", "add", "proj", "/src/b")

	out = h.mustRun(t, "dir", "list", "proj")
	assert.Equal(t, "proj (id 1)\n  [1] /src/a\n  [2] /src/b\n", out)

	out = h.mustRun(t, "dir", "rm", "1")
	assert.Equal(t, "Removed dir 1\n", out)

	_, err = h.run(t, "dir", "rm", "1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = h.run(t, "dir", "rm", "zero")
	assert.ErrorContains(t, err, "invalid id")

	out = h.mustRun(t, "dir", "list", "proj", "-o", "json")

	var dirs []model.DirEntry
	require.NoError(t, json.Unmarshal([]byte(out), &dirs))
	assert.Equal(t, []model.DirEntry{{ID: 2, Path: "/src/b"}}, dirs)
}

func TestDirAdd_StoresAbsolutePath(t *testing.T) {
	h := newHarness(t)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	out := h.mustRun(t, "-w", "proj", "-p", "rel")
	assert.Equal(t, "Added "+filepath.Join(cwd, "rel")+" to \"proj\" (id 1)\n", out)

	_, err = h.run(t, "dir", "add", "proj", "./rel/")
	assert.ErrorIs(t, err, model.ErrDuplicatePath)
}

func TestOpenCommand(t *testing.T) {
	h := newHarness(t)

	h.mustRun(t, "-w", "proj", "-p", "/src/a")
	h.mustRun(t, "-w", "proj", "-p", "/src/b")
	h.mustRun(t, "-w", "proj", "-p", "/src/c")

	out := h.mustRun(t, "open", "proj", "--editor", "nvim")
	assert.Contains(t, out, `Opening "proj" in nvim...`)
	assert.Contains(t, out, "opened 3 of 3 dirs")
	assert.Equal(t, "nvim", h.launcher.command)
	assert.ElementsMatch(t, []string{"/src/a", "/src/b", "/src/c"}, h.launcher.paths)
}

func TestOpenCommand_FailureDoesNotStopOthers(t *testing.T) {
	h := newHarness(t)
	h.launcher.fail["/src/b"] = true

	h.mustRun(t, "-w", "proj", "-p", "/src/a")
	h.mustRun(t, "-w", "proj", "-p", "/src/b")
	h.mustRun(t, "-w", "proj", "-p", "/src/c")

	out, err := h.run(t, "open", "proj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/src/b")
	assert.Contains(t, out, "✗ /src/b")
	assert.Contains(t, out, "opened 2 of 3 dirs")
	assert.Len(t, h.launcher.paths, 3)
}

func TestOpenCommand_UnknownWorkspace(t *testing.T) {
	_, err := newHarness(t).run(t, "open", "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestConfigCommands(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun(t, "config", "show")
	assert.Contains(t, out, "not found, using defaults")
	assert.Contains(t, out, "Editor:       code")

	out = h.mustRun(t, "config", "init")
	assert.Contains(t, out, "Wrote "+h.configPath())

	_, err := h.run(t, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	h.mustRun(t, "config", "init", "--force")

	out = h.mustRun(t, "config", "show", "--editor", "subl")
	assert.Contains(t, out, "Editor:       subl")
	assert.NotContains(t, out, "not found")

	out = h.mustRun(t, "config", "show", "-o", "json")

	var cfg model.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "code", cfg.Editor)
	assert.Equal(t, filepath.Join(h.dir, "workspaces.db"), cfg.DatabasePath)
}

func TestDoctor(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "doctor", "--editor", "sh")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ editor")
	assert.Contains(t, out, "✓ database")

	out, err = h.run(t, "doctor", "--editor", "nonexistent-editor-12345")
	assert.ErrorIs(t, err, errDoctor)
	assert.Contains(t, out, "✗ editor")
}
