package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inovacc/wspace/internal/model"
	"github.com/inovacc/wspace/internal/params"
	"github.com/inovacc/wspace/internal/process"
	"github.com/inovacc/wspace/internal/store"
)

// Options configures a Controller.
type Options struct {
	// Editor is the command launched once per directory
	Editor string

	// EditorArgs are placed before the directory path
	EditorArgs []string

	// Concurrency bounds simultaneous launches, 0 means unbounded
	Concurrency int

	Logger *slog.Logger
}

// Controller translates user intents into storage calls and editor launches.
type Controller struct {
	store    store.Store
	launcher process.Launcher
	opts     Options
	logger   *slog.Logger
}

// New returns a Controller over s that launches the editor through l.
func New(s store.Store, l process.Launcher, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if l == nil {
		l = process.NewLauncher()
	}

	return &Controller{
		store:    s,
		launcher: l,
		opts:     opts,
		logger:   logger,
	}
}

// Editor returns the configured editor command.
func (c *Controller) Editor() string {
	return c.opts.Editor
}

// AddWorkspace creates a workspace and returns its id.
func (c *Controller) AddWorkspace(ctx context.Context, name string) (int64, error) {
	id, err := c.store.CreateWorkspace(ctx, name)
	if err != nil {
		return 0, c.fail("add workspace", err)
	}

	c.logger.Debug("workspace created", "name", name, "id", id)

	return id, nil
}

// ListWorkspaces returns every workspace in insertion order.
func (c *Controller) ListWorkspaces(ctx context.Context) ([]model.WorkspaceEntry, error) {
	entries, err := c.store.ListWorkspaces(ctx)
	if err != nil {
		return nil, c.fail("list workspaces", err)
	}

	return entries, nil
}

// ListWorkspacesWithDirs returns every workspace together with its dirs.
func (c *Controller) ListWorkspacesWithDirs(ctx context.Context) ([]model.WorkspaceListing, error) {
	listings, err := c.store.ListWorkspacesWithDirs(ctx)
	if err != nil {
		return nil, c.fail("list workspaces", err)
	}

	return listings, nil
}

// WorkspaceIndex fetches the name to id mapping from storage.
// It is rebuilt on every call and never cached.
func (c *Controller) WorkspaceIndex(ctx context.Context) (map[string]int64, error) {
	entries, err := c.ListWorkspaces(ctx)
	if err != nil {
		return nil, err
	}

	return buildIndex(entries), nil
}

// FindWorkspace looks a workspace up by name.
func (c *Controller) FindWorkspace(ctx context.Context, name string) (model.WorkspaceEntry, error) {
	entry, err := c.store.FindWorkspace(ctx, name)
	if err != nil {
		return model.WorkspaceEntry{}, c.fail("find workspace", err)
	}

	return entry, nil
}

// EnsureWorkspace returns the workspace named name, creating it when absent.
func (c *Controller) EnsureWorkspace(ctx context.Context, name string) (model.WorkspaceEntry, error) {
	entry, err := c.store.FindWorkspace(ctx, name)
	if err == nil {
		return entry, nil
	}

	if !store.IsNotFound(err) {
		return model.WorkspaceEntry{}, c.fail("find workspace", err)
	}

	id, err := c.AddWorkspace(ctx, name)
	if err != nil {
		return model.WorkspaceEntry{}, err
	}

	return model.WorkspaceEntry{ID: id, Name: name}, nil
}

// ViewWorkspace returns the dirs of workspace id.
func (c *Controller) ViewWorkspace(ctx context.Context, id int64) ([]model.DirEntry, error) {
	dirs, err := c.store.ListDirs(ctx, id)
	if err != nil {
		return nil, c.fail("list dirs", err)
	}

	return dirs, nil
}

// AddDir stores path under workspace id and returns the new dir id with the
// refreshed dir list. The path is stored absolute with ~ expanded, and a path
// already present in the workspace is rejected with model.ErrDuplicatePath
// before anything is stored.
func (c *Controller) AddDir(ctx context.Context, workspaceID int64, path string) (int64, []model.DirEntry, error) {
	if err := model.ValidatePath(path); err != nil {
		return 0, nil, err
	}

	path, err := params.ExpandPath(path)
	if err != nil {
		return 0, nil, fmt.Errorf("resolve path: %w", err)
	}

	current, err := c.ViewWorkspace(ctx, workspaceID)
	if err != nil {
		return 0, nil, err
	}

	ws, _ := model.WorkspaceFromEntries(workspaceID, "", current)
	if err := ws.AddDir(model.NewDir(path)); err != nil {
		return 0, nil, fmt.Errorf("add dir %s: %w", path, err)
	}

	id, err := c.store.CreateDir(ctx, workspaceID, path)
	if err != nil {
		return 0, nil, c.fail("add dir", err)
	}

	c.logger.Debug("dir added", "workspace_id", workspaceID, "path", path, "id", id)

	dirs, err := c.ViewWorkspace(ctx, workspaceID)
	if err != nil {
		return id, nil, err
	}

	return id, dirs, nil
}

// DeleteDir removes the dir row with id. The unpersisted id 0 is rejected
// without reaching storage.
func (c *Controller) DeleteDir(ctx context.Context, dirID int64) error {
	if dirID <= 0 {
		return store.DirNotFound(dirID)
	}

	if err := c.store.DeleteDir(ctx, dirID); err != nil {
		return c.fail("delete dir", err)
	}

	c.logger.Debug("dir deleted", "id", dirID)

	return nil
}

// RemoveDirFromModel drops path from the in-memory workspace. A missing path
// is only logged.
func (c *Controller) RemoveDirFromModel(ws *model.Workspace, path string) bool {
	if ws.RemoveDirByPath(path) {
		return true
	}

	c.logger.Info("dir not in workspace", "workspace", ws.Name, "path", path)

	return false
}

// OpenWorkspace launches the editor once for every dir in entries, which are
// the rows already fetched for the workspace. Each dir is attempted even when
// an earlier launch fails.
func (c *Controller) OpenWorkspace(ctx context.Context, id int64, name string, entries []model.DirEntry) OpenReport {
	ws, skipped := model.WorkspaceFromEntries(id, name, entries)

	for _, e := range skipped {
		c.logger.Info("skipping repeated dir", "workspace", name, "path", e.Path, "id", e.ID)
	}

	results := process.FanOut(ctx, c.launcher, c.opts.Editor, c.opts.EditorArgs, ws.Paths(), c.opts.Concurrency)
	for _, r := range results {
		c.logLaunch(r)
	}

	return OpenReport{Workspace: name, Results: results, Skipped: skipped}
}

// OpenDir launches the editor for a single path.
func (c *Controller) OpenDir(ctx context.Context, path string) process.Result {
	r := process.FanOut(ctx, c.launcher, c.opts.Editor, c.opts.EditorArgs, []string{path}, 1)[0]
	c.logLaunch(r)

	return r
}

func (c *Controller) logLaunch(r process.Result) {
	if r.Err != nil {
		c.logger.Warn("launch failed", "editor", c.opts.Editor, "path", r.Path, "error", r.Err)

		return
	}

	c.logger.Info("editor launched", "editor", c.opts.Editor, "path", r.Path, "pid", r.PID)
}

func (c *Controller) fail(op string, err error) error {
	if store.IsStorage(err) {
		c.logger.Error("storage failure", "op", op, "error", err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func buildIndex(entries []model.WorkspaceEntry) map[string]int64 {
	index := make(map[string]int64, len(entries))
	for _, e := range entries {
		index[e.Name] = e.ID
	}

	return index
}

// OpenReport collects the outcome of opening every dir of a workspace.
type OpenReport struct {
	Workspace string
	Results   []process.Result
	Skipped   []model.DirEntry
}

// Succeeded returns how many launches went through.
func (r OpenReport) Succeeded() int {
	n := 0

	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}

	return n
}

// Failed returns the launches that did not start.
func (r OpenReport) Failed() []process.Result {
	var failed []process.Result

	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}

	return failed
}

// Err joins every launch failure, nil when all launches started.
func (r OpenReport) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Path, res.Err))
	}

	return errors.Join(errs...)
}

// Summary is a one-line description of the report.
func (r OpenReport) Summary() string {
	if len(r.Results) == 0 {
		return fmt.Sprintf("workspace %q has no dirs to open", r.Workspace)
	}

	return fmt.Sprintf("opened %d of %d dirs of %q", r.Succeeded(), len(r.Results), r.Workspace)
}
