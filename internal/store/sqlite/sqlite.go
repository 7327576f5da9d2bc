// Package sqlite provides SQLite database storage for wspace.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/inovacc/wspace/internal/model"
	"github.com/inovacc/wspace/internal/store"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store implements the store.Store interface using SQLite.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger receiving open/close messages.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New opens the SQLite database at dbPath, creating the file and its parent
// directory when absent. The schema is not touched until Initialize.
func New(dbPath string, opts ...Option) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, store.Wrap("open", fmt.Errorf("creating database directory: %w", err))
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, store.Wrap("open", fmt.Errorf("opening database: %w", err))
	}

	// The connection is not shared concurrently; the store mutex serializes access
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		path:   dbPath,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()

		return nil, store.Wrap("open", fmt.Errorf("connecting to %s: %w", dbPath, err))
	}

	s.logger.Debug("sqlite database opened", "path", dbPath)

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return store.Wrap("close", err)
	}

	s.logger.Debug("sqlite database closed", "path", s.path)

	return nil
}

// Ping checks if the database is accessible.
func (s *Store) Ping(ctx context.Context) error {
	return store.Wrap("ping", s.db.PingContext(ctx))
}

// Initialize creates the tables that do not exist yet.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range schema {
		exists, err := s.tableExists(ctx, t.name)
		if err != nil {
			return store.Wrap("initialize", err)
		}

		if exists {
			continue
		}

		if _, err := s.db.ExecContext(ctx, t.ddl); err != nil {
			return store.Wrap("initialize", fmt.Errorf("creating table %s: %w", t.name, err))
		}

		s.logger.Info("created table", "table", t.name, "path", s.path)
	}

	return nil
}

func (s *Store) tableExists(ctx context.Context, name string) (bool, error) {
	var found string

	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, name,
	).Scan(&found)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("checking table %s: %w", name, err)
	}

	return true, nil
}

// ============================================================================
// Workspace Operations
// ============================================================================

func (s *Store) CreateWorkspace(ctx context.Context, name string) (int64, error) {
	if err := model.ValidateName(name); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `INSERT INTO workspaces(name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, &store.DuplicateNameError{Name: name}
		}

		return 0, store.Wrap("create workspace", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, store.Wrap("create workspace", err)
	}

	return id, nil
}

func (s *Store) ListWorkspaces(ctx context.Context) ([]model.WorkspaceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM workspaces ORDER BY id`)
	if err != nil {
		return nil, store.Wrap("list workspaces", err)
	}
	defer closeRows(rows, s.logger)

	workspaces := make([]model.WorkspaceEntry, 0)
	for rows.Next() {
		var w model.WorkspaceEntry
		if err := rows.Scan(&w.ID, &w.Name); err != nil {
			return nil, store.Wrap("list workspaces", err)
		}

		workspaces = append(workspaces, w)
	}

	if err := rows.Err(); err != nil {
		return nil, store.Wrap("list workspaces", err)
	}

	return workspaces, nil
}

func (s *Store) FindWorkspace(ctx context.Context, name string) (model.WorkspaceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var w model.WorkspaceEntry

	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM workspaces WHERE name = ?`, name).Scan(&w.ID, &w.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.WorkspaceEntry{}, store.WorkspaceNotFound(name)
	}

	if err != nil {
		return model.WorkspaceEntry{}, store.Wrap("find workspace", err)
	}

	return w, nil
}

func (s *Store) ListWorkspacesWithDirs(ctx context.Context) ([]model.WorkspaceListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT w.id, w.name, d.id, d.path
		FROM workspaces w
		LEFT JOIN dirs d ON d.workspace_id = w.id
		ORDER BY w.id, d.id`)
	if err != nil {
		return nil, store.Wrap("list workspaces with dirs", err)
	}
	defer closeRows(rows, s.logger)

	listings := make([]model.WorkspaceListing, 0)
	for rows.Next() {
		var (
			wsID    int64
			wsName  string
			dirID   sql.NullInt64
			dirPath sql.NullString
		)

		if err := rows.Scan(&wsID, &wsName, &dirID, &dirPath); err != nil {
			return nil, store.Wrap("list workspaces with dirs", err)
		}

		if n := len(listings); n == 0 || listings[n-1].ID != wsID {
			listings = append(listings, model.WorkspaceListing{ID: wsID, Name: wsName, Dirs: []model.DirEntry{}})
		}

		if dirID.Valid {
			last := &listings[len(listings)-1]
			last.Dirs = append(last.Dirs, model.DirEntry{ID: dirID.Int64, Path: dirPath.String})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, store.Wrap("list workspaces with dirs", err)
	}

	return listings, nil
}

// ============================================================================
// Dir Operations
// ============================================================================

func (s *Store) CreateDir(ctx context.Context, workspaceID int64, path string) (int64, error) {
	if err := model.ValidatePath(path); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `INSERT INTO dirs(workspace_id, path) VALUES (?, ?)`, workspaceID, path)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, &store.ForeignKeyError{WorkspaceID: workspaceID}
		}

		return 0, store.Wrap("create dir", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, store.Wrap("create dir", err)
	}

	return id, nil
}

func (s *Store) ListDirs(ctx context.Context, workspaceID int64) ([]model.DirEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, path FROM dirs WHERE workspace_id = ? ORDER BY id`, workspaceID)
	if err != nil {
		return nil, store.Wrap("list dirs", err)
	}
	defer closeRows(rows, s.logger)

	dirs := make([]model.DirEntry, 0)
	for rows.Next() {
		var d model.DirEntry
		if err := rows.Scan(&d.ID, &d.Path); err != nil {
			return nil, store.Wrap("list dirs", err)
		}

		dirs = append(dirs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, store.Wrap("list dirs", err)
	}

	return dirs, nil
}

func (s *Store) DeleteDir(ctx context.Context, dirID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM dirs WHERE id = ?`, dirID)
	if err != nil {
		return store.Wrap("delete dir", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return store.Wrap("delete dir", err)
	}

	if n == 0 {
		return store.DirNotFound(dirID)
	}

	return nil
}

func closeRows(rows *sql.Rows, logger *slog.Logger) {
	if err := rows.Close(); err != nil {
		logger.Warn("failed to close rows", "error", err)
	}
}
