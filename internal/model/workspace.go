package model

// Dir is a single directory entry of a workspace.
type Dir struct {
	// ID is the storage-assigned key, 0 until the dir is persisted
	ID int64 `json:"id"`

	// Path is the filesystem path opened in the editor
	Path string `json:"path"`
}

// NewDir returns an unpersisted dir for path.
func NewDir(path string) Dir {
	return Dir{Path: path}
}

// WithID returns a copy of d carrying the storage-confirmed id.
func (d Dir) WithID(id int64) Dir {
	d.ID = id

	return d
}

// Persisted reports whether d refers to a stored row.
func (d Dir) Persisted() bool {
	return d.ID > 0
}

// Workspace is a named, ordered collection of directories.
//
// A Workspace is a plain aggregate: it never talks to storage. Callers load
// rows from the store and shape them through AddDir and RemoveDirByPath.
type Workspace struct {
	// ID is the storage-assigned key, 0 until the workspace is persisted
	ID int64 `json:"id"`

	// Name is unique across all workspaces
	Name string `json:"name"`

	dirs []Dir
}

// NewWorkspace returns an empty, unpersisted workspace.
func NewWorkspace(name string) *Workspace {
	return &Workspace{Name: name}
}

// WithID assigns the storage-confirmed id and returns w for chaining.
func (w *Workspace) WithID(id int64) *Workspace {
	w.ID = id

	return w
}

// AddDir appends d to the workspace. It returns ErrDuplicatePath when a dir
// with the same path is already present; the collection is left untouched.
func (w *Workspace) AddDir(d Dir) error {
	if w.HasPath(d.Path) {
		return ErrDuplicatePath
	}

	w.dirs = append(w.dirs, d)

	return nil
}

// RemoveDirByPath removes the first dir whose path equals path exactly.
// It reports false when no such dir exists.
func (w *Workspace) RemoveDirByPath(path string) bool {
	i := w.indexOf(path)
	if i < 0 {
		return false
	}

	w.dirs = append(w.dirs[:i], w.dirs[i+1:]...)

	return true
}

// HasPath reports whether a dir with path is present.
func (w *Workspace) HasPath(path string) bool {
	return w.indexOf(path) >= 0
}

// Dirs returns a copy of the dirs in insertion order.
func (w *Workspace) Dirs() []Dir {
	out := make([]Dir, len(w.dirs))
	copy(out, w.dirs)

	return out
}

// Paths returns the dir paths in insertion order.
func (w *Workspace) Paths() []string {
	out := make([]string, 0, len(w.dirs))
	for _, d := range w.dirs {
		out = append(out, d.Path)
	}

	return out
}

// Len returns the number of dirs.
func (w *Workspace) Len() int {
	return len(w.dirs)
}

func (w *Workspace) indexOf(path string) int {
	for i, d := range w.dirs {
		if d.Path == path {
			return i
		}
	}

	return -1
}

// WorkspaceFromEntries rebuilds a workspace aggregate from stored dir rows.
// Rows repeating an earlier path are left out and returned as skipped, since
// storage does not enforce path uniqueness.
func WorkspaceFromEntries(id int64, name string, entries []DirEntry) (*Workspace, []DirEntry) {
	w := NewWorkspace(name).WithID(id)

	var skipped []DirEntry

	for _, e := range entries {
		if err := w.AddDir(NewDir(e.Path).WithID(e.ID)); err != nil {
			skipped = append(skipped, e)
		}
	}

	return w, skipped
}
