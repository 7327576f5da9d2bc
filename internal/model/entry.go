package model

// WorkspaceEntry is a stored workspace row.
type WorkspaceEntry struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// DirEntry is a stored dir row.
type DirEntry struct {
	ID   int64  `json:"id" yaml:"id"`
	Path string `json:"path" yaml:"path"`
}

// WorkspaceListing is a workspace together with all of its dirs.
type WorkspaceListing struct {
	ID   int64      `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
	Dirs []DirEntry `json:"dirs" yaml:"dirs"`
}
