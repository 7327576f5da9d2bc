// Package model defines the data structures used throughout wspace.
//
// The package holds the domain aggregate and the row types exchanged with
// the storage layer. Nothing here performs I/O.
//
// # Workspace
//
// A [Workspace] is a named, ordered collection of [Dir] values. Both carry a
// storage-assigned ID that stays 0 until the row is persisted:
//
//	w := model.NewWorkspace("proj").WithID(1)
//	_ = w.AddDir(model.NewDir("/src/api").WithID(3))
//	w.RemoveDirByPath("/src/api") // true
//
// No two dirs of one loaded workspace share a path; [Workspace.AddDir]
// returns [ErrDuplicatePath] instead of appending.
//
// # Rows
//
// [WorkspaceEntry] and [DirEntry] are the (id, name) and (id, path) pairs
// returned by the store. [WorkspaceFromEntries] turns fetched rows back into
// an aggregate.
//
// # Config
//
// [Config] holds the editor command, database location and logging setup:
//
//	type Config struct {
//	    Editor       string   // Editor command (e.g. "code")
//	    EditorArgs   []string // Arguments placed before the path
//	    Concurrency  int      // Parallel launches when opening a workspace
//	    DatabasePath string   // Workspace database file
//	    LogLevel     string   // debug, info, warn, error
//	    LogFormat    string   // text or json
//	}
package model
