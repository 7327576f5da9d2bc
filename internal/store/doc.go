// Package store provides the storage abstraction layer for wspace.
//
// The package defines the [Store] interface and the typed errors every
// backend returns. Two backends implement it:
//   - store/sqlite: database/sql over the pure Go modernc.org/sqlite driver (default)
//   - store/bolt: go.etcd.io/bbolt, selected with the "bolt" build tag
//
// # Schema
//
// The SQLite backend keeps two tables:
//
//	workspaces(id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT UNIQUE NOT NULL)
//	dirs(id INTEGER PRIMARY KEY AUTOINCREMENT, workspace_id INTEGER NOT NULL REFERENCES workspaces(id), path TEXT NOT NULL)
//
// Dir paths are not unique at this layer; callers that want duplicate
// suppression check the loaded workspace first.
//
// # Errors
//
// Expected conditions are reported with [*DuplicateNameError],
// [*NotFoundError] and [*ForeignKeyError]. Everything else is a
// [*StorageError]. Each typed error matches its sentinel with errors.Is:
//
//	if _, err := s.CreateWorkspace(ctx, "proj"); errors.Is(err, store.ErrDuplicateName) {
//	    // name taken
//	}
package store
