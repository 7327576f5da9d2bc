package sqlite

import (
	"errors"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type table struct {
	name string
	ddl  string
}

// schema lists the tables in creation order; dirs references workspaces.
var schema = []table{
	{
		name: "workspaces",
		ddl: `CREATE TABLE workspaces (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL
)`,
	},
	{
		name: "dirs",
		ddl: `CREATE TABLE dirs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	workspace_id INTEGER NOT NULL,
	path         TEXT NOT NULL,

	FOREIGN KEY (workspace_id) REFERENCES workspaces(id)
)`,
	},
}

func errorCode(err error) (int, bool) {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return 0, false
	}

	return se.Code(), true
}

func isUniqueViolation(err error) bool {
	code, ok := errorCode(err)
	if !ok {
		return false
	}

	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}

	// primary result code only
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(err.Error(), "UNIQUE")
}

func isForeignKeyViolation(err error) bool {
	code, ok := errorCode(err)
	if !ok {
		return false
	}

	if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}

	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(err.Error(), "FOREIGN KEY")
}
