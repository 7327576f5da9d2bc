package store

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{name: "duplicate", err: &DuplicateNameError{Name: "proj"}, sentinel: ErrDuplicateName, msg: `workspace "proj" already exists`},
		{name: "dir not found", err: DirNotFound(3), sentinel: ErrNotFound, msg: "dir 3 not found"},
		{name: "workspace not found", err: WorkspaceNotFound("x"), sentinel: ErrNotFound, msg: `workspace "x" not found`},
		{name: "foreign key", err: &ForeignKeyError{WorkspaceID: 9}, sentinel: ErrForeignKey, msg: "workspace 9 does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("controller: %w", tt.err)

			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.msg, tt.err.Error())
			assert.False(t, IsStorage(wrapped))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap("op", nil))

	err := Wrap("list dirs", io.ErrUnexpectedEOF)

	var se *StorageError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "list dirs", se.Op)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "storage: list dirs: unexpected EOF", err.Error())

	dup := &DuplicateNameError{Name: "a"}
	assert.Same(t, dup, Wrap("create workspace", dup))

	assert.Same(t, err, Wrap("again", err))
}

func TestHelpers(t *testing.T) {
	assert.True(t, IsNotFound(DirNotFound(1)))
	assert.False(t, IsNotFound(&ForeignKeyError{}))
	assert.True(t, IsStorage(fmt.Errorf("x: %w", &StorageError{Op: "ping", Err: io.EOF})))
}
