package store

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrDuplicateName matches any *DuplicateNameError
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNotFound matches any *NotFoundError
	ErrNotFound = errors.New("not found")

	// ErrForeignKey matches any *ForeignKeyError
	ErrForeignKey = errors.New("foreign key violation")
)

// DuplicateNameError indicates a workspace with the same name already exists
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("workspace %q already exists", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// NotFoundError indicates the row targeted by a delete or lookup is absent
type NotFoundError struct {
	Entity string
	Key    string
}

// DirNotFound builds the error returned when a dir id matches no row.
func DirNotFound(id int64) *NotFoundError {
	return &NotFoundError{Entity: "dir", Key: strconv.FormatInt(id, 10)}
}

// WorkspaceNotFound builds the error returned when a workspace lookup fails.
func WorkspaceNotFound(name string) *NotFoundError {
	return &NotFoundError{Entity: "workspace", Key: strconv.Quote(name)}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ForeignKeyError indicates a dir references a workspace that does not exist
type ForeignKeyError struct {
	WorkspaceID int64
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("workspace %d does not exist", e.WorkspaceID)
}

func (e *ForeignKeyError) Is(target error) bool {
	return target == ErrForeignKey
}

// StorageError wraps connection and I/O failures of the backend
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Wrap returns err as a *StorageError for op, leaving nil and already typed
// errors untouched.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var se *StorageError
	if errors.As(err, &se) || errors.Is(err, ErrDuplicateName) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrForeignKey) {
		return err
	}

	return &StorageError{Op: op, Err: err}
}

// IsNotFound returns true if err is a *NotFoundError
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStorage returns true if err carries a *StorageError
func IsStorage(err error) bool {
	var se *StorageError

	return errors.As(err, &se)
}
