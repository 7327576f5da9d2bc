package model

import (
	"errors"
	"reflect"
	"testing"
)

func sampleWorkspace(t *testing.T) *Workspace {
	t.Helper()

	w := NewWorkspace("sample")
	for _, p := range []string{"a", "b"} {
		if err := w.AddDir(NewDir(p)); err != nil {
			t.Fatalf("AddDir(%q) error = %v", p, err)
		}
	}

	return w
}

func TestNewWorkspace(t *testing.T) {
	w := NewWorkspace("proj")

	if w.Name != "proj" {
		t.Errorf("Name = %q, want %q", w.Name, "proj")
	}

	if w.ID != 0 {
		t.Errorf("ID = %d, want 0 before persistence", w.ID)
	}

	if w.Len() != 0 {
		t.Errorf("Len() = %d, want 0", w.Len())
	}

	if got := w.WithID(7); got != w || w.ID != 7 {
		t.Errorf("WithID(7) did not assign the id in place: %+v", got)
	}
}

func TestDir_Builder(t *testing.T) {
	d := NewDir("/x")
	if d.Persisted() {
		t.Error("new dir should not be persisted")
	}

	withID := d.WithID(3)
	if !withID.Persisted() || withID.ID != 3 || withID.Path != "/x" {
		t.Errorf("WithID(3) = %+v", withID)
	}

	if d.ID != 0 {
		t.Errorf("WithID mutated the receiver: %+v", d)
	}
}

func TestWorkspace_AddDir(t *testing.T) {
	w := sampleWorkspace(t)

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", w.Len())
	}

	err := w.AddDir(NewDir("a"))
	if !errors.Is(err, ErrDuplicatePath) {
		t.Errorf("AddDir(duplicate) error = %v, want ErrDuplicatePath", err)
	}

	if !reflect.DeepEqual(w.Paths(), []string{"a", "b"}) {
		t.Errorf("Paths() = %v after rejected duplicate", w.Paths())
	}
}

func TestWorkspace_RemoveDirByPath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantFound bool
		wantPaths []string
	}{
		{name: "remove last", path: "b", wantFound: true, wantPaths: []string{"a"}},
		{name: "remove first", path: "a", wantFound: true, wantPaths: []string{"b"}},
		{name: "absent path", path: "c", wantFound: false, wantPaths: []string{"a", "b"}},
		{name: "no prefix match", path: "b/", wantFound: false, wantPaths: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := sampleWorkspace(t)

			if got := w.RemoveDirByPath(tt.path); got != tt.wantFound {
				t.Errorf("RemoveDirByPath(%q) = %v, want %v", tt.path, got, tt.wantFound)
			}

			if !reflect.DeepEqual(w.Paths(), tt.wantPaths) {
				t.Errorf("Paths() = %v, want %v", w.Paths(), tt.wantPaths)
			}
		})
	}
}

func TestWorkspace_DirsIsCopy(t *testing.T) {
	w := sampleWorkspace(t)

	dirs := w.Dirs()
	dirs[0].Path = "changed"

	if w.Paths()[0] != "a" {
		t.Error("mutating Dirs() result changed the workspace")
	}
}

func TestWorkspaceFromEntries(t *testing.T) {
	entries := []DirEntry{
		{ID: 1, Path: "/x"},
		{ID: 2, Path: "/y"},
		{ID: 3, Path: "/x"},
	}

	w, skipped := WorkspaceFromEntries(4, "proj", entries)

	if w.ID != 4 || w.Name != "proj" {
		t.Errorf("workspace = %d/%q, want 4/proj", w.ID, w.Name)
	}

	want := []Dir{{ID: 1, Path: "/x"}, {ID: 2, Path: "/y"}}
	if !reflect.DeepEqual(w.Dirs(), want) {
		t.Errorf("Dirs() = %+v, want %+v", w.Dirs(), want)
	}

	if len(skipped) != 1 || skipped[0].ID != 3 {
		t.Errorf("skipped = %+v, want the second /x row", skipped)
	}
}

func TestValidate(t *testing.T) {
	if err := ValidateName("  "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("ValidateName(blank) = %v", err)
	}

	if err := ValidateName("proj"); err != nil {
		t.Errorf("ValidateName(proj) = %v", err)
	}

	if err := ValidatePath(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("ValidatePath(empty) = %v", err)
	}
}
