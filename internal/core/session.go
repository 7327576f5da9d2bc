package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inovacc/wspace/internal/model"
	"github.com/inovacc/wspace/internal/store"
)

// State is the screen an interactive session is on.
type State int

const (
	MainMenu State = iota
	ListingWorkspaces
	AddingWorkspace
	ViewingWorkspace
	AddingDir
	ViewingDir
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "main menu"
	case ListingWorkspaces:
		return "listing workspaces"
	case AddingWorkspace:
		return "adding workspace"
	case ViewingWorkspace:
		return "viewing workspace"
	case AddingDir:
		return "adding dir"
	case ViewingDir:
		return "viewing dir"
	}
	return "unknown"
}

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuList MenuChoice = iota
	MenuAdd
)

func (m MenuChoice) String() string {
	switch m {
	case MenuList:
		return "List workspaces"
	case MenuAdd:
		return "Add workspace"
	}
	return ""
}

// Button is an action offered on the workspace and dir screens.
type Button int

const (
	ButtonDelete Button = iota
	ButtonOpen
	ButtonOpenWorkspace
	ButtonNewDir
)

// Event is user input fed to Transition.
type Event interface {
	event()
}

// ChooseMenu selects an entry of the main menu
type ChooseMenu struct{ Choice MenuChoice }

// SubmitText confirms the content of a text input
type SubmitText struct{ Text string }

// SelectWorkspace picks a workspace from the listing by name
type SelectWorkspace struct{ Name string }

// SelectDir picks a dir of the current workspace by id
type SelectDir struct{ ID int64 }

// Press activates a button
type Press struct{ Button Button }

// Back returns to the previous screen
type Back struct{}

func (ChooseMenu) event()      {}
func (SubmitText) event()      {}
func (SelectWorkspace) event() {}
func (SelectDir) event()       {}
func (Press) event()           {}
func (Back) event()            {}

// Session is the complete state of one interactive session. It is passed by
// value through Transition; slices and maps held by a Session are replaced,
// never modified in place.
type Session struct {
	ID    string
	State State

	// Workspaces and Index are refreshed every time the listing is shown
	Workspaces []model.WorkspaceEntry
	Index      map[string]int64

	Workspace model.WorkspaceEntry
	Dirs      []model.DirEntry
	Selected  model.DirEntry

	// Message is feedback from the last transition, empty when there is none
	Message string
	Report  *OpenReport
}

// NewSession starts a session on the main menu.
func NewSession() Session {
	return Session{ID: uuid.NewString(), State: MainMenu}
}

// Transition applies ev to s and returns the resulting session. Events that
// do not apply to the current state leave it unchanged. Failed storage calls
// set Message and keep the state and dirs as they were.
func (c *Controller) Transition(ctx context.Context, s Session, ev Event) Session {
	s.Message = ""
	s.Report = nil

	from := s.State

	switch s.State {
	case MainMenu:
		s = c.onMainMenu(ctx, s, ev)
	case AddingWorkspace:
		s = c.onAddingWorkspace(ctx, s, ev)
	case ListingWorkspaces:
		s = c.onListingWorkspaces(ctx, s, ev)
	case ViewingWorkspace:
		s = c.onViewingWorkspace(ctx, s, ev)
	case AddingDir:
		s = c.onAddingDir(ctx, s, ev)
	case ViewingDir:
		s = c.onViewingDir(ctx, s, ev)
	}

	if from != s.State {
		c.logger.Debug("session transition", "session", s.ID, "from", from.String(), "to", s.State.String())
	}

	return s
}

func (c *Controller) onMainMenu(ctx context.Context, s Session, ev Event) Session {
	e, ok := ev.(ChooseMenu)
	if !ok {
		return s
	}

	switch e.Choice {
	case MenuList:
		return c.showListing(ctx, s)
	case MenuAdd:
		s.State = AddingWorkspace
	}

	return s
}

func (c *Controller) onAddingWorkspace(ctx context.Context, s Session, ev Event) Session {
	switch e := ev.(type) {
	case SubmitText:
		if _, err := c.AddWorkspace(ctx, e.Text); err != nil {
			s.Message = errorMessage(err)

			return s
		}

		s.State = MainMenu
		s.Message = fmt.Sprintf("workspace %q created", e.Text)
	case Back:
		s.State = MainMenu
	}

	return s
}

func (c *Controller) onListingWorkspaces(ctx context.Context, s Session, ev Event) Session {
	switch e := ev.(type) {
	case SelectWorkspace:
		id, ok := s.Index[e.Name]
		if !ok {
			s.Message = store.WorkspaceNotFound(e.Name).Error()

			return s
		}

		dirs, err := c.ViewWorkspace(ctx, id)
		if err != nil {
			s.Message = errorMessage(err)

			return s
		}

		s.State = ViewingWorkspace
		s.Workspace = model.WorkspaceEntry{ID: id, Name: e.Name}
		s.Dirs = dirs
	case Back:
		s.State = MainMenu
	}

	return s
}

func (c *Controller) onViewingWorkspace(ctx context.Context, s Session, ev Event) Session {
	switch e := ev.(type) {
	case SelectDir:
		for _, d := range s.Dirs {
			if d.ID == e.ID {
				s.State = ViewingDir
				s.Selected = d

				return s
			}
		}

		s.Message = store.DirNotFound(e.ID).Error()
	case Press:
		switch e.Button {
		case ButtonNewDir:
			s.State = AddingDir
		case ButtonOpenWorkspace:
			report := c.OpenWorkspace(ctx, s.Workspace.ID, s.Workspace.Name, s.Dirs)
			s.Report = &report
			s.Message = report.Summary()
		}
	case Back:
		return c.showListing(ctx, s)
	}

	return s
}

func (c *Controller) onAddingDir(ctx context.Context, s Session, ev Event) Session {
	switch e := ev.(type) {
	case SubmitText:
		_, dirs, err := c.AddDir(ctx, s.Workspace.ID, e.Text)
		if err != nil {
			s.Message = errorMessage(err)

			return s
		}

		s.State = ViewingWorkspace
		s.Dirs = dirs
	case Back:
		s.State = ViewingWorkspace
	}

	return s
}

func (c *Controller) onViewingDir(ctx context.Context, s Session, ev Event) Session {
	switch e := ev.(type) {
	case Press:
		switch e.Button {
		case ButtonDelete:
			return c.deleteSelected(ctx, s)
		case ButtonOpen:
			r := c.OpenDir(ctx, s.Selected.Path)
			if r.OK() {
				s.Message = fmt.Sprintf("opened %s", r.Path)
			} else {
				s.Message = errorMessage(r.Err)
			}

			s.State = ViewingWorkspace
			s.Selected = model.DirEntry{}
		}
	case Back:
		s.State = ViewingWorkspace
		s.Selected = model.DirEntry{}
	}

	return s
}

func (c *Controller) deleteSelected(ctx context.Context, s Session) Session {
	err := c.DeleteDir(ctx, s.Selected.ID)

	switch {
	case err == nil:
		s.Message = fmt.Sprintf("removed %s", s.Selected.Path)
	case errors.Is(err, store.ErrNotFound):
		s.Message = errorMessage(err)
	default:
		s.Message = errorMessage(err)

		return s
	}

	if dirs, err := c.ViewWorkspace(ctx, s.Workspace.ID); err == nil {
		s.Dirs = dirs
	} else {
		s.Message = errorMessage(err)
		s.Dirs = withoutDir(s.Dirs, s.Selected.ID)
	}

	s.State = ViewingWorkspace
	s.Selected = model.DirEntry{}

	return s
}

// withoutDir returns dirs minus the entry with id, leaving dirs untouched.
func withoutDir(dirs []model.DirEntry, id int64) []model.DirEntry {
	kept := make([]model.DirEntry, 0, len(dirs))

	for _, d := range dirs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}

	return kept
}

func (c *Controller) showListing(ctx context.Context, s Session) Session {
	entries, err := c.ListWorkspaces(ctx)
	if err != nil {
		s.Message = errorMessage(err)

		return s
	}

	s.State = ListingWorkspaces
	s.Workspaces = entries
	s.Index = buildIndex(entries)

	return s
}

func errorMessage(err error) string {
	return "error: " + err.Error()
}
