package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inovacc/wspace/internal/core"
)

// item is a selectable row. Choosing it feeds event to the session; a nil
// event ends the program.
type item struct {
	title       string
	description string
	event       core.Event
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.description }
func (i item) FilterValue() string { return i.title }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := i.title
	if i.description != "" {
		str += " " + descStyle.Render(i.description)
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	_, _ = fmt.Fprint(w, fn(str))
}

// itemsFor lists the rows offered on the current screen of s.
func itemsFor(s core.Session) []list.Item {
	switch s.State {
	case core.MainMenu:
		return []list.Item{
			item{title: core.MenuList.String(), event: core.ChooseMenu{Choice: core.MenuList}},
			item{title: core.MenuAdd.String(), event: core.ChooseMenu{Choice: core.MenuAdd}},
			item{title: "Exit"},
		}

	case core.ListingWorkspaces:
		items := make([]list.Item, 0, len(s.Workspaces))
		for _, w := range s.Workspaces {
			items = append(items, item{title: w.Name, event: core.SelectWorkspace{Name: w.Name}})
		}

		return items

	case core.ViewingWorkspace:
		items := []list.Item{
			item{title: "+ Add directory", event: core.Press{Button: core.ButtonNewDir}},
			item{title: "Open workspace", description: fmt.Sprintf("%d dirs", len(s.Dirs)), event: core.Press{Button: core.ButtonOpenWorkspace}},
		}

		for _, d := range s.Dirs {
			items = append(items, item{title: d.Path, description: fmt.Sprintf("#%d", d.ID), event: core.SelectDir{ID: d.ID}})
		}

		return items

	case core.ViewingDir:
		return []list.Item{
			item{title: "Open", description: "open in editor", event: core.Press{Button: core.ButtonOpen}},
			item{title: "Delete", description: "remove from workspace", event: core.Press{Button: core.ButtonDelete}},
			item{title: "Back", event: core.Back{}},
		}
	}

	return nil
}

func titleFor(s core.Session) string {
	switch s.State {
	case core.ListingWorkspaces:
		return "Workspaces"
	case core.AddingWorkspace:
		return "New workspace"
	case core.ViewingWorkspace:
		return "Workspace " + s.Workspace.Name
	case core.AddingDir:
		return "Add directory to " + s.Workspace.Name
	case core.ViewingDir:
		return s.Selected.Path
	}

	return "wspace - Workspace Manager"
}
