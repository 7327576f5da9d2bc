package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inovacc/wspace/internal/core"
)

const (
	defaultWidth  = 60
	defaultHeight = 16
)

// VisualModel is the interactive workspace browser. Every key press that
// maps to an action is fed to the controller's Transition and the screen is
// rebuilt from the resulting session.
type VisualModel struct {
	ctx      context.Context
	ctrl     *core.Controller
	session  core.Session
	list     list.Model
	input    textinput.Model
	quitting bool
}

// NewVisualModel returns a model positioned on the main menu.
func NewVisualModel(ctx context.Context, ctrl *core.Controller) VisualModel {
	l := list.New(nil, itemDelegate{}, defaultWidth, defaultHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	input := textinput.New()
	input.CharLimit = 512
	input.Width = 60

	m := VisualModel{
		ctx:     ctx,
		ctrl:    ctrl,
		session: core.NewSession(),
		list:    l,
		input:   input,
	}

	m.sync()

	return m
}

// Session returns the current session state.
func (m VisualModel) Session() core.Session {
	return m.session
}

func (m VisualModel) Init() tea.Cmd {
	return nil
}

func (m VisualModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-2)

		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true

			return m, tea.Quit
		}

		if m.editing() {
			return m.updateEditing(msg)
		}

		return m.updateBrowsing(msg)
	}

	if m.editing() {
		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m VisualModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.apply(core.SubmitText{Text: strings.TrimSpace(m.input.Value())})
	case "esc":
		return m.apply(core.Back{})
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m VisualModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true

		return m, tea.Quit

	case "esc", "backspace":
		if m.session.State == core.MainMenu {
			m.quitting = true

			return m, tea.Quit
		}

		return m.apply(core.Back{})

	case "enter":
		i, ok := m.list.SelectedItem().(item)
		if !ok {
			return m, nil
		}

		if i.event == nil {
			m.quitting = true

			return m, tea.Quit
		}

		return m.apply(i.event)

	case "n":
		if m.session.State == core.ViewingWorkspace {
			return m.apply(core.Press{Button: core.ButtonNewDir})
		}

	case "o":
		switch m.session.State {
		case core.ViewingWorkspace:
			return m.apply(core.Press{Button: core.ButtonOpenWorkspace})
		case core.ViewingDir:
			return m.apply(core.Press{Button: core.ButtonOpen})
		}

	case "d":
		if m.session.State == core.ViewingDir {
			return m.apply(core.Press{Button: core.ButtonDelete})
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m VisualModel) apply(ev core.Event) (tea.Model, tea.Cmd) {
	m.session = m.ctrl.Transition(m.ctx, m.session, ev)

	return m, m.sync()
}

// sync rebuilds the list and input from the session.
func (m *VisualModel) sync() tea.Cmd {
	m.list.Title = titleFor(m.session)

	if m.editing() {
		m.input.Reset()
		m.input.Placeholder = placeholderFor(m.session.State)

		return m.input.Focus()
	}

	m.input.Blur()

	cmd := m.list.SetItems(itemsFor(m.session))
	m.list.Select(0)

	return cmd
}

func (m VisualModel) editing() bool {
	return m.session.State == core.AddingWorkspace || m.session.State == core.AddingDir
}

func (m VisualModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	if m.editing() {
		b.WriteString("\n" + titleStyle.Render(m.list.Title) + "\n\n")
		b.WriteString(itemStyle.Render(m.input.View()) + "\n\n")
		b.WriteString(hintStyle.Render("enter: save • esc: cancel") + "\n")
	} else {
		b.WriteString(docStyle.Render(m.list.View()) + "\n")
		b.WriteString(hintStyle.Render(hintFor(m.session.State)) + "\n")
	}

	if msg := m.session.Message; msg != "" {
		style := messageStyle
		if strings.HasPrefix(msg, "error:") {
			style = errorStyle
		}

		b.WriteString("\n" + style.Render(msg) + "\n")
	}

	return b.String()
}

func placeholderFor(s core.State) string {
	if s == core.AddingDir {
		return "/path/to/directory"
	}

	return "workspace-name"
}

func hintFor(s core.State) string {
	switch s {
	case core.ViewingWorkspace:
		return "enter: select • n: add dir • o: open all • esc: back • q: quit"
	case core.ViewingDir:
		return "o: open • d: delete • esc: back • q: quit"
	case core.ListingWorkspaces:
		return "enter: view • esc: back • q: quit"
	}

	return "enter: select • q: quit"
}

// Run starts the interactive browser and blocks until the user quits.
func Run(ctx context.Context, ctrl *core.Controller) error {
	p := tea.NewProgram(NewVisualModel(ctx, ctrl), tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()

	return err
}
