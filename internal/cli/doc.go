// Package cli provides the terminal user interface of wspace.
//
// The package uses [Bubbletea] for the interactive browser and [Lipgloss]
// for styling. VisualModel follows the Bubbletea Model-View-Update
// architecture: it holds a core.Session, turns key presses into session
// events and renders whatever screen the session is on.
//
// # Screens
//
//   - Main menu: list or add workspaces
//   - Workspaces: pick a workspace by name
//   - Workspace: add a directory, open every directory, pick one
//   - Directory: open it or delete it
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
