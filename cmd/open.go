package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/wspace/internal/core"
)

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <workspace>",
		Short: "Open every directory of a workspace in your editor",
		Long: `Open every directory of a workspace in the configured editor, one editor
process per directory. A directory that fails to launch does not stop the
others; the command fails if any launch failed.

The editor is taken from --editor or the [editor] section of the config file.

Example:
  wspace open myproject
  wspace open myproject --editor nvim`,
		Args: cobra.ExactArgs(1),
		RunE: a.withController(runOpen),
	}
}

func runOpen(cmd *cobra.Command, ctrl *core.Controller, args []string) error {
	ws, err := ctrl.FindWorkspace(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	dirs, err := ctrl.ViewWorkspace(cmd.Context(), ws.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "Opening %q in %s...\n", ws.Name, ctrl.Editor())

	report := ctrl.OpenWorkspace(cmd.Context(), ws.ID, ws.Name, dirs)

	for _, r := range report.Results {
		if r.OK() {
			_, _ = fmt.Fprintf(out, "✓ %s\n", r.Path)
		} else {
			_, _ = fmt.Fprintf(out, "✗ %s: %v\n", r.Path, r.Err)
		}
	}

	_, _ = fmt.Fprintln(out, report.Summary())

	return report.Err()
}
