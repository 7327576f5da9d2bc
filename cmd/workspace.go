package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/inovacc/wspace/internal/core"
	"github.com/inovacc/wspace/internal/encoding"
)

func newWorkspaceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Manage workspaces",
		Long: `Manage workspaces.

A workspace is a named, ordered set of directories. Names are unique.`,
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new workspace",
		Long: `Create a new workspace.

Example:
  wspace workspace add myproject`,
		Args: cobra.ExactArgs(1),
		RunE: a.withController(runWorkspaceAdd),
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all workspaces",
		Long:    `List all workspaces in creation order.`,
		Args:    cobra.NoArgs,
		RunE: a.withController(func(cmd *cobra.Command, ctrl *core.Controller, _ []string) error {
			return runWorkspaceList(cmd, a, ctrl)
		}),
	}

	cmd.AddCommand(addCmd, listCmd)

	return cmd
}

func runWorkspaceAdd(cmd *cobra.Command, ctrl *core.Controller, args []string) error {
	name := args[0]

	id, err := ctrl.AddWorkspace(cmd.Context(), name)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created workspace %q (id %d)\n", name, id)

	return nil
}

func runWorkspaceList(cmd *cobra.Command, a *app, ctrl *core.Controller) error {
	entries, err := ctrl.ListWorkspaces(cmd.Context())
	if err != nil {
		return err
	}

	return encoding.Write(cmd.OutOrStdout(), a.format, entries, func(w io.Writer) error {
		if len(entries) == 0 {
			printEmptyResult(w, "workspaces", "wspace workspace add <name>")

			return nil
		}

		for _, e := range entries {
			_, _ = fmt.Fprintf(w, "%4d  %s\n", e.ID, e.Name)
		}

		return nil
	})
}
