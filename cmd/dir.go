package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/inovacc/wspace/internal/core"
	"github.com/inovacc/wspace/internal/encoding"
)

func newDirCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir",
		Short: "Manage the directories of a workspace",
	}

	addCmd := &cobra.Command{
		Use:   "add <workspace> <path>",
		Short: "Add a directory to a workspace",
		Long: `Add a directory to an existing workspace.

The path is made absolute before it is stored. A path already in the
workspace is rejected.

Example:
  wspace dir add myproject ~/src/api`,
		Args: cobra.ExactArgs(2),
		RunE: a.withController(runDirAdd),
	}

	listCmd := &cobra.Command{
		Use:     "list <workspace>",
		Aliases: []string{"ls"},
		Short:   "List the directories of a workspace",
		Args:    cobra.ExactArgs(1),
		RunE: a.withController(func(cmd *cobra.Command, ctrl *core.Controller, args []string) error {
			return runDirList(cmd, a, ctrl, args)
		}),
	}

	rmCmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a directory by id",
		Long: `Remove a directory by the id shown in 'wspace dir list'.

Example:
  wspace dir rm 3`,
		Args: cobra.ExactArgs(1),
		RunE: a.withController(runDirRemove),
	}

	cmd.AddCommand(addCmd, listCmd, rmCmd)

	return cmd
}

func runDirAdd(cmd *cobra.Command, ctrl *core.Controller, args []string) error {
	ws, err := ctrl.FindWorkspace(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	id, dirs, err := ctrl.AddDir(cmd.Context(), ws.ID, args[1])
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %q (id %d)\n", storedPath(dirs, id), ws.Name, id)

	return nil
}

func runDirList(cmd *cobra.Command, a *app, ctrl *core.Controller, args []string) error {
	ws, err := ctrl.FindWorkspace(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	dirs, err := ctrl.ViewWorkspace(cmd.Context(), ws.ID)
	if err != nil {
		return err
	}

	return encoding.Write(cmd.OutOrStdout(), a.format, dirs, func(w io.Writer) error {
		_, _ = fmt.Fprintf(w, "%s (id %d)\n", ws.Name, ws.ID)
		writeDirs(w, dirs)

		return nil
	})
}

func runDirRemove(cmd *cobra.Command, ctrl *core.Controller, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := ctrl.DeleteDir(cmd.Context(), id); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed dir %d\n", id)

	return nil
}
