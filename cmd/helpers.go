package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inovacc/wspace/internal/core"
	"github.com/inovacc/wspace/internal/encoding"
	"github.com/inovacc/wspace/internal/model"
)

// storedPath returns the path of dir id as it was saved
func storedPath(dirs []model.DirEntry, id int64) string {
	for _, d := range dirs {
		if d.ID == id {
			return d.Path
		}
	}

	return ""
}

// parseID parses a positive row id given on the command line
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}

	return id, nil
}

// printEmptyResult prints a "no results" message with a create hint
func printEmptyResult(w io.Writer, resourceType, createCmd string) {
	_, _ = fmt.Fprintf(w, "No %s configured.\n", resourceType)
	_, _ = fmt.Fprintf(w, "Create one with: %s\n", createCmd)
}

func printListing(cmd *cobra.Command, a *app, ctrl *core.Controller) error {
	listings, err := ctrl.ListWorkspacesWithDirs(cmd.Context())
	if err != nil {
		return err
	}

	return encoding.Write(cmd.OutOrStdout(), a.format, listings, func(w io.Writer) error {
		if len(listings) == 0 {
			printEmptyResult(w, "workspaces", "wspace -w <name>")

			return nil
		}

		for _, l := range listings {
			_, _ = fmt.Fprintf(w, "%s (id %d)\n", l.Name, l.ID)
			writeDirs(w, l.Dirs)
		}

		return nil
	})
}

func writeDirs(w io.Writer, dirs []model.DirEntry) {
	if len(dirs) == 0 {
		_, _ = fmt.Fprintln(w, "  (no directories)")

		return
	}

	for _, d := range dirs {
		_, _ = fmt.Fprintf(w, "  [%d] %s\n", d.ID, d.Path)
	}
}
