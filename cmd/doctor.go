package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/wspace/internal/encoding"
	"github.com/inovacc/wspace/internal/process"
)

var errDoctor = errors.New("some checks failed")

type check struct {
	name   string
	ok     bool
	detail string
}

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the editor, config file and database",
		Long: `Check that the configured editor is on PATH and that the workspace
database can be opened and initialized.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, a)
		},
	}
}

func runDoctor(cmd *cobra.Command, a *app) error {
	checks := []check{
		{
			name:   "config file",
			ok:     true,
			detail: configDetail(a.configPath),
		},
		{
			name:   "editor",
			ok:     process.LookPath(a.cfg.Editor),
			detail: a.cfg.Editor,
		},
	}

	db := check{name: "database (" + backendName + ")", ok: true, detail: a.cfg.DatabasePath}

	if _, err := a.controller(cmd.Context()); err != nil {
		db.ok = false
		db.detail = err.Error()
	} else if err := a.store.Ping(cmd.Context()); err != nil {
		db.ok = false
		db.detail = err.Error()
	}

	checks = append(checks, db)

	failed := false

	for _, c := range checks {
		mark := "✓"
		if !c.ok {
			mark = "✗"
			failed = true
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %-20s %s\n", mark, c.name, c.detail)
	}

	if failed {
		return errDoctor
	}

	return nil
}

func configDetail(path string) string {
	if encoding.FileExists(path) {
		return path
	}

	return path + " (not found, using defaults)"
}
