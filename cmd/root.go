package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inovacc/wspace/internal/application"
	"github.com/inovacc/wspace/internal/cli"
	"github.com/inovacc/wspace/internal/core"
	"github.com/inovacc/wspace/internal/params"
)

var errNoTerminal = errors.New("visual mode requires an interactive terminal")

// rootFlags are the flags of the bare wspace command
type rootFlags struct {
	workspace string
	path      string
	list      bool
	visual    bool
}

func newRootCmd(a *app) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:     application.AppExeName,
		Short:   "A workspace manager",
		Version: application.Version,
		Long: `wspace keeps named workspaces, each an ordered set of directories,
in a local database and opens every directory of a workspace in your editor
with one command.

Examples:
  wspace -w myproject                  # create a workspace
  wspace -w myproject -p ~/src/api     # add a directory (creates the workspace if needed)
  wspace -l                            # list workspaces and their directories
  wspace -v                            # browse interactively
  wspace open myproject                # open every directory in the editor`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.Flags())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, a, flags)
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default <user config dir>/wspace/"+params.ConfigFileName+")")
	pf.StringVar(&a.dbPath, "db", "", "workspace database (default ~/"+params.DatabaseFileName+")")
	pf.StringVar(&a.editor, "editor", "", "editor command used to open directories")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.StringVarP(&a.output, "output", "o", "text", "listing format: text, json or yaml")

	f := cmd.Flags()
	f.StringVarP(&flags.workspace, "workspace", "w", "", "create the workspace NAME, or target it with --path")
	f.StringVarP(&flags.path, "path", "p", "", "add PATH to the workspace given by --workspace")
	f.BoolVarP(&flags.list, "list", "l", false, "list all workspaces with their directories")
	f.BoolVarP(&flags.visual, "visual", "v", false, "browse workspaces interactively")

	// before Execute so --version is known when flags are parsed
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	cmd.AddCommand(
		newWorkspaceCmd(a),
		newDirCmd(a),
		newOpenCmd(a),
		newConfigCmd(a),
		newDoctorCmd(a),
	)

	return cmd
}

func runRoot(cmd *cobra.Command, a *app, flags rootFlags) error {
	if flags.workspace == "" && flags.path == "" && !flags.list && !flags.visual {
		return cmd.Help()
	}

	if flags.path != "" && flags.workspace == "" {
		return errors.New("--path requires --workspace")
	}

	ctrl, err := a.controller(cmd.Context())
	if err != nil {
		return err
	}

	if flags.workspace != "" {
		if err := addFromFlags(cmd, ctrl, flags); err != nil {
			return err
		}
	}

	if flags.list {
		if err := printListing(cmd, a, ctrl); err != nil {
			return err
		}
	}

	if flags.visual {
		if !isTerminal() {
			return errNoTerminal
		}

		return cli.Run(cmd.Context(), ctrl)
	}

	return nil
}

func addFromFlags(cmd *cobra.Command, ctrl *core.Controller, flags rootFlags) error {
	out := cmd.OutOrStdout()

	if flags.path == "" {
		id, err := ctrl.AddWorkspace(cmd.Context(), flags.workspace)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "Created workspace %q (id %d)\n", flags.workspace, id)

		return nil
	}

	ws, err := ctrl.EnsureWorkspace(cmd.Context(), flags.workspace)
	if err != nil {
		return err
	}

	id, dirs, err := ctrl.AddDir(cmd.Context(), ws.ID, flags.path)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Added %s to %q (id %d)\n", storedPath(dirs, id), ws.Name, id)

	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Execute runs the wspace command line and exits with status 1 on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp()

	err := newRootCmd(a).ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}

	if err != nil {
		stop()
		os.Exit(1)
	}
}
