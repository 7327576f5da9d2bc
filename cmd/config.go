package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/wspace/internal/config"
	"github.com/inovacc/wspace/internal/encoding"
	"github.com/inovacc/wspace/internal/model"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration after applying the config file and any flags
given on the command line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, a)
		},
	}

	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, a, force)
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	cmd.AddCommand(showCmd, initCmd)

	return cmd
}

func runConfigShow(cmd *cobra.Command, a *app) error {
	return encoding.Write(cmd.OutOrStdout(), a.format, a.cfg, func(w io.Writer) error {
		writeConfig(w, a.configPath, a.cfg)

		return nil
	})
}

func runConfigInit(cmd *cobra.Command, a *app, force bool) error {
	if encoding.FileExists(a.configPath) && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", a.configPath)
	}

	if err := config.Save(a.configPath, model.DefaultConfig()); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.configPath)

	return nil
}

func writeConfig(w io.Writer, path string, cfg model.Config) {
	args := strings.Join(cfg.EditorArgs, " ")
	if args == "" {
		args = "-"
	}

	_, _ = fmt.Fprintf(w, "Config file:  %s\n", configDetail(path))
	_, _ = fmt.Fprintf(w, "Editor:       %s\n", cfg.Editor)
	_, _ = fmt.Fprintf(w, "Editor args:  %s\n", args)
	_, _ = fmt.Fprintf(w, "Concurrency:  %d\n", cfg.Concurrency)
	_, _ = fmt.Fprintf(w, "Database:     %s\n", cfg.DatabasePath)
	_, _ = fmt.Fprintf(w, "Log:          %s (%s)\n", cfg.LogLevel, cfg.LogFormat)
}
