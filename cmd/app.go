package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/inovacc/wspace/internal/config"
	"github.com/inovacc/wspace/internal/core"
	"github.com/inovacc/wspace/internal/encoding"
	"github.com/inovacc/wspace/internal/logging"
	"github.com/inovacc/wspace/internal/model"
	"github.com/inovacc/wspace/internal/params"
	"github.com/inovacc/wspace/internal/process"
	"github.com/inovacc/wspace/internal/store"
)

// app carries the state shared by every command of one invocation.
type app struct {
	// persistent flag values
	configPath string
	dbPath     string
	editor     string
	logLevel   string
	logFormat  string
	output     string

	cfg    model.Config
	format encoding.Format
	logger *slog.Logger

	stdout   io.Writer
	stderr   io.Writer
	launcher process.Launcher

	store store.Store
	ctrl  *core.Controller
}

func newApp() *app {
	return &app{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		launcher: process.NewLauncher(),
	}
}

// load reads the config file and applies the persistent flags that were set
// on the command line on top of it.
func (a *app) load(flags *pflag.FlagSet) error {
	if a.configPath == "" {
		path, err := params.ConfigPath()
		if err != nil {
			return err
		}

		a.configPath = path
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if flags.Changed("db") {
		cfg.DatabasePath = a.dbPath
	}

	if flags.Changed("editor") {
		cfg.Editor = a.editor
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}

	if cfg.DatabasePath, err = params.ExpandPath(cfg.DatabasePath); err != nil {
		return fmt.Errorf("failed to resolve database path: %w", err)
	}

	if a.format, err = encoding.ParseFormat(a.output); err != nil {
		return err
	}

	if a.logger, err = logging.New(a.stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	a.cfg = cfg

	return nil
}

// controller opens and initializes the store on first use.
func (a *app) controller(ctx context.Context) (*core.Controller, error) {
	if a.ctrl != nil {
		return a.ctrl, nil
	}

	s, err := openStore(a.cfg.DatabasePath, a.logger)
	if err != nil {
		return nil, err
	}

	if err := s.Initialize(ctx); err != nil {
		_ = s.Close()

		return nil, err
	}

	a.logger.Debug("store ready", "backend", backendName, "path", a.cfg.DatabasePath)

	a.store = s
	a.ctrl = core.New(s, a.launcher, core.Options{
		Editor:      a.cfg.Editor,
		EditorArgs:  a.cfg.EditorArgs,
		Concurrency: a.cfg.Concurrency,
		Logger:      a.logger,
	})

	return a.ctrl, nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}

	err := a.store.Close()
	a.store = nil
	a.ctrl = nil

	return err
}

// withController adapts a handler needing the controller to cobra's RunE.
func (a *app) withController(run func(cmd *cobra.Command, ctrl *core.Controller, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctrl, err := a.controller(cmd.Context())
		if err != nil {
			return err
		}

		return run(cmd, ctrl, args)
	}
}
