package process

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrNoCommand indicates an empty editor command
var ErrNoCommand = errors.New("no command configured")

// LaunchError indicates the operating system refused to start the process
type LaunchError struct {
	Command string
	Args    []string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", strings.TrimSpace(e.Command+" "+strings.Join(e.Args, " ")), e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Launcher starts external processes without waiting for them to exit.
type Launcher interface {
	Launch(command string, args ...string) (int, error)
}

// ExecLauncher starts processes with os/exec.
type ExecLauncher struct{}

// NewLauncher returns the os/exec backed launcher.
func NewLauncher() ExecLauncher {
	return ExecLauncher{}
}

// Launch starts command and returns its pid once the OS confirms the start.
// The child is reaped in the background; its exit status is ignored.
func (ExecLauncher) Launch(command string, args ...string) (int, error) {
	if command == "" {
		return 0, &LaunchError{Args: args, Err: ErrNoCommand}
	}

	cmd := exec.Command(command, args...)

	if err := cmd.Start(); err != nil {
		return 0, &LaunchError{Command: command, Args: args, Err: err}
	}

	pid := cmd.Process.Pid

	go func() { _ = cmd.Wait() }()

	return pid, nil
}

// Result is the outcome of launching the editor for one path.
type Result struct {
	Path string
	PID  int
	Err  error
}

// OK reports whether the launch succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// FanOut launches command once per path, appending each path to args.
// Every path is attempted regardless of earlier failures; results keep the
// order of paths. limit bounds concurrent launches when positive.
func FanOut(ctx context.Context, l Launcher, command string, args, paths []string, limit int) []Result {
	results := make([]Result, len(paths))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		g.Go(func() error {
			results[i] = Result{Path: path}

			if err := ctx.Err(); err != nil {
				results[i].Err = err

				return nil
			}

			pid, err := l.Launch(command, append(slices.Clone(args), path)...)
			results[i].PID = pid
			results[i].Err = err

			return nil
		})
	}

	_ = g.Wait()

	return results
}

// LookPath checks if the given command is available in PATH.
func LookPath(command string) bool {
	if command == "" {
		return false
	}

	_, err := exec.LookPath(command)

	return err == nil
}
