package process

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLauncher struct {
	mu    sync.Mutex
	calls [][]string
	fail  map[string]error
}

func (r *recordingLauncher) Launch(command string, args ...string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, append([]string{command}, args...))

	if err := r.fail[args[len(args)-1]]; err != nil {
		return 0, &LaunchError{Command: command, Args: args, Err: err}
	}

	return 1000 + len(r.calls), nil
}

func TestExecLauncher_Launch(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	pid, err := NewLauncher().Launch("true")
	require.NoError(t, err)
	assert.Positive(t, pid)
}

func TestExecLauncher_InvalidCommand(t *testing.T) {
	_, err := NewLauncher().Launch("nonexistent-editor-12345", "/tmp")

	var le *LaunchError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "nonexistent-editor-12345", le.Command)
	assert.Equal(t, []string{"/tmp"}, le.Args)
}

func TestExecLauncher_EmptyCommand(t *testing.T) {
	_, err := NewLauncher().Launch("", "/tmp")
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestFanOut_NoShortCircuit(t *testing.T) {
	l := &recordingLauncher{fail: map[string]error{"/b": errors.New("boom")}}

	results := FanOut(context.Background(), l, "code", []string{"-n"}, []string{"/a", "/b", "/c"}, 1)

	require.Len(t, results, 3)
	assert.Len(t, l.calls, 3)

	assert.Equal(t, "/a", results[0].Path)
	assert.True(t, results[0].OK())
	assert.Positive(t, results[0].PID)

	assert.Equal(t, "/b", results[1].Path)
	assert.False(t, results[1].OK())

	assert.True(t, results[2].OK())

	for _, call := range l.calls {
		assert.Equal(t, "code", call[0])
		assert.Equal(t, "-n", call[1])
		assert.Len(t, call, 3)
	}
}

func TestFanOut_Unbounded(t *testing.T) {
	l := &recordingLauncher{}
	paths := []string{"/1", "/2", "/3", "/4", "/5"}

	results := FanOut(context.Background(), l, "code", nil, paths, 0)

	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
		assert.NoError(t, r.Err)
	}
}

func TestFanOut_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &recordingLauncher{}
	results := FanOut(ctx, l, "code", nil, []string{"/a"}, 0)

	assert.ErrorIs(t, results[0].Err, context.Canceled)
	assert.Empty(t, l.calls)
}

func TestFanOut_Empty(t *testing.T) {
	assert.Empty(t, FanOut(context.Background(), &recordingLauncher{}, "code", nil, nil, 2))
}

func TestLookPath(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		expected bool
	}{
		{name: "sh should be installed", command: "sh", expected: true},
		{name: "nonexistent editor", command: "nonexistent-editor-that-does-not-exist-12345", expected: false},
		{name: "empty string", command: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LookPath(tt.command))
		})
	}
}

func TestLaunchError_Message(t *testing.T) {
	err := &LaunchError{Command: "code", Args: []string{"/x"}, Err: errors.New("not found")}
	assert.Equal(t, "failed to launch code /x: not found", err.Error())
	assert.ErrorContains(t, &LaunchError{Err: ErrNoCommand}, "no command configured")
}
