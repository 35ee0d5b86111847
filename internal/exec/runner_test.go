package exec

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealRunner_ExitCode(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		expectCode int
	}{
		{"exit 0", []string{"-c", "exit 0"}, 0},
		{"exit 1", []string{"-c", "exit 1"}, 1},
		{"exit 42", []string{"-c", "exit 42"}, 42},
	}

	runner := NewRealRunner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := runner.Run(context.Background(), "sh", tt.args, RunOpts{})
			require.NoError(t, err)
			assert.Equal(t, tt.expectCode, result.ExitCode)
		})
	}
}

func TestRealRunner_StdoutStderr(t *testing.T) {
	runner := NewRealRunner()
	result, err := runner.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"}, RunOpts{})
	require.NoError(t, err)

	assert.Contains(t, result.Stdout, "out")
	assert.Contains(t, result.Stderr, "err")
}

func TestRealRunner_Timeout(t *testing.T) {
	runner := NewRealRunner()
	result, err := runner.Run(context.Background(), "sh", []string{"-c", "sleep 10"}, RunOpts{
		Timeout: 50 * time.Millisecond,
	})

	require.NoError(t, err)
	assert.Equal(t, ExitTimeout, result.ExitCode)
}

func TestRealRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	var result CmdResult
	var err error

	runner := NewRealRunner()
	go func() {
		result, err = runner.Run(ctx, "sh", []string{"-c", "sleep 10"}, RunOpts{})
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitCanceled, result.ExitCode)
}

func TestRealRunner_StartFailure(t *testing.T) {
	runner := NewRealRunner()
	result, err := runner.Run(context.Background(), "no_such_command_abc123", nil, RunOpts{})

	assert.Error(t, err)
	assert.Equal(t, ExitStartFail, result.ExitCode)
}

func TestRealRunner_Dir(t *testing.T) {
	runner := NewRealRunner()
	result, err := runner.Run(context.Background(), "sh", []string{"-c", "pwd"}, RunOpts{
		Dir: "/tmp",
	})
	require.NoError(t, err)

	// On macOS, /tmp is a symlink to /private/tmp
	assert.Contains(t, result.Stdout, "tmp")
}

func TestRealRunner_Env(t *testing.T) {
	runner := NewRealRunner()
	result, err := runner.Run(context.Background(), "sh", []string{"-c", "echo $TEST_VAR"}, RunOpts{
		Env: map[string]string{"TEST_VAR": "hello_world"},
	})
	require.NoError(t, err)

	assert.True(t, strings.Contains(result.Stdout, "hello_world"))
}

func TestRecordingRunner(t *testing.T) {
	runner := NewRecordingRunner()
	runner.Stub(CmdResult{ExitCode: 1, Stderr: "boom"}, nil)

	result, err := runner.Run(context.Background(), "git", []string{"init"}, RunOpts{Dir: "/tmp/x"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ExitCode)

	// Empty queue falls back to a zero-exit result.
	result, err = runner.Run(context.Background(), "go", []string{"mod", "tidy"}, RunOpts{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)

	calls := runner.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "git", calls[0].Name)
	assert.Equal(t, []string{"init"}, calls[0].Args)
	assert.Equal(t, "/tmp/x", calls[0].Opts.Dir)
	assert.Equal(t, "go", calls[1].Name)
}
