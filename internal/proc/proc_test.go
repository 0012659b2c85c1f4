//go:build !windows

package proc

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesOutputAndEnv(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Command{
		Args:   []string{"sh", "-c", "printf '%s' \"$BOOT_TARGET\""},
		Env:    []string{"BOOT_TARGET=linux"},
		Stdout: &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "linux", out.String())
}

func TestRunReportsExitCode(t *testing.T) {
	err := Run(context.Background(), Command{Args: []string{"sh", "-c", "exit 3"}})
	require.Error(t, err)
	assert.Equal(t, 3, ExitCode(err))
	assert.False(t, ExitedFatally(err), "plain exit must not count as fatal")
}

func TestRunDetectsFatalSignal(t *testing.T) {
	err := Run(context.Background(), Command{Args: []string{"sh", "-c", "kill -SEGV $$"}})
	require.Error(t, err)
	assert.True(t, ExitedFatally(err), "expected fatal exit, got %v", err)
	assert.Contains(t, err.Error(), "crashed")
}

func TestRunWithoutArgs(t *testing.T) {
	assert.Error(t, Run(context.Background(), Command{}))
}

func TestExitCodeNonExitError(t *testing.T) {
	assert.Equal(t, -1, ExitCode(errors.New("boom")))
	assert.Equal(t, 0, ExitCode(nil))
}
