// Package proc runs host processes on behalf of the shell.
package proc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

type Command struct {
	Args   []string
	Env    []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts the command and waits for it. A process killed by a fatal
// signal (or the platform equivalent) is reported as a crash.
func Run(ctx context.Context, c Command) error {
	if len(c.Args) == 0 {
		return errors.New("no command given")
	}
	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Env = c.Env
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ExitedFatally(err) {
		return fmt.Errorf("%s crashed: %w", c.Args[0], err)
	}
	return fmt.Errorf("%s: %w", c.Args[0], err)
}

// ExitCode extracts the process exit status, or -1 when err does not carry
// one.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
