//go:build !windows

package proc

import (
	"errors"
	"os/exec"
	"syscall"
)

var fatalExitSignals = map[syscall.Signal]struct{}{
	syscall.SIGABRT: {},
	syscall.SIGBUS:  {},
	syscall.SIGFPE:  {},
	syscall.SIGILL:  {},
	syscall.SIGSEGV: {},
	syscall.SIGSYS:  {},
	syscall.SIGTRAP: {},
}

// ExitedFatally reports whether err is an exit caused by a crash signal.
func ExitedFatally(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		return false
	}
	if !status.Signaled() {
		return false
	}
	_, ok = fatalExitSignals[status.Signal()]
	return ok
}
