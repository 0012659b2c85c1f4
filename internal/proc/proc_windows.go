//go:build windows

package proc

import (
	"errors"
	"os/exec"

	"golang.org/x/sys/windows"
)

var fatalExitStatuses = map[uint32]struct{}{
	uint32(windows.STATUS_ACCESS_VIOLATION):       {},
	uint32(windows.STATUS_ILLEGAL_INSTRUCTION):    {},
	uint32(windows.STATUS_STACK_OVERFLOW):         {},
	uint32(windows.STATUS_INTEGER_DIVIDE_BY_ZERO): {},
	uint32(windows.STATUS_STACK_BUFFER_OVERRUN):   {},
}

// ExitedFatally reports whether err is an exit with an NTSTATUS crash code.
func ExitedFatally(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	_, ok := fatalExitStatuses[uint32(exitErr.ExitCode())]
	return ok
}
