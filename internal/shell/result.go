package shell

import (
	"errors"
	"fmt"
)

// Result is the ternary outcome every shell command reports.
type Result int

const (
	Success Result = iota
	Failure
	Usage
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Usage:
		return "usage"
	default:
		return "failure"
	}
}

// ExitCode maps a result onto a process exit status.
func (r Result) ExitCode() int {
	switch r {
	case Success:
		return 0
	case Usage:
		return 2
	default:
		return 1
	}
}

// UsageError marks a command invoked with the wrong arguments.
type UsageError struct {
	Reason string
}

func (e UsageError) Error() string {
	if e.Reason == "" {
		return "usage error"
	}
	return e.Reason
}

func Usagef(format string, args ...any) error {
	return UsageError{Reason: fmt.Sprintf(format, args...)}
}

// ExitRequested stops the shell loop (reset, exit).
type ExitRequested struct {
	Reason string
}

func (e ExitRequested) Error() string {
	if e.Reason == "" {
		return "exit requested"
	}
	return e.Reason
}

func ResultOf(err error) Result {
	if err == nil {
		return Success
	}
	var exit ExitRequested
	if errors.As(err, &exit) {
		return Success
	}
	var usage UsageError
	if errors.As(err, &usage) {
		return Usage
	}
	return Failure
}

// reportedError wraps an error that has already been printed so that
// nested invocations (run) do not print it again.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// Reported tells whether err has already been printed by the shell.
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
