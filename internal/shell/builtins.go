package shell

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/baaaaaaaka/bootmenu/internal/env"
	"github.com/baaaaaaaka/bootmenu/internal/logging"
	"github.com/baaaaaaaka/bootmenu/internal/proc"
)

func registerBuiltins(s *Shell) {
	s.Register(Command{Name: "help", Short: "print command description/usage", Usage: "\n    - print brief description of all commands\nhelp <command> ...\n    - print detailed usage of 'command'", Run: runHelp})
	s.Register(Command{Name: "echo", Short: "echo args to console", Usage: "[-n] [args..]", Run: runEcho})
	s.Register(Command{Name: "setenv", Short: "set environment variables", Usage: "name value ...\n    - set variable 'name' to 'value ...'\nsetenv name\n    - delete variable 'name'", Run: runSetenv})
	s.Register(Command{Name: "printenv", Short: "print environment variables", Usage: "[name ...]", Run: runPrintenv})
	s.Register(Command{Name: "run", Short: "run commands in an environment variable", Usage: "var [...]", Run: runRun})
	s.Register(Command{Name: "cls", Short: "clear screen", Run: runCls})
	s.Register(Command{Name: "sleep", Short: "delay execution for some time", Usage: "N\n    - delay execution for N seconds (N is _decimal_ and can be fractional)", Run: runSleep})
	s.Register(Command{Name: "reset", Short: "perform RESET of the CPU", Run: exitWith("resetting ...")})
	s.Register(Command{Name: "exit", Short: "exit the shell", Run: exitWith("")})
	if s.allowExec {
		s.Register(Command{Name: "exec", Short: "run a host program", Usage: "program [args...]", Run: runExec})
	}
}

func runHelp(_ context.Context, s *Shell, args []string) error {
	if len(args) == 1 {
		width := 0
		for _, name := range s.Names() {
			width = max(width, len(name))
		}
		for _, name := range s.Names() {
			_, _ = fmt.Fprintf(s.stdout, "%-*s - %s\n", width, name, s.commands[name].Short)
		}
		return nil
	}
	for _, name := range args[1:] {
		cmd, ok := s.commands[name]
		if !ok {
			return fmt.Errorf("unknown command '%s'%s", name, Suggest(name, s.Names()))
		}
		_, _ = fmt.Fprintf(s.stdout, "%s - %s\n\nUsage:\n%s\n", cmd.Name, cmd.Short, formatUsage(cmd))
	}
	return nil
}

func runEcho(_ context.Context, s *Shell, args []string) error {
	words := args[1:]
	newline := true
	if len(words) > 0 && words[0] == "-n" {
		newline = false
		words = words[1:]
	}
	_, _ = fmt.Fprint(s.stdout, strings.Join(words, " "))
	if newline {
		_, _ = fmt.Fprintln(s.stdout)
	}
	return nil
}

func runSetenv(_ context.Context, s *Shell, args []string) error {
	if len(args) < 2 {
		return Usagef("not enough parameters")
	}
	name := args[1]
	if !env.ValidName(name) {
		return Usagef("invalid variable name '%s'", name)
	}
	if len(args) == 2 {
		s.Unsetenv(name)
		return nil
	}
	s.Setenv(name, strings.Join(args[2:], " "))
	return nil
}

func runPrintenv(_ context.Context, s *Shell, args []string) error {
	if len(args) == 1 {
		names := make([]string, 0, len(s.vars))
		for name := range s.vars {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			_, _ = fmt.Fprintf(s.stdout, "%s=%s\n", name, s.vars[name])
		}
		_, _ = fmt.Fprintf(s.stdout, "\nEnvironment size: %d\n", len(names))
		return nil
	}
	var missing []string
	for _, name := range args[1:] {
		v, ok := s.vars[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		_, _ = fmt.Fprintf(s.stdout, "%s=%s\n", name, v)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%q not defined", strings.Join(missing, ", "))
	}
	return nil
}

func runRun(ctx context.Context, s *Shell, args []string) error {
	if len(args) < 2 {
		return Usagef("not enough parameters")
	}
	if s.depth >= maxRunDepth {
		return fmt.Errorf("run: nesting deeper than %d", maxRunDepth)
	}
	s.depth++
	defer func() { s.depth-- }()

	for _, name := range args[1:] {
		script, ok := s.vars[name]
		if !ok {
			return fmt.Errorf("%q not defined", name)
		}
		if err := s.Execute(ctx, script); err != nil {
			return err
		}
	}
	return nil
}

func runCls(_ context.Context, s *Shell, _ []string) error {
	_, err := fmt.Fprint(s.stdout, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	return err
}

func runSleep(ctx context.Context, _ *Shell, args []string) error {
	if len(args) != 2 {
		return Usagef("expected exactly one duration")
	}
	secs, err := strconv.ParseFloat(args[1], 64)
	if err != nil || secs < 0 {
		return Usagef("invalid duration '%s'", args[1])
	}
	t := time.NewTimer(time.Duration(secs * float64(time.Second)))
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func exitWith(reason string) func(context.Context, *Shell, []string) error {
	return func(_ context.Context, s *Shell, _ []string) error {
		if reason != "" {
			_, _ = fmt.Fprintln(s.stdout, reason)
		}
		return ExitRequested{Reason: reason}
	}
}

func runExec(ctx context.Context, s *Shell, args []string) error {
	if len(args) < 2 {
		return Usagef("not enough parameters")
	}
	err := proc.Run(ctx, proc.Command{
		Args:   args[1:],
		Env:    env.Merge(s.environ, s.vars),
		Stdin:  s.stdin,
		Stdout: s.stdout,
		Stderr: s.stderr,
	})
	logging.Debug("exec finished", "program", args[1], "status", proc.ExitCode(err))
	return err
}
