// Package shell is a small line-oriented command shell in the style of a
// firmware console: a table of named commands, environment variables with
// ${name} expansion, ';'-separated command lists and ternary results.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/baaaaaaaka/bootmenu/internal/logging"
)

// maxRunDepth bounds nested "run" invocations.
const maxRunDepth = 16

// Command is one entry of the command table. Run receives the full
// argument vector, args[0] being the command name.
type Command struct {
	Name  string
	Short string
	Usage string
	Run   func(ctx context.Context, sh *Shell, args []string) error
}

type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env seeds the shell variables.
	Env map[string]string
	// Environ is the host environment handed to exec'd processes.
	Environ   []string
	AllowExec bool
	Prompt    string
}

type Shell struct {
	commands  map[string]Command
	vars      map[string]string
	environ   []string
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	allowExec bool
	prompt    string
	depth     int
}

func New(opts Options) *Shell {
	s := &Shell{
		commands:  map[string]Command{},
		vars:      map[string]string{},
		environ:   opts.Environ,
		stdin:     opts.Stdin,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		allowExec: opts.AllowExec,
		prompt:    opts.Prompt,
	}
	if s.stdin == nil {
		s.stdin = strings.NewReader("")
	}
	if s.stdout == nil {
		s.stdout = io.Discard
	}
	if s.stderr == nil {
		s.stderr = io.Discard
	}
	for k, v := range opts.Env {
		s.vars[k] = v
	}
	registerBuiltins(s)
	return s
}

// Register adds or replaces a command.
func (s *Shell) Register(cmd Command) {
	s.commands[cmd.Name] = cmd
}

func (s *Shell) Lookup(name string) (Command, bool) {
	cmd, ok := s.commands[name]
	return cmd, ok
}

func (s *Shell) Names() []string {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Shell) Stdout() io.Writer { return s.stdout }

func (s *Shell) Stderr() io.Writer { return s.stderr }

func (s *Shell) Getenv(name string) string { return s.vars[name] }

func (s *Shell) LookupEnv(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

func (s *Shell) Setenv(name, value string) { s.vars[name] = value }

func (s *Shell) Unsetenv(name string) { delete(s.vars, name) }

// Execute runs every command of a command line in order and returns the
// error of the last one. It stops early only when a command asks the shell
// to exit. Failures are reported on stderr as they happen.
func (s *Shell) Execute(ctx context.Context, line string) error {
	cmds, err := Split(line, s.Getenv)
	if err != nil {
		err = UsageError{Reason: fmt.Sprintf("syntax error: %v", err)}
		s.report("", err)
		return reportedError{err: err}
	}
	var last error
	for _, argv := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		last = s.runArgs(ctx, argv)
		var exit ExitRequested
		if errors.As(last, &exit) {
			return last
		}
	}
	return last
}

func (s *Shell) runArgs(ctx context.Context, argv []string) error {
	name := argv[0]
	cmd, ok := s.commands[name]
	if !ok {
		err := fmt.Errorf("unknown command '%s' - try 'help'%s", name, Suggest(name, s.Names()))
		s.report(name, err)
		return reportedError{err: err}
	}
	logging.Debug("shell command", "name", name, "argc", len(argv)-1)
	err := cmd.Run(ctx, s, argv)
	if err == nil {
		return nil
	}
	var exit ExitRequested
	if errors.As(err, &exit) {
		return err
	}
	s.report(name, err)
	return reportedError{err: err}
}

func (s *Shell) report(name string, err error) {
	if Reported(err) {
		return
	}
	var usage UsageError
	if errors.As(err, &usage) {
		_, _ = fmt.Fprintf(s.stderr, "error: %s\n", usage.Error())
		if cmd, ok := s.commands[name]; ok && cmd.Usage != "" {
			_, _ = fmt.Fprintf(s.stderr, "Usage:\n%s\n", formatUsage(cmd))
		}
		return
	}
	_, _ = fmt.Fprintf(s.stderr, "error: %v\n", err)
}

// formatUsage prefixes the first usage line with the command name; later
// lines are printed as written.
func formatUsage(cmd Command) string {
	return cmd.Name + " " + strings.TrimRight(cmd.Usage, "\n")
}

// RunScript executes r line by line. The result is that of the last line
// executed; an exit request stops the script.
func (s *Shell) RunScript(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	var last error
	for sc.Scan() {
		last = s.Execute(ctx, sc.Text())
		var exit ExitRequested
		if errors.As(last, &exit) {
			return last
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return last
}

// Interactive prompts for and executes lines from stdin until EOF or an
// exit request.
func (s *Shell) Interactive(ctx context.Context) error {
	sc := bufio.NewScanner(s.stdin)
	for {
		_, _ = fmt.Fprint(s.stdout, s.prompt)
		if !sc.Scan() {
			_, _ = fmt.Fprintln(s.stdout)
			return sc.Err()
		}
		err := s.Execute(ctx, sc.Text())
		var exit ExitRequested
		if errors.As(err, &exit) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
}

// Suggest returns a " (did you mean 'x'?)" hint for a mistyped name, or "".
func Suggest(name string, candidates []string) string {
	best := ""
	bestDist := 3
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		ranks := fuzzy.RankFindFold(name, candidates)
		if len(ranks) > 0 {
			sort.Sort(ranks)
			best = ranks[0].Target
		}
	}
	if best == "" || best == name {
		return ""
	}
	return fmt.Sprintf(" (did you mean '%s'?)", best)
}
