// Package bootmenu holds the menu command: sub-command dispatch over a
// single owned menu model and the show cycle that displays it and runs the
// chosen entry.
package bootmenu

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/baaaaaaaka/bootmenu/internal/logging"
	"github.com/baaaaaaaka/bootmenu/internal/menu"
	"github.com/baaaaaaaka/bootmenu/internal/shell"
)

// CommandName is the shell command the dispatcher is registered under.
const CommandName = "menu"

type handler struct {
	// args is the exact number of arguments after the sub-command name.
	args int
	run  func(ctx context.Context, args []string) error
}

// Dispatcher owns the one active menu. Menus are ephemeral: every show
// drops the model, so a menu is rebuilt before each display.
type Dispatcher struct {
	opts     Options
	model    *menu.Model
	handlers map[string]handler
}

func NewDispatcher(opts Options) *Dispatcher {
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	d := &Dispatcher{opts: opts}
	d.handlers = map[string]handler{
		"new":       {args: 0, run: d.runNew},
		"show":      {args: 0, run: d.runShow},
		"add":       {args: 3, run: d.runAdd},
		"separator": {args: 0, run: d.runSeparator},
	}
	return d
}

// Model returns the current menu, or nil when none has been built since the
// last show.
func (d *Dispatcher) Model() *menu.Model { return d.model }

func (d *Dispatcher) SubCommands() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs one sub-command. args excludes the command name itself.
func (d *Dispatcher) Dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return shell.Usagef("missing sub-command")
	}
	name, rest := args[0], args[1:]
	h, ok := d.handlers[name]
	if !ok {
		return shell.Usagef("unknown sub-command '%s'%s", name, shell.Suggest(name, d.SubCommands()))
	}
	switch {
	case len(rest) < h.args:
		return shell.Usagef("not enough parameters")
	case len(rest) > h.args:
		return shell.Usagef("too many parameters")
	}
	return h.run(ctx, rest)
}

func (d *Dispatcher) runNew(_ context.Context, _ []string) error {
	if d.model != nil {
		_, _ = fmt.Fprintln(d.opts.Stderr, "Clearing old menu...")
		d.model.Destroy()
	}
	_, _ = fmt.Fprintln(d.opts.Stderr, "Creating menu...")
	d.model = menu.New()
	return nil
}

func (d *Dispatcher) runShow(ctx context.Context, _ []string) error {
	model := d.model
	d.model = nil
	return runSession(ctx, model, d.opts)
}

func (d *Dispatcher) runAdd(_ context.Context, args []string) error {
	e := d.ensureModel().Append(args[0], args[1], args[2])
	logging.Debug("menu entry added", "position", e.Position, "label", e.Label)
	return nil
}

func (d *Dispatcher) runSeparator(_ context.Context, _ []string) error {
	e := d.ensureModel().AppendSeparator()
	logging.Debug("menu separator added", "position", e.Position)
	return nil
}

func (d *Dispatcher) ensureModel() *menu.Model {
	if d.model == nil {
		d.model = menu.New()
	}
	return d.model
}

const usage = `<sub-command> ...
Menus are ephemeral. They need to be rebuilt every time they are shown.

menu new                                  - start a new menu, dropping the current one (optional)
menu show                                 - show the current menu, dropped on exit
menu add <label> <description> <command>  - add an entry
menu separator                            - add a separator`

// Command adapts the dispatcher to the shell command table.
func (d *Dispatcher) Command() shell.Command {
	return shell.Command{
		Name:  CommandName,
		Short: "terminal boot menu",
		Usage: usage,
		Run: func(ctx context.Context, _ *shell.Shell, args []string) error {
			return d.Dispatch(ctx, args[1:])
		},
	}
}
