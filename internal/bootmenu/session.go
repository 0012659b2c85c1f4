package bootmenu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/baaaaaaaka/bootmenu/internal/ids"
	"github.com/baaaaaaaka/bootmenu/internal/logging"
	"github.com/baaaaaaaka/bootmenu/internal/menu"
	"github.com/baaaaaaaka/bootmenu/internal/tui"
)

var (
	ErrNoMenu       = errors.New("no menu was built")
	ErrEmptyMenu    = errors.New("menu is empty")
	ErrNoSelectable = errors.New("menu has no selectable entries")
)

// Executor runs the command string of a selected entry.
type Executor interface {
	Execute(ctx context.Context, line string) error
}

// Splash is drawn above the menu before input begins and printed once more
// right before a selected command runs.
type Splash interface {
	tui.Splash
	Print(w io.Writer) error
}

// ShowFunc runs one terminal display cycle. tui.Show is the real one.
type ShowFunc func(model *menu.Model, opts tui.Options) (tui.Outcome, error)

type Options struct {
	Executor Executor
	Stderr   io.Writer
	// Stdout receives the final splash print.
	Stdout io.Writer

	Width            int
	AbortKey         bool
	LogUnhandledKeys bool
	Splash           Splash

	// BeforeShow runs after validation and before the terminal is acquired.
	// An error aborts the show as a failure.
	BeforeShow func(ctx context.Context) error
	Show       ShowFunc
}

func validate(model *menu.Model) error {
	switch {
	case model == nil:
		return ErrNoMenu
	case model.Count() == 0:
		return ErrEmptyMenu
	case !model.HasSelectable():
		return ErrNoSelectable
	}
	return nil
}

// runSession owns one show cycle of model: display, teardown, destroy and
// finally execution of the selected command.
func runSession(ctx context.Context, model *menu.Model, opts Options) error {
	if err := validate(model); err != nil {
		return err
	}
	defer model.Destroy()

	if opts.BeforeShow != nil {
		if err := opts.BeforeShow(ctx); err != nil {
			return err
		}
	}

	sid, err := ids.Session()
	if err != nil {
		sid = "unknown"
	}
	logging.Debug("menu show", "session", sid, "entries", model.Count())

	show := opts.Show
	if show == nil {
		show = tui.Show
	}
	tuiOpts := tui.Options{
		Width:    opts.Width,
		AbortKey: opts.AbortKey,
		Splash:   opts.Splash,
	}
	if opts.LogUnhandledKeys {
		tuiOpts.OnUnhandledKey = func(ev tui.KeyEvent) {
			logging.Debug("unhandled key", "session", sid, "key", ev.Name)
		}
	}

	outcome, err := show(model, tuiOpts)
	if err != nil {
		logging.Warn("menu show failed", "session", sid, "err", err)
		return fmt.Errorf("show menu: %w", err)
	}

	command := outcome.Command
	model.Destroy()

	if opts.Splash != nil && opts.Stdout != nil {
		if err := opts.Splash.Print(opts.Stdout); err != nil {
			logging.Debug("splash print failed", "session", sid, "err", err)
		}
	}

	if !outcome.Run {
		logging.Debug("menu closed without selection", "session", sid, "position", outcome.Position)
		return nil
	}
	logging.Info("menu selection", "session", sid, "position", outcome.Position, "command", command)
	if opts.Executor == nil {
		return errors.New("no executor configured")
	}
	return opts.Executor.Execute(ctx, command)
}
