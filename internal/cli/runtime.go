package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/bootmenu/internal/bootmenu"
	"github.com/baaaaaaaka/bootmenu/internal/config"
	"github.com/baaaaaaaka/bootmenu/internal/logging"
	"github.com/baaaaaaaka/bootmenu/internal/shell"
	"github.com/baaaaaaaka/bootmenu/internal/splash"
	"github.com/baaaaaaaka/bootmenu/internal/tui"
)

var (
	showMenu   bootmenu.ShowFunc = tui.Show
	isTerminal                   = func(f *os.File) bool {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
)

var errNotTerminal = errors.New("menu show needs an interactive terminal on stdin and stdout")

// runtime is one shell with the menu command registered, configured from
// the config store.
type runtime struct {
	cfg   config.Config
	shell *shell.Shell
	menu  *bootmenu.Dispatcher
}

func newRuntime(cmd *cobra.Command, root *rootOptions) (*runtime, error) {
	store, err := config.NewStore(root.configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}

	logPath := cfg.LogFile
	if root.logFile != "" {
		logPath = root.logFile
	}
	if err := logging.SetFileOutput(logPath); err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	sh := shell.New(shell.Options{
		Stdin:     cmd.InOrStdin(),
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
		Env:       cfg.Shell.Env,
		Environ:   os.Environ(),
		AllowExec: cfg.Shell.AllowExec,
		Prompt:    cfg.Prompt(),
	})

	opts := bootmenu.Options{
		Executor:         sh,
		Stdout:           cmd.OutOrStdout(),
		Stderr:           cmd.ErrOrStderr(),
		Width:            cfg.MenuWidth(),
		AbortKey:         cfg.Menu.AbortKey,
		LogUnhandledKeys: cfg.Menu.LogUnhandledKeys,
		Show:             showMenu,
		BeforeShow: func(ctx context.Context) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errNotTerminal
			}
			return sh.Execute(ctx, "cls")
		},
	}
	if cfg.Menu.SplashPath != "" {
		text, err := splash.Load(cfg.Menu.SplashPath)
		if err != nil {
			logging.Warn("splash disabled", "path", cfg.Menu.SplashPath, "err", err)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		} else {
			opts.Splash = text
		}
	}

	d := bootmenu.NewDispatcher(opts)
	sh.Register(d.Command())
	logging.Debug("runtime ready", "config", store.Path(), "allowExec", cfg.Shell.AllowExec)
	return &runtime{cfg: cfg, shell: sh, menu: d}, nil
}

// usageArgs turns positional argument errors into usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return shell.UsageError{Reason: err.Error()}
		}
		return nil
	}
}
