package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/bootmenu/internal/shell"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a script of shell commands (\"-\" reads stdin)",
		Long: `Execute a script of shell commands in one process, one line at a time.
The menu built by earlier lines is what a later "menu show" displays.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, root)
			if err != nil {
				return err
			}
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer func() { _ = f.Close() }()
				r = f
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return rt.shell.RunScript(ctx, r)
		},
	}
}

func newShellCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive command shell (the default)",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, root)
		},
	}
}

func runInteractive(cmd *cobra.Command, root *rootOptions) error {
	rt, err := newRuntime(cmd, root)
	if err != nil {
		return err
	}
	ctx, stop := signalContext(cmd.Context())
	defer stop()
	return rt.shell.Interactive(ctx)
}

func newExecCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec -- <command line> | <command> [args...]",
		Short: "Execute one command line and exit with its result",
		Long: `Execute one command line and exit with its result.
A single argument is read as a whole command line (';' separated, $vars
expanded). Several arguments form one command, each argument one word.`,
		Example: `  bootmenu exec -- 'menu add Linux "Boot Linux" "run bootcmd_linux"; menu show'
  bootmenu exec -- menu add Linux "Boot Linux" "run bootcmd_linux"`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, root)
			if err != nil {
				return err
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			line := args[0]
			if len(args) > 1 {
				line = shell.Join(args)
			}
			return rt.shell.Execute(ctx, line)
		},
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
