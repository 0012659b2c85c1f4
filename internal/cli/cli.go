package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/bootmenu/internal/logging"
	"github.com/baaaaaaaka/bootmenu/internal/shell"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

type rootOptions struct {
	configPath string
	logFile    string
}

// Execute runs the command tree and returns the process exit code: 0 for
// success, 1 for failure and 2 for a usage error.
func Execute() int {
	return execute(newRootCmd())
}

func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	defer logging.Close()
	if err != nil && !shell.Reported(err) {
		var exit shell.ExitRequested
		if !errors.As(err, &exit) {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}
	return shell.ResultOf(err).ExitCode()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "bootmenu",
		Short:         "Terminal boot menu with a firmware-style command shell",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       buildVersion(),
		Args:          usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		_, _ = fmt.Fprintln(c.ErrOrStderr(), c.UsageString())
		return shell.UsageError{Reason: err.Error()}
	})

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Override config file path (default: OS user config dir)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write debug logs to this file (overrides config logFile)")

	cmd.AddCommand(
		newRunCmd(opts),
		newShellCmd(opts),
		newExecCmd(opts),
		newConfigCmd(opts),
	)

	return cmd
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
