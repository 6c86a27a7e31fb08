package cli

import (
	"github.com/spf13/cobra"

	"digitime/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid configuration or flags.
	ExitInvalidInput = 2
	// ExitAlreadyRunning indicates another GUI instance holds the lock.
	ExitAlreadyRunning = 3
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
	// Format overrides clock.format (24h|12h).
	Format string
	// Style overrides clock.style (classic|focus).
	Style string
	// View overrides ui.view (clock|stopwatch|pomodoro).
	View string
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "config file (default <user config dir>/digitime/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "f", "", "clock format (24h|12h)")
	cmd.PersistentFlags().StringVar(&flags.Style, "style", "", "clock face (classic|focus)")
	cmd.PersistentFlags().StringVar(&flags.View, "view", "", "initial view (clock|stopwatch|pomodoro)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errors.ErrInvalidConfig):
		return ExitInvalidInput
	case errors.Is(err, errors.ErrAlreadyRunning):
		return ExitAlreadyRunning
	default:
		return ExitError
	}
}
