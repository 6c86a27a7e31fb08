package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"digitime/internal/config"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// session carries state shared by the commands of one invocation.
type session struct {
	flags  GlobalFlags
	cfg    *config.Config
	logger zerolog.Logger

	// logOutput replaces the console and file log writers when set.
	logOutput io.Writer
	now       func() time.Time
}

func newSession() *session {
	return &session{now: time.Now}
}

// newRootCmd creates the root command. Running it without a subcommand
// starts the desktop window.
func newRootCmd(state *session, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digitime",
		Short: "DigiTime - digital clock, stopwatch and Pomodoro timer",
		Long: `DigiTime shows a live digital clock, a centisecond stopwatch with lap
ranking and a Pomodoro countdown with focus and break presets.

Front ends:
  • digitime        desktop window with a system tray menu
  • digitime tui    full-screen terminal view
  • digitime tray   Pomodoro countdown in the menu bar only
  • digitime now    print the current time once`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd.Context(), state)
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if state.logOutput != nil {
				state.logger = InitLoggerWithWriter(state.flags.Verbose, state.flags.Quiet, state.logOutput)
			} else {
				state.logger = InitLogger(state.flags.Verbose, state.flags.Quiet)
			}
			ctx := state.logger.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			cfg, err := config.Load(ctx, state.flags.ConfigPath, config.Overrides{
				Format: state.flags.Format,
				Style:  state.flags.Style,
				View:   state.flags.View,
			})
			if err != nil {
				return err
			}
			state.cfg = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, &state.flags)

	addGUICommand(cmd, state)
	addTUICommand(cmd, state)
	addTrayCommand(cmd, state)
	addNowCommand(cmd, state)
	addConfigCommand(cmd, state)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	defer CloseLogFile()
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(newSession(), info)
	return cmd.ExecuteContext(ctx)
}
