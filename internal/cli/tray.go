package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"digitime/internal/errors"
	"digitime/internal/platform"
	"digitime/internal/ui/menubar"
)

func addTrayCommand(root *cobra.Command, state *session) {
	root.AddCommand(&cobra.Command{
		Use:   "tray",
		Short: "Show only the Pomodoro countdown in the menu bar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTray(cmd.Context(), state)
		},
	})
}

// runTray runs the menu bar countdown until Quit is chosen or ctx ends.
func runTray(ctx context.Context, state *session) error {
	logger := zerolog.Ctx(ctx).With().Str("component", "tray").Logger()

	dir := settingsDir(logger)
	if dir != "" {
		guard, err := platform.AcquireSingleInstance(dir)
		if err != nil {
			if errors.Is(err, errors.ErrAlreadyRunning) {
				logger.Warn().Msg("DigiTime is already running")
			}
			return err
		}
		defer func() {
			_ = guard.Release()
		}()
	}

	settings := resolveSettings(state, dir)
	engines := newHub(state.cfg, settings)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- engines.Run(runCtx)
	}()

	menubar.New(engines.Countdown, cancel).Run(runCtx)
	cancel()
	return <-done
}
