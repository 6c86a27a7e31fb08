package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"digitime/internal/errors"
	"digitime/internal/tui"
)

func addTUICommand(root *cobra.Command, state *session) {
	root.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Run DigiTime full screen in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.ErrNotTerminal
			}
			return runTUI(cmd.Context(), state)
		},
	})
}

// runTUI runs the terminal front end until the user quits or ctx ends.
// Logs go to the log file only while the screen is taken over.
func runTUI(ctx context.Context, state *session) error {
	logger := fileOnlyLogger(state.logger).With().Str("component", "tui").Logger()
	ctx = logger.WithContext(ctx)

	dir := settingsDir(logger)
	settings := resolveSettings(state, dir)
	engines := newHub(state.cfg, settings)

	model := tui.New(engines, tui.Config{
		View:              settings.View,
		HideControlsAfter: state.cfg.UI.HideControlsAfter,
	})

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return engines.Run(groupCtx)
	})
	group.Go(func() error {
		defer engines.Close()
		_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(groupCtx)).Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}

	settings.ClockFormat = engines.Face.Format()
	settings.ClockStyle = engines.Face.Style()
	settings.View = model.ActiveView()
	saveSettings(logger, dir, settings)
	return nil
}
