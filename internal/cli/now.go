package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"digitime/internal/core/timefmt"
)

func addNowCommand(root *cobra.Command, state *session) {
	var withDate bool

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time on the configured clock face",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := resolveSettings(state, settingsDir(state.logger))
			now := state.now()

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, timefmt.Face(now, settings.ClockFormat, settings.ClockStyle)); err != nil {
				return err
			}
			if withDate {
				if _, err := fmt.Fprintln(out, timefmt.Date(now)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&withDate, "date", "d", false, "also print the date")
	root.AddCommand(cmd)
}
