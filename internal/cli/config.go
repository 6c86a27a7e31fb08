package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"digitime/internal/config"
	"digitime/internal/errors"
	"digitime/internal/storage"
)

func addConfigCommand(root *cobra.Command, state *session) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect DigiTime configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(state.cfg); err != nil {
				return errors.Wrap(err, "encode config")
			}
			return encoder.Close()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config, settings and log file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath := state.flags.ConfigPath
			if configPath == "" {
				path, err := config.Path()
				if err != nil {
					return err
				}
				configPath = path
			}
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			logPath, err := LogFilePath()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, err = fmt.Fprintf(out, "config:   %s\nsettings: %s\nlog:      %s\n",
				configPath, storage.SettingsPath(dir), logPath)
			return err
		},
	})

	root.AddCommand(cmd)
}
