package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom/internal/config"
)

func newConfigCommand() *cobra.Command {
	var path string
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the configuration the viewer would run with: the config file
merged over the defaults. With --write the result is saved back to the
config file, which is a convenient way to create one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if write {
				if err := config.Save(cfg, path); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	addConfigFlag(cmd, &path)
	cmd.Flags().BoolVar(&write, "write", false, "Save the effective config to the config file")

	return cmd
}
