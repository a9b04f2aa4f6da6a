// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/studygenie/studygenie/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(&appConfig)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var system bool
	writeCmd := &cobra.Command{
		Use:   "write",
		Short: "Write the effective configuration to the config path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteConfigFile(&appConfig, system)
			if err != nil {
				return fmt.Errorf("could not write config: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}
	writeCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file instead of the user file")

	cmd.AddCommand(showCmd, writeCmd)
	return cmd
}
