package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lander/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default simulation constants",
	Long: `Print the built-in lander.yaml. Save it and pass it back with --config
to fly with edited constants.

Examples:
  lander config > lander.yaml
  lander sim --config lander.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}
