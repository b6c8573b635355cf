package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lander/internal/registry"
	"github.com/vovakirdan/lander/internal/report"
)

var pilotsCmd = &cobra.Command{
	Use:   "pilots",
	Short: "List all available pilots",
	Long:  `Shows a list of all pilots that can fly an episode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.WritePilots(os.Stdout, registry.List())
	},
}
