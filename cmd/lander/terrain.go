package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lander/internal/report"
)

var flagTerrainFormat string

var terrainCmd = &cobra.Command{
	Use:   "terrain",
	Short: "Print a generated terrain profile",
	Long: `Generate the terrain and landing pad for a seed and print the points.
The same seed, size and constants always produce the same terrain.

Examples:
  lander terrain --seed 7
  lander terrain --seed 7 --format yaml > terrain.yaml`,
	RunE: runTerrain,
}

func init() {
	terrainCmd.Flags().StringVar(&flagTerrainFormat, "format", "table", "Output format (table, yaml)")
}

func runTerrain(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	ep, err := s.episode(s.runtime.Seed)
	if err != nil {
		return err
	}

	doc := report.NewTerrainDoc(s.runtime.Seed, s.runtime.Width, s.runtime.Height, ep.Terrain(), ep.Pad())
	switch flagTerrainFormat {
	case "yaml":
		return report.WriteYAML(os.Stdout, doc)
	case "table", "":
		return report.WriteTerrainTable(os.Stdout, doc)
	default:
		return fmt.Errorf("unknown format %q (want table or yaml)", flagTerrainFormat)
	}
}
