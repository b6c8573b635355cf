// lander is a headless lunar lander simulator.
//
// Usage:
//
//	lander sim                - Fly one episode as fast as possible
//	lander run                - Fly one episode paced by the wall clock
//	lander terrain            - Print a generated terrain profile
//	lander sweep              - Fly many seeds in parallel and report statistics
//	lander pilots             - List available pilots
//	lander config             - Print the default simulation constants
//
// Global flags:
//
//	--seed <value>       - Terrain seed (default: time based)
//	--config <path>      - Simulation constants (default: ~/.lander/configs/lander.yaml)
//	--preset <name>      - Constant preset: standard, classic
//	--log-level <level>  - debug, info, warn, error
//	--width, --height    - Playfield size in pixels (default: 800x600)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import pilots to register them
	_ "github.com/vovakirdan/lander/internal/pilot"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagWidth    float64
	flagHeight   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar Lander - a deterministic landing simulator",
	Long: `Lunar Lander simulates a 2D lander descending onto procedurally
generated terrain. Touch down on the pad slowly and upright to land;
anything else is a crash.

Available commands:
  sim      - Fly one episode headless at a fixed step
  run      - Fly one episode paced by the wall clock
  terrain  - Print a generated terrain profile
  sweep    - Fly many seeds in parallel
  pilots   - List available pilots
  config   - Print the default simulation constants

Examples:
  lander sim --pilot autopilot --seed 42
  lander run --pilot script --script burn.yaml --fps 60
  lander terrain --seed 7 --format yaml
  lander sweep --episodes 200 --parallel 8 --preset classic`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	defaults := defaultRuntime()
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", defaults.Seed, "Terrain seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a lander.yaml with simulation constants")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "standard", "Constant preset (standard, classic)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Float64Var(&flagWidth, "width", defaults.Width, "Playfield width in pixels")
	rootCmd.PersistentFlags().Float64Var(&flagHeight, "height", defaults.Height, "Playfield height in pixels")

	// Add subcommands
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(terrainCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(pilotsCmd)
	rootCmd.AddCommand(configCmd)
}
