package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lander/internal/pilot"
	"github.com/vovakirdan/lander/internal/report"
)

var (
	flagPilot    string
	flagScript   string
	flagDelta    float64
	flagMaxTicks int
	flagFormat   string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Fly one episode headless",
	Long: `Fly a single episode at a fixed step until the lander lands, crashes
or the tick limit is reached, then print the outcome.

Examples:
  lander sim
  lander sim --pilot autopilot --seed 42
  lander sim --pilot script --script burn.yaml --format yaml`,
	RunE: runSim,
}

func init() {
	addPilotFlags(simCmd)
	simCmd.Flags().Float64Var(&flagDelta, "delta", 1, "Normalized step per tick (1 = one 16ms frame, max 3)")
	simCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, yaml)")
}

// addPilotFlags registers the flags shared by sim and run.
func addPilotFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPilot, "pilot", pilot.AutopilotID, "Pilot to fly with (see 'lander pilots')")
	cmd.Flags().StringVar(&flagScript, "script", "", "Input script for the script pilot")
	cmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 20000, "Stop after this many ticks (0 = no limit)")
}

func runSim(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	p, err := s.pilot(flagPilot, flagScript)
	if err != nil {
		return err
	}
	ep, err := s.episode(s.runtime.Seed)
	if err != nil {
		return err
	}

	status := ep.Run(p, flagDelta, flagMaxTicks)
	if !status.Terminal() {
		s.logger.Warn("episode did not finish", "ticks", flagMaxTicks)
	}

	return writeOutcome(report.Outcome{Seed: s.runtime.Seed, Pilot: p.Name(), Snapshot: ep.Snapshot()})
}

func writeOutcome(o report.Outcome) error {
	switch flagFormat {
	case "yaml":
		return report.WriteYAML(os.Stdout, o)
	case "text", "":
		return report.WriteOutcome(os.Stdout, o)
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", flagFormat)
	}
}

