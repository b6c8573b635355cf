package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lander/internal/platform/realtime"
	"github.com/vovakirdan/lander/internal/report"
)

var flagFPS int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fly one episode paced by the wall clock",
	Long: `Fly a single episode in real time. Each tick advances the simulation by
the wall-clock time since the previous tick, normalized to 16ms frames and
capped at 3 frames, exactly as an interactive frontend would.

Press Ctrl+C to stop early; the outcome so far is still printed.

Examples:
  lander run --pilot autopilot
  lander run --pilot script --script burn.yaml --fps 30`,
	RunE: runRun,
}

func init() {
	addPilotFlags(runCmd)
	runCmd.Flags().IntVar(&flagFPS, "fps", defaultRuntime().TickRate, "Tick rate (ticks per second)")
	runCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, yaml)")
}

func runRun(cmd *cobra.Command, args []string) error {
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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if _, err := realtime.Run(ctx, ep, p, flagFPS, flagMaxTicks); err != nil {
		s.logger.Warn("run stopped early", "error", err)
	}

	return writeOutcome(report.Outcome{Seed: s.runtime.Seed, Pilot: p.Name(), Snapshot: ep.Snapshot()})
}
