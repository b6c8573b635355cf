package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/lander/internal/lander"
	"github.com/vovakirdan/lander/internal/report"
)

var (
	flagEpisodes   int
	flagParallel   int
	flagSweepPilot string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Fly many seeds in parallel and report statistics",
	Long: `Fly one episode per seed, starting at --seed and counting up, and
print each outcome plus the landing rate. Episodes share nothing, so they
run concurrently.

Examples:
  lander sweep --episodes 100
  lander sweep --episodes 500 --parallel 8 --pilot idle --preset classic`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().IntVar(&flagEpisodes, "episodes", 50, "Number of seeds to fly")
	sweepCmd.Flags().IntVar(&flagParallel, "parallel", 4, "Episodes flown concurrently")
	sweepCmd.Flags().StringVar(&flagSweepPilot, "pilot", "autopilot", "Pilot to fly with (script is not supported)")
	sweepCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 20000, "Stop each episode after this many ticks (0 = no limit)")
	sweepCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, yaml)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	if flagEpisodes <= 0 {
		return fmt.Errorf("--episodes must be positive, got %d", flagEpisodes)
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	// Validate the pilot once before fanning out.
	if _, err := s.pilot(flagSweepPilot, ""); err != nil {
		return err
	}

	results := make([]report.SweepResult, flagEpisodes)

	g, ctx := errgroup.WithContext(cmd.Context())
	if flagParallel > 0 {
		g.SetLimit(flagParallel)
	}
	for i := 0; i < flagEpisodes; i++ {
		i := i
		seed := s.runtime.Seed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Each episode gets its own pilot; pilots may keep state.
			p, err := s.pilot(flagSweepPilot, "")
			if err != nil {
				return err
			}
			ep, err := s.episode(seed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			ep.Run(p, 1, flagMaxTicks)
			results[i] = report.NewSweepResult(seed, ep.Snapshot())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info("sweep finished", "episodes", flagEpisodes, "landed", countStatus(results, lander.Landed))

	switch flagFormat {
	case "yaml":
		return report.WriteYAML(os.Stdout, struct {
			Pilot   string               `yaml:"pilot"`
			Summary report.Summary       `yaml:"summary"`
			Results []report.SweepResult `yaml:"results"`
		}{flagSweepPilot, report.Summarize(results), results})
	case "text", "":
		return report.WriteSweep(os.Stdout, flagSweepPilot, results)
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", flagFormat)
	}
}

func countStatus(results []report.SweepResult, st lander.Status) int {
	n := 0
	for _, r := range results {
		if r.Status == st {
			n++
		}
	}
	return n
}
