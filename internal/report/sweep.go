package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/lander/internal/lander"
)

// SweepResult is the outcome of one episode in a sweep.
type SweepResult struct {
	Seed   int64         `yaml:"seed"`
	Status lander.Status `yaml:"status"`
	Ticks  int           `yaml:"ticks"`
	Speed  float64       `yaml:"speed"`
	Tilt   float64       `yaml:"tilt_deg"`
	Fuel   float64       `yaml:"fuel"`
}

// NewSweepResult captures the final snapshot of an episode.
func NewSweepResult(seed int64, snap lander.Snapshot) SweepResult {
	return SweepResult{
		Seed:   seed,
		Status: snap.Lander.Status,
		Ticks:  snap.Tick,
		Speed:  snap.Lander.Speed(),
		Tilt:   snap.Lander.TiltDeg(),
		Fuel:   snap.Lander.Fuel,
	}
}

// Summary aggregates sweep results.
type Summary struct {
	Episodes    int     `yaml:"episodes"`
	Landed      int     `yaml:"landed"`
	Crashed     int     `yaml:"crashed"`
	Unfinished  int     `yaml:"unfinished"`
	LandingRate float64 `yaml:"landing_rate"`
	MeanTicks   float64 `yaml:"mean_ticks"`
	MeanFuel    float64 `yaml:"mean_fuel_landed"` // Fuel left, landed episodes only
}

// Summarize computes aggregate statistics.
func Summarize(results []SweepResult) Summary {
	sum := Summary{Episodes: len(results)}
	if len(results) == 0 {
		return sum
	}

	var ticks, fuel float64
	for _, r := range results {
		ticks += float64(r.Ticks)
		switch r.Status {
		case lander.Landed:
			sum.Landed++
			fuel += r.Fuel
		case lander.Crashed:
			sum.Crashed++
		default:
			sum.Unfinished++
		}
	}

	sum.LandingRate = float64(sum.Landed) / float64(sum.Episodes)
	sum.MeanTicks = ticks / float64(sum.Episodes)
	if sum.Landed > 0 {
		sum.MeanFuel = fuel / float64(sum.Landed)
	}
	return sum
}

// WriteSweep prints per-seed results followed by the summary.
func WriteSweep(w io.Writer, pilot string, results []SweepResult) error {
	s := newStyles(w)
	sum := Summarize(results)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			strconv.FormatInt(r.Seed, 10),
			r.Status.String(),
			strconv.Itoa(r.Ticks),
			strconv.FormatFloat(r.Speed, 'f', 3, 64),
			strconv.FormatFloat(r.Tilt, 'f', 2, 64),
			strconv.FormatFloat(r.Fuel, 'f', 1, 64),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers("Seed", "Status", "Ticks", "Speed", "Tilt°", "Fuel").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			if col == 1 {
				switch results[row].Status {
				case lander.Landed:
					return s.landed.Padding(0, 1)
				case lander.Crashed:
					return s.crashed.Padding(0, 1)
				}
				return s.flying.Padding(0, 1)
			}
			return s.value.Padding(0, 1)
		})

	_, err := fmt.Fprintf(w, "%s pilot=%s\n%s\n%s landed %d/%d (%.1f%%), crashed %d, unfinished %d\n%s mean ticks %.1f, mean fuel left %.1f\n",
		s.title.Render("Sweep"), pilot,
		t.String(),
		s.label.Render("Result"), sum.Landed, sum.Episodes, sum.LandingRate*100, sum.Crashed, sum.Unfinished,
		s.label.Render(""), sum.MeanTicks, sum.MeanFuel,
	)
	return err
}
