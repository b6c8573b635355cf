// Package report formats episode outcomes, terrain profiles and sweep
// statistics for the command line.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lander/internal/lander"
)

// styles holds the lipgloss styles bound to one output.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	landed  lipgloss.Style
	crashed lipgloss.Style
	flying  lipgloss.Style
	border  lipgloss.Style
	header  lipgloss.Style
}

// newStyles creates styles for w. Colors are dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		label:   r.NewStyle().Foreground(lipgloss.Color("8")).Width(12),
		value:   r.NewStyle(),
		landed:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		crashed: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		flying:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		border:  r.NewStyle().Foreground(lipgloss.Color("8")),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
	}
}

func (s styles) status(st lander.Status) string {
	name := strings.ToUpper(st.String())
	switch st {
	case lander.Landed:
		return s.landed.Render(name)
	case lander.Crashed:
		return s.crashed.Render(name)
	default:
		return s.flying.Render(name)
	}
}

// Outcome describes a finished (or stopped) episode.
type Outcome struct {
	Seed     int64           `yaml:"seed"`
	Pilot    string          `yaml:"pilot"`
	Snapshot lander.Snapshot `yaml:"snapshot"`
}

// WriteOutcome prints a human-readable summary of an episode.
func WriteOutcome(w io.Writer, o Outcome) error {
	s := newStyles(w)
	snap := o.Snapshot
	st := snap.Lander

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", s.title.Render("Lunar Lander"), s.status(st.Status))

	row := func(label, format string, args ...any) {
		fmt.Fprintf(&b, "%s %s\n", s.label.Render(label), s.value.Render(fmt.Sprintf(format, args...)))
	}
	row("Episode", "%s", snap.EpisodeID)
	row("Seed", "%d", o.Seed)
	row("Pilot", "%s", o.Pilot)
	row("Ticks", "%d (%.1f frames)", snap.Tick, snap.Elapsed)
	row("Position", "x=%.2f y=%.2f", st.X, st.Y)
	row("Velocity", "vx=%.3f vy=%.3f", st.VelocityX, st.VelocityY)
	row("Speed", "%.3f", st.Speed())
	row("Tilt", "%.2f°", st.TiltDeg())
	row("Fuel", "%.1f", st.Fuel)
	row("Pad", "[%.1f, %.1f] at y=%.1f", snap.Pad.X, snap.Pad.Right(), snap.Pad.Y)
	row("Terrain", "%016x", snap.Terrain.Fingerprint())

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteYAML encodes v as YAML with two-space indentation.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: cannot encode yaml: %w", err)
	}
	return enc.Close()
}
