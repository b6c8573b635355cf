package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/lander/internal/registry"
)

// WritePilots prints the registered pilots as a table.
func WritePilots(w io.Writer, pilots []registry.PilotInfo) error {
	if len(pilots) == 0 {
		_, err := fmt.Fprintln(w, "No pilots available.")
		return err
	}
	s := newStyles(w)

	rows := make([][]string, 0, len(pilots))
	for _, p := range pilots {
		rows = append(rows, []string{p.ID, p.Title})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers("ID", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.value.Padding(0, 1)
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n\nRun 'lander sim --pilot <id>' to fly with a pilot.\n",
		s.title.Render("Available pilots"), t.String())
	return err
}
