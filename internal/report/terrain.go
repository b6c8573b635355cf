package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/lander/internal/core"
	"github.com/vovakirdan/lander/internal/lander"
)

// TerrainDoc is the YAML form of a generated terrain.
type TerrainDoc struct {
	Seed        int64              `yaml:"seed"`
	Width       float64            `yaml:"width"`
	Height      float64            `yaml:"height"`
	Fingerprint string             `yaml:"fingerprint"`
	Pad         lander.LandingZone `yaml:"pad"`
	Points      []core.Point       `yaml:"points"`
}

// NewTerrainDoc captures a terrain and its pad.
func NewTerrainDoc(seed int64, width, height float64, t lander.Terrain, pad lander.LandingZone) TerrainDoc {
	return TerrainDoc{
		Seed:        seed,
		Width:       width,
		Height:      height,
		Fingerprint: fmt.Sprintf("%016x", t.Fingerprint()),
		Pad:         pad,
		Points:      t.Points(),
	}
}

// WriteTerrainTable prints the terrain points as a table, marking the
// points under the landing pad.
func WriteTerrainTable(w io.Writer, doc TerrainDoc) error {
	s := newStyles(w)

	padRows := make(map[int]bool)
	rows := make([][]string, 0, len(doc.Points))
	for i, p := range doc.Points {
		onPad := doc.Pad.Contains(p.X)
		padRows[i] = onPad
		mark := ""
		if onPad {
			mark = "pad"
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', 1, 64),
			strconv.FormatFloat(p.Y, 'f', 2, 64),
			mark,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers("#", "X", "Y", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.header
			case padRows[row]:
				return s.landed.Padding(0, 1)
			default:
				return s.value.Padding(0, 1)
			}
		})

	_, err := fmt.Fprintf(w, "%s seed=%d %gx%g terrain=%s\n%s\npad [%.1f, %.1f] at y=%.2f\n",
		s.title.Render("Terrain"),
		doc.Seed, doc.Width, doc.Height, doc.Fingerprint,
		t.String(),
		doc.Pad.X, doc.Pad.Right(), doc.Pad.Y,
	)
	return err
}
