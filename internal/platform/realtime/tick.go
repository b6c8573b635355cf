// Package realtime paces an episode with a wall clock using a headless
// Bubble Tea program. Elapsed time between ticks is normalized into the
// simulation's frame delta.
package realtime

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the tick rate used when none is given.
const DefaultFPS = 60

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
