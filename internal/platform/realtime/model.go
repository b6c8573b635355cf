package realtime

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lander/internal/lander"
)

// Model is the Bubble Tea model driving one episode.
type Model struct {
	episode  *lander.Episode
	pilot    lander.InputSource
	fps      int
	maxTicks int
	last     time.Time
	ticks    int
}

// NewModel creates a model that ticks ep at fps, stopping on a terminal
// status or after maxTicks ticks (0 means no limit).
func NewModel(ep *lander.Episode, pilot lander.InputSource, fps, maxTicks int) Model {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Model{
		episode:  ep,
		pilot:    pilot,
		fps:      fps,
		maxTicks: maxTicks,
		last:     time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(TickMsg); ok {
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleTick advances the episode once by the wall-clock gap since the
// previous tick, measured in the episode's reference frames.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := now.Sub(m.last)
	m.last = now

	in := m.pilot.Next(m.episode.Snapshot())
	status := m.episode.TickElapsed(in, elapsed)
	m.ticks++

	if status.Terminal() {
		return m, tea.Quit
	}
	if m.maxTicks > 0 && m.ticks >= m.maxTicks {
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

// Ticks returns the number of ticks the model has driven.
func (m Model) Ticks() int {
	return m.ticks
}

// View is empty; the runner has no renderer.
func (m Model) View() string {
	return ""
}
