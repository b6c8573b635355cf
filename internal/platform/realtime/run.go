package realtime

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lander/internal/lander"
)

// Run drives ep in real time until it finishes, maxTicks is reached or
// ctx is cancelled. It returns the episode's status when it stopped.
func Run(ctx context.Context, ep *lander.Episode, pilot lander.InputSource, fps, maxTicks int) (lander.Status, error) {
	m := NewModel(ep, pilot, fps, maxTicks)

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return ep.Status(), fmt.Errorf("realtime: run interrupted: %w", context.Cause(ctx))
		}
		return ep.Status(), fmt.Errorf("realtime: cannot run episode: %w", err)
	}
	return ep.Status(), nil
}
