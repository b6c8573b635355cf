// Package pilot provides the built-in input sources that fly an episode:
// a passive idle pilot, a scripted timeline and a simple autopilot.
// Each registers itself with the registry on import.
package pilot

import (
	"github.com/vovakirdan/lander/internal/core"
	"github.com/vovakirdan/lander/internal/lander"
	"github.com/vovakirdan/lander/internal/registry"
)

// Registry IDs of the built-in pilots.
const (
	IdleID      = "idle"
	ScriptID    = "script"
	AutopilotID = "autopilot"
)

func init() {
	registry.Register(IdleID, "Idle (free fall)", func(registry.Args) (registry.Pilot, error) {
		return Idle{}, nil
	})
}

// Idle never touches the controls.
type Idle struct{}

// Name returns the pilot ID.
func (Idle) Name() string { return IdleID }

// Next always returns no input.
func (Idle) Next(lander.Snapshot) core.InputState { return core.InputState{} }
