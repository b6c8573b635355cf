package pilot

import (
	"math"

	"github.com/vovakirdan/lander/internal/config"
	"github.com/vovakirdan/lander/internal/core"
	"github.com/vovakirdan/lander/internal/lander"
	"github.com/vovakirdan/lander/internal/registry"
)

// Autopilot tuning.
const (
	DefaultMaxTilt      = 0.35 // Max commanded bank while translating (rad)
	DefaultAngleTol     = 0.03 // Dead band around the commanded angle (rad)
	DefaultCruiseVX     = 1.5  // Max horizontal speed while approaching the pad
	DefaultFlareHeight  = 60   // Below this altitude the lander holds upright
	DefaultSinkRateGain = 0.01 // Allowed sink rate per pixel of altitude
	DefaultMinSinkRate  = 0.4  // Touchdown sink rate
	DefaultMaxSinkRate  = 2.5  // Cruise sink rate
)

func init() {
	registry.Register(AutopilotID, "Attitude and descent autopilot", func(args registry.Args) (registry.Pilot, error) {
		return NewAutopilot(args.Config), nil
	})
}

// Autopilot steers toward the pad center and brakes the descent so the
// touchdown speed stays inside the safe envelope. It is deterministic and
// keeps no state between ticks.
type Autopilot struct {
	maxTilt     float64
	angleTol    float64
	cruiseVX    float64
	flareHeight float64
	maxSink     float64
}

// NewAutopilot creates an autopilot tuned for the given constants.
func NewAutopilot(cfg config.LanderConfig) *Autopilot {
	maxSink := DefaultMaxSinkRate
	// Keep a margin under the crash threshold.
	if limit := cfg.Landing.SafeSpeed / 2; limit < maxSink {
		maxSink = limit
	}
	return &Autopilot{
		maxTilt:     DefaultMaxTilt,
		angleTol:    DefaultAngleTol,
		cruiseVX:    DefaultCruiseVX,
		flareHeight: DefaultFlareHeight,
		maxSink:     maxSink,
	}
}

// Name returns the pilot ID.
func (a *Autopilot) Name() string { return AutopilotID }

// Next decides the controls for the next tick.
func (a *Autopilot) Next(snap lander.Snapshot) core.InputState {
	s := snap.Lander
	altitude := snap.Terrain.HeightAt(s.X) - s.Bottom()

	// Horizontal: command a velocity proportional to the distance to the
	// pad center, then bank against the velocity error.
	dx := snap.Pad.Center() - s.X
	wantVX := core.ClampF(dx*0.01, -a.cruiseVX, a.cruiseVX)
	wantAngle := core.ClampF((wantVX-s.VelocityX)*0.5, -a.maxTilt, a.maxTilt)
	if altitude < a.flareHeight {
		wantAngle = 0
	}

	var in core.InputState
	switch diff := wantAngle - s.Angle; {
	case diff > a.angleTol:
		in.Right = true
	case diff < -a.angleTol:
		in.Left = true
	}

	// Vertical: allow a sink rate that shrinks with altitude.
	sink := core.ClampF(altitude*DefaultSinkRateGain, DefaultMinSinkRate, a.maxSink)
	if s.VelocityY > sink && math.Abs(s.Angle) < math.Pi/2 {
		in.Thrust = true
	}
	// Hold altitude while still correcting a large lateral error.
	if math.Abs(wantVX-s.VelocityX) > 0.3 && altitude > a.flareHeight && s.VelocityY > 0 {
		in.Thrust = true
	}
	return in
}
