package lander

import (
	"math"
	"time"

	"github.com/vovakirdan/lander/internal/config"
	"github.com/vovakirdan/lander/internal/core"
)

// FrameDuration is the reference frame used when none is configured.
const FrameDuration = 16 * time.Millisecond

// NormalizeDelta converts elapsed wall-clock time to a delta measured in
// frames (1.0 = one frame). A non-positive frame means FrameDuration.
// The result is not capped; Episode.Tick does that.
func NormalizeDelta(elapsed, frame time.Duration) float64 {
	if frame <= 0 {
		frame = FrameDuration
	}
	return float64(elapsed) / float64(frame)
}

// ClampDelta restricts a normalized delta to [0, max].
// NaN and negative values collapse to 0.
func ClampDelta(delta, max float64) float64 {
	if math.IsNaN(delta) || delta < 0 {
		return 0
	}
	if delta > max {
		return max
	}
	return delta
}

// Stepper advances a lander by one tick using semi-implicit Euler integration.
type Stepper struct {
	Physics    config.Physics
	FieldWidth float64
}

// NewStepper creates a stepper for a playfield of the given width.
func NewStepper(p config.Physics, fieldWidth float64) Stepper {
	return Stepper{Physics: p, FieldWidth: fieldWidth}
}

// Step applies rotation, thrust, gravity, integration and the side-wall
// bounce, in that order. A terminal state is left untouched.
func (st Stepper) Step(s *State, in core.InputState, delta float64) {
	if s.Status.Terminal() {
		return
	}
	p := st.Physics

	// Rotation: left wins when both are held.
	rate := 0.0
	if in.Left {
		rate = -p.RotationRate
	} else if in.Right {
		rate = p.RotationRate
	}
	s.Angle = core.WrapAngle(s.Angle + rate*delta)

	// Thrust along the nose. A burn the tank cannot fully cover vents the
	// remaining fuel without producing thrust.
	s.Thrusting = false
	if in.Thrust && s.Fuel > 0 {
		burn := p.FuelRate * delta
		fueled := s.Fuel >= burn
		s.Fuel -= burn
		if s.Fuel < 0 {
			s.Fuel = 0
		}
		if fueled {
			s.Thrusting = true
			s.VelocityX += math.Sin(s.Angle) * p.Thrust * delta
			s.VelocityY += -math.Cos(s.Angle) * p.Thrust * delta
		}
	}

	// Gravity
	s.VelocityY += p.Gravity * delta

	// Velocity first, then position
	s.X += s.VelocityX * delta
	s.Y += s.VelocityY * delta

	// Inelastic bounce off the side walls; no vertical bound.
	if s.X < 0 {
		s.X = 0
		s.VelocityX *= p.WallRestitution
	} else if s.X > st.FieldWidth {
		s.X = st.FieldWidth
		s.VelocityX *= p.WallRestitution
	}
}
