// Package lander implements the deterministic lunar lander simulation:
// terrain generation, the per-tick physics integrator, terrain collision
// and the landing rule, orchestrated one episode at a time.
package lander

import (
	"math"

	"github.com/vovakirdan/lander/internal/config"
	"github.com/vovakirdan/lander/internal/core"
)

// Status is the flight status of the lander.
type Status int

const (
	Flying  Status = iota // Still airborne
	Landed                // Touched down safely on the pad
	Crashed               // Touched terrain outside the safe envelope
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Flying:
		return "flying"
	case Landed:
		return "landed"
	case Crashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further physics steps may be applied.
func (s Status) Terminal() bool {
	return s == Landed || s == Crashed
}

// MarshalText implements encoding.TextMarshaler for report output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is the lander's physical state. It is updated in place by the
// Stepper and the Resolver and never changes once Status is terminal.
type State struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Angle     float64 `yaml:"angle"` // Radians in (-π, π], 0 = nose up
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
	Fuel      float64 `yaml:"fuel"`
	Thrusting bool    `yaml:"thrusting"`
	Status    Status  `yaml:"status"`
}

// NewState places a fresh lander at the horizontal center of the field.
func NewState(fieldWidth float64, body config.Body) State {
	return State{
		X:      fieldWidth / 2,
		Y:      body.StartY,
		Width:  body.Width,
		Height: body.Height,
		Fuel:   body.Fuel,
		Status: Flying,
	}
}

// Bottom returns the y-coordinate of the lander's lower edge.
func (s State) Bottom() float64 {
	return s.Y + s.Height/2
}

// Speed returns the magnitude of the velocity vector.
func (s State) Speed() float64 {
	return math.Hypot(s.VelocityX, s.VelocityY)
}

// TiltDeg returns the absolute tilt from vertical in degrees.
func (s State) TiltDeg() float64 {
	return math.Abs(core.RadToDeg(s.Angle))
}
