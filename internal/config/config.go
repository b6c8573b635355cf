// Package config provides YAML-based simulation configuration loading and
// preset management for the lander.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LanderConfig contains all tunable constants of the simulation.
type LanderConfig struct {
	Physics Physics       `yaml:"physics"`
	Terrain TerrainParams `yaml:"terrain"`
	Landing Landing       `yaml:"landing"`
	Body    Body          `yaml:"body"`
	Episode Episode       `yaml:"episode"`
}

// Physics defines per-tick integration constants.
// All rates are per reference frame (delta = 1.0).
type Physics struct {
	Gravity         float64 `yaml:"gravity"`          // Downward acceleration
	Thrust          float64 `yaml:"thrust"`           // Engine acceleration along the nose
	RotationRate    float64 `yaml:"rotation_rate"`    // Radians per tick while turning
	FuelRate        float64 `yaml:"fuel_rate"`        // Fuel units burned per tick of thrust
	WallRestitution float64 `yaml:"wall_restitution"` // Multiplier applied to vx on a side bounce
}

// TerrainParams defines the procedural terrain and landing pad.
// Height ratios are fractions of the playfield height.
type TerrainParams struct {
	Segments      int     `yaml:"segments"`
	BaseRatio     float64 `yaml:"base_ratio"`      // Height of the first and last point
	MinRatio      float64 `yaml:"min_ratio"`       // Lowest allowed terrain height
	MaxRatio      float64 `yaml:"max_ratio"`       // Highest allowed terrain height
	StepRatio     float64 `yaml:"step_ratio"`      // Max change between neighbours
	PadWidth      float64 `yaml:"pad_width"`       // Landing pad width in pixels
	PadOffset     float64 `yaml:"pad_offset"`      // Platform height above the terrain line
	PadFlatRadius int     `yaml:"pad_flat_radius"` // Points flattened on each side of the pad index
}

// Landing defines the safe-landing thresholds. Both are strict upper bounds.
type Landing struct {
	SafeSpeed    float64 `yaml:"safe_speed"`
	SafeAngleDeg float64 `yaml:"safe_angle_deg"`
}

// Body defines the lander's size and initial condition.
type Body struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartY float64 `yaml:"start_y"`
	Fuel   float64 `yaml:"fuel"`
}

// Episode defines time-step handling.
type Episode struct {
	MaxDelta    float64 `yaml:"max_delta"`    // Cap on normalized delta per tick
	FrameMillis float64 `yaml:"frame_millis"` // Wall-clock milliseconds of one reference frame
}

// Validate checks that every constant is usable.
// Returns an error wrapping ErrInvalidConfig describing the first problem found.
func (c LanderConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"physics.thrust", c.Physics.Thrust},
		{"physics.rotation_rate", c.Physics.RotationRate},
		{"terrain.pad_width", c.Terrain.PadWidth},
		{"landing.safe_speed", c.Landing.SafeSpeed},
		{"landing.safe_angle_deg", c.Landing.SafeAngleDeg},
		{"body.width", c.Body.Width},
		{"body.height", c.Body.Height},
		{"body.fuel", c.Body.Fuel},
		{"episode.max_delta", c.Episode.MaxDelta},
		{"episode.frame_millis", c.Episode.FrameMillis},
	}
	for _, p := range positive {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) || p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.fuel_rate", c.Physics.FuelRate},
		{"terrain.step_ratio", c.Terrain.StepRatio},
		{"terrain.pad_offset", c.Terrain.PadOffset},
		{"body.start_y", c.Body.StartY},
	}
	for _, p := range nonNegative {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) || p.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	if c.Physics.WallRestitution > 0 || c.Physics.WallRestitution < -1 {
		return fmt.Errorf("%w: physics.wall_restitution must be in [-1, 0], got %v",
			ErrInvalidConfig, c.Physics.WallRestitution)
	}
	if c.Terrain.Segments < 2 {
		return fmt.Errorf("%w: terrain.segments must be at least 2, got %d", ErrInvalidConfig, c.Terrain.Segments)
	}
	if c.Terrain.PadFlatRadius < 0 {
		return fmt.Errorf("%w: terrain.pad_flat_radius must not be negative, got %d",
			ErrInvalidConfig, c.Terrain.PadFlatRadius)
	}
	if !(c.Terrain.MinRatio <= c.Terrain.BaseRatio && c.Terrain.BaseRatio <= c.Terrain.MaxRatio) {
		return fmt.Errorf("%w: terrain ratios must satisfy min <= base <= max, got %v/%v/%v",
			ErrInvalidConfig, c.Terrain.MinRatio, c.Terrain.BaseRatio, c.Terrain.MaxRatio)
	}
	if c.Terrain.MinRatio < 0 || c.Terrain.MaxRatio > 1 {
		return fmt.Errorf("%w: terrain ratios must be within [0, 1]", ErrInvalidConfig)
	}
	return nil
}
