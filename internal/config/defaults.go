package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the reference lander configuration.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Physics: Physics{
			Gravity:         0.0015,
			Thrust:          0.05,
			RotationRate:    0.08,
			FuelRate:        0.1,
			WallRestitution: -0.5,
		},
		Terrain: TerrainParams{
			Segments:      20,
			BaseRatio:     0.7,
			MinRatio:      0.5,
			MaxRatio:      0.9,
			StepRatio:     0.1,
			PadWidth:      100,
			PadOffset:     5,
			PadFlatRadius: 2,
		},
		Landing: Landing{
			SafeSpeed:    5,
			SafeAngleDeg: 10,
		},
		Body: Body{
			Width:  30,
			Height: 40,
			StartY: 50,
			Fuel:   100,
		},
		Episode: Episode{
			MaxDelta:    3,
			FrameMillis: 16,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultLanderYAML
}
