package config

import "fmt"

// Preset represents a named set of physics constants.
type Preset string

const (
	// PresetStandard keeps the reference constants.
	PresetStandard Preset = "standard"
	// PresetClassic uses the gentler gravity of the first release.
	PresetClassic Preset = "classic"
)

// classicGravity is the gravity of the classic preset.
const classicGravity = 0.001

// Presets returns all known preset names.
func Presets() []Preset {
	return []Preset{PresetStandard, PresetClassic}
}

// ParsePreset converts a name to a Preset. An empty name means standard.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case "", PresetStandard:
		return PresetStandard, nil
	case PresetClassic:
		return PresetClassic, nil
	default:
		return "", fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *LanderConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Physics.Gravity = classicGravity
	}
}
