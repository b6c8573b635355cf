package core

// RuntimeConfig contains configuration passed to the simulation at initialization.
// Width and Height describe the playfield in simulation pixels.
type RuntimeConfig struct {
	Width    float64 // Playfield width in pixels
	Height   float64 // Playfield height in pixels
	TickRate int     // Wall-clock ticks per second for paced runs (default 60)
	Seed     int64   // RNG seed for deterministic terrain
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in the command layer
	}
}
