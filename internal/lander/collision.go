package lander

import (
	"github.com/vovakirdan/lander/internal/config"
	"github.com/vovakirdan/lander/internal/core"
)

// Resolver tests the lander against the terrain and classifies touchdowns.
type Resolver struct {
	Landing config.Landing
}

// NewResolver creates a resolver with the given landing thresholds.
func NewResolver(l config.Landing) Resolver {
	return Resolver{Landing: l}
}

// Contact describes the first terrain segment the lander touches.
type Contact struct {
	Segment  int     // Index of the segment's left point
	TerrainY float64 // Terrain height under the lander's center
}

// FindContact scans segments left to right and returns the first one whose
// x-range overlaps the lander's footprint and whose line, extended under the
// lander's center, is at or above the lander's bottom edge.
func FindContact(s State, t Terrain) (Contact, bool) {
	footprint := core.NewSpan(s.X, s.Width)
	for i := 0; i < t.Segments(); i++ {
		a, b := t.Segment(i)
		seg := core.Span{Min: min(a.X, b.X), Max: max(a.X, b.X)}
		if !footprint.Overlaps(seg) {
			continue
		}
		terrainY := segmentHeight(a, b, s.X)
		if s.Bottom() >= terrainY {
			return Contact{Segment: i, TerrainY: terrainY}, true
		}
	}
	return Contact{}, false
}

// Classify decides whether a touchdown is a safe landing: the lander's
// center is on the pad and both speed and tilt are strictly below limits.
func (r Resolver) Classify(s State, pad LandingZone) Status {
	if pad.Contains(s.X) &&
		s.Speed() < r.Landing.SafeSpeed &&
		s.TiltDeg() < r.Landing.SafeAngleDeg {
		return Landed
	}
	return Crashed
}

// Resolve checks for terrain contact and writes the verdict into s.
// A safe landing snaps the lander onto the surface at rest; a crash keeps
// the impact state. Returns Flying with s unchanged if nothing is touched.
//
// Callers must not resolve a state that is already terminal.
func (r Resolver) Resolve(s *State, t Terrain, pad LandingZone) Status {
	c, ok := FindContact(*s, t)
	if !ok {
		return Flying
	}

	status := r.Classify(*s, pad)
	if status == Landed {
		s.Y = c.TerrainY - s.Height/2
		s.VelocityX = 0
		s.VelocityY = 0
		s.Angle = 0
	}
	s.Status = status
	return status
}
