package lander

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/lander/internal/config"
	"github.com/vovakirdan/lander/internal/core"
)

// ErrInvalidDimensions is returned when a playfield or terrain cannot be built.
var ErrInvalidDimensions = errors.New("lander: invalid dimensions")

// Terrain is a piecewise-linear height profile ordered by x.
// It is immutable: accessors never expose the underlying slice.
type Terrain struct {
	points []core.Point
}

// NewTerrain builds a terrain from explicit points.
// Requires at least two points with non-decreasing x.
func NewTerrain(points []core.Point) (Terrain, error) {
	if len(points) < 2 {
		return Terrain{}, fmt.Errorf("%w: terrain needs at least 2 points, got %d", ErrInvalidDimensions, len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].X < points[i-1].X {
			return Terrain{}, fmt.Errorf("%w: terrain x must not decrease (point %d)", ErrInvalidDimensions, i)
		}
	}
	cp := make([]core.Point, len(points))
	copy(cp, points)
	return Terrain{points: cp}, nil
}

// Len returns the number of points.
func (t Terrain) Len() int {
	return len(t.points)
}

// At returns the i-th point.
func (t Terrain) At(i int) core.Point {
	return t.points[i]
}

// Points returns a copy of the profile.
func (t Terrain) Points() []core.Point {
	cp := make([]core.Point, len(t.points))
	copy(cp, t.points)
	return cp
}

// Segments returns the number of line segments.
func (t Terrain) Segments() int {
	if len(t.points) < 2 {
		return 0
	}
	return len(t.points) - 1
}

// Segment returns the endpoints of the i-th segment.
func (t Terrain) Segment(i int) (core.Point, core.Point) {
	return t.points[i], t.points[i+1]
}

// HeightAt returns the terrain height directly under x, clamping x to the
// terrain's horizontal range.
func (t Terrain) HeightAt(x float64) float64 {
	if len(t.points) == 0 {
		return 0
	}
	last := len(t.points) - 1
	if x <= t.points[0].X {
		return t.points[0].Y
	}
	if x >= t.points[last].X {
		return t.points[last].Y
	}
	for i := 0; i < last; i++ {
		a, b := t.points[i], t.points[i+1]
		if x >= a.X && x <= b.X {
			return segmentHeight(a, b, x)
		}
	}
	return t.points[last].Y
}

// Fingerprint returns a stable hash of the profile.
// Two terrains generated from the same seed and parameters share a fingerprint.
func (t Terrain) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, p := range t.points {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.Y))
		//nolint:errcheck // xxhash.Digest.Write never fails
		d.Write(buf[:])
	}
	return d.Sum64()
}

// segmentHeight returns the height of the line through a and b at x.
// x may lie outside the segment, in which case the line is extended.
// A vertical segment yields its higher-valued endpoint.
func segmentHeight(a, b core.Point, x float64) float64 {
	if b.X == a.X {
		return math.Max(a.Y, b.Y)
	}
	return core.Lerp(a.Y, b.Y, (x-a.X)/(b.X-a.X))
}

// LandingZone is the flat pad the lander must touch down on.
type LandingZone struct {
	X     float64 `yaml:"x"`     // Left edge
	Y     float64 `yaml:"y"`     // Platform surface, slightly above the terrain line
	Width float64 `yaml:"width"` // Horizontal extent
}

// Right returns the x-coordinate of the pad's right edge.
func (z LandingZone) Right() float64 {
	return z.X + z.Width
}

// Center returns the x-coordinate of the pad's midpoint.
func (z LandingZone) Center() float64 {
	return z.X + z.Width/2
}

// Contains returns true if x lies on the pad, edges included.
func (z LandingZone) Contains(x float64) bool {
	return core.Span{Min: z.X, Max: z.Right()}.Contains(x)
}

// GenerateTerrain builds a random-walk height profile across [0, width] and
// carves a level landing pad into its later-middle section.
//
// Heights start and end at base_ratio*height; each interior point moves at
// most step_ratio*height from its left neighbour and is clamped to
// [min_ratio*height, max_ratio*height].
func GenerateTerrain(width, height float64, rng *rand.Rand, p config.TerrainParams) (Terrain, LandingZone, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Terrain{}, LandingZone{}, fmt.Errorf("%w: field must be positive, got %vx%v", ErrInvalidDimensions, width, height)
	}
	if p.Segments < 2 {
		return Terrain{}, LandingZone{}, fmt.Errorf("%w: need at least 2 segments, got %d", ErrInvalidDimensions, p.Segments)
	}
	if rng == nil {
		return Terrain{}, LandingZone{}, errors.New("lander: terrain generation needs a random source")
	}

	segments := p.Segments
	segmentWidth := width / float64(segments)
	minH := height * p.MinRatio
	maxH := height * p.MaxRatio
	maxChange := height * p.StepRatio
	base := height * p.BaseRatio

	points := make([]core.Point, segments+1)
	prev := base
	for i := 0; i <= segments; i++ {
		x := float64(i) * segmentWidth
		y := base
		if i > 0 && i < segments {
			y = prev + (rng.Float64()*maxChange*2 - maxChange)
			y = core.ClampF(y, minH, maxH)
		}
		points[i] = core.P(x, y)
		prev = y
	}
	// Pin the right edge exactly to width regardless of float accumulation.
	points[segments].X = width

	// Pad index falls in the later-middle third of the profile.
	padIndex := segments/2 + int(rng.Float64()*float64(segments)/3)
	padIndex = core.Clamp(padIndex, 0, segments-1)

	groundY := points[padIndex].Y
	pad := LandingZone{
		X:     points[padIndex].X,
		Y:     groundY - p.PadOffset,
		Width: p.PadWidth,
	}
	// Keep the pad strictly inside the field on narrow playfields.
	if pad.Right() >= width {
		pad.Width = (width - pad.X) / 2
	}

	for i := padIndex - p.PadFlatRadius; i <= padIndex+p.PadFlatRadius; i++ {
		if i < 0 || i >= len(points) {
			continue
		}
		points[i].Y = pad.Y + p.PadOffset
	}

	return Terrain{points: points}, pad, nil
}
