// Package core provides fundamental types and utilities for the lander simulation.
// It contains no external dependencies to keep simulation logic pure and testable.
package core

import "math"

// Point is a 2D coordinate in simulation pixels.
// Y grows downward, matching screen space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// P is shorthand for constructing a Point.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Span represents a closed horizontal interval [Min, Max].
// Used for footprint overlap tests.
type Span struct {
	Min, Max float64
}

// NewSpan returns the span centered on c with the given total width.
func NewSpan(c, width float64) Span {
	return Span{Min: c - width/2, Max: c + width/2}
}

// Overlaps returns true if the two closed spans share at least one point.
// Touching endpoints count as overlap.
func (s Span) Overlaps(other Span) bool {
	return !(s.Max < other.Min || s.Min > other.Max)
}

// Contains returns true if v lies within the closed span.
func (s Span) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// WrapAngle folds an angle of any magnitude into (-π, π].
// Non-finite input yields 0.
func WrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	r := math.Mod(a+math.Pi, 2*math.Pi)
	if r <= 0 {
		r += 2 * math.Pi
	}
	r -= math.Pi
	// Rounding can land exactly on the excluded bound.
	if r <= -math.Pi {
		r = math.Pi
	}
	return r
}
