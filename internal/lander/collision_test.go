package lander

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lander/internal/config"
	"github.com/vovakirdan/lander/internal/core"
)

// flatGround is level terrain at y=500 with a pad spanning [150, 250].
func flatGround(t *testing.T) (Terrain, LandingZone) {
	t.Helper()
	terrain, err := NewTerrain([]core.Point{
		{X: 0, Y: 500},
		{X: 100, Y: 500},
		{X: 200, Y: 500},
		{X: 300, Y: 500},
		{X: 400, Y: 500},
	})
	require.NoError(t, err)
	return terrain, LandingZone{X: 150, Y: 495, Width: 100}
}

func touchingState(x, vx, vy float64) State {
	s := NewState(800, config.DefaultLanderConfig().Body)
	s.X = x
	s.Y = 480.5 // bottom at 500.5, just below the surface
	s.VelocityX = vx
	s.VelocityY = vy
	return s
}

func testResolver() Resolver {
	return NewResolver(config.DefaultLanderConfig().Landing)
}

func TestResolveSoftLandingOnPad(t *testing.T) {
	terrain, pad := flatGround(t)
	s := touchingState(200, 0, 4.9)

	status := testResolver().Resolve(&s, terrain, pad)

	assert.Equal(t, Landed, status)
	assert.Equal(t, Landed, s.Status)
	assert.Equal(t, 480.0, s.Y, "snapped onto the surface")
	assert.Equal(t, 0.0, s.VelocityX)
	assert.Equal(t, 0.0, s.VelocityY)
	assert.Equal(t, 0.0, s.Angle)
}

func TestResolveOffPadCrashes(t *testing.T) {
	terrain, pad := flatGround(t)
	s := touchingState(350, 0, 4.9)
	before := s

	status := testResolver().Resolve(&s, terrain, pad)

	assert.Equal(t, Crashed, status)
	assert.Equal(t, Crashed, s.Status)

	// Everything but the status stays at the impact values.
	s.Status = before.Status
	assert.Equal(t, before, s)
}

func TestResolveFastOnPadCrashes(t *testing.T) {
	terrain, pad := flatGround(t)
	s := touchingState(200, 0, 10)

	assert.Equal(t, Crashed, testResolver().Resolve(&s, terrain, pad))
	assert.Equal(t, 10.0, s.VelocityY)
}

func TestResolveThresholdsAreStrict(t *testing.T) {
	terrain, pad := flatGround(t)

	// Smallest angle whose degree value is not below the limit.
	limit := core.DegToRad(10)
	for core.RadToDeg(limit) < 10 {
		limit = math.Nextafter(limit, 1)
	}

	tests := []struct {
		name  string
		x     float64
		vx    float64
		vy    float64
		angle float64
		want  Status
	}{
		{"speed exactly at limit", 200, 3, 4, 0, Crashed},
		{"speed just below limit", 200, 3, 3.99, 0, Landed},
		{"tilt exactly at limit", 200, 0, 1, limit, Crashed},
		{"negative tilt at limit", 200, 0, 1, -limit, Crashed},
		{"tilt just below limit", 200, 0, 1, core.DegToRad(9.9), Landed},
		{"left pad edge", 150, 0, 1, 0, Landed},
		{"right pad edge", 250, 0, 1, 0, Landed},
		{"just left of pad", 149.999, 0, 1, 0, Crashed},
		{"just right of pad", 250.001, 0, 1, 0, Crashed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := touchingState(tt.x, tt.vx, tt.vy)
			s.Angle = tt.angle
			assert.Equal(t, tt.want, testResolver().Resolve(&s, terrain, pad))
		})
	}
}

func TestResolveNoContact(t *testing.T) {
	terrain, pad := flatGround(t)
	s := touchingState(200, 0, 1)
	s.Y = 400
	before := s

	assert.Equal(t, Flying, testResolver().Resolve(&s, terrain, pad))
	assert.Equal(t, before, s)
}

func TestResolveTouchingSurfaceCounts(t *testing.T) {
	terrain, pad := flatGround(t)
	s := touchingState(200, 0, 1)
	s.Y = 480 // bottom exactly on the surface

	assert.Equal(t, Landed, testResolver().Resolve(&s, terrain, pad))
}

func TestResolveDeterministic(t *testing.T) {
	terrain, pad := flatGround(t)
	a := touchingState(230, 1.5, 2.5)
	a.Angle = 0.1
	b := a

	sa := testResolver().Resolve(&a, terrain, pad)
	sb := testResolver().Resolve(&b, terrain, pad)

	assert.Equal(t, sa, sb)
	assert.Equal(t, a, b)
}

func TestFindContactSlope(t *testing.T) {
	terrain, err := NewTerrain([]core.Point{{X: 0, Y: 400}, {X: 200, Y: 600}})
	require.NoError(t, err)

	s := touchingState(100, 0, 0)
	s.Y = 479 // bottom 499, above the slope at x=100
	_, ok := FindContact(s, terrain)
	assert.False(t, ok)

	s.Y = 480
	c, ok := FindContact(s, terrain)
	require.True(t, ok)
	assert.Equal(t, 0, c.Segment)
	assert.InDelta(t, 500.0, c.TerrainY, 1e-9)
}

func TestFindContactVerticalSegment(t *testing.T) {
	terrain, err := NewTerrain([]core.Point{
		{X: 100, Y: 300},
		{X: 100, Y: 500},
		{X: 200, Y: 500},
	})
	require.NoError(t, err)

	s := touchingState(100, 0, 0)
	s.Y = 480 // bottom 500
	c, ok := FindContact(s, terrain)
	require.True(t, ok)
	assert.Equal(t, 0, c.Segment)
	assert.Equal(t, 500.0, c.TerrainY, "vertical segment uses its larger y")
}

func TestFindContactScansPastNonTouchingSegments(t *testing.T) {
	// A drop-off: the left segment is lower under the center than the right.
	terrain, err := NewTerrain([]core.Point{
		{X: 0, Y: 600},
		{X: 100, Y: 600},
		{X: 110, Y: 450},
		{X: 300, Y: 450},
	})
	require.NoError(t, err)

	s := touchingState(105, 0, 0)
	s.Y = 530 // bottom 550: above segment 0 (600) but below segment 1 (525)
	c, ok := FindContact(s, terrain)
	require.True(t, ok)
	assert.Equal(t, 1, c.Segment)
	assert.InDelta(t, 525.0, c.TerrainY, 1e-9)
}

func TestFindContactExtendsSegmentsUnderCenter(t *testing.T) {
	// A steady downhill. Past the end of segment 0 its line keeps falling,
	// so the endpoint height must not be used for a center beyond it.
	terrain, err := NewTerrain([]core.Point{
		{X: 0, Y: 500},
		{X: 100, Y: 600},
		{X: 200, Y: 700},
	})
	require.NoError(t, err)

	s := touchingState(110, 0, 0)
	s.Y = 585 // bottom 605, above the slope's 610 at x=110
	_, ok := FindContact(s, terrain)
	assert.False(t, ok)

	s.Y = 590 // bottom 610
	c, ok := FindContact(s, terrain)
	require.True(t, ok)
	assert.Equal(t, 0, c.Segment)
	assert.InDelta(t, 610.0, c.TerrainY, 1e-9)
}

func TestResolveLandingSnapsToExtendedLine(t *testing.T) {
	terrain, err := NewTerrain([]core.Point{
		{X: 0, Y: 500},
		{X: 100, Y: 600},
		{X: 200, Y: 700},
	})
	require.NoError(t, err)
	pad := LandingZone{X: 100, Y: 595, Width: 50}

	s := touchingState(110, 0, 1)
	s.Y = 591 // bottom 611
	require.Equal(t, Landed, testResolver().Resolve(&s, terrain, pad))
	assert.InDelta(t, 590.0, s.Y, 1e-9)
}

func TestFindContactIgnoresDistantSegments(t *testing.T) {
	terrain, err := NewTerrain([]core.Point{
		{X: 0, Y: 100},
		{X: 50, Y: 100},
		{X: 300, Y: 600},
		{X: 400, Y: 600},
	})
	require.NoError(t, err)

	// Only segment 2 overlaps the footprint [335, 365].
	s := touchingState(350, 0, 0)
	s.Y = 500
	_, ok := FindContact(s, terrain)
	assert.False(t, ok)
}
