package lander

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lander/internal/config"
	"github.com/vovakirdan/lander/internal/core"
)

func generate(t *testing.T, seed int64) (Terrain, LandingZone) {
	t.Helper()
	terrain, pad, err := GenerateTerrain(800, 600, rand.New(rand.NewSource(seed)), config.DefaultLanderConfig().Terrain)
	require.NoError(t, err)
	return terrain, pad
}

func padIndex(t *testing.T, terrain Terrain, pad LandingZone) int {
	t.Helper()
	for i := 0; i < terrain.Len(); i++ {
		if terrain.At(i).X == pad.X {
			return i
		}
	}
	t.Fatalf("pad x %v does not match any terrain point", pad.X)
	return -1
}

func TestGenerateTerrainShape(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		terrain, pad := generate(t, seed)

		require.Equal(t, 21, terrain.Len(), "seed %d", seed)
		assert.Equal(t, 0.0, terrain.At(0).X)
		assert.Equal(t, 800.0, terrain.At(20).X)

		for i := 1; i < terrain.Len(); i++ {
			assert.Greater(t, terrain.At(i).X, terrain.At(i-1).X, "seed %d: x must strictly increase at %d", seed, i)
		}
		for i := 0; i < terrain.Len(); i++ {
			y := terrain.At(i).Y
			assert.GreaterOrEqual(t, y, 300.0-1e-9, "seed %d point %d", seed, i)
			assert.LessOrEqual(t, y, 540.0+1e-9, "seed %d point %d", seed, i)
		}

		// Endpoints sit at 70% of the field height.
		assert.InDelta(t, 420.0, terrain.At(0).Y, 1e-9)
		assert.InDelta(t, 420.0, terrain.At(20).Y, 1e-9)

		// Pad lies strictly inside the field.
		assert.Greater(t, pad.X, 0.0)
		assert.Less(t, pad.Right(), 800.0)
		assert.Equal(t, 100.0, pad.Width)
	}
}

func TestGenerateTerrainPadIsFlat(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		terrain, pad := generate(t, seed)
		idx := padIndex(t, terrain, pad)

		// Later-middle third: segments/2 + [0, segments/3)
		assert.GreaterOrEqual(t, idx, 10)
		assert.LessOrEqual(t, idx, 16)

		flat := terrain.At(idx).Y
		for i := idx - 2; i <= idx+2; i++ {
			assert.Equal(t, flat, terrain.At(i).Y, "seed %d: point %d should be level with the pad", seed, i)
		}
		assert.InDelta(t, flat-5, pad.Y, 1e-9, "platform sits 5px above the terrain line")
	}
}

func TestGenerateTerrainPadIndexRange(t *testing.T) {
	// segments/2 + floor(rand * segments/3): 10 + [0, 6.67) covers 10..16.
	seen := make(map[int]int)
	for seed := int64(1); seed <= 500; seed++ {
		terrain, pad := generate(t, seed)
		seen[padIndex(t, terrain, pad)]++
	}
	for idx := 10; idx <= 16; idx++ {
		assert.Positive(t, seen[idx], "pad index %d never drawn", idx)
	}
	assert.Len(t, seen, 7)
}

func TestGenerateTerrainDeterministic(t *testing.T) {
	a, padA := generate(t, 42)
	b, padB := generate(t, 42)

	assert.Equal(t, a.Points(), b.Points())
	assert.Equal(t, padA, padB)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	c, _ := generate(t, 43)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestGenerateTerrainClampsFlattening(t *testing.T) {
	params := config.DefaultLanderConfig().Terrain
	params.Segments = 3
	params.PadFlatRadius = 2

	terrain, pad, err := GenerateTerrain(90, 100, rand.New(rand.NewSource(7)), params)
	require.NoError(t, err)
	require.Equal(t, 4, terrain.Len())

	// Pad index is 1; the flattening window [-1, 3] is clipped to [0, 3].
	for i := 0; i < terrain.Len(); i++ {
		assert.Equal(t, terrain.At(1).Y, terrain.At(i).Y)
	}

	// Default pad width would overflow a 90px field.
	assert.Equal(t, 30.0, pad.X)
	assert.Less(t, pad.Right(), 90.0)
	assert.Greater(t, pad.Width, 0.0)
}

func TestGenerateTerrainTwoSegments(t *testing.T) {
	params := config.DefaultLanderConfig().Terrain
	params.Segments = 2

	terrain, pad, err := GenerateTerrain(800, 600, rand.New(rand.NewSource(1)), params)
	require.NoError(t, err)
	assert.Equal(t, 3, terrain.Len())
	assert.Equal(t, 400.0, pad.X)
}

func TestGenerateTerrainInvalid(t *testing.T) {
	params := config.DefaultLanderConfig().Terrain
	rng := rand.New(rand.NewSource(1))

	_, _, err := GenerateTerrain(0, 600, rng, params)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, _, err = GenerateTerrain(800, -1, rng, params)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	params.Segments = 1
	_, _, err = GenerateTerrain(800, 600, rng, params)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, _, err = GenerateTerrain(800, 600, nil, config.DefaultLanderConfig().Terrain)
	assert.Error(t, err)
}

func TestNewTerrain(t *testing.T) {
	_, err := NewTerrain([]core.Point{{X: 0, Y: 0}})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewTerrain([]core.Point{{X: 10, Y: 0}, {X: 5, Y: 0}})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	src := []core.Point{{X: 0, Y: 1}, {X: 10, Y: 2}}
	terrain, err := NewTerrain(src)
	require.NoError(t, err)

	// Mutating the input or the returned copy must not affect the terrain.
	src[0].Y = 99
	pts := terrain.Points()
	pts[1].Y = 99
	assert.Equal(t, 1.0, terrain.At(0).Y)
	assert.Equal(t, 2.0, terrain.At(1).Y)
}

func TestTerrainHeightAt(t *testing.T) {
	terrain, err := NewTerrain([]core.Point{
		{X: 0, Y: 400},
		{X: 200, Y: 600},
		{X: 400, Y: 600},
	})
	require.NoError(t, err)

	assert.InDelta(t, 500.0, terrain.HeightAt(100), 1e-9)
	assert.InDelta(t, 600.0, terrain.HeightAt(300), 1e-9)
	assert.Equal(t, 400.0, terrain.HeightAt(-50), "left of terrain clamps to first point")
	assert.Equal(t, 600.0, terrain.HeightAt(450), "right of terrain clamps to last point")
	assert.Equal(t, 2, terrain.Segments())
}

func TestSegmentHeightExtendsLine(t *testing.T) {
	a := core.P(0, 500)
	b := core.P(100, 600)
	assert.InDelta(t, 610.0, segmentHeight(a, b, 110), 1e-9)
	assert.InDelta(t, 490.0, segmentHeight(a, b, -10), 1e-9)
}

func TestSegmentHeightVertical(t *testing.T) {
	a := core.P(100, 300)
	b := core.P(100, 500)
	assert.Equal(t, 500.0, segmentHeight(a, b, 100))
	assert.Equal(t, 500.0, segmentHeight(b, a, 100))
}
