package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float32At(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
}

func TestBufferSizesMatchVertexCounts(t *testing.T) {
	assert.Equal(t, 21, VertexCount)
	assert.Equal(t, VertexCount, TriangleFirst+TriangleVertexCount)
	assert.Len(t, PositionData, 4*CoordsPerVertex*VertexCount)
	assert.Len(t, ColorData, 4*ColorComponents*VertexCount)
}

func TestSerializedDataRoundTrips(t *testing.T) {
	for i, v := range Positions {
		require.Equal(t, v, float32At(PositionData, i), "position float %d", i)
	}
	for i, v := range Colors {
		require.Equal(t, v, float32At(ColorData, i), "color float %d", i)
	}
}

func TestPyramidShape(t *testing.T) {
	apex := [3]float32{0, 1, 0}
	for side := 0; side < 4; side++ {
		i := (3*side + 2) * CoordsPerVertex
		assert.Equal(t, apex, [3]float32{Positions[i], Positions[i+1], Positions[i+2]}, "apex of side %d", side)
	}
	for v := 0; v < PyramidVertexCount; v++ {
		x, y, z := Positions[v*3], Positions[v*3+1], Positions[v*3+2]
		if y == 1 {
			continue
		}
		assert.Zero(t, y, "vertex %d not on the base plane", v)
		assert.InDelta(t, 0.5, math.Abs(float64(x)), 1e-6, "vertex %d", v)
		assert.InDelta(t, 0.5, math.Abs(float64(z)), 1e-6, "vertex %d", v)
	}
}

func TestColorAlpha(t *testing.T) {
	for v := 0; v < VertexCount; v++ {
		alpha := Colors[v*ColorComponents+3]
		if v < 3 {
			assert.Equal(t, float32(0.1), alpha, "vertex %d", v)
		} else {
			assert.Equal(t, float32(0.7), alpha, "vertex %d", v)
		}
		for c := 0; c < 3; c++ {
			comp := Colors[v*ColorComponents+c]
			assert.True(t, comp >= 0 && comp <= 1, "vertex %d component %d out of range: %v", v, c, comp)
		}
	}
}
