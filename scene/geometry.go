package scene

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

const (
	CoordsPerVertex = 3
	ColorComponents = 4

	PyramidFirst       = 0
	PyramidVertexCount = 3 * 6

	TriangleFirst       = PyramidFirst + PyramidVertexCount
	TriangleVertexCount = 3

	VertexCount = PyramidVertexCount + TriangleVertexCount
)

// Positions holds the pyramid (four sides and a two triangle base) followed
// by a lone triangle that cuts through it.
var Positions = [CoordsPerVertex * VertexCount]float32{
	-0.5, 0.0, 0.5, // front side
	0.5, 0.0, 0.5,
	0.0, 1.0, 0.0,

	-0.5, 0.0, -0.5, // back side
	0.5, 0.0, -0.5,
	0.0, 1.0, 0.0,

	-0.5, 0.0, -0.5, // left side
	-0.5, 0.0, 0.5,
	0.0, 1.0, 0.0,

	0.5, 0.0, -0.5, // right side
	0.5, 0.0, 0.5,
	0.0, 1.0, 0.0,

	0.5, 0.0, -0.5, // base
	0.5, 0.0, 0.5,
	-0.5, 0.0, -0.5,

	0.5, 0.0, 0.5,
	-0.5, 0.0, -0.5,
	-0.5, 0.0, 0.5,

	-0.2, -0.2, 1.0, // triangle
	0.2, -0.2, 1.0,
	0.25, 0.4, -0.8,
}

// Colors is parallel to Positions. The front side is nearly transparent so
// the triangle shows through it.
var Colors = [ColorComponents * VertexCount]float32{
	1.0, 1.0, 1.0, 0.1,
	1.0, 1.0, 1.0, 0.1,
	1.0, 1.0, 1.0, 0.1,

	0.822, 0.569, 0.201, 0.7,
	0.435, 0.602, 0.223, 0.7,
	0.310, 0.747, 0.185, 0.7,

	0.597, 0.770, 0.761, 0.7,
	0.559, 0.436, 0.730, 0.7,
	0.359, 0.583, 0.152, 0.7,

	0.483, 0.596, 0.789, 0.7,
	0.559, 0.861, 0.639, 0.7,
	0.195, 0.548, 0.859, 0.7,

	0.014, 0.184, 0.576, 0.7,
	0.771, 0.328, 0.970, 0.7,
	0.406, 0.615, 0.116, 0.7,

	0.676, 0.977, 0.133, 0.7,
	0.971, 0.572, 0.833, 0.7,
	0.140, 0.616, 0.489, 0.7,

	0.997, 0.513, 0.064, 0.7,
	0.945, 0.719, 0.592, 0.7,
	0.543, 0.021, 0.978, 0.7,
}

// PositionData and ColorData are the serialized forms of Positions and
// Colors, ready to hand to BufferData.
var (
	PositionData = f32.Bytes(binary.LittleEndian, Positions[:]...)
	ColorData    = f32.Bytes(binary.LittleEndian, Colors[:]...)
)
