package geometry

import "fmt"

// boxFaces lists the six cube faces as unit corner offsets, wound
// counter-clockwise seen from outside the cube.
var boxFaces = [6]struct {
	normal  [3]float32
	corners [4][3]float32
	uvs     [4][2]float32
}{
	{ // -Z
		normal:  [3]float32{0, 0, -1},
		corners: [4][3]float32{{-1, 1, -1}, {1, 1, -1}, {1, -1, -1}, {-1, -1, -1}},
		uvs:     [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}},
	},
	{ // +Z
		normal:  [3]float32{0, 0, 1},
		corners: [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
		uvs:     [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	{ // -X
		normal:  [3]float32{-1, 0, 0},
		corners: [4][3]float32{{-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}, {-1, -1, 1}},
		uvs:     [4][2]float32{{1, 0}, {1, 1}, {0, 1}, {0, 0}},
	},
	{ // +X
		normal:  [3]float32{1, 0, 0},
		corners: [4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
		uvs:     [4][2]float32{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
	},
	{ // -Y
		normal:  [3]float32{0, -1, 0},
		corners: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
		uvs:     [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}},
	},
	{ // +Y
		normal:  [3]float32{0, 1, 0},
		corners: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
		uvs:     [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
}

// Box builds an axis-aligned cube with the given edge length, centered at
// the origin. Each face carries its own four vertices so face normals stay
// flat and texture coordinates cover the unit square per face.
func Box(size float32) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: box size %g must be positive", ErrInvalidShapeParameter, size)
	}

	h := size / 2
	verts := make([]float32, 0, 24*VertexStride)
	indices := make([]uint32, 0, 36)

	for f, face := range boxFaces {
		for i := 0; i < 4; i++ {
			c := face.corners[i]
			verts = append(verts,
				c[0]*h, c[1]*h, c[2]*h,
				face.normal[0], face.normal[1], face.normal[2],
				face.uvs[i][0], face.uvs[i][1],
			)
		}
		base := uint32(f * 4)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return &Buffer{Vertices: verts, Indices: indices}, nil
}
