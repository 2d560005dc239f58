package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Cone builds a capped cone centered at the origin with its apex on +Y.
// The slanted wall shares the sphere's seam-duplication rule on the base
// ring; the apex is emitted once per sector so every wall triangle carries
// its own slant normal at the tip. The base cap is a fan over a separate
// rim ring with a flat downward normal.
func Cone(radius, height float32, sectors int) (*Buffer, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: cone radius %g must be positive", ErrInvalidShapeParameter, radius)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: cone height %g must be positive", ErrInvalidShapeParameter, height)
	}
	if sectors < 3 {
		return nil, fmt.Errorf("%w: cone sectors %d must be at least 3", ErrInvalidShapeParameter, sectors)
	}

	halfH := height / 2
	step := 2 * math32.Pi / float32(sectors)
	slant := math32.Sqrt(height*height + radius*radius)

	verts := make([]float32, 0, (3*sectors+3)*VertexStride)
	indices := make([]uint32, 0, 6*sectors)

	// Base ring of the wall, normals tilted up along the slant.
	for s := 0; s <= sectors; s++ {
		theta := float32(s) * step
		cos := math32.Cos(theta)
		sin := math32.Sin(theta)
		verts = append(verts,
			radius*cos, -halfH, radius*sin,
			height*cos/slant, radius/slant, height*sin/slant,
			float32(s)/float32(sectors), 0,
		)
	}

	// One apex copy per sector, normal taken at the sector's midpoint angle.
	apex := uint32(sectors + 1)
	for s := 0; s < sectors; s++ {
		theta := (float32(s) + 0.5) * step
		cos := math32.Cos(theta)
		sin := math32.Sin(theta)
		verts = append(verts,
			0, halfH, 0,
			height*cos/slant, radius/slant, height*sin/slant,
			(float32(s)+0.5)/float32(sectors), 1,
		)
	}

	for s := 0; s < sectors; s++ {
		a := uint32(s)
		indices = append(indices, a, apex+a, a+1)
	}

	// Base cap fan, wound to face -Y.
	center := appendCap(&verts, radius, -halfH, -1, sectors)
	for s := 0; s < sectors; s++ {
		rim := center + 1 + uint32(s)
		indices = append(indices, center, rim, rim+1)
	}

	return &Buffer{Vertices: verts, Indices: indices}, nil
}
