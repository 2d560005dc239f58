package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Cylinder builds a capped cylinder centered at the origin with its axis
// along Y. The side wall uses two seam-duplicated rings with radial
// normals; each cap is a fan from a center vertex over its own rim ring,
// kept separate from the wall so the flat cap normals do not bleed into
// the radial wall normals at the shared edge.
func Cylinder(radius, height float32, sectors int) (*Buffer, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: cylinder radius %g must be positive", ErrInvalidShapeParameter, radius)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: cylinder height %g must be positive", ErrInvalidShapeParameter, height)
	}
	if sectors < 3 {
		return nil, fmt.Errorf("%w: cylinder sectors %d must be at least 3", ErrInvalidShapeParameter, sectors)
	}

	halfH := height / 2
	step := 2 * math32.Pi / float32(sectors)

	verts := make([]float32, 0, (4*sectors+6)*VertexStride)
	indices := make([]uint32, 0, 12*sectors)

	// Side wall: bottom ring then top ring, sectors+1 vertices each.
	for _, y := range [2]float32{-halfH, halfH} {
		v := float32(0)
		if y > 0 {
			v = 1
		}
		for s := 0; s <= sectors; s++ {
			theta := float32(s) * step
			cos := math32.Cos(theta)
			sin := math32.Sin(theta)
			verts = append(verts,
				radius*cos, y, radius*sin,
				cos, 0, sin,
				float32(s)/float32(sectors), v,
			)
		}
	}
	top := uint32(sectors + 1)
	for s := 0; s < sectors; s++ {
		a := uint32(s)
		indices = append(indices,
			a, top+a, a+1,
			a+1, top+a, top+a+1,
		)
	}

	// Caps: one center vertex plus a separate rim ring each.
	topCenter := appendCap(&verts, radius, halfH, 1, sectors)
	for s := 0; s < sectors; s++ {
		rim := topCenter + 1 + uint32(s)
		indices = append(indices, topCenter, rim+1, rim)
	}
	bottomCenter := appendCap(&verts, radius, -halfH, -1, sectors)
	for s := 0; s < sectors; s++ {
		rim := bottomCenter + 1 + uint32(s)
		indices = append(indices, bottomCenter, rim, rim+1)
	}

	return &Buffer{Vertices: verts, Indices: indices}, nil
}

// appendCap emits a flat cap disc at height y facing ny: the center vertex
// followed by a seam-duplicated rim ring. Returns the center vertex index.
func appendCap(verts *[]float32, radius, y, ny float32, sectors int) uint32 {
	center := uint32(len(*verts) / VertexStride)
	*verts = append(*verts, 0, y, 0, 0, ny, 0, 0.5, 0.5)
	step := 2 * math32.Pi / float32(sectors)
	for s := 0; s <= sectors; s++ {
		theta := float32(s) * step
		cos := math32.Cos(theta)
		sin := math32.Sin(theta)
		*verts = append(*verts,
			radius*cos, y, radius*sin,
			0, ny, 0,
			cos*0.5+0.5, sin*0.5+0.5,
		)
	}
	return center
}
