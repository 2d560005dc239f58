package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Sphere builds a UV sphere centered at the origin. Rings run from the
// south pole to the north pole; sectors run around the Y axis. The seam
// sector is emitted twice (same position, different U) so textures wrap
// without a visible join, and the pole rings collapse in position while
// keeping distinct texture coordinates.
func Sphere(radius float32, rings, sectors int) (*Buffer, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: sphere radius %g must be positive", ErrInvalidShapeParameter, radius)
	}
	if rings < 2 {
		return nil, fmt.Errorf("%w: sphere rings %d must be at least 2", ErrInvalidShapeParameter, rings)
	}
	if sectors < 2 {
		return nil, fmt.Errorf("%w: sphere sectors %d must be at least 2", ErrInvalidShapeParameter, sectors)
	}

	ringStep := 1 / float32(rings-1)
	sectorStep := 1 / float32(sectors-1)

	verts := make([]float32, 0, rings*sectors*VertexStride)
	for r := 0; r < rings; r++ {
		lat := -math32.Pi/2 + math32.Pi*float32(r)*ringStep
		y := math32.Sin(lat)
		cosLat := math32.Cos(lat)
		for s := 0; s < sectors; s++ {
			lon := 2 * math32.Pi * float32(s) * sectorStep
			x := math32.Cos(lon) * cosLat
			z := math32.Sin(lon) * cosLat
			verts = append(verts,
				x*radius, y*radius, z*radius,
				x, y, z,
				float32(s)*sectorStep, float32(r)*ringStep,
			)
		}
	}

	indices := make([]uint32, 0, (rings-1)*(sectors-1)*6)
	for r := 0; r < rings-1; r++ {
		for s := 0; s < sectors-1; s++ {
			a := uint32(r*sectors + s)
			b := uint32((r+1)*sectors + s)
			indices = append(indices,
				a, b+1, a+1,
				a, b, b+1,
			)
		}
	}

	return &Buffer{Vertices: verts, Indices: indices}, nil
}
