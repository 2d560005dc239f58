package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Torus builds a torus centered at the origin, lying in the XZ plane. The
// major loop sweeps the tube center around Y; the minor loop sweeps the
// tube cross-section. Both loops duplicate their seam vertex so texture
// coordinates stay continuous across the wrap, as on the sphere.
func Torus(majorRadius, minorRadius float32, majorSegments, minorSegments int) (*Buffer, error) {
	if majorRadius <= 0 {
		return nil, fmt.Errorf("%w: torus major radius %g must be positive", ErrInvalidShapeParameter, majorRadius)
	}
	if minorRadius <= 0 {
		return nil, fmt.Errorf("%w: torus minor radius %g must be positive", ErrInvalidShapeParameter, minorRadius)
	}
	if majorSegments < 3 {
		return nil, fmt.Errorf("%w: torus major segments %d must be at least 3", ErrInvalidShapeParameter, majorSegments)
	}
	if minorSegments < 3 {
		return nil, fmt.Errorf("%w: torus minor segments %d must be at least 3", ErrInvalidShapeParameter, minorSegments)
	}

	cols := minorSegments + 1
	verts := make([]float32, 0, (majorSegments+1)*cols*VertexStride)
	for i := 0; i <= majorSegments; i++ {
		u := 2 * math32.Pi * float32(i) / float32(majorSegments)
		cosU := math32.Cos(u)
		sinU := math32.Sin(u)
		for j := 0; j <= minorSegments; j++ {
			v := 2 * math32.Pi * float32(j) / float32(minorSegments)
			cosV := math32.Cos(v)
			sinV := math32.Sin(v)
			ring := majorRadius + minorRadius*cosV
			verts = append(verts,
				ring*cosU, minorRadius*sinV, ring*sinU,
				cosV*cosU, sinV, cosV*sinU,
				float32(i)/float32(majorSegments), float32(j)/float32(minorSegments),
			)
		}
	}

	indices := make([]uint32, 0, majorSegments*minorSegments*6)
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			a := uint32(i*cols + j)
			c := uint32((i+1)*cols + j)
			indices = append(indices,
				a, a+1, c+1,
				a, c+1, c,
			)
		}
	}

	return &Buffer{Vertices: verts, Indices: indices}, nil
}
