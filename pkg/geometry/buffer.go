// Package geometry generates triangulated surface meshes for parametric
// solid primitives as interleaved vertex buffers ready for GPU upload.
package geometry

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Geometry errors.
var (
	ErrInvalidShapeParameter = errors.New("invalid shape parameter")
	ErrMalformedBuffer       = errors.New("malformed geometry buffer")
)

// VertexStride is the number of float32 values per vertex:
// position (3), normal (3), texture coordinate (2).
const VertexStride = 8

// Buffer holds an interleaved vertex array and a triangle index list.
// A generator fills the buffer once; it must not be modified afterwards.
// Indices wind counter-clockwise seen from the outward normal side.
type Buffer struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Vertices) / VertexStride
}

// TriangleCount returns the number of triangles in the buffer.
func (b *Buffer) TriangleCount() int {
	return len(b.Indices) / 3
}

// Validate checks structural soundness: vertex data is a whole number of
// stride-8 vertices, indices form whole triangles and stay in range, and
// every stored normal is unit length within 1e-4.
func (b *Buffer) Validate() error {
	if len(b.Vertices)%VertexStride != 0 {
		return fmt.Errorf("%w: vertex data length %d is not a multiple of %d",
			ErrMalformedBuffer, len(b.Vertices), VertexStride)
	}
	if len(b.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3",
			ErrMalformedBuffer, len(b.Indices))
	}
	count := uint32(b.VertexCount())
	for i, idx := range b.Indices {
		if idx >= count {
			return fmt.Errorf("%w: index %d at position %d out of range (%d vertices)",
				ErrMalformedBuffer, idx, i, count)
		}
	}
	for v := 0; v < b.VertexCount(); v++ {
		nx := b.Vertices[v*VertexStride+3]
		ny := b.Vertices[v*VertexStride+4]
		nz := b.Vertices[v*VertexStride+5]
		length := math32.Sqrt(nx*nx + ny*ny + nz*nz)
		if math32.Abs(length-1) > 1e-4 {
			return fmt.Errorf("%w: vertex %d normal length %g", ErrMalformedBuffer, v, length)
		}
	}
	return nil
}

// Bounds returns the axis-aligned extent of the vertex positions.
// An empty buffer yields zero bounds.
func (b *Buffer) Bounds() (min, max [3]float32) {
	if b.VertexCount() == 0 {
		return min, max
	}
	for i := 0; i < 3; i++ {
		min[i] = b.Vertices[i]
		max[i] = b.Vertices[i]
	}
	for v := 1; v < b.VertexCount(); v++ {
		for i := 0; i < 3; i++ {
			p := b.Vertices[v*VertexStride+i]
			if p < min[i] {
				min[i] = p
			}
			if p > max[i] {
				max[i] = p
			}
		}
	}
	return min, max
}
