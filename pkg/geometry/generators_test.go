package geometry

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
)

// position returns the position of vertex v in the buffer.
func position(buf *Buffer, v int) [3]float32 {
	o := v * VertexStride
	return [3]float32{buf.Vertices[o], buf.Vertices[o+1], buf.Vertices[o+2]}
}

// normal returns the normal of vertex v in the buffer.
func normal(buf *Buffer, v int) [3]float32 {
	o := v * VertexStride
	return [3]float32{buf.Vertices[o+3], buf.Vertices[o+4], buf.Vertices[o+5]}
}

// texcoord returns the texture coordinate of vertex v in the buffer.
func texcoord(buf *Buffer, v int) [2]float32 {
	o := v * VertexStride
	return [2]float32{buf.Vertices[o+6], buf.Vertices[o+7]}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func magnitude(v [3]float32) float32 {
	return math32.Sqrt(dot(v, v))
}

// checkTriangles verifies that every triangle in the buffer winds
// counter-clockwise when seen from its outward normal side, and counts
// zero-area triangles. Degenerate triangles are only acceptable where a
// parametric row collapses to a point (sphere poles).
func checkTriangles(t *testing.T, buf *Buffer, wantDegenerate int) {
	t.Helper()

	degenerate := 0
	for i := 0; i < len(buf.Indices); i += 3 {
		p0 := position(buf, int(buf.Indices[i]))
		p1 := position(buf, int(buf.Indices[i+1]))
		p2 := position(buf, int(buf.Indices[i+2]))

		face := cross(sub(p1, p0), sub(p2, p0))
		if magnitude(face) < 1e-6 {
			degenerate++
			continue
		}

		n0 := normal(buf, int(buf.Indices[i]))
		n1 := normal(buf, int(buf.Indices[i+1]))
		n2 := normal(buf, int(buf.Indices[i+2]))
		avg := [3]float32{n0[0] + n1[0] + n2[0], n0[1] + n1[1] + n2[1], n0[2] + n1[2] + n2[2]}

		if dot(face, avg) <= 0 {
			t.Errorf("triangle %d winds clockwise against its normals", i/3)
		}
	}

	if degenerate != wantDegenerate {
		t.Errorf("degenerate triangles: got %d, want %d", degenerate, wantDegenerate)
	}
}

func TestGeneratorsProduceValidBuffers(t *testing.T) {
	tests := []struct {
		name       string
		build      func() (*Buffer, error)
		degenerate int
	}{
		{"box", func() (*Buffer, error) { return Box(2) }, 0},
		{"sphere", func() (*Buffer, error) { return Sphere(1, 8, 12) }, 2 * 11},
		{"cylinder", func() (*Buffer, error) { return Cylinder(1, 2, 16) }, 0},
		{"cone", func() (*Buffer, error) { return Cone(1, 2, 16) }, 0},
		{"torus", func() (*Buffer, error) { return Torus(2, 0.5, 24, 12) }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := tt.build()
			if err != nil {
				t.Fatalf("generator failed: %v", err)
			}
			if err := buf.Validate(); err != nil {
				t.Fatalf("generated buffer invalid: %v", err)
			}
			if len(buf.Indices)%3 != 0 {
				t.Errorf("index count %d not a multiple of 3", len(buf.Indices))
			}
			checkTriangles(t, buf, tt.degenerate)
		})
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Buffer, error)
	}{
		{"box", func() (*Buffer, error) { return Box(1.5) }},
		{"sphere", func() (*Buffer, error) { return Sphere(2, 16, 24) }},
		{"cylinder", func() (*Buffer, error) { return Cylinder(0.5, 3, 12) }},
		{"cone", func() (*Buffer, error) { return Cone(1.5, 2.5, 9) }},
		{"torus", func() (*Buffer, error) { return Torus(1, 0.25, 16, 8) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := tt.build()
			if err != nil {
				t.Fatalf("first build failed: %v", err)
			}
			second, err := tt.build()
			if err != nil {
				t.Fatalf("second build failed: %v", err)
			}

			if len(first.Vertices) != len(second.Vertices) {
				t.Fatalf("vertex count differs: %d vs %d", len(first.Vertices), len(second.Vertices))
			}
			for i := range first.Vertices {
				if first.Vertices[i] != second.Vertices[i] {
					t.Fatalf("vertex float %d differs: %f vs %f", i, first.Vertices[i], second.Vertices[i])
				}
			}
			if len(first.Indices) != len(second.Indices) {
				t.Fatalf("index count differs: %d vs %d", len(first.Indices), len(second.Indices))
			}
			for i := range first.Indices {
				if first.Indices[i] != second.Indices[i] {
					t.Fatalf("index %d differs: %d vs %d", i, first.Indices[i], second.Indices[i])
				}
			}
		})
	}
}

func TestGeneratorsRejectInvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Buffer, error)
	}{
		{"box zero size", func() (*Buffer, error) { return Box(0) }},
		{"box negative size", func() (*Buffer, error) { return Box(-1) }},
		{"sphere zero radius", func() (*Buffer, error) { return Sphere(0, 8, 8) }},
		{"sphere one ring", func() (*Buffer, error) { return Sphere(1, 1, 8) }},
		{"sphere one sector", func() (*Buffer, error) { return Sphere(1, 8, 1) }},
		{"cylinder zero radius", func() (*Buffer, error) { return Cylinder(0, 1, 8) }},
		{"cylinder negative height", func() (*Buffer, error) { return Cylinder(1, -2, 8) }},
		{"cylinder two sectors", func() (*Buffer, error) { return Cylinder(1, 1, 2) }},
		{"cone zero radius", func() (*Buffer, error) { return Cone(0, 1, 8) }},
		{"cone zero height", func() (*Buffer, error) { return Cone(1, 0, 8) }},
		{"cone two sectors", func() (*Buffer, error) { return Cone(1, 1, 2) }},
		{"torus zero major radius", func() (*Buffer, error) { return Torus(0, 0.5, 8, 8) }},
		{"torus zero minor radius", func() (*Buffer, error) { return Torus(2, 0, 8, 8) }},
		{"torus two major segments", func() (*Buffer, error) { return Torus(2, 0.5, 2, 8) }},
		{"torus two minor segments", func() (*Buffer, error) { return Torus(2, 0.5, 8, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := tt.build()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidShapeParameter) {
				t.Errorf("expected ErrInvalidShapeParameter, got %v", err)
			}
			if buf != nil {
				t.Error("expected nil buffer on error")
			}
		})
	}
}
