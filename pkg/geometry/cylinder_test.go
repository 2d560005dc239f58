package geometry

import "testing"

func TestCylinderCounts(t *testing.T) {
	const sectors = 8
	buf, err := Cylinder(1, 2, sectors)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	// Two wall rings of sectors+1, plus two caps of center + sectors+1 rim.
	wantVerts := 4*sectors + 6
	if buf.VertexCount() != wantVerts {
		t.Errorf("expected %d vertices, got %d", wantVerts, buf.VertexCount())
	}
	if len(buf.Indices) != 12*sectors {
		t.Errorf("expected %d indices, got %d", 12*sectors, len(buf.Indices))
	}
}

func TestCylinderWallSeam(t *testing.T) {
	const sectors = 12
	buf, err := Cylinder(1.5, 3, sectors)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	// First and last wall vertex of the bottom ring coincide in position
	// while U runs from 0 to 1.
	pf, pl := position(buf, 0), position(buf, sectors)
	for i := 0; i < 3; i++ {
		if abs(pf[i]-pl[i]) > 1e-4 {
			t.Errorf("wall seam positions diverge: %v vs %v", pf, pl)
			break
		}
	}
	if u := texcoord(buf, 0)[0]; u != 0 {
		t.Errorf("seam start U: got %f, want 0", u)
	}
	if u := texcoord(buf, sectors)[0]; u != 1 {
		t.Errorf("seam end U: got %f, want 1", u)
	}
}

func TestCylinderCapsSeparateFromWall(t *testing.T) {
	const sectors = 6
	buf, err := Cylinder(2, 4, sectors)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	// Wall normals are radial (no Y component); cap normals are ±Y only.
	wall := 2 * (sectors + 1)
	for v := 0; v < wall; v++ {
		if n := normal(buf, v); n[1] != 0 {
			t.Errorf("wall vertex %d normal %v should be radial", v, n)
		}
	}
	for v := wall; v < buf.VertexCount(); v++ {
		n := normal(buf, v)
		if n[0] != 0 || n[2] != 0 || abs(n[1]) != 1 {
			t.Errorf("cap vertex %d normal %v should be ±Y", v, n)
		}
	}
}

func TestCylinderHeightPlacement(t *testing.T) {
	buf, err := Cylinder(1, 5, 8)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	// Centered on the origin: every vertex sits at y = ±2.5.
	for v := 0; v < buf.VertexCount(); v++ {
		if y := position(buf, v)[1]; abs(y) != 2.5 {
			t.Fatalf("vertex %d height: got %f, want ±2.5", v, y)
		}
	}
}
