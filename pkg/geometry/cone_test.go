package geometry

import "testing"

func TestConeCounts(t *testing.T) {
	const sectors = 8
	buf, err := Cone(1, 2, sectors)
	if err != nil {
		t.Fatalf("Cone failed: %v", err)
	}

	// Base ring of sectors+1, one apex per sector, cap center + sectors+1 rim.
	wantVerts := 3*sectors + 3
	if buf.VertexCount() != wantVerts {
		t.Errorf("expected %d vertices, got %d", wantVerts, buf.VertexCount())
	}
	if len(buf.Indices) != 6*sectors {
		t.Errorf("expected %d indices, got %d", 6*sectors, len(buf.Indices))
	}
}

func TestConeApexDuplication(t *testing.T) {
	const sectors = 10
	buf, err := Cone(1, 2, sectors)
	if err != nil {
		t.Fatalf("Cone failed: %v", err)
	}

	// Every apex copy sits at the tip with its own slant normal.
	apexes := 0
	var prev [3]float32
	for v := 0; v < buf.VertexCount(); v++ {
		p := position(buf, v)
		if p[0] == 0 && p[1] == 1 && p[2] == 0 {
			n := normal(buf, v)
			if apexes > 0 && n == prev {
				t.Errorf("apex copies %d share normal %v", v, n)
			}
			prev = n
			apexes++
		}
	}
	if apexes != sectors {
		t.Errorf("expected %d apex copies, got %d", sectors, apexes)
	}
}

func TestConeSlantNormals(t *testing.T) {
	const radius, height = 3.0, 4.0
	buf, err := Cone(radius, height, 16)
	if err != nil {
		t.Fatalf("Cone failed: %v", err)
	}

	// For radius 3 and height 4 the slant length is 5, so every wall
	// normal has Y component radius/slant = 0.6.
	wallVerts := 2*16 + 1
	for v := 0; v < wallVerts; v++ {
		if ny := normal(buf, v)[1]; abs(ny-0.6) > 1e-6 {
			t.Errorf("wall vertex %d normal Y: got %f, want 0.6", v, ny)
		}
	}
}
