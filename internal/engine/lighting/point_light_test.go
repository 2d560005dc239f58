package lighting

import "testing"

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name      string
		azimuth   float32
		elevation float32
		want      [3]float32
	}{
		{"horizon forward", 0, 0, [3]float32{0, 0, 1}},
		{"horizon right", 90, 0, [3]float32{1, 0, 0}},
		{"straight up", 0, 90, [3]float32{0, 1, 0}},
		{"horizon behind", 180, 0, [3]float32{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Direction(tt.azimuth, tt.elevation)
			for i := 0; i < 3; i++ {
				if abs(got[i]-tt.want[i]) > 0.0001 {
					t.Errorf("Direction(%v, %v)[%d] = %f, want %f",
						tt.azimuth, tt.elevation, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAddLightRespectsCapacity(t *testing.T) {
	buf := NewPointLightBuffer()

	for i := 0; i < MaxPointLights; i++ {
		if !buf.AddLight(PointLight{Intensity: 1}) {
			t.Fatalf("AddLight returned false at %d, below capacity", i)
		}
	}
	if buf.AddLight(PointLight{Intensity: 1}) {
		t.Error("AddLight returned true on a full buffer")
	}
	if buf.Count != MaxPointLights {
		t.Errorf("Count = %d, want %d", buf.Count, MaxPointLights)
	}
}

func TestSetLightsTruncates(t *testing.T) {
	buf := NewPointLightBuffer()
	lights := make([]PointLight, MaxPointLights+4)
	buf.SetLights(lights)

	if buf.Count != MaxPointLights {
		t.Errorf("Count = %d after oversized SetLights, want %d", buf.Count, MaxPointLights)
	}
}

func TestGetPositionsLayout(t *testing.T) {
	buf := NewPointLightBuffer()
	buf.AddLight(PointLight{Position: [3]float32{1, 2, 3}})
	buf.AddLight(PointLight{Position: [3]float32{4, 5, 6}})

	positions := buf.GetPositions()
	if len(positions) != MaxPointLights*3 {
		t.Fatalf("len(positions) = %d, want %d", len(positions), MaxPointLights*3)
	}

	want := []float32{1, 2, 3, 4, 5, 6}
	for i, v := range want {
		if positions[i] != v {
			t.Errorf("positions[%d] = %f, want %f", i, positions[i], v)
		}
	}
	// Unused slots stay zeroed
	if positions[6] != 0 || positions[7] != 0 {
		t.Error("unused slots are not zero")
	}
}

func TestDefaultRig(t *testing.T) {
	rig := DefaultRig(10)

	if len(rig) != 3 {
		t.Fatalf("len(rig) = %d, want 3", len(rig))
	}

	for i, light := range rig {
		d := light.Position[0]*light.Position[0] +
			light.Position[1]*light.Position[1] +
			light.Position[2]*light.Position[2]
		if abs(d-100) > 0.01 {
			t.Errorf("light %d squared distance = %f, want 100", i, d)
		}
		if light.Position[1] <= 0 {
			t.Errorf("light %d sits below the horizon", i)
		}
		if light.Range <= 0 {
			t.Errorf("light %d has non-positive range", i)
		}
	}

	if rig[0].Intensity <= rig[1].Intensity {
		t.Error("key light is not brighter than the fill light")
	}
}
