package camera

import (
	gomath "math"
	"testing"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestPositionSpherical(t *testing.T) {
	tests := []struct {
		name      string
		rotationX float32
		rotationY float32
		want      [3]float32
	}{
		{"front", 0, 0, [3]float32{0, 0, 5}},
		{"right", 0, gomath.Pi / 2, [3]float32{5, 0, 0}},
		{"above", gomath.Pi / 2, 0, [3]float32{0, 5, 0}},
		{"behind", 0, gomath.Pi, [3]float32{0, 0, -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.Distance = 5
			c.RotationX = tt.rotationX
			c.RotationY = tt.rotationY

			pos := c.Position()
			got := [3]float32{pos.X, pos.Y, pos.Z}
			for i := 0; i < 3; i++ {
				if abs(got[i]-tt.want[i]) > 0.001 {
					t.Errorf("Position()[%d] = %f, want %f", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPositionFollowsCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 5
	c.RotationX = 0
	c.RotationY = 0
	c.SetCenter(10, 20, 30)

	pos := c.Position()
	if abs(pos.X-10) > 0.001 || abs(pos.Y-20) > 0.001 || abs(pos.Z-35) > 0.001 {
		t.Errorf("Position() = (%f, %f, %f), want (10, 20, 35)", pos.X, pos.Y, pos.Z)
	}
}

func TestViewMatrixCentersTarget(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 6
	c.RotationX = 0.4
	c.RotationY = 1.2
	c.SetCenter(3, 1, -2)

	view := c.ViewMatrix()
	got := view.TransformPoint([3]float32{3, 1, -2})

	// The orbit center lands on the view axis, Distance units ahead.
	if abs(got[0]) > 0.001 || abs(got[1]) > 0.001 || abs(got[2]+6) > 0.001 {
		t.Errorf("view transforms center to (%f, %f, %f), want (0, 0, -6)", got[0], got[1], got[2])
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("RotationX = %f after dragging down, want clamped to %f", c.RotationX, c.MaxPitch)
	}

	c.HandleDrag(0, -20000)
	if c.RotationX != c.MinPitch {
		t.Errorf("RotationX = %f after dragging up, want clamped to %f", c.RotationX, c.MinPitch)
	}
}

func TestHandleDragYawUnbounded(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationY = 0

	c.HandleDrag(1000, 0)
	if c.RotationY >= 0 {
		t.Errorf("RotationY = %f after dragging right, want negative", c.RotationY)
	}
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera()

	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %f after zooming in, want clamped to %f", c.Distance, c.MinDistance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %f after zooming out, want clamped to %f", c.Distance, c.MaxDistance)
	}
}

func TestHandleMovementPansCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 10
	c.RotationY = 0

	c.HandleMovement(1, 0, 0)
	if c.CenterZ >= 0 {
		t.Errorf("CenterZ = %f after moving forward, want negative", c.CenterZ)
	}
	if c.CenterX != 0 {
		t.Errorf("CenterX = %f after moving forward, want 0", c.CenterX)
	}

	c.HandleMovement(0, 0, 1)
	if c.CenterY <= 0 {
		t.Errorf("CenterY = %f after moving up, want positive", c.CenterY)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds([3]float32{-4, -1, -4}, [3]float32{4, 1, 4})

	if c.CenterX != 0 || c.CenterY != 0 || c.CenterZ != 0 {
		t.Errorf("center = (%f, %f, %f), want origin", c.CenterX, c.CenterY, c.CenterZ)
	}
	if abs(c.Distance-12) > 0.001 {
		t.Errorf("Distance = %f, want 12 (1.5x the largest extent)", c.Distance)
	}
}

func TestFitToBoundsMinimumDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds([3]float32{-0.1, -0.1, -0.1}, [3]float32{0.1, 0.1, 0.1})

	if c.Distance != 4 {
		t.Errorf("Distance = %f for a tiny box, want the floor of 4", c.Distance)
	}
}
