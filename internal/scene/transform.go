package scene

import (
	"github.com/chewxy/math32"

	"github.com/TypeDummying/Fork/pkg/math"
)

// Transform places a node in world space. Rotation is Euler angles in
// degrees around each axis.
type Transform struct {
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
}

// NewTransform returns an identity transform with unit scale.
func NewTransform() Transform {
	return Transform{Scale: [3]float32{1, 1, 1}}
}

// Matrix returns the model matrix Translate * RotateX * RotateY *
// RotateZ * Scale. The order is fixed; every rendered pose depends on it.
func (t *Transform) Matrix() math.Mat4 {
	result := math.Translate(t.Position[0], t.Position[1], t.Position[2])

	rotX := t.Rotation[0] * (math32.Pi / 180)
	rotY := t.Rotation[1] * (math32.Pi / 180)
	rotZ := t.Rotation[2] * (math32.Pi / 180)

	result = result.Mul(math.RotateX(rotX))
	result = result.Mul(math.RotateY(rotY))
	result = result.Mul(math.RotateZ(rotZ))

	return result.Mul(math.Scale(t.Scale[0], t.Scale[1], t.Scale[2]))
}
