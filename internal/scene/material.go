package scene

import "math/rand"

// Material holds Phong shading coefficients. A material may be assigned
// to any number of nodes; a change made through one holder is visible to
// all of them.
type Material struct {
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32
	Shininess float32
}

// NewMaterial returns a material with randomized ambient and diffuse
// colors so freshly added primitives are easy to tell apart, a neutral
// specular and a moderate shininess.
func NewMaterial() *Material {
	return &Material{
		Ambient:   randomColor(),
		Diffuse:   randomColor(),
		Specular:  [3]float32{0.5, 0.5, 0.5},
		Shininess: 32,
	}
}

func randomColor() [3]float32 {
	return [3]float32{rand.Float32(), rand.Float32(), rand.Float32()}
}
