package scene

import (
	"github.com/TypeDummying/Fork/pkg/geometry"
	"github.com/TypeDummying/Fork/pkg/math"
)

// Mesh is a GPU-resident geometry handle. The zero value holds no
// resources.
type Mesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// Valid reports whether the mesh holds GPU resources.
func (m Mesh) Valid() bool {
	return m.VAO != 0
}

// GraphicsBackend owns GPU buffer lifecycles. Upload, Draw and Release
// must all run on the thread that owns the rendering context.
type GraphicsBackend interface {
	// Upload copies the buffer into GPU memory and returns its handle.
	Upload(buf *geometry.Buffer) (Mesh, error)
	// Draw issues an indexed triangle draw for the mesh.
	Draw(mesh Mesh)
	// Release frees the mesh's GPU resources and zeroes the handle.
	Release(mesh *Mesh)
}

// ShaderContext receives uniform state while a node renders.
type ShaderContext interface {
	Use()
	SetMat4(name string, m math.Mat4)
	SetVec3(name string, v [3]float32)
	SetFloat(name string, value float32)
}
