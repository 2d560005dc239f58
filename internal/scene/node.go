package scene

import (
	"github.com/TypeDummying/Fork/internal/engine/picking"
	"github.com/TypeDummying/Fork/pkg/geometry"
)

// Kind identifies which generator built a node's geometry. The set is
// closed: post-generation behavior is identical across kinds, so nodes
// need no per-kind dispatch.
type Kind int

// Primitive kinds.
const (
	KindBox Kind = iota
	KindSphere
	KindCylinder
	KindCone
	KindTorus
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "Box"
	case KindSphere:
		return "Sphere"
	case KindCylinder:
		return "Cylinder"
	case KindCone:
		return "Cone"
	case KindTorus:
		return "Torus"
	default:
		return "Unknown"
	}
}

// Node carries the identity and placement every scene entry shares. Ids
// are assigned by the owning scene, are unique for the scene's lifetime
// and are never reused.
type Node struct {
	ID        uint64
	Name      string
	Transform Transform
}

// PrimitiveNode is a scene entry that owns one generated geometry buffer
// and its GPU mesh, and shares a material with any number of peers.
type PrimitiveNode struct {
	Node
	Kind     Kind
	Geometry *geometry.Buffer
	Material *Material

	mesh Mesh
	gfx  GraphicsBackend
}

// Mesh returns the node's GPU handle.
func (n *PrimitiveNode) Mesh() Mesh {
	return n.mesh
}

// Update advances per-frame state. Primitives are static, so this is a
// hook for node behaviors that need simulation before rendering.
func (n *PrimitiveNode) Update(dt float64) {
}

// Render pushes the model matrix and material coefficients into the
// shader and draws the node's mesh. Must run on the rendering context
// thread.
func (n *PrimitiveNode) Render(ctx ShaderContext) {
	ctx.Use()
	ctx.SetMat4("model", n.Transform.Matrix())
	ctx.SetVec3("material.ambient", n.Material.Ambient)
	ctx.SetVec3("material.diffuse", n.Material.Diffuse)
	ctx.SetVec3("material.specular", n.Material.Specular)
	ctx.SetFloat("material.shininess", n.Material.Shininess)
	n.gfx.Draw(n.mesh)
}

// Destroy releases the node's GPU resources. Further Destroy calls are
// no-ops.
func (n *PrimitiveNode) Destroy() {
	if n.mesh.Valid() {
		n.gfx.Release(&n.mesh)
	}
}

// WorldBounds returns the node's axis-aligned bounds in world space by
// transforming the geometry extent's corners with the model matrix.
func (n *PrimitiveNode) WorldBounds() (min, max [3]float32) {
	localMin, localMax := n.Geometry.Bounds()
	box := picking.TransformAABB(localMin, localMax, n.Transform.Matrix())
	return box.Min, box.Max
}
