// Package scene owns the primitive nodes of a model document: their
// identity, placement, materials and GPU meshes. Geometry generation is
// delegated to pkg/geometry and GPU work to a GraphicsBackend, so the
// package itself stays free of graphics API calls.
package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/TypeDummying/Fork/internal/engine/picking"
	"github.com/TypeDummying/Fork/internal/logger"
	"github.com/TypeDummying/Fork/pkg/geometry"
)

// Scene errors.
var (
	ErrResourceAllocation = errors.New("graphics resource allocation failed")
)

// Scene owns every node in the document, allocates node ids and keeps
// display names unique. All methods must run on the rendering context
// thread; the scene does no locking of its own.
type Scene struct {
	gfx       GraphicsBackend
	nodes     []*PrimitiveNode
	nextID    uint64
	nameCount map[string]int
}

// New creates an empty scene backed by gfx.
func New(gfx GraphicsBackend) *Scene {
	return &Scene{
		gfx:       gfx,
		nextID:    1,
		nameCount: make(map[string]int),
	}
}

// AddBox generates a box and adds it to the scene.
func (s *Scene) AddBox(size float32) (*PrimitiveNode, error) {
	buf, err := geometry.Box(size)
	if err != nil {
		return nil, err
	}
	return s.add(KindBox, buf)
}

// AddSphere generates a UV sphere and adds it to the scene.
func (s *Scene) AddSphere(radius float32, rings, sectors int) (*PrimitiveNode, error) {
	buf, err := geometry.Sphere(radius, rings, sectors)
	if err != nil {
		return nil, err
	}
	return s.add(KindSphere, buf)
}

// AddCylinder generates a capped cylinder and adds it to the scene.
func (s *Scene) AddCylinder(radius, height float32, sectors int) (*PrimitiveNode, error) {
	buf, err := geometry.Cylinder(radius, height, sectors)
	if err != nil {
		return nil, err
	}
	return s.add(KindCylinder, buf)
}

// AddCone generates a capped cone and adds it to the scene.
func (s *Scene) AddCone(radius, height float32, sectors int) (*PrimitiveNode, error) {
	buf, err := geometry.Cone(radius, height, sectors)
	if err != nil {
		return nil, err
	}
	return s.add(KindCone, buf)
}

// AddTorus generates a torus and adds it to the scene.
func (s *Scene) AddTorus(majorRadius, minorRadius float32, majorSegments, minorSegments int) (*PrimitiveNode, error) {
	buf, err := geometry.Torus(majorRadius, minorRadius, majorSegments, minorSegments)
	if err != nil {
		return nil, err
	}
	return s.add(KindTorus, buf)
}

// add uploads the buffer and registers a node for it. The upload happens
// before any scene state changes, so a failed upload leaves the scene,
// the id counter and the name counters untouched.
func (s *Scene) add(kind Kind, buf *geometry.Buffer) (*PrimitiveNode, error) {
	mesh, err := s.gfx.Upload(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: uploading %s: %v", ErrResourceAllocation, kind, err)
	}

	node := &PrimitiveNode{
		Node: Node{
			ID:        s.allocateID(),
			Name:      s.uniqueName(kind.String()),
			Transform: NewTransform(),
		},
		Kind:     kind,
		Geometry: buf,
		Material: NewMaterial(),
		mesh:     mesh,
		gfx:      s.gfx,
	}
	s.nodes = append(s.nodes, node)

	logger.Debug("node added",
		zap.String("kind", kind.String()),
		zap.String("name", node.Name),
		zap.Uint64("id", node.ID))

	return node, nil
}

// Duplicate adds count copies of node, each stepped from the original by
// a growing multiple of offset. A count of zero or less adds nothing.
// Copies share the source's material and its immutable geometry but own
// their GPU meshes. On upload failure the copies made so far are
// returned along with the error.
func (s *Scene) Duplicate(node *PrimitiveNode, count int, offset [3]float32) ([]*PrimitiveNode, error) {
	if count <= 0 {
		return nil, nil
	}
	copies := make([]*PrimitiveNode, 0, count)
	for i := 1; i <= count; i++ {
		mesh, err := s.gfx.Upload(node.Geometry)
		if err != nil {
			return copies, fmt.Errorf("%w: duplicating %s: %v", ErrResourceAllocation, node.Name, err)
		}

		dup := &PrimitiveNode{
			Node: Node{
				ID:        s.allocateID(),
				Name:      s.uniqueName(node.Kind.String()),
				Transform: node.Transform,
			},
			Kind:     node.Kind,
			Geometry: node.Geometry,
			Material: node.Material,
			mesh:     mesh,
			gfx:      s.gfx,
		}
		dup.Transform.Position[0] += offset[0] * float32(i)
		dup.Transform.Position[1] += offset[1] * float32(i)
		dup.Transform.Position[2] += offset[2] * float32(i)

		s.nodes = append(s.nodes, dup)
		copies = append(copies, dup)
	}

	logger.Debug("node duplicated",
		zap.String("name", node.Name),
		zap.Int("copies", len(copies)))

	return copies, nil
}

// ApplyMaterial assigns one shared material to every given node.
func (s *Scene) ApplyMaterial(m *Material, nodes ...*PrimitiveNode) {
	for _, n := range nodes {
		n.Material = m
	}
}

// Remove destroys the node and forgets it. Removing a node that is not
// in the scene is a no-op.
func (s *Scene) Remove(node *PrimitiveNode) {
	for i, n := range s.nodes {
		if n == node {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			n.Destroy()
			logger.Debug("node removed", zap.String("name", n.Name), zap.Uint64("id", n.ID))
			return
		}
	}
}

// Nodes returns the live node list in insertion order. Callers must not
// modify the returned slice.
func (s *Scene) Nodes() []*PrimitiveNode {
	return s.nodes
}

// Find returns the node with the given id, or nil.
func (s *Scene) Find(id uint64) *PrimitiveNode {
	for _, n := range s.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Len returns the number of nodes in the scene.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Update steps every node. dt is the frame delta in seconds.
func (s *Scene) Update(dt float64) {
	for _, n := range s.nodes {
		n.Update(dt)
	}
}

// Render draws every node with the given shader context.
func (s *Scene) Render(ctx ShaderContext) {
	for _, n := range s.nodes {
		n.Render(ctx)
	}
}

// Pick returns the node nearest to the ray origin whose world bounds the
// ray hits, or nil if the ray misses everything.
func (s *Scene) Pick(ray picking.Ray) *PrimitiveNode {
	var best *PrimitiveNode
	var bestT float32
	for _, n := range s.nodes {
		min, max := n.WorldBounds()
		t, hit := ray.IntersectAABB(picking.AABB{Min: min, Max: max})
		if hit && (best == nil || t < bestT) {
			best = n
			bestT = t
		}
	}
	return best
}

// Destroy releases every node's GPU resources and empties the scene.
// The id counter keeps running, so a scene reused after Destroy never
// reissues old ids.
func (s *Scene) Destroy() {
	for _, n := range s.nodes {
		n.Destroy()
	}
	s.nodes = nil
}

func (s *Scene) allocateID() uint64 {
	id := s.nextID
	s.nextID++
	return id
}

// uniqueName disambiguates repeated base names with a numeric suffix:
// Box, Box.001, Box.002 and so on.
func (s *Scene) uniqueName(base string) string {
	n := s.nameCount[base]
	s.nameCount[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s.%03d", base, n)
}
