// Package debug provides overlay visualization utilities.
package debug

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges x 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding for selection boxes.
const DefaultBBoxPadding = 0.05

// SelectionColor is the line color used for the selected node's box.
var SelectionColor = [3]float32{1.0, 0.65, 0.1}

// GenerateBBoxWireframe creates line vertices for a wireframe bounding box,
// expanded by padding on all sides. Returns 24 vertices (12 edges x 2
// endpoints) in [x, y, z, r, g, b] interleaved format.
func GenerateBBoxWireframe(min, max [3]float32, padding float32, color [3]float32) []float32 {
	minX := min[0] - padding
	minY := min[1] - padding
	minZ := min[2] - padding
	maxX := max[0] + padding
	maxY := max[1] + padding
	maxZ := max[2] + padding

	edges := [][2][3]float32{
		// Bottom face (4 edges)
		{{minX, minY, minZ}, {maxX, minY, minZ}},
		{{maxX, minY, minZ}, {maxX, minY, maxZ}},
		{{maxX, minY, maxZ}, {minX, minY, maxZ}},
		{{minX, minY, maxZ}, {minX, minY, minZ}},
		// Top face (4 edges)
		{{minX, maxY, minZ}, {maxX, maxY, minZ}},
		{{maxX, maxY, minZ}, {maxX, maxY, maxZ}},
		{{maxX, maxY, maxZ}, {minX, maxY, maxZ}},
		{{minX, maxY, maxZ}, {minX, maxY, minZ}},
		// Vertical edges (4 edges)
		{{minX, minY, minZ}, {minX, maxY, minZ}},
		{{maxX, minY, minZ}, {maxX, maxY, minZ}},
		{{maxX, minY, maxZ}, {maxX, maxY, maxZ}},
		{{minX, minY, maxZ}, {minX, maxY, maxZ}},
	}

	verts := make([]float32, 0, BBoxWireframeVertexCount*6)
	for _, edge := range edges {
		for _, p := range edge {
			verts = append(verts, p[0], p[1], p[2], color[0], color[1], color[2])
		}
	}
	return verts
}
