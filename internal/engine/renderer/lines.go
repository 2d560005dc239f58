package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// lineStride is floats per line vertex: position3 + color3.
const lineStride = 6

// LineMesh is a GPU handle for a line list (overlay grid, selection box).
type LineMesh struct {
	VAO         uint32
	VBO         uint32
	VertexCount int32
}

// Valid reports whether the mesh holds GPU resources.
func (m LineMesh) Valid() bool {
	return m.VAO != 0
}

// UploadLines copies [x y z r g b] interleaved line vertices into GPU
// memory. Use UpdateLines for buffers that change every frame.
func (r *Renderer) UploadLines(verts []float32) (LineMesh, error) {
	if len(verts) == 0 || len(verts)%lineStride != 0 {
		return LineMesh{}, fmt.Errorf("line buffer length %d is not a multiple of %d", len(verts), lineStride)
	}

	var mesh LineMesh
	gl.GenVertexArrays(1, &mesh.VAO)
	gl.BindVertexArray(mesh.VAO)

	gl.GenBuffers(1, &mesh.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.DYNAMIC_DRAW)

	stride := int32(lineStride * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Color
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	mesh.VertexCount = int32(len(verts) / lineStride)
	gl.BindVertexArray(0)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		r.ReleaseLines(&mesh)
		return LineMesh{}, fmt.Errorf("line upload failed: GL error 0x%04x", glErr)
	}

	return mesh, nil
}

// UpdateLines replaces the mesh's vertex data in place.
func (r *Renderer) UpdateLines(mesh *LineMesh, verts []float32) {
	if !mesh.Valid() || len(verts) == 0 || len(verts)%lineStride != 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	mesh.VertexCount = int32(len(verts) / lineStride)
}

// DrawLines issues a line draw for the mesh. The caller is responsible
// for binding a shader first.
func (r *Renderer) DrawLines(mesh LineMesh) {
	if !mesh.Valid() {
		return
	}
	gl.BindVertexArray(mesh.VAO)
	gl.DrawArrays(gl.LINES, 0, mesh.VertexCount)
	gl.BindVertexArray(0)
}

// ReleaseLines deletes the mesh's GL objects and zeroes the handle.
func (r *Renderer) ReleaseLines(mesh *LineMesh) {
	if mesh.VAO != 0 {
		gl.DeleteVertexArrays(1, &mesh.VAO)
	}
	if mesh.VBO != 0 {
		gl.DeleteBuffers(1, &mesh.VBO)
	}
	*mesh = LineMesh{}
}

// ReadPixels reads the current framebuffer as tightly packed RGBA bytes,
// bottom row first.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}
