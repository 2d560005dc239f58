// Package renderer provides OpenGL state management and the GPU mesh
// backend for scene nodes.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/TypeDummying/Fork/internal/logger"
	"github.com/TypeDummying/Fork/internal/scene"
	"github.com/TypeDummying/Fork/pkg/geometry"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns global OpenGL state and uploads scene geometry. It
// implements the scene's graphics backend; every method must run on the
// thread that owns the GL context.
type Renderer struct {
	config Config
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Nothing to do for now - batched draws would be flushed here
}

// Upload copies an interleaved geometry buffer into GPU memory and
// returns the mesh handle.
func (r *Renderer) Upload(buf *geometry.Buffer) (scene.Mesh, error) {
	if buf.VertexCount() == 0 || len(buf.Indices) == 0 {
		return scene.Mesh{}, fmt.Errorf("empty geometry buffer")
	}

	var mesh scene.Mesh
	gl.GenVertexArrays(1, &mesh.VAO)
	gl.BindVertexArray(mesh.VAO)

	gl.GenBuffers(1, &mesh.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf.Vertices)*4, unsafe.Pointer(&buf.Vertices[0]), gl.STATIC_DRAW)

	stride := int32(geometry.VertexStride * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &mesh.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(buf.Indices)*4, unsafe.Pointer(&buf.Indices[0]), gl.STATIC_DRAW)

	mesh.IndexCount = int32(len(buf.Indices))
	gl.BindVertexArray(0)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		r.Release(&mesh)
		return scene.Mesh{}, fmt.Errorf("buffer upload failed: GL error 0x%04x", glErr)
	}

	return mesh, nil
}

// Draw issues an indexed triangle draw for the mesh. The caller is
// responsible for binding a shader first.
func (r *Renderer) Draw(mesh scene.Mesh) {
	if !mesh.Valid() {
		return
	}
	gl.BindVertexArray(mesh.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, mesh.IndexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Release deletes the mesh's GL objects and zeroes the handle.
func (r *Renderer) Release(mesh *scene.Mesh) {
	if mesh.VAO != 0 {
		gl.DeleteVertexArrays(1, &mesh.VAO)
	}
	if mesh.VBO != 0 {
		gl.DeleteBuffers(1, &mesh.VBO)
	}
	if mesh.EBO != 0 {
		gl.DeleteBuffers(1, &mesh.EBO)
	}
	*mesh = scene.Mesh{}
}
