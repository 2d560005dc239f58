// Package app implements the interactive viewer loop and its controls.
package app

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/TypeDummying/Fork/internal/app/shaders"
	"github.com/TypeDummying/Fork/internal/config"
	"github.com/TypeDummying/Fork/internal/engine/camera"
	"github.com/TypeDummying/Fork/internal/engine/debug"
	"github.com/TypeDummying/Fork/internal/engine/input"
	"github.com/TypeDummying/Fork/internal/engine/lighting"
	"github.com/TypeDummying/Fork/internal/engine/picking"
	"github.com/TypeDummying/Fork/internal/engine/renderer"
	"github.com/TypeDummying/Fork/internal/engine/shader"
	"github.com/TypeDummying/Fork/internal/engine/window"
	"github.com/TypeDummying/Fork/internal/logger"
	"github.com/TypeDummying/Fork/internal/scene"
	"github.com/TypeDummying/Fork/pkg/math"
)

// App is the main application instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	shader   *shader.Shader
	scene    *scene.Scene
	camera   *camera.OrbitCamera
	lights   *lighting.PointLightBuffer

	lineShader   *shader.Shader
	grid         renderer.LineMesh
	selectionBox renderer.LineMesh
	capture      *debug.ScreenshotCapture

	width  int
	height int

	selected       *scene.PrimitiveNode
	orbiting       bool
	mouseX         int
	mouseY         int
	lastFPS        int
	wantScreenshot bool
}

// New creates the application: window, GL state, shader, scene, camera.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing application",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		cfg:    cfg,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	// Create window (this also creates the OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since the OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.shader, err = shader.New(shaders.PhongVertexShader, shaders.PhongFragmentShader)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	a.lineShader, err = shader.New(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		a.shader.Destroy()
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to compile line shader: %w", err)
	}

	a.grid, err = a.renderer.UploadLines(debug.GenerateGroundGrid(10, 1))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to upload grid: %w", err)
	}

	a.input = input.New()
	a.scene = scene.New(a.renderer)
	a.camera = camera.NewOrbitCamera()

	a.lights = lighting.NewPointLightBuffer()
	a.lights.SetLights(lighting.DefaultRig(a.camera.Distance))

	a.capture = debug.NewScreenshotCapture("screenshots", "fork")

	logger.Info("application initialized")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			// Quit event received
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		// 2. Update scene state
		a.scene.Update(dt)

		// 3. Render
		a.render()

		if a.wantScreenshot {
			a.wantScreenshot = false
			a.screenshot()
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.lastFPS = frameCount
			a.updateTitle()
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("nodes", a.scene.Len()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up application resources.
func (a *App) Close() {
	logger.Info("closing application")

	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.renderer != nil {
		a.renderer.ReleaseLines(&a.grid)
		a.renderer.ReleaseLines(&a.selectionBox)
	}
	if a.lineShader != nil {
		a.lineShader.Destroy()
	}
	if a.shader != nil {
		a.shader.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		a.width = e.Width
		a.height = e.Height
		a.renderer.Resize(e.Width, e.Height)

	case input.EventKeyDown:
		a.handleKey(e.Key)

	case input.EventMouseDown:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			a.pick(e.MouseX, e.MouseY)
		case sdl.BUTTON_RIGHT:
			a.orbiting = true
		}

	case input.EventMouseUp:
		if e.Button == sdl.BUTTON_RIGHT {
			a.orbiting = false
		}

	case input.EventMouseMove:
		a.mouseX = e.MouseX
		a.mouseY = e.MouseY
		if a.orbiting {
			a.camera.HandleDrag(float32(e.RelX), float32(e.RelY))
		}

	case input.EventMouseWheel:
		a.camera.HandleZoom(float32(e.WheelY))
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false

	case sdl.SCANCODE_1:
		a.spawn(scene.KindBox)
	case sdl.SCANCODE_2:
		a.spawn(scene.KindSphere)
	case sdl.SCANCODE_3:
		a.spawn(scene.KindCylinder)
	case sdl.SCANCODE_4:
		a.spawn(scene.KindCone)
	case sdl.SCANCODE_5:
		a.spawn(scene.KindTorus)

	case sdl.SCANCODE_D:
		a.duplicateSelected()
	case sdl.SCANCODE_DELETE, sdl.SCANCODE_BACKSPACE:
		a.removeSelected()
	case sdl.SCANCODE_F:
		a.frameView()
	case sdl.SCANCODE_F12:
		a.wantScreenshot = true

	// Arrow keys pan the orbit center
	case sdl.SCANCODE_UP:
		a.camera.HandleMovement(1, 0, 0)
	case sdl.SCANCODE_DOWN:
		a.camera.HandleMovement(-1, 0, 0)
	case sdl.SCANCODE_LEFT:
		a.camera.HandleMovement(0, -1, 0)
	case sdl.SCANCODE_RIGHT:
		a.camera.HandleMovement(0, 1, 0)
	}
}

// spawn adds a primitive of the given kind, dropping it on the ground
// plane under the cursor when the cursor ray hits it.
func (a *App) spawn(kind scene.Kind) {
	node, err := a.addPrimitive(kind)
	if err != nil {
		logger.Warn("failed to add primitive",
			zap.String("kind", kind.String()),
			zap.Error(err),
		)
		return
	}

	if x, z, ok := a.cursorRay().IntersectPlaneY(0); ok {
		node.Transform.Position = [3]float32{x, 0, z}
	}

	a.setSelected(node)
}

func (a *App) addPrimitive(kind scene.Kind) (*scene.PrimitiveNode, error) {
	sc := a.cfg.Scene
	switch kind {
	case scene.KindBox:
		return a.scene.AddBox(1)
	case scene.KindSphere:
		return a.scene.AddSphere(1, sc.SphereRings, sc.SphereSectors)
	case scene.KindCylinder:
		return a.scene.AddCylinder(1, 2, sc.CylinderSectors)
	case scene.KindCone:
		return a.scene.AddCone(1, 2, sc.ConeSectors)
	case scene.KindTorus:
		return a.scene.AddTorus(1, 0.3, sc.TorusMajorSegments, sc.TorusMinorSegments)
	}
	return nil, fmt.Errorf("unhandled primitive kind %d", kind)
}

func (a *App) pick(x, y int) {
	ray := a.rayAt(x, y)
	node := a.scene.Pick(ray)
	a.setSelected(node)
	if node != nil {
		logger.Debug("node selected",
			zap.String("name", node.Name),
			zap.Uint64("id", node.ID),
		)
	}
}

func (a *App) duplicateSelected() {
	if a.selected == nil {
		return
	}
	copies, err := a.scene.Duplicate(a.selected, 1, a.cfg.Scene.DuplicateOffset)
	if err != nil {
		logger.Warn("failed to duplicate node",
			zap.String("name", a.selected.Name),
			zap.Error(err),
		)
	}
	if len(copies) > 0 {
		a.setSelected(copies[len(copies)-1])
	}
}

func (a *App) removeSelected() {
	if a.selected == nil {
		return
	}
	a.scene.Remove(a.selected)
	a.setSelected(nil)
}

// frameView fits the camera to the selection, or to everything when
// nothing is selected.
func (a *App) frameView() {
	if a.selected != nil {
		min, max := a.selected.WorldBounds()
		a.camera.FitToBounds(min, max)
		return
	}

	nodes := a.scene.Nodes()
	if len(nodes) == 0 {
		return
	}
	min, max := nodes[0].WorldBounds()
	for _, n := range nodes[1:] {
		nmin, nmax := n.WorldBounds()
		for i := 0; i < 3; i++ {
			if nmin[i] < min[i] {
				min[i] = nmin[i]
			}
			if nmax[i] > max[i] {
				max[i] = nmax[i]
			}
		}
	}
	a.camera.FitToBounds(min, max)
}

func (a *App) setSelected(node *scene.PrimitiveNode) {
	a.selected = node
	a.updateTitle()
}

func (a *App) updateTitle() {
	title := a.cfg.Window.Title
	if a.selected != nil {
		title += " - " + a.selected.Name
	}
	if a.cfg.Window.ShowFPS && a.lastFPS > 0 {
		title += fmt.Sprintf(" (%d fps)", a.lastFPS)
	}
	a.window.SetTitle(title)
}

// rayAt builds a world-space ray through the given screen pixel.
func (a *App) rayAt(x, y int) picking.Ray {
	invVP := a.projection().Mul(a.camera.ViewMatrix()).Inverse()
	return picking.ScreenToRay(float32(x), float32(y), float32(a.width), float32(a.height), invVP)
}

func (a *App) cursorRay() picking.Ray {
	return a.rayAt(a.mouseX, a.mouseY)
}

func (a *App) projection() math.Mat4 {
	fov := a.cfg.Camera.FOV * (math32.Pi / 180.0)
	aspect := float32(a.width) / float32(a.height)
	return math.Perspective(fov, aspect, a.cfg.Camera.Near, a.cfg.Camera.Far)
}

func (a *App) render() {
	a.renderer.Begin()

	view := a.camera.ViewMatrix()
	proj := a.projection()
	eye := a.camera.Position()

	a.shader.Use()
	a.shader.SetMat4("view", view)
	a.shader.SetMat4("projection", proj)
	a.shader.SetVec3("viewPos", [3]float32{eye.X, eye.Y, eye.Z})

	a.shader.SetInt("lightCount", int32(a.lights.Count))
	a.shader.SetVec3Array("lightPositions", a.lights.GetPositions(), lighting.MaxPointLights)
	a.shader.SetVec3Array("lightColors", a.lights.GetColors(), lighting.MaxPointLights)
	a.shader.SetFloatArray("lightRanges", a.lights.GetRanges(), lighting.MaxPointLights)
	a.shader.SetFloatArray("lightIntensities", a.lights.GetIntensities(), lighting.MaxPointLights)

	a.scene.Render(a.shader)

	// Overlay pass: reference grid + selection box
	a.lineShader.Use()
	a.lineShader.SetMat4("view", view)
	a.lineShader.SetMat4("projection", proj)
	a.renderer.DrawLines(a.grid)
	a.drawSelectionBox()

	a.renderer.End()
}

// drawSelectionBox regenerates the selected node's wireframe box every
// frame, since its transform can change between frames.
func (a *App) drawSelectionBox() {
	if a.selected == nil {
		return
	}

	min, max := a.selected.WorldBounds()
	verts := debug.GenerateBBoxWireframe(min, max, debug.DefaultBBoxPadding, debug.SelectionColor)

	if a.selectionBox.Valid() {
		a.renderer.UpdateLines(&a.selectionBox, verts)
	} else {
		box, err := a.renderer.UploadLines(verts)
		if err != nil {
			return
		}
		a.selectionBox = box
	}
	a.renderer.DrawLines(a.selectionBox)
}

func (a *App) screenshot() {
	pixels := a.renderer.ReadPixels(a.width, a.height)
	path, err := a.capture.CaptureFromPixels(pixels, a.width, a.height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
