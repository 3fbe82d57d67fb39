package app

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/vantage3d/vantage/core"
	"github.com/vantage3d/vantage/gpu"
)

// App ties the window, shared camera, input mapping and renderer into
// one frame loop.
type App struct {
	Window   *glfw.Window
	Camera   *core.SharedCamera
	Input    *core.InputState
	Controls core.ControlConfig
	Renderer *gpu.Renderer
	Atlas    *core.TextAtlas
	Log      Logger

	frameCount     int
	fps            float64
	fpsTime        float64
	lastRenderTime float64
}

// New builds the GPU stack for the given window. The text overlay is
// enabled only when a font path is configured; a missing font is a
// warning, not a startup failure.
func New(window *glfw.Window, opts Options, logger Logger) (*App, error) {
	if logger == nil {
		logger = NewNopLogger()
	}

	var atlas *core.TextAtlas
	if opts.FontPath != "" {
		var err error
		atlas, err = core.NewTextAtlas(opts.FontPath, 16)
		if err != nil {
			logger.Warnf("text overlay disabled: %v", err)
			atlas = nil
		}
	}

	ctx, err := gpu.NewContext(window)
	if err != nil {
		return nil, fmt.Errorf("init gpu context: %w", err)
	}

	renderer, err := gpu.NewRenderer(ctx, atlas)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	width, height := window.GetFramebufferSize()
	aspect := float32(width) / float32(height)

	logger.Infof("renderer initialized: %dx%d, format %v", width, height, ctx.Config.Format)
	if renderer.Cube != nil {
		logger.Debugf("cube mesh uploaded: id=%s indices=%d", renderer.Cube.Mesh.ID, renderer.Cube.Mesh.IndexCount)
	}

	return &App{
		Window:   window,
		Camera:   core.NewSharedCamera(aspect),
		Input:    core.NewInputState(),
		Controls: core.DefaultControlConfig(),
		Renderer: renderer,
		Atlas:    atlas,
		Log:      logger,
	}, nil
}

// BindCallbacks wires glfw events into the input state.
func (a *App) BindCallbacks() {
	a.Window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		a.Input.CursorMoved(float32(x), float32(y))
	})

	a.Window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		pressed := action == glfw.Press
		switch button {
		case glfw.MouseButtonLeft:
			a.Input.ButtonChanged(core.MouseButtonLeft, pressed)
		case glfw.MouseButtonMiddle:
			a.Input.ButtonChanged(core.MouseButtonMiddle, pressed)
		case glfw.MouseButtonRight:
			a.Input.ButtonChanged(core.MouseButtonRight, pressed)
		}
	})

	a.Window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		a.Input.ScrollBy(float32(yoff))
	})

	a.Window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch key {
		case glfw.KeyLeftShift, glfw.KeyRightShift:
			a.Input.ModifierChanged(core.ModifierShift, action != glfw.Release)
		case glfw.KeyEscape:
			if action == glfw.Press {
				w.SetShouldClose(true)
			}
		}
	})

	a.Window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.handleResize(width, height)
	})
}

// handleResize updates the surface and camera aspect. Zero-dimension
// events from minimized windows are dropped before touching any state.
func (a *App) handleResize(width, height int) {
	if width == 0 || height == 0 {
		return
	}

	if a.Renderer != nil {
		if err := a.Renderer.Resize(uint32(width), uint32(height)); err != nil {
			a.Log.Errorf("resize to %dx%d failed: %v", width, height, err)
			return
		}
	}

	a.Camera.Update(func(c *core.Camera) {
		c.SetAspect(float32(width) / float32(height))
	})
	a.Log.Debugf("resized to %dx%d", width, height)
}

// Frame applies the frame's input to the camera, uploads uniforms and
// overlay text, and renders.
func (a *App) Frame() error {
	a.Camera.Update(func(c *core.Camera) {
		core.ApplyInput(a.Input, c, a.Controls)
	})
	a.Input.EndFrame()

	snap := a.Camera.Snapshot()
	lod := core.DeriveGridLOD(snap.Radius)

	a.Renderer.UpdateCamera(snap, lod)
	if a.Atlas != nil {
		width, height := a.Window.GetFramebufferSize()
		verts := a.Atlas.BuildVertices(a.overlayItems(snap, lod), width, height)
		a.Renderer.UpdateOverlay(verts)
	}

	if err := a.Renderer.Render(); err != nil {
		return err
	}

	a.updateFPS()
	return nil
}

// overlayItems formats the camera readout rows.
func (a *App) overlayItems(snap core.CameraSnapshot, lod core.GridLOD) []core.TextItem {
	white := [4]float32{0.9, 0.9, 0.9, 1.0}
	line := a.Atlas.LineHeight(1.0) + 2

	rows := []string{
		fmt.Sprintf("FPS %.0f", a.fps),
		fmt.Sprintf("radius %.2f  az %.2f  el %.2f", snap.Radius, snap.Azimuth, snap.Elevation),
		fmt.Sprintf("target (%.2f, %.2f, %.2f)", snap.Target.X(), snap.Target.Y(), snap.Target.Z()),
		fmt.Sprintf("grid level %d  spacing %g", lod.Level, lod.Scale),
	}

	items := make([]core.TextItem, 0, len(rows))
	for i, row := range rows {
		items = append(items, core.TextItem{
			Text:     row,
			Position: [2]float32{10, 10 + float32(i)*line},
			Scale:    1.0,
			Color:    white,
		})
	}
	return items
}

func (a *App) updateFPS() {
	now := glfw.GetTime()
	if a.lastRenderTime > 0 {
		a.frameCount++
		a.fpsTime += now - a.lastRenderTime
		if a.fpsTime >= 1.0 {
			a.fps = float64(a.frameCount) / a.fpsTime
			a.frameCount = 0
			a.fpsTime = 0
		}
	}
	a.lastRenderTime = now
}

func (a *App) Release() {
	if a.Renderer != nil {
		a.Renderer.Release()
		a.Renderer.Ctx.Release()
	}
}
