package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/vantage3d/vantage/core"
)

// Background clear color.
var clearColor = wgpu.Color{R: 0.02, G: 0.02, B: 0.03, A: 1.0}

// Renderer owns the per-frame composition: camera uniforms, the depth
// target, and the fixed pass order. Opaque geometry draws first, then
// line overlays, then the transparent grid, then 2D text.
type Renderer struct {
	Ctx   *Context
	Depth *DepthTarget

	cameraBuffer *wgpu.Buffer
	cameraBGL    *wgpu.BindGroupLayout
	cameraBG     *wgpu.BindGroup

	Cube  *CubePass
	Lines *LinePass
	Grid  *GridPass
	Text  *TextPass
}

// NewRenderer builds all passes against the surface format. The text
// pass is optional; a nil atlas disables the overlay.
func NewRenderer(ctx *Context, atlas *core.TextAtlas) (*Renderer, error) {
	device := ctx.Device
	format := ctx.Config.Format

	depth, err := NewDepthTarget(device, ctx.Config.Width, ctx.Config.Height)
	if err != nil {
		return nil, fmt.Errorf("create depth target: %w", err)
	}

	cameraBuffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "CameraUniformBuffer",
		Size:  CameraUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create camera buffer: %w", err)
	}

	cameraBGL, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "CameraBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: CameraUniformSize,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create camera bind group layout: %w", err)
	}

	cameraBG, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "CameraBG",
		Layout: cameraBGL,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: cameraBuffer, Size: CameraUniformSize},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create camera bind group: %w", err)
	}

	cube, err := NewCubePass(device, format, cameraBGL)
	if err != nil {
		return nil, fmt.Errorf("create cube pass: %w", err)
	}

	lines, err := NewLinePass(device, format, cameraBGL)
	if err != nil {
		return nil, fmt.Errorf("create line pass: %w", err)
	}

	grid, err := NewGridPass(device, format)
	if err != nil {
		return nil, fmt.Errorf("create grid pass: %w", err)
	}

	var text *TextPass
	if atlas != nil {
		text, err = NewTextPass(device, format, atlas)
		if err != nil {
			return nil, fmt.Errorf("create text pass: %w", err)
		}
	}

	return &Renderer{
		Ctx:          ctx,
		Depth:        depth,
		cameraBuffer: cameraBuffer,
		cameraBGL:    cameraBGL,
		cameraBG:     cameraBG,
		Cube:         cube,
		Lines:        lines,
		Grid:         grid,
		Text:         text,
	}, nil
}

// UpdateCamera uploads the frame's camera and grid uniforms and
// rebuilds the target debug markers.
func (r *Renderer) UpdateCamera(snap core.CameraSnapshot, lod core.GridLOD) {
	r.Ctx.Queue.WriteBuffer(r.cameraBuffer, 0, NewCameraUniform(snap).Bytes())
	r.Grid.Update(r.Ctx.Queue, NewGridUniform(snap, lod))
	r.Lines.UpdateMarkers(snap.Target)
}

// UpdateOverlay uploads the frame's text overlay vertices.
func (r *Renderer) UpdateOverlay(vertices []core.TextVertex) {
	if r.Text == nil {
		return
	}
	r.Text.Update(vertices)
}

// Resize reconfigures the surface and rebuilds the depth target. Zero
// dimensions (minimized window) are ignored entirely.
func (r *Renderer) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return nil
	}

	r.Ctx.SetSize(width, height)

	depth, err := NewDepthTarget(r.Ctx.Device, width, height)
	if err != nil {
		return fmt.Errorf("recreate depth target: %w", err)
	}
	r.Depth.Release()
	r.Depth = depth
	return nil
}

// acquireFrame gets the next surface texture, reconfiguring the
// swapchain once on failure before giving up.
func (r *Renderer) acquireFrame() (*wgpu.Texture, error) {
	frame, err := r.Ctx.Surface.GetCurrentTexture()
	if err == nil {
		return frame, nil
	}

	r.Ctx.Reconfigure()
	frame, err = r.Ctx.Surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("acquire surface texture: %w", err)
	}
	return frame, nil
}

// Render records and submits one frame.
func (r *Renderer) Render() error {
	frame, err := r.acquireFrame()
	if err != nil {
		return err
	}
	defer frame.Release()

	view, err := frame.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create frame view: %w", err)
	}
	defer view.Release()

	encoder, err := r.Ctx.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: clearColor,
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.Depth.View,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})

	r.Cube.Draw(pass, r.cameraBG)
	r.Lines.Draw(pass, r.cameraBG)
	r.Grid.Draw(pass)
	if r.Text != nil {
		r.Text.Draw(pass)
	}

	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}
	r.Ctx.Queue.Submit(cmd)
	r.Ctx.Surface.Present()

	return nil
}

func (r *Renderer) Release() {
	if r.Text != nil {
		r.Text.Release()
	}
	r.Grid.Release()
	r.Lines.Release()
	r.Cube.Release()
	if r.cameraBuffer != nil {
		r.cameraBuffer.Release()
	}
	r.Depth.Release()
}
