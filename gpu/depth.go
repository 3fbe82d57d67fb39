package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// DepthTarget is the shared depth attachment for the 3D passes,
// recreated whenever the surface size changes.
type DepthTarget struct {
	Texture *wgpu.Texture
	View    *wgpu.TextureView
}

const DepthFormat = wgpu.TextureFormatDepth32Float

func NewDepthTarget(device *wgpu.Device, width, height uint32) (*DepthTarget, error) {
	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "DepthTarget",
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, err
	}

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, err
	}

	return &DepthTarget{Texture: tex, View: view}, nil
}

func (d *DepthTarget) Release() {
	if d == nil {
		return
	}
	if d.View != nil {
		d.View.Release()
	}
	if d.Texture != nil {
		d.Texture.Release()
	}
}
