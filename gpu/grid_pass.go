package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/vantage3d/vantage/shaders"
)

// GridPass draws the adaptive ground-plane grid. It is the transparent
// layer of the frame: depth tested against the opaque passes but never
// writing depth, blended over whatever is behind it.
type GridPass struct {
	Pipeline      *wgpu.RenderPipeline
	UniformBuffer *wgpu.Buffer
	BindGroup     *wgpu.BindGroup
}

func NewGridPass(device *wgpu.Device, format wgpu.TextureFormat) (*GridPass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "GridShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.GridWGSL},
	})
	if err != nil {
		return nil, err
	}

	bgl, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "GridBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: GridUniformSize,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	})
	if err != nil {
		return nil, err
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "GridPipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
						Alpha: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		// The fullscreen triangle sits at the far plane; LessEqual lets
		// it pass where nothing opaque was drawn, without writing depth.
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: false,
			DepthCompare:      wgpu.CompareFunctionLessEqual,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, err
	}

	uniformBuf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "GridUniformBuffer",
		Size:  GridUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}

	bindGroup, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "GridBG",
		Layout: bgl,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  uniformBuf,
				Size:    GridUniformSize,
			},
		},
	})
	if err != nil {
		uniformBuf.Release()
		return nil, err
	}

	return &GridPass{
		Pipeline:      pipeline,
		UniformBuffer: uniformBuf,
		BindGroup:     bindGroup,
	}, nil
}

// Update uploads the per-frame grid uniform block.
func (p *GridPass) Update(queue *wgpu.Queue, u GridUniform) {
	queue.WriteBuffer(p.UniformBuffer, 0, u.Bytes())
}

func (p *GridPass) Draw(pass *wgpu.RenderPassEncoder) {
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.BindGroup, nil)
	pass.Draw(3, 1, 0, 0)
}

func (p *GridPass) Release() {
	if p.UniformBuffer != nil {
		p.UniformBuffer.Release()
	}
}
