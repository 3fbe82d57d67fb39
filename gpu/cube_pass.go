package gpu

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/vantage3d/vantage/shaders"
)

// CubePass draws the opaque reference cube sitting on the origin. It
// runs first so later passes depth-test against it.
type CubePass struct {
	Pipeline *wgpu.RenderPipeline
	Mesh     *Mesh
}

// Unit cube corners, bottom face at Z-, top at Z+.
var cubeVertices = [][3]float32{
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
}

var cubeIndices = []uint16{
	0, 1, 2, 0, 2, 3, // bottom
	4, 5, 6, 4, 6, 7, // top
	0, 1, 5, 0, 5, 4, // front
	2, 3, 7, 2, 7, 6, // back
	1, 2, 6, 1, 6, 5, // right
	3, 0, 4, 3, 4, 7, // left
}

func NewCubePass(device *wgpu.Device, format wgpu.TextureFormat, cameraBGL *wgpu.BindGroupLayout) (*CubePass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "CubeShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.CubeWGSL},
	})
	if err != nil {
		return nil, err
	}

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		BindGroupLayouts: []*wgpu.BindGroupLayout{cameraBGL},
	})
	if err != nil {
		return nil, err
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "CubePipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof([3]float32{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
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

	mesh, err := UploadMesh(device, "Cube", cubeVertices, cubeIndices)
	if err != nil {
		return nil, err
	}

	return &CubePass{Pipeline: pipeline, Mesh: mesh}, nil
}

func (p *CubePass) Draw(pass *wgpu.RenderPassEncoder, cameraBG *wgpu.BindGroup) {
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, cameraBG, nil)
	pass.SetVertexBuffer(0, p.Mesh.VertexBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(p.Mesh.IndexBuffer, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	pass.DrawIndexed(p.Mesh.IndexCount, 1, 0, 0, 0)
}

func (p *CubePass) Release() {
	p.Mesh.Release()
}
