package gpu

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vantage3d/vantage/shaders"
)

// LineVertex matches the VertexInput of lines.wgsl.
type LineVertex struct {
	Pos   [3]float32
	Color [3]float32
}

const axisLength = 5.0

// Axis colors, negative arms dimmed.
var (
	colXPos = [3]float32{1.0, 0.2, 0.2}
	colYPos = [3]float32{0.2, 1.0, 0.2}
	colZPos = [3]float32{0.2, 0.4, 1.0}
	colXNeg = [3]float32{0.3, 0.1, 0.1}
	colYNeg = [3]float32{0.1, 0.3, 0.1}
	colZNeg = [3]float32{0.1, 0.15, 0.3}
)

// Target marker geometry.
const (
	markerArm       = 0.3
	markerZEpsilon  = 0.001
	maxMarkerVerts  = 14
	markerBufferLen = maxMarkerVerts * uint64(unsafe.Sizeof(LineVertex{}))
)

var (
	colTarget  = [3]float32{1.0, 1.0, 1.0}
	colProj    = [3]float32{1.0, 1.0, 0.2}
	colConnect = [3]float32{0.5, 0.5, 0.5}
)

// LinePass draws the world axes and the camera-target debug markers
// with one line-list pipeline. Axes are static; markers are rewritten
// each frame the target moves.
type LinePass struct {
	Pipeline *wgpu.RenderPipeline

	AxesBuffer *wgpu.Buffer
	AxesCount  uint32

	MarkerBuffer *wgpu.Buffer
	MarkerCount  uint32

	queue *wgpu.Queue
}

func NewLinePass(device *wgpu.Device, format wgpu.TextureFormat, cameraBGL *wgpu.BindGroupLayout) (*LinePass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "LinesShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.LinesWGSL},
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
		Label:  "LinesPipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(LineVertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
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
			Topology:  wgpu.PrimitiveTopologyLineList,
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

	queue := device.GetQueue()

	axes := buildAxesVertices()
	axesSize := uint64(len(axes)) * uint64(unsafe.Sizeof(LineVertex{}))
	axesBuf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "AxesVertexBuffer",
		Size:  axesSize,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	queue.WriteBuffer(axesBuf, 0, unsafe.Slice((*byte)(unsafe.Pointer(&axes[0])), axesSize))

	markerBuf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "MarkerVertexBuffer",
		Size:  markerBufferLen,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		axesBuf.Release()
		return nil, err
	}

	return &LinePass{
		Pipeline:     pipeline,
		AxesBuffer:   axesBuf,
		AxesCount:    uint32(len(axes)),
		MarkerBuffer: markerBuf,
		queue:        queue,
	}, nil
}

func buildAxesVertices() []LineVertex {
	origin := [3]float32{0, 0, 0}
	return []LineVertex{
		{Pos: origin, Color: colXPos},
		{Pos: [3]float32{axisLength, 0, 0}, Color: colXPos},
		{Pos: origin, Color: colXNeg},
		{Pos: [3]float32{-axisLength, 0, 0}, Color: colXNeg},

		{Pos: origin, Color: colYPos},
		{Pos: [3]float32{0, axisLength, 0}, Color: colYPos},
		{Pos: origin, Color: colYNeg},
		{Pos: [3]float32{0, -axisLength, 0}, Color: colYNeg},

		{Pos: origin, Color: colZPos},
		{Pos: [3]float32{0, 0, axisLength}, Color: colZPos},
		{Pos: origin, Color: colZNeg},
		{Pos: [3]float32{0, 0, -axisLength}, Color: colZNeg},
	}
}

// BuildMarkerVertices emits the target cross, its ground-plane
// projection cross, and a connecting line when the target sits
// meaningfully off the plane.
func BuildMarkerVertices(target mgl32.Vec3) []LineVertex {
	proj := mgl32.Vec3{target.X(), target.Y(), 0}

	verts := make([]LineVertex, 0, maxMarkerVerts)
	verts = appendCross(verts, target, colTarget)
	verts = appendCross(verts, proj, colProj)

	if target.Z() > markerZEpsilon || target.Z() < -markerZEpsilon {
		verts = append(verts,
			LineVertex{Pos: vec3Array(target), Color: colConnect},
			LineVertex{Pos: vec3Array(proj), Color: colConnect},
		)
	}
	return verts
}

func appendCross(verts []LineVertex, center mgl32.Vec3, color [3]float32) []LineVertex {
	x, y, z := center.X(), center.Y(), center.Z()
	return append(verts,
		LineVertex{Pos: [3]float32{x - markerArm, y, z}, Color: color},
		LineVertex{Pos: [3]float32{x + markerArm, y, z}, Color: color},
		LineVertex{Pos: [3]float32{x, y - markerArm, z}, Color: color},
		LineVertex{Pos: [3]float32{x, y + markerArm, z}, Color: color},
		LineVertex{Pos: [3]float32{x, y, z - markerArm}, Color: color},
		LineVertex{Pos: [3]float32{x, y, z + markerArm}, Color: color},
	)
}

func vec3Array(v mgl32.Vec3) [3]float32 {
	return [3]float32{v.X(), v.Y(), v.Z()}
}

// UpdateMarkers rewrites the marker vertex buffer for the given target.
func (p *LinePass) UpdateMarkers(target mgl32.Vec3) {
	verts := BuildMarkerVertices(target)
	p.MarkerCount = uint32(len(verts))
	if len(verts) == 0 {
		return
	}
	size := uint64(len(verts)) * uint64(unsafe.Sizeof(LineVertex{}))
	p.queue.WriteBuffer(p.MarkerBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&verts[0])), size))
}

func (p *LinePass) Draw(pass *wgpu.RenderPassEncoder, cameraBG *wgpu.BindGroup) {
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, cameraBG, nil)

	pass.SetVertexBuffer(0, p.AxesBuffer, 0, wgpu.WholeSize)
	pass.Draw(p.AxesCount, 1, 0, 0)

	if p.MarkerCount > 0 {
		pass.SetVertexBuffer(0, p.MarkerBuffer, 0, wgpu.WholeSize)
		pass.Draw(p.MarkerCount, 1, 0, 0)
	}
}

func (p *LinePass) Release() {
	if p.AxesBuffer != nil {
		p.AxesBuffer.Release()
	}
	if p.MarkerBuffer != nil {
		p.MarkerBuffer.Release()
	}
}
