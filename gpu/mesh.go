package gpu

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/uuid"
)

// MeshID identifies one uploaded mesh in logs and debug output.
type MeshID string

// Mesh is an indexed triangle mesh resident on the GPU.
type Mesh struct {
	ID           MeshID
	VertexBuffer *wgpu.Buffer
	IndexBuffer  *wgpu.Buffer
	IndexCount   uint32
}

// UploadMesh creates GPU buffers for the given geometry and fills them.
// Indices are uint16; the index data must stay a multiple of 4 bytes.
func UploadMesh(device *wgpu.Device, label string, vertices [][3]float32, indices []uint16) (*Mesh, error) {
	vSize := uint64(len(vertices)) * uint64(unsafe.Sizeof([3]float32{}))
	vbuf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + "Vertices",
		Size:  vSize,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	device.GetQueue().WriteBuffer(vbuf, 0, unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), vSize))

	iSize := uint64(len(indices)) * 2
	ibuf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + "Indices",
		Size:  iSize,
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		vbuf.Release()
		return nil, err
	}
	device.GetQueue().WriteBuffer(ibuf, 0, unsafe.Slice((*byte)(unsafe.Pointer(&indices[0])), iSize))

	return &Mesh{
		ID:           MeshID(uuid.NewString()),
		VertexBuffer: vbuf,
		IndexBuffer:  ibuf,
		IndexCount:   uint32(len(indices)),
	}, nil
}

func (m *Mesh) Release() {
	if m == nil {
		return
	}
	if m.VertexBuffer != nil {
		m.VertexBuffer.Release()
	}
	if m.IndexBuffer != nil {
		m.IndexBuffer.Release()
	}
}
