package gpu

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/vantage3d/vantage/core"
)

// Uniform block sizes are part of the shader contract. WGSL structs and
// these Go structs must agree byte for byte.
const (
	CameraUniformSize = 64
	GridUniformSize   = 160
)

// CameraUniform matches the CameraUniform block in cube.wgsl and
// lines.wgsl: a single column-major view-projection matrix.
type CameraUniform struct {
	ViewProj [16]float32
}

// GridUniform matches the GridUniform block in grid.wgsl. The vec3
// eye position is padded to 16 bytes per WGSL layout rules.
type GridUniform struct {
	ViewProj    [16]float32
	InvViewProj [16]float32
	EyePos      [3]float32
	_pad0       float32
	FadeNear    float32
	FadeFar     float32
	LodScale    float32
	LodFade     float32
}

// Compile-time layout checks in both directions.
var (
	_ [CameraUniformSize - unsafe.Sizeof(CameraUniform{})]byte
	_ [unsafe.Sizeof(CameraUniform{}) - CameraUniformSize]byte
	_ [GridUniformSize - unsafe.Sizeof(GridUniform{})]byte
	_ [unsafe.Sizeof(GridUniform{}) - GridUniformSize]byte
)

// NewCameraUniform packs a camera snapshot for upload.
func NewCameraUniform(snap core.CameraSnapshot) CameraUniform {
	return CameraUniform{ViewProj: [16]float32(snap.ViewProj)}
}

// NewGridUniform packs a camera snapshot and derived grid LOD state.
func NewGridUniform(snap core.CameraSnapshot, lod core.GridLOD) GridUniform {
	return GridUniform{
		ViewProj:    [16]float32(snap.ViewProj),
		InvViewProj: [16]float32(snap.InvViewProj),
		EyePos:      [3]float32{snap.Eye.X(), snap.Eye.Y(), snap.Eye.Z()},
		FadeNear:    lod.FadeNear,
		FadeFar:     lod.FadeFar,
		LodScale:    lod.Scale,
		LodFade:     lod.Fade,
	}
}

// Bytes serializes the uniform in the little-endian layout the GPU reads.
func (u CameraUniform) Bytes() []byte {
	buf := make([]byte, CameraUniformSize)
	putMat(buf, 0, u.ViewProj)
	return buf
}

// Bytes serializes the uniform in the little-endian layout the GPU reads.
func (u GridUniform) Bytes() []byte {
	buf := make([]byte, GridUniformSize)
	putMat(buf, 0, u.ViewProj)
	putMat(buf, 64, u.InvViewProj)
	putF32(buf, 128, u.EyePos[0])
	putF32(buf, 132, u.EyePos[1])
	putF32(buf, 136, u.EyePos[2])
	putF32(buf, 140, 0)
	putF32(buf, 144, u.FadeNear)
	putF32(buf, 148, u.FadeFar)
	putF32(buf, 152, u.LodScale)
	putF32(buf, 156, u.LodFade)
	return buf
}

func putMat(buf []byte, offset int, mat [16]float32) {
	for i, v := range mat {
		binary.LittleEndian.PutUint32(buf[offset+i*4:], math.Float32bits(v))
	}
}

func putF32(buf []byte, offset int, v float32) {
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(v))
}
