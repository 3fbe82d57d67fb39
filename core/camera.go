package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit constraints. Radius bounds permit both microscopic and
// planetary-scale framing; elevation stays strictly off the ground
// plane and the zenith so the up vector never degenerates.
const (
	RadiusMin    = 0.5
	RadiusMax    = 100_000.0
	ElevationMin = 0.01
	ElevationMax = math.Pi/2 - 0.01
)

// Defaults for a freshly created camera.
const (
	DefaultRadius    = 20.0
	DefaultAzimuth   = -math.Pi / 4
	DefaultElevation = math.Pi / 6
	DefaultFovy      = math.Pi / 4
)

// Near/far planes are derived from the orbit radius each frame so depth
// precision tracks the current framing scale instead of a fixed range.
const (
	nearScale = 0.01
	nearFloor = 0.001
	farScale  = 100.0
	farFloor  = 1000.0
)

// worldUp is the ground-plane normal. The whole viewer is Z-up
// right-handed: X right, Y forward in the plane, Z up. Azimuth is
// measured from +Y.
var worldUp = mgl32.Vec3{0, 0, 1}

// Camera is a spherical-coordinate orbit camera. The eye position is
// derived from (Target, Radius, Azimuth, Elevation); it is never stored.
type Camera struct {
	Target    mgl32.Vec3
	Radius    float32
	Azimuth   float32
	Elevation float32

	Aspect float32
	Fovy   float32
}

func NewCamera(aspect float32) *Camera {
	return &Camera{
		Target:    mgl32.Vec3{0, 0, 0},
		Radius:    DefaultRadius,
		Azimuth:   DefaultAzimuth,
		Elevation: DefaultElevation,
		Aspect:    aspect,
		Fovy:      DefaultFovy,
	}
}

// Orbit rotates the eye around the target. Azimuth is unbounded and
// wraps through trig periodicity; elevation is clamped.
func (c *Camera) Orbit(deltaAz, deltaEl float32) {
	c.Azimuth += deltaAz
	c.Elevation = mgl32.Clamp(c.Elevation+deltaEl, ElevationMin, ElevationMax)
}

// Zoom scales the orbit radius. Multiplicative so the same input step
// feels identical at every framing scale.
func (c *Camera) Zoom(factor float32) {
	c.Radius = mgl32.Clamp(c.Radius*factor, RadiusMin, RadiusMax)
}

// Pan translates the target in the current view-aligned right/up plane.
// dx and dy are world-space units.
func (c *Camera) Pan(dx, dy float32) {
	right, up := c.viewBasis()
	c.Target = c.Target.Add(right.Mul(dx)).Add(up.Mul(dy))
}

// EyePosition is the world-space eye derived from spherical coordinates.
func (c *Camera) EyePosition() mgl32.Vec3 {
	cosEl := float32(math.Cos(float64(c.Elevation)))
	sinEl := float32(math.Sin(float64(c.Elevation)))
	cosAz := float32(math.Cos(float64(c.Azimuth)))
	sinAz := float32(math.Sin(float64(c.Azimuth)))

	offset := mgl32.Vec3{
		c.Radius * cosEl * sinAz,
		c.Radius * cosEl * cosAz,
		c.Radius * sinEl,
	}
	return c.Target.Add(offset)
}

// Near returns the derived near plane distance for the current radius.
func (c *Camera) Near() float32 {
	return max32(c.Radius*nearScale, nearFloor)
}

// Far returns the derived far plane distance for the current radius.
func (c *Camera) Far() float32 {
	return max32(c.Radius*farScale, farFloor)
}

// ViewProj builds the combined view-projection matrix.
func (c *Camera) ViewProj() mgl32.Mat4 {
	view := mgl32.LookAtV(c.EyePosition(), c.Target, worldUp)
	proj := perspectiveZO(c.Fovy, c.Aspect, c.Near(), c.Far())
	return proj.Mul4(view)
}

// perspectiveZO builds a right-handed perspective matrix mapping depth
// into WebGPU's [0, 1] clip range. mgl32.Perspective targets OpenGL's
// [-1, 1] range, which the rasterizer would clip against.
func perspectiveZO(fovy, aspect, near, far float32) mgl32.Mat4 {
	f := 1 / float32(math.Tan(float64(fovy)/2))

	var m mgl32.Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1
	m[14] = (near * far) / (near - far)
	return m
}

// SetAspect replaces the aspect ratio. Callers must not pass values for
// zero-sized surfaces; resize handlers skip those events entirely.
func (c *Camera) SetAspect(aspect float32) {
	c.Aspect = aspect
}

// viewBasis returns the view-aligned right and up vectors for the
// current orientation.
func (c *Camera) viewBasis() (right, up mgl32.Vec3) {
	forward := c.Target.Sub(c.EyePosition()).Normalize()
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
