package core

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraSnapshot is an immutable copy of the camera state plus the
// derived matrices, taken at a single point in time. Overlay readers
// and the frame composer both consume snapshots, never the live camera.
type CameraSnapshot struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3

	Radius    float32
	Azimuth   float32
	Elevation float32
	Aspect    float32

	ViewProj    mgl32.Mat4
	InvViewProj mgl32.Mat4
}

// SharedCamera serializes access to a Camera shared between the render
// loop (single writer, one mutation point per frame) and any concurrent
// readers such as the debug overlay. Readers get consistent snapshots;
// a snapshot can never observe a half-applied mutation.
type SharedCamera struct {
	mu  sync.Mutex
	cam Camera
}

func NewSharedCamera(aspect float32) *SharedCamera {
	return &SharedCamera{cam: *NewCamera(aspect)}
}

// Update runs fn with exclusive access to the camera.
func (s *SharedCamera) Update(fn func(*Camera)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cam)
}

// Snapshot copies the current camera state and derives the view
// matrices under the lock.
func (s *SharedCamera) Snapshot() CameraSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	viewProj := s.cam.ViewProj()
	return CameraSnapshot{
		Eye:         s.cam.EyePosition(),
		Target:      s.cam.Target,
		Radius:      s.cam.Radius,
		Azimuth:     s.cam.Azimuth,
		Elevation:   s.cam.Elevation,
		Aspect:      s.cam.Aspect,
		ViewProj:    viewProj,
		InvViewProj: viewProj.Inv(),
	}
}
