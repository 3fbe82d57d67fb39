package core

import (
	"sync"
	"testing"
)

func TestSharedCameraUpdateVisibleInSnapshot(t *testing.T) {
	shared := NewSharedCamera(1.5)

	shared.Update(func(c *Camera) {
		c.Orbit(0.2, 0.1)
		c.Zoom(0.5)
	})

	snap := shared.Snapshot()
	if !closeEnough(snap.Radius, DefaultRadius*0.5, 1e-4) {
		t.Errorf("snapshot radius = %f, want %f", snap.Radius, float32(DefaultRadius*0.5))
	}
	if snap.Aspect != 1.5 {
		t.Errorf("snapshot aspect = %f, want 1.5", snap.Aspect)
	}
}

func TestSnapshotNeverTorn(t *testing.T) {
	shared := NewSharedCamera(16.0 / 9.0)

	stop := make(chan struct{})
	writerDone := make(chan struct{})

	// Single writer, one mutation at a time, like the render loop.
	go func() {
		defer close(writerDone)
		for {
			select {
			case <-stop:
				return
			default:
			}
			shared.Update(func(c *Camera) {
				c.Orbit(0.01, 0.001)
				c.Zoom(1.001)
				c.Pan(0.1, -0.05)
			})
		}
	}()

	// Concurrent overlay-style readers. Every snapshot must be
	// internally consistent: the eye it carries re-derives exactly
	// from the spherical state it carries.
	var readers sync.WaitGroup
	for range 4 {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for i := 0; i < 500; i++ {
				snap := shared.Snapshot()

				check := Camera{
					Target:    snap.Target,
					Radius:    snap.Radius,
					Azimuth:   snap.Azimuth,
					Elevation: snap.Elevation,
					Aspect:    snap.Aspect,
					Fovy:      DefaultFovy,
				}
				eye := check.EyePosition()
				for axis := range 3 {
					if !closeEnough(eye[axis], snap.Eye[axis], 1e-3) {
						t.Errorf("torn snapshot: eye[%d] %f does not re-derive from spherical state (%f)",
							axis, snap.Eye[axis], eye[axis])
						return
					}
				}
			}
		}()
	}

	readers.Wait()
	close(stop)
	<-writerDone
}
