package core

import (
	"math"
	"testing"
)

func TestOrbitRequiresRotateButton(t *testing.T) {
	cfg := DefaultControlConfig()

	cam := NewCamera(1.0)
	in := NewInputState()
	in.CursorMoved(10, 10) // first sample, delta (10, 10)

	before := *cam
	ApplyInput(in, cam, cfg)
	if cam.Azimuth != before.Azimuth || cam.Elevation != before.Elevation {
		t.Error("orbit applied without the rotate button held")
	}

	in.ButtonChanged(MouseButtonRight, true)
	ApplyInput(in, cam, cfg)

	wantAz := before.Azimuth + -10*cfg.OrbitSensitivity
	wantEl := before.Elevation + 10*cfg.OrbitSensitivity
	if !closeEnough(cam.Azimuth, wantAz, 1e-6) {
		t.Errorf("azimuth = %f, want %f (horizontal drag negated)", cam.Azimuth, wantAz)
	}
	if !closeEnough(cam.Elevation, wantEl, 1e-6) {
		t.Errorf("elevation = %f, want %f", cam.Elevation, wantEl)
	}
}

func TestPanScalesWithRadius(t *testing.T) {
	cfg := DefaultControlConfig()

	displacement := func(radius float32) float32 {
		cam := NewCamera(1.0)
		cam.Radius = radius
		in := NewInputState()
		in.MiddleHeld = true
		in.MouseDX = 10
		in.MouseDY = -4

		before := cam.Target
		ApplyInput(in, cam, cfg)
		return cam.Target.Sub(before).Len()
	}

	near := displacement(20)
	far := displacement(200)

	if !closeEnough(far/near, 10, 1e-3) {
		t.Errorf("pan displacement should scale linearly with radius, ratio = %f", far/near)
	}
}

func TestZoomDirection(t *testing.T) {
	cfg := DefaultControlConfig()

	cam := NewCamera(1.0)
	in := NewInputState()
	in.ScrollBy(1) // scroll up: zoom in

	ApplyInput(in, cam, cfg)
	if !closeEnough(cam.Radius, DefaultRadius*(1-cfg.ZoomStep), 1e-4) {
		t.Errorf("positive scroll should shrink radius, got %f", cam.Radius)
	}

	in.EndFrame()
	in.ScrollBy(-1) // scroll down: zoom out
	before := cam.Radius
	ApplyInput(in, cam, cfg)
	if cam.Radius <= before {
		t.Errorf("negative scroll should grow radius, got %f from %f", cam.Radius, before)
	}
}

func TestMappingsIndependent(t *testing.T) {
	cfg := DefaultControlConfig()

	cam := NewCamera(1.0)
	in := NewInputState()
	in.RightHeld = true
	in.MiddleHeld = true
	in.MouseDX = 6
	in.MouseDY = 3
	in.ScrollBy(2)

	before := *cam
	ApplyInput(in, cam, cfg)

	if cam.Azimuth == before.Azimuth {
		t.Error("orbit should have applied")
	}
	if cam.Target == before.Target {
		t.Error("pan should have applied")
	}
	if cam.Radius == before.Radius {
		t.Error("zoom should have applied")
	}
	if cam.Elevation < ElevationMin || cam.Elevation > ElevationMax {
		t.Error("combined input must preserve elevation clamp")
	}
	if math.IsNaN(float64(cam.Target.Len())) {
		t.Error("combined input produced NaN target")
	}
}
