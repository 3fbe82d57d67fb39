package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func closeEnough(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a-b))) <= tolerance
}

func TestOrbitClampsElevation(t *testing.T) {
	cam := NewCamera(16.0 / 9.0)

	for _, delta := range []float32{0.001, 0.5, 2.0, 100.0, -0.001, -0.5, -2.0, -100.0} {
		cam.Orbit(0, delta)
		if cam.Elevation < ElevationMin || cam.Elevation > ElevationMax {
			t.Fatalf("elevation %f escaped [%f, %f] after delta %f",
				cam.Elevation, float32(ElevationMin), float32(ElevationMax), delta)
		}
	}
}

func TestOrbitAzimuthUnbounded(t *testing.T) {
	cam := NewCamera(1.0)
	start := cam.Azimuth

	cam.Orbit(100*math.Pi, 0)
	if !closeEnough(cam.Azimuth, start+100*math.Pi, 1e-3) {
		t.Errorf("azimuth should accumulate without clamping, got %f", cam.Azimuth)
	}
}

func TestZoomClampsRadius(t *testing.T) {
	cam := NewCamera(1.0)

	for _, factor := range []float32{0.5, 2.0, 1e-12, 1e12, 0.9} {
		cam.Zoom(factor)
		if cam.Radius < RadiusMin || cam.Radius > RadiusMax {
			t.Fatalf("radius %f escaped [%f, %f] after factor %g",
				cam.Radius, float32(RadiusMin), float32(RadiusMax), factor)
		}
	}
}

func TestPanFollowsViewBasis(t *testing.T) {
	cam := NewCamera(1.0)
	cam.Azimuth = 0.8
	cam.Elevation = 0.6

	forward := cam.Target.Sub(cam.EyePosition()).Normalize()

	before := cam.Target
	cam.Pan(3.0, 0)
	alongRight := cam.Target.Sub(before)

	if !closeEnough(alongRight.Dot(forward), 0, 1e-5) {
		t.Errorf("pan along right should be orthogonal to forward, dot = %f", alongRight.Dot(forward))
	}
	if !closeEnough(alongRight[2], 0, 1e-5) {
		t.Errorf("right vector lies in the ground plane, Z component = %f", alongRight[2])
	}

	before = cam.Target
	cam.Pan(0, 2.0)
	alongUp := cam.Target.Sub(before)

	if !closeEnough(alongUp.Dot(forward), 0, 1e-5) {
		t.Errorf("pan along up should be orthogonal to forward, dot = %f", alongUp.Dot(forward))
	}
	if !closeEnough(alongUp.Dot(alongRight), 0, 1e-4) {
		t.Errorf("right and up pan directions should be orthogonal, dot = %f", alongUp.Dot(alongRight))
	}
}

func TestTargetAlwaysScreenCentered(t *testing.T) {
	cases := []struct {
		target    mgl32.Vec3
		radius    float32
		azimuth   float32
		elevation float32
	}{
		{mgl32.Vec3{0, 0, 0}, 20, -math.Pi / 4, math.Pi / 6},
		{mgl32.Vec3{12, -7, 3}, 2.5, 1.9, 0.3},
		{mgl32.Vec3{-400, 95, 60}, 5000, -2.4, 1.1},
		{mgl32.Vec3{0.001, 0.002, 0.0005}, 0.5, 0.1, 0.02},
	}

	for _, tc := range cases {
		cam := NewCamera(16.0 / 9.0)
		cam.Target = tc.target
		cam.Radius = tc.radius
		cam.Azimuth = tc.azimuth
		cam.Elevation = tc.elevation

		clip := cam.ViewProj().Mul4x1(tc.target.Vec4(1))
		if clip.W() == 0 {
			t.Fatalf("degenerate clip position for target %v", tc.target)
		}
		ndcX := clip.X() / clip.W()
		ndcY := clip.Y() / clip.W()

		if !closeEnough(ndcX, 0, 1e-4) || !closeEnough(ndcY, 0, 1e-4) {
			t.Errorf("target %v projects to NDC (%f, %f), want origin", tc.target, ndcX, ndcY)
		}
	}
}

func TestNearFarTrackRadius(t *testing.T) {
	cam := NewCamera(1.0)

	cam.Radius = 20
	if !closeEnough(cam.Near(), 0.2, 1e-6) {
		t.Errorf("near at radius 20 = %f, want 0.2", cam.Near())
	}
	if !closeEnough(cam.Far(), 2000, 1e-3) {
		t.Errorf("far at radius 20 = %f, want 2000", cam.Far())
	}

	// Floors keep tiny framings usable.
	cam.Radius = RadiusMin
	if cam.Near() < nearFloor {
		t.Errorf("near %f fell below its floor", cam.Near())
	}
	if cam.Far() < farFloor {
		t.Errorf("far %f fell below its floor", cam.Far())
	}

	// The grid fade horizon must stay inside the far plane.
	for _, r := range []float32{RadiusMin, 1, 20, 1234, RadiusMax} {
		cam.Radius = r
		if lod := DeriveGridLOD(r); lod.FadeFar >= cam.Far() {
			t.Errorf("fade far %f reaches past far plane %f at radius %f", lod.FadeFar, cam.Far(), r)
		}
	}
}

func TestEyePositionSpherical(t *testing.T) {
	cam := NewCamera(1.0)
	cam.Target = mgl32.Vec3{1, 2, 3}
	cam.Radius = 10
	cam.Azimuth = 0
	cam.Elevation = math.Pi / 6

	eye := cam.EyePosition()
	want := mgl32.Vec3{
		1,
		2 + 10*float32(math.Cos(math.Pi/6)),
		3 + 10*float32(math.Sin(math.Pi/6)),
	}

	for i := range 3 {
		if !closeEnough(eye[i], want[i], 1e-4) {
			t.Errorf("eye[%d] = %f, want %f", i, eye[i], want[i])
		}
	}
}

func TestNavigationScenario(t *testing.T) {
	cam := NewCamera(16.0 / 9.0)

	if !closeEnough(cam.Radius, 20, 1e-6) || !closeEnough(cam.Azimuth, -math.Pi/4, 1e-6) {
		t.Fatalf("unexpected defaults: radius %f azimuth %f", cam.Radius, cam.Azimuth)
	}

	cam.Orbit(0.1, 0)
	if !closeEnough(cam.Azimuth, -0.6854, 1e-4) {
		t.Errorf("azimuth after orbit = %f, want ~-0.6854", cam.Azimuth)
	}
	if !closeEnough(cam.Elevation, math.Pi/6, 1e-6) {
		t.Errorf("elevation should be untouched by pure azimuth orbit, got %f", cam.Elevation)
	}

	cam.Zoom(2.0)
	if !closeEnough(cam.Radius, 40, 1e-4) {
		t.Errorf("radius after zoom(2) = %f, want 40", cam.Radius)
	}

	cam.Zoom(1e12)
	if cam.Radius != RadiusMax {
		t.Errorf("radius after huge zoom = %f, want clamp at %f", cam.Radius, float32(RadiusMax))
	}
}
