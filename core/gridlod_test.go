package core

import (
	"math"
	"testing"
)

func TestGridScaleIsPowerOfTen(t *testing.T) {
	for _, radius := range []float32{RadiusMin, 0.7, 1, 3.16, 9.9, 10.01, 42, 99, 101, 12345, RadiusMax} {
		lod := DeriveGridLOD(radius)

		log := math.Log10(float64(lod.Scale))
		if math.Abs(log-math.Round(log)) > 1e-6 {
			t.Errorf("scale %g at radius %f is not a power of ten", lod.Scale, radius)
		}
		if int(math.Round(log)) != lod.Level {
			t.Errorf("scale %g disagrees with level %d", lod.Scale, lod.Level)
		}
	}
}

func TestGridFadeWithinDecade(t *testing.T) {
	for _, radius := range []float32{RadiusMin, 1, 2, 5, 9.99, 10.01, 500, RadiusMax} {
		lod := DeriveGridLOD(radius)
		if lod.Fade < 0 || lod.Fade >= 1 {
			t.Errorf("fade %f at radius %f outside [0, 1)", lod.Fade, radius)
		}
	}

	// Fade grows monotonically while radius stays inside one decade.
	prev := DeriveGridLOD(11).Fade
	for _, radius := range []float32{20, 40, 80, 99} {
		fade := DeriveGridLOD(radius).Fade
		if fade <= prev {
			t.Errorf("fade should grow within a decade: %f then %f at radius %f", prev, fade, radius)
		}
		prev = fade
	}
}

func TestGridLevelStepsAtDecades(t *testing.T) {
	below := DeriveGridLOD(9.5)
	above := DeriveGridLOD(10.5)

	if below.Level != 0 || above.Level != 1 {
		t.Errorf("levels around the 10.0 boundary = %d, %d; want 0, 1", below.Level, above.Level)
	}
	if !closeEnough(above.Scale/below.Scale, 10, 1e-5) {
		t.Errorf("scale should step by exactly one decade, ratio %f", above.Scale/below.Scale)
	}
}

func TestGridFadeDistances(t *testing.T) {
	lod := DeriveGridLOD(20)

	if !closeEnough(lod.FadeNear, 50, 1e-3) {
		t.Errorf("fade near = %f, want 50", lod.FadeNear)
	}
	if !closeEnough(lod.FadeFar, 500, 1e-3) {
		t.Errorf("fade far = %f, want 500", lod.FadeFar)
	}
	if lod.FadeNear >= lod.FadeFar {
		t.Error("fade near must start before fade far")
	}
}
