package core

import "math"

// ReferenceSpacing is the grid line spacing, in world units, that reads
// as "scale 1" at radius 1.
const ReferenceSpacing = 1.0

// Distance-fade factors relative to the orbit radius. FadeFar stays
// well inside the derived far plane (radius * farScale).
const (
	fadeNearScale = 2.5
	fadeFarScale  = 25.0
)

// GridLOD is the continuous decade level-of-detail for the reference
// grid. Scale is always an exact power of ten; Fade is the fractional
// position inside the current decade, in [0, 1), and drives the
// cross-fade between adjacent grid densities.
type GridLOD struct {
	Level    int
	Scale    float32
	Fade     float32
	FadeNear float32
	FadeFar  float32
}

// DeriveGridLOD computes the grid LOD for an orbit radius. The camera
// invariant guarantees radius > 0, so the logarithm is always defined.
func DeriveGridLOD(radius float32) GridLOD {
	continuous := math.Log10(float64(radius) / ReferenceSpacing)
	level := math.Floor(continuous)

	return GridLOD{
		Level:    int(level),
		Scale:    float32(math.Pow(10, level)),
		Fade:     float32(continuous - level),
		FadeNear: radius * fadeNearScale,
		FadeFar:  radius * fadeFarScale,
	}
}
