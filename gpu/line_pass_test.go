package gpu

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerVerticesOnGroundPlane(t *testing.T) {
	verts := BuildMarkerVertices(mgl32.Vec3{2, -3, 0})

	// Two crosses, no connecting line.
	require.Len(t, verts, 12)
	for _, v := range verts {
		assert.NotEqual(t, colConnect, v.Color)
	}
}

func TestMarkerVerticesOffPlane(t *testing.T) {
	target := mgl32.Vec3{1, 1, 1}
	verts := BuildMarkerVertices(target)
	require.Len(t, verts, 14)

	// Connecting line runs from the target down to its projection.
	assert.Equal(t, colConnect, verts[12].Color)
	assert.Equal(t, [3]float32{1, 1, 1}, verts[12].Pos)
	assert.Equal(t, [3]float32{1, 1, 0}, verts[13].Pos)
}

func TestMarkerVerticesEpsilonThreshold(t *testing.T) {
	// Z offsets inside the epsilon band do not produce a connecting line.
	assert.Len(t, BuildMarkerVertices(mgl32.Vec3{0, 0, 0.0005}), 12)
	assert.Len(t, BuildMarkerVertices(mgl32.Vec3{0, 0, -0.0005}), 12)
	assert.Len(t, BuildMarkerVertices(mgl32.Vec3{0, 0, 0.01}), 14)
}

func TestMarkerVerticesNeverExceedBuffer(t *testing.T) {
	for _, target := range []mgl32.Vec3{
		{0, 0, 0},
		{100, -50, 25},
		{0, 0, -1000},
	} {
		verts := BuildMarkerVertices(target)
		assert.LessOrEqual(t, len(verts), maxMarkerVerts)
	}
}

func TestAxesVertexColors(t *testing.T) {
	verts := buildAxesVertices()
	require.Len(t, verts, 12)

	// Positive arms reach the full axis length, negative arms mirror it.
	assert.Equal(t, [3]float32{axisLength, 0, 0}, verts[1].Pos)
	assert.Equal(t, [3]float32{-axisLength, 0, 0}, verts[3].Pos)
	assert.Equal(t, [3]float32{0, 0, axisLength}, verts[9].Pos)

	// Negative arms are dimmer than their positive counterparts.
	assert.Less(t, verts[2].Color[0], verts[0].Color[0])
	assert.Less(t, verts[6].Color[1], verts[4].Color[1])
	assert.Less(t, verts[10].Color[2], verts[8].Color[2])
}
