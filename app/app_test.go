package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantage3d/vantage/core"
)

func newHeadlessApp() *App {
	return &App{
		Camera:   core.NewSharedCamera(16.0 / 9.0),
		Input:    core.NewInputState(),
		Controls: core.DefaultControlConfig(),
		Log:      NewNopLogger(),
	}
}

func TestHandleResizeIgnoresZeroDimensions(t *testing.T) {
	a := newHeadlessApp()
	before := a.Camera.Snapshot().Aspect

	a.handleResize(0, 720)
	a.handleResize(1280, 0)
	a.handleResize(0, 0)

	assert.Equal(t, before, a.Camera.Snapshot().Aspect)
}

func TestHandleResizeUpdatesAspect(t *testing.T) {
	a := newHeadlessApp()

	a.handleResize(800, 800)

	assert.InDelta(t, 1.0, float64(a.Camera.Snapshot().Aspect), 1e-6)
}

func TestOverlayItemsStackDownward(t *testing.T) {
	a := newHeadlessApp()

	snap := a.Camera.Snapshot()
	items := a.overlayItems(snap, core.DeriveGridLOD(snap.Radius))

	assert.GreaterOrEqual(t, len(items), 4)
	for i := 1; i < len(items); i++ {
		assert.Greater(t, items[i].Position[1], items[i-1].Position[1])
	}
}

func TestOverlayItemsReportCameraState(t *testing.T) {
	a := newHeadlessApp()
	a.Camera.Update(func(c *core.Camera) {
		c.Radius = 42
	})

	snap := a.Camera.Snapshot()
	items := a.overlayItems(snap, core.DeriveGridLOD(snap.Radius))

	assert.Contains(t, items[1].Text, "radius 42.00")
	assert.Contains(t, items[3].Text, "grid level 1")
}
