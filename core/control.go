package core

// ControlConfig holds the tunable input-to-camera sensitivities.
type ControlConfig struct {
	// OrbitSensitivity is radians per pixel of pointer travel.
	OrbitSensitivity float32
	// PanSensitivity is world units per pixel, scaled by the current
	// orbit radius so panning speed stays visually constant.
	PanSensitivity float32
	// ZoomStep is the fractional radius change per scroll line.
	ZoomStep float32
}

func DefaultControlConfig() ControlConfig {
	return ControlConfig{
		OrbitSensitivity: 0.005,
		PanSensitivity:   0.002,
		ZoomStep:         0.1,
	}
}

// ApplyInput maps one frame of accumulated input onto the camera.
// Orbit, pan and zoom are independent and may all fire in the same
// frame; their relative order does not matter.
func ApplyInput(in *InputState, cam *Camera, cfg ControlConfig) {
	applyOrbit(in, cam, cfg)
	applyPan(in, cam, cfg)
	applyZoom(in, cam, cfg)
}

func applyOrbit(in *InputState, cam *Camera, cfg ControlConfig) {
	if !in.RightHeld {
		return
	}
	if in.MouseDX == 0 && in.MouseDY == 0 {
		return
	}

	// Horizontal drag is negated so the scene appears to follow the
	// pointer; vertical drag raises/lowers elevation directly.
	deltaAz := -in.MouseDX * cfg.OrbitSensitivity
	deltaEl := in.MouseDY * cfg.OrbitSensitivity
	cam.Orbit(deltaAz, deltaEl)
}

func applyPan(in *InputState, cam *Camera, cfg ControlConfig) {
	if !in.MiddleHeld {
		return
	}
	if in.MouseDX == 0 && in.MouseDY == 0 {
		return
	}

	scale := cam.Radius * cfg.PanSensitivity
	cam.Pan(-in.MouseDX*scale, in.MouseDY*scale)
}

func applyZoom(in *InputState, cam *Camera, cfg ControlConfig) {
	if in.Scroll == 0 {
		return
	}

	// Positive scroll zooms in, shrinking the radius.
	cam.Zoom(1 - in.Scroll*cfg.ZoomStep)
}
