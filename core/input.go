package core

// MouseButton identifies the pointer buttons the viewer reacts to.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// Modifier identifies tracked keyboard modifiers.
type Modifier int

const (
	ModifierShift Modifier = iota
)

// InputState accumulates raw pointer/scroll/key activity between frames.
// Deltas and scroll are transient and cleared by EndFrame; button and
// modifier flags persist until a release event arrives. The struct is
// windowing-toolkit agnostic so it can be driven directly from tests;
// the app package wires it to glfw callbacks.
type InputState struct {
	MouseX, MouseY   float32
	MouseDX, MouseDY float32

	LeftHeld   bool
	MiddleHeld bool
	RightHeld  bool

	Scroll float32

	ShiftHeld bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// CursorMoved records an absolute pointer position and derives the
// per-frame delta from the previously seen position.
func (s *InputState) CursorMoved(x, y float32) {
	s.MouseDX = x - s.MouseX
	s.MouseDY = y - s.MouseY
	s.MouseX = x
	s.MouseY = y
}

// ButtonChanged records a press or release of a pointer button.
func (s *InputState) ButtonChanged(button MouseButton, pressed bool) {
	switch button {
	case MouseButtonLeft:
		s.LeftHeld = pressed
	case MouseButtonMiddle:
		s.MiddleHeld = pressed
	case MouseButtonRight:
		s.RightHeld = pressed
	}
}

// ScrollBy adds a wheel delta (line or pixel units) to the frame's
// scroll accumulator.
func (s *InputState) ScrollBy(delta float32) {
	s.Scroll += delta
}

// ModifierChanged records a press or release of a tracked modifier.
func (s *InputState) ModifierChanged(mod Modifier, pressed bool) {
	if mod == ModifierShift {
		s.ShiftHeld = pressed
	}
}

// EndFrame clears the transient per-frame accumulators. Held flags stay
// as they are.
func (s *InputState) EndFrame() {
	s.MouseDX = 0
	s.MouseDY = 0
	s.Scroll = 0
}
