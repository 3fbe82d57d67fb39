package core

import "testing"

func TestCursorDeltaReplacesNotAccumulates(t *testing.T) {
	in := NewInputState()

	in.CursorMoved(100, 50)
	in.CursorMoved(110, 45)

	if in.MouseDX != 10 || in.MouseDY != -5 {
		t.Errorf("delta = (%f, %f), want (10, -5)", in.MouseDX, in.MouseDY)
	}
	if in.MouseX != 110 || in.MouseY != 45 {
		t.Errorf("position = (%f, %f), want (110, 45)", in.MouseX, in.MouseY)
	}
}

func TestScrollAccumulatesWithinFrame(t *testing.T) {
	in := NewInputState()

	in.ScrollBy(1)
	in.ScrollBy(2)
	in.ScrollBy(-0.5)

	if in.Scroll != 2.5 {
		t.Errorf("scroll = %f, want 2.5", in.Scroll)
	}
}

func TestEndFrameClearsTransientsOnly(t *testing.T) {
	in := NewInputState()

	in.CursorMoved(30, 40)
	in.ScrollBy(3)
	in.ButtonChanged(MouseButtonRight, true)
	in.ButtonChanged(MouseButtonMiddle, true)
	in.ModifierChanged(ModifierShift, true)

	in.EndFrame()

	if in.MouseDX != 0 || in.MouseDY != 0 || in.Scroll != 0 {
		t.Errorf("transients survived EndFrame: dx=%f dy=%f scroll=%f", in.MouseDX, in.MouseDY, in.Scroll)
	}
	if !in.RightHeld || !in.MiddleHeld || !in.ShiftHeld {
		t.Error("held flags must persist across frames")
	}
	if in.MouseX != 30 || in.MouseY != 40 {
		t.Error("absolute position must persist across frames")
	}
}

func TestButtonRelease(t *testing.T) {
	in := NewInputState()

	in.ButtonChanged(MouseButtonLeft, true)
	in.ButtonChanged(MouseButtonLeft, false)
	if in.LeftHeld {
		t.Error("left button should be released")
	}

	in.ModifierChanged(ModifierShift, true)
	in.ModifierChanged(ModifierShift, false)
	if in.ShiftHeld {
		t.Error("shift should be released")
	}
}
