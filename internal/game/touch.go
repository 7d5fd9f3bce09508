package game

// TouchTracker turns a drag gesture into directional controls.
// Flags latch on once the pointer passes TouchSwipeMin from the origin and
// are all released when the gesture ends.
type TouchTracker struct {
	in     *InputState
	active bool
	startX float64
	startY float64
}

func NewTouchTracker(in *InputState) *TouchTracker {
	return &TouchTracker{in: in}
}

func (t *TouchTracker) Active() bool { return t.active }

func (t *TouchTracker) Begin(x, y float64) {
	t.active = true
	t.startX, t.startY = x, y
}

func (t *TouchTracker) Move(x, y float64) {
	if !t.active {
		return
	}
	if x < t.startX-TouchSwipeMin {
		t.in.Set(ControlLeft, true)
	} else if x > t.startX+TouchSwipeMin {
		t.in.Set(ControlRight, true)
	}
	if y < t.startY-TouchSwipeMin {
		t.in.Set(ControlAccelerate, true)
	}
	if y > t.startY+TouchSwipeMin {
		t.in.Set(ControlBrake, true)
	}
}

// End releases every control, including ones held from the keyboard.
func (t *TouchTracker) End() {
	if !t.active {
		return
	}
	t.active = false
	t.in.Clear()
}
