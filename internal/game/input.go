package game

import "sync/atomic"

// Control is a logical input the simulation understands.
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlAccelerate
	ControlBrake
	controlCount
)

func (c Control) String() string {
	switch c {
	case ControlLeft:
		return "left"
	case ControlRight:
		return "right"
	case ControlAccelerate:
		return "accelerate"
	case ControlBrake:
		return "brake"
	}
	return "unknown"
}

// Controls is the per-tick snapshot Step reads.
type Controls struct {
	Left, Right       bool
	Accelerate, Brake bool
}

// InputState holds pressed flags written by host adapters.
// Writers may run on any goroutine; the loop reads one Snapshot per tick.
type InputState struct {
	flags [controlCount]atomic.Bool
}

func NewInputState() *InputState {
	return &InputState{}
}

func (in *InputState) Set(c Control, down bool) {
	if c < 0 || c >= controlCount {
		return
	}
	in.flags[c].Store(down)
}

func (in *InputState) Pressed(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return in.flags[c].Load()
}

// Clear releases every control.
func (in *InputState) Clear() {
	for i := range in.flags {
		in.flags[i].Store(false)
	}
}

func (in *InputState) Snapshot() Controls {
	return Controls{
		Left:       in.flags[ControlLeft].Load(),
		Right:      in.flags[ControlRight].Load(),
		Accelerate: in.flags[ControlAccelerate].Load(),
		Brake:      in.flags[ControlBrake].Load(),
	}
}
