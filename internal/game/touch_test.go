package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTouchTracker_Swipes(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Controls
	}{
		{"small drag does nothing", 30, -30, Controls{}},
		{"left", -60, 0, Controls{Left: true}},
		{"right", 60, 0, Controls{Right: true}},
		{"up accelerates", 0, -60, Controls{Accelerate: true}},
		{"down brakes", 0, 60, Controls{Brake: true}},
		{"diagonal", -80, -80, Controls{Left: true, Accelerate: true}},
		{"exactly at threshold", 50, 50, Controls{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInputState()
			tr := NewTouchTracker(in)
			tr.Begin(200, 300)
			tr.Move(200+tt.dx, 300+tt.dy)
			assert.Equal(t, tt.want, in.Snapshot())
		})
	}
}

func TestTouchTracker_FlagsLatchUntilEnd(t *testing.T) {
	in := NewInputState()
	tr := NewTouchTracker(in)

	tr.Begin(100, 100)
	assert.True(t, tr.Active())
	tr.Move(30, 100)
	// Returning to the origin keeps the latched flag.
	tr.Move(100, 100)
	assert.True(t, in.Pressed(ControlLeft))

	tr.End()
	assert.False(t, tr.Active())
	assert.Equal(t, Controls{}, in.Snapshot())
}

func TestTouchTracker_IgnoresMovesWithoutBegin(t *testing.T) {
	in := NewInputState()
	tr := NewTouchTracker(in)
	tr.Move(0, 0)
	assert.Equal(t, Controls{}, in.Snapshot())

	// End without a gesture must not release keyboard controls.
	in.Set(ControlAccelerate, true)
	tr.End()
	assert.True(t, in.Pressed(ControlAccelerate))
}
