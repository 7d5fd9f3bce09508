package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"roadrush/internal/desktop/batch"
	"roadrush/internal/game"
)

// Input routes glfw callbacks into the session's controls.
type Input struct {
	state    *game.InputState
	touch    *game.TouchTracker
	prevKeys map[glfw.Key]bool
}

func NewInput(state *game.InputState) *Input {
	return &Input{
		state:    state,
		touch:    game.NewTouchTracker(state),
		prevKeys: make(map[glfw.Key]bool),
	}
}

func controlFor(key glfw.Key) (game.Control, bool) {
	switch key {
	case glfw.KeyLeft, glfw.KeyA:
		return game.ControlLeft, true
	case glfw.KeyRight, glfw.KeyD:
		return game.ControlRight, true
	case glfw.KeyUp, glfw.KeyW:
		return game.ControlAccelerate, true
	case glfw.KeyDown, glfw.KeyS:
		return game.ControlBrake, true
	}
	return 0, false
}

// Attach installs key and mouse callbacks on the window.
// Cursor positions are mapped through b into surface units.
func (in *Input) Attach(window *glfw.Window, b *batch.Batch) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		c, ok := controlFor(key)
		if !ok || action == glfw.Repeat {
			return
		}
		in.state.Set(c, action == glfw.Press)
	})

	toSurface := func(w *glfw.Window, cx, cy float64) (float64, float64) {
		winW, winH := w.GetSize()
		fbW, fbH := w.GetFramebufferSize()
		if winW <= 0 || winH <= 0 {
			return cx, cy
		}
		fx := cx * float64(fbW) / float64(winW)
		fy := cy * float64(fbH) / float64(winH)
		return b.ToSurface(fx, fy)
	}

	window.SetMouseButtonCallback(func(w *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if btn != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			cx, cy := w.GetCursorPos()
			in.touch.Begin(toSurface(w, cx, cy))
		case glfw.Release:
			in.touch.End()
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, cx, cy float64) {
		if in.touch.Active() {
			in.touch.Move(toSurface(w, cx, cy))
		}
	})
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}
