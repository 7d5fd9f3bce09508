package terminal

import (
	"github.com/gdamore/tcell/v2"

	"roadrush/internal/game"
)

// keyHold emulates key-up for terminals, which only report presses (and
// auto-repeat). A press holds its control for a fixed number of frames and
// each repeat extends the hold.
type keyHold struct {
	in     *game.InputState
	frames int
	frame  int
	until  map[game.Control]int
}

func newKeyHold(in *game.InputState, frames int) *keyHold {
	if frames <= 0 {
		frames = 1
	}
	return &keyHold{in: in, frames: frames, until: make(map[game.Control]int)}
}

// opposite releases the other direction so steering flips immediately.
var opposite = map[game.Control]game.Control{
	game.ControlLeft:  game.ControlRight,
	game.ControlRight: game.ControlLeft,
}

func (k *keyHold) press(c game.Control) {
	if o, ok := opposite[c]; ok {
		delete(k.until, o)
		k.in.Set(o, false)
	}
	k.until[c] = k.frame + k.frames
	k.in.Set(c, true)
}

// advance moves to the next frame and releases expired holds.
func (k *keyHold) advance() {
	k.frame++
	for c, until := range k.until {
		if k.frame > until {
			delete(k.until, c)
			k.in.Set(c, false)
		}
	}
}

func (k *keyHold) reset() {
	clear(k.until)
}

// controlFor maps arrow keys and WASD to controls.
func controlFor(key tcell.Key, r rune) (game.Control, bool) {
	switch key {
	case tcell.KeyLeft:
		return game.ControlLeft, true
	case tcell.KeyRight:
		return game.ControlRight, true
	case tcell.KeyUp:
		return game.ControlAccelerate, true
	case tcell.KeyDown:
		return game.ControlBrake, true
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return game.ControlLeft, true
		case 'd', 'D':
			return game.ControlRight, true
		case 'w', 'W':
			return game.ControlAccelerate, true
		case 's', 'S':
			return game.ControlBrake, true
		}
	}
	return 0, false
}
