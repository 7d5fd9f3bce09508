package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadrush/internal/game"
)

func newTestHost(t *testing.T, holdFrames int) (*Host, *game.Session) {
	t.Helper()
	screen := newScreen(t, 80, 24)
	s := game.NewSession(game.DefaultSettings(), nil, nil)
	s.SetSpawner(nil)
	h := NewHost(screen, s, Options{FrameMillis: 1, KeyHoldFrames: holdFrames}, nil)
	t.Cleanup(h.ticker.Stop)
	return h, s
}

func TestKeyHold_ExpiresAfterFrames(t *testing.T) {
	in := game.NewInputState()
	k := newKeyHold(in, 3)

	k.press(game.ControlAccelerate)
	for i := 0; i < 3; i++ {
		k.advance()
		require.True(t, in.Pressed(game.ControlAccelerate), "frame %d", i)
	}
	k.advance()
	assert.False(t, in.Pressed(game.ControlAccelerate))
}

func TestKeyHold_RepeatExtends(t *testing.T) {
	in := game.NewInputState()
	k := newKeyHold(in, 2)

	k.press(game.ControlBrake)
	k.advance()
	k.advance()
	k.press(game.ControlBrake)
	k.advance()
	k.advance()
	assert.True(t, in.Pressed(game.ControlBrake))
	k.advance()
	assert.False(t, in.Pressed(game.ControlBrake))
}

func TestKeyHold_SteeringFlips(t *testing.T) {
	in := game.NewInputState()
	k := newKeyHold(in, 5)

	k.press(game.ControlLeft)
	k.press(game.ControlRight)
	assert.False(t, in.Pressed(game.ControlLeft))
	assert.True(t, in.Pressed(game.ControlRight))

	// Throttle and brake can be held together.
	k.press(game.ControlAccelerate)
	k.press(game.ControlBrake)
	assert.Equal(t, game.Controls{Right: true, Accelerate: true, Brake: true}, in.Snapshot())
}

func TestControlFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want game.Control
		ok   bool
	}{
		{tcell.KeyLeft, 0, game.ControlLeft, true},
		{tcell.KeyRight, 0, game.ControlRight, true},
		{tcell.KeyUp, 0, game.ControlAccelerate, true},
		{tcell.KeyDown, 0, game.ControlBrake, true},
		{tcell.KeyRune, 'a', game.ControlLeft, true},
		{tcell.KeyRune, 'D', game.ControlRight, true},
		{tcell.KeyRune, 'w', game.ControlAccelerate, true},
		{tcell.KeyRune, 's', game.ControlBrake, true},
		{tcell.KeyRune, 'x', 0, false},
		{tcell.KeyTab, 0, 0, false},
	}
	for _, tt := range tests {
		c, ok := controlFor(tt.key, tt.r)
		assert.Equal(t, tt.ok, ok, "%v %q", tt.key, tt.r)
		if tt.ok {
			assert.Equal(t, tt.want, c)
		}
	}
}

func TestHost_MenuKeys(t *testing.T) {
	h, s := newTestHost(t, 4)

	h.handleKey(tcell.KeyRune, 'r')
	assert.Equal(t, game.PhaseSelect, s.Phase)

	h.handleKey(tcell.KeyRune, '2')
	assert.Equal(t, game.PhaseRunning, s.Phase)
	assert.Equal(t, "aether", s.State.Profile.Name)

	// Slots are ignored mid-run.
	h.handleKey(tcell.KeyRune, '3')
	assert.Equal(t, "aether", s.State.Profile.Name)

	p := s.State.Player
	s.State.Obstacles = append(s.State.Obstacles, game.MovingRect{X: p.X, Y: p.Y, Width: 50, Height: 50})
	require.True(t, s.Tick())

	h.handleKey(tcell.KeyEnter, 0)
	assert.Equal(t, game.PhaseSelect, s.Phase)
	assert.False(t, s.Running())
}

func TestHost_QuitKeys(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		h, _ := newTestHost(t, 4)
		h.handleKey(key, 0)
		assert.True(t, h.quit)
	}
}

func TestHost_MouseDragSteers(t *testing.T) {
	h, s := newTestHost(t, 4)

	// One column is 5 surface units; 12 columns is a 60 unit swipe.
	h.handleMouse(40, 12, tcell.Button1)
	h.handleMouse(28, 12, tcell.Button1)
	assert.True(t, s.Input.Pressed(game.ControlLeft))

	h.handleMouse(28, 12, tcell.ButtonNone)
	assert.Equal(t, game.Controls{}, s.Input.Snapshot())
}

func TestHost_PollHoldsKeysAcrossFrames(t *testing.T) {
	h, s := newTestHost(t, 2)
	ctx := context.Background()

	h.handleKey(tcell.KeyUp, 0)
	require.True(t, h.Poll(ctx))
	require.True(t, h.Poll(ctx))
	assert.True(t, s.Input.Pressed(game.ControlAccelerate))
	require.True(t, h.Poll(ctx))
	assert.False(t, s.Input.Pressed(game.ControlAccelerate))
}

func TestHost_PollStopsOnCancel(t *testing.T) {
	h, _ := newTestHost(t, 2)
	h.ticker.Reset(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, h.Poll(ctx))
}

func TestHost_RunQuitsOnEscape(t *testing.T) {
	h, s := newTestHost(t, 2)
	screen := h.screen.(tcell.SimulationScreen)
	go h.pump()

	screen.InjectKey(tcell.KeyRune, '1', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- game.NewLoop(s).Run(context.Background(), h) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop on escape")
	}
	assert.Equal(t, "luxor", s.State.Profile.Name)
}

func TestHost_PumpReleasedWhenNobodyReads(t *testing.T) {
	h, _ := newTestHost(t, 8)
	for len(h.events) < cap(h.events) {
		h.events <- tcell.NewEventInterrupt(nil)
	}
	h.screen.(tcell.SimulationScreen).InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	exited := make(chan struct{})
	go func() {
		h.pump()
		close(exited)
	}()
	h.stopPump()

	select {
	case <-exited:
	case <-time.After(5 * time.Second):
		t.Fatal("pump still blocked on a full event queue")
	}
}
