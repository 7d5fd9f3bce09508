// Package desktop hosts the game in a glfw window drawn with OpenGL.
package desktop

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"roadrush/internal/desktop/batch"
	"roadrush/internal/game"
)

type Options struct {
	Title string
	// Scale multiplies the surface size to get the window size.
	Scale float64
}

// Host runs the loop in a window. It implements game.Host.
type Host struct {
	window  *glfw.Window
	rend    *Renderer
	batch   *batch.Batch
	input   *Input
	session *game.Session
	log     *zap.SugaredLogger
}

func (h *Host) Poll(ctx context.Context) bool {
	glfw.PollEvents()
	if ctx.Err() != nil || h.window.ShouldClose() {
		return false
	}
	if h.input.JustPressed(h.window, glfw.KeyEscape) {
		return false
	}

	s := h.session
	switch s.Phase {
	case game.PhaseSelect:
		for i, key := range []glfw.Key{glfw.Key1, glfw.Key2, glfw.Key3} {
			if h.input.JustPressed(h.window, key) {
				if err := s.PickCar(i + 1); err != nil {
					h.log.Debugw("pick car", "error", err)
				}
			}
		}
	case game.PhaseGameOver:
		r := h.input.JustPressed(h.window, glfw.KeyR)
		enter := h.input.JustPressed(h.window, glfw.KeyEnter)
		if r || enter {
			if err := s.Restart(); err != nil {
				h.log.Debugw("restart", "error", err)
			}
		}
	}
	return true
}

func (h *Host) Surface() game.Surface {
	h.batch.SetFramebuffer(h.window.GetFramebufferSize())
	return h.batch
}

// Present uploads the recorded frame and swaps buffers; SwapInterval paces the loop.
func (h *Host) Present() error {
	fbW, fbH := h.window.GetFramebufferSize()
	h.rend.Draw(h.batch, fbW, fbH)
	h.window.SwapBuffers()
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// Run opens the window and plays until it closes or ctx ends.
// It must be called from the main goroutine.
func Run(ctx context.Context, session *game.Session, opts Options, log *zap.SugaredLogger) error {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if opts.Title == "" {
		opts.Title = "Road Rush"
	}
	if !(opts.Scale > 0) {
		opts.Scale = 1
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	sw, sh := session.State.Width, session.State.Height
	winW := int(math.Round(sw * opts.Scale))
	winH := int(math.Round(sh * opts.Scale))
	window, err := openWindow(opts.Title, winW, winH)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	atlas := batch.NewAtlas()
	rend, err := NewRenderer(atlas)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	b := batch.New(atlas, sw, sh)
	in := NewInput(session.Input)
	in.Attach(window, b)

	fbW, fbH := window.GetFramebufferSize()
	log.Infow("desktop host ready",
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
		"window", fmt.Sprintf("%dx%d", winW, winH),
		"framebuffer", fmt.Sprintf("%dx%d", fbW, fbH))

	h := &Host{window: window, rend: rend, batch: b, input: in, session: session, log: log}
	return game.NewLoop(session).Run(ctx, h)
}
