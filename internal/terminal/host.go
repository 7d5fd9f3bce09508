package terminal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"roadrush/internal/game"
)

type Options struct {
	FrameMillis   int
	KeyHoldFrames int
}

// Host runs the loop against a tcell screen. It implements game.Host.
type Host struct {
	screen  tcell.Screen
	surf    *CellSurface
	session *game.Session
	keys    *keyHold
	touch   *game.TouchTracker
	log     *zap.SugaredLogger

	events   chan tcell.Event
	done     chan struct{}
	stopOnce sync.Once
	ticker   *time.Ticker
	quit     bool
}

// NewHost wraps an initialised screen. Call Close when done.
func NewHost(screen tcell.Screen, session *game.Session, opts Options, log *zap.SugaredLogger) *Host {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if opts.FrameMillis <= 0 {
		opts.FrameMillis = 16
	}
	w, h := session.State.Width, session.State.Height
	screen.EnableMouse()
	screen.HideCursor()
	return &Host{
		screen:  screen,
		surf:    NewCellSurface(screen, w, h),
		session: session,
		keys:    newKeyHold(session.Input, opts.KeyHoldFrames),
		touch:   game.NewTouchTracker(session.Input),
		log:     log,
		events:  make(chan tcell.Event, 100),
		done:    make(chan struct{}),
		ticker:  time.NewTicker(time.Duration(opts.FrameMillis) * time.Millisecond),
	}
}

// pump forwards screen events until the screen is finalised or the host
// stops reading them.
func (h *Host) pump() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.done:
			return
		}
	}
}

func (h *Host) stopPump() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *Host) Poll(ctx context.Context) bool {
	h.keys.advance()
	for {
		select {
		case <-ctx.Done():
			return false
		case ev := <-h.events:
			h.handle(ev)
			if h.quit {
				return false
			}
		case <-h.ticker.C:
			return true
		}
	}
}

func (h *Host) Surface() game.Surface { return h.surf }

func (h *Host) Present() error {
	h.screen.Show()
	return nil
}

func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		h.surf.Resize()
		h.screen.Sync()
	}
}

func (h *Host) handleKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.quit = true
		return
	case tcell.KeyEnter:
		h.restart()
		return
	}
	if c, ok := controlFor(key, r); ok {
		h.keys.press(c)
		return
	}
	if key != tcell.KeyRune {
		return
	}
	switch r {
	case '1', '2', '3':
		if h.session.Phase == game.PhaseSelect {
			if err := h.session.PickCar(int(r - '0')); err != nil {
				h.log.Debugw("pick car", "error", err)
			}
		}
	case 'r', 'R':
		h.restart()
	case 'q', 'Q':
		h.quit = true
	}
}

func (h *Host) restart() {
	if h.session.Phase != game.PhaseGameOver {
		return
	}
	h.keys.reset()
	if err := h.session.Restart(); err != nil {
		h.log.Debugw("restart", "error", err)
	}
}

func (h *Host) handleMouse(col, row int, buttons tcell.ButtonMask) {
	x, y := h.surf.ToSurface(col, row)
	switch {
	case buttons&tcell.Button1 != 0 && !h.touch.Active():
		h.touch.Begin(x, y)
	case buttons&tcell.Button1 != 0:
		h.touch.Move(x, y)
	case h.touch.Active():
		h.touch.End()
		h.keys.reset()
	}
}

// Close stops the ticker, releases the event pump and finalises the screen.
func (h *Host) Close() {
	h.stopPump()
	h.ticker.Stop()
	h.screen.Fini()
}

// Run plays on the real terminal until the player quits or ctx ends.
func Run(ctx context.Context, session *game.Session, opts Options, log *zap.SugaredLogger) error {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	h := NewHost(screen, session, opts, log)
	defer h.Close()

	cols, rows := h.surf.Grid()
	log.Infow("terminal host ready", "cols", cols, "rows", rows, "frame_ms", opts.FrameMillis)

	go h.pump()
	return game.NewLoop(session).Run(ctx, h)
}
