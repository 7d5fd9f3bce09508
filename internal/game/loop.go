package game

import (
	"context"
	"fmt"
)

// Host supplies frames and input to the loop.
type Host interface {
	// Poll pumps pending input and blocks until the next frame is due.
	// It returns false once the host wants to quit.
	Poll(ctx context.Context) bool
	Surface() Surface
	Present() error
}

// Loop pairs one simulation tick with one drawn frame.
type Loop struct {
	Session *Session
}

func NewLoop(s *Session) *Loop {
	return &Loop{Session: s}
}

// Frame ticks the simulation once when running and draws the current phase.
// The tick that ends a run is the last one until a new car is picked.
func (l *Loop) Frame(surf Surface) {
	s := l.Session
	if s.Phase == PhaseRunning {
		s.Tick()
	}
	switch s.Phase {
	case PhaseSelect:
		RenderSelect(surf)
	case PhaseRunning:
		Render(surf, s.State)
	case PhaseGameOver:
		RenderGameOver(surf, s.FinalScore)
	}
}

// Run drives frames until the host quits or ctx is done.
func (l *Loop) Run(ctx context.Context, host Host) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if !host.Poll(ctx) {
			return nil
		}
		l.Frame(host.Surface())
		if err := host.Present(); err != nil {
			return fmt.Errorf("present: %w", err)
		}
	}
}
