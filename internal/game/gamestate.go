package game

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var ErrInvalidPhase = errors.New("invalid phase")

// Phase is the UI phase wrapped around a run.
type Phase int

const (
	PhaseSelect   Phase = iota // car selection menu
	PhaseRunning               // main gameplay
	PhaseGameOver              // collision happened, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseSelect:
		return "select"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Session owns the game state, its input and the run lifecycle.
// It is driven from a single goroutine.
type Session struct {
	Phase      Phase
	State      *GameState
	Input      *InputState
	Bus        *EventBus
	Metrics    *RunMetrics
	FinalScore int

	spawner  Spawner
	log      *zap.SugaredLogger
	throttle bool
}

func NewSession(cfg Settings, bus *EventBus, log *zap.SugaredLogger) *Session {
	if bus == nil {
		bus = NewEventBus()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	w, h := cfg.surfaceSize()
	metrics := &RunMetrics{}
	return &Session{
		Phase:   PhaseSelect,
		State:   NewGameState(w, h),
		Input:   NewInputState(),
		Bus:     bus,
		Metrics: metrics,
		spawner: NewSpawnPolicy(cfg, metrics),
		log:     log,
	}
}

// SetSpawner replaces the spawn policy.
func (s *Session) SetSpawner(sp Spawner) {
	s.spawner = sp
}

// Running reports whether a run is in progress.
func (s *Session) Running() bool {
	return s.State.Run.Running
}

// SelectCar starts a run with the given profile. Only valid in PhaseSelect.
func (s *Session) SelectCar(p CarProfile) error {
	if s.Phase != PhaseSelect {
		return fmt.Errorf("select car in %s: %w", s.Phase, ErrInvalidPhase)
	}
	s.Metrics.Reset()
	s.State.Start(p)
	s.Phase = PhaseRunning
	s.throttle = false
	s.FinalScore = 0
	s.log.Infow("run started", "car", p.Name, "max_speed", p.MaxSpeed, "acceleration", p.Acceleration)
	s.Bus.Emit(Event{Type: EventRunStarted, Car: p.Name})
	return nil
}

// PickCar starts a run with the car in the given 1-based menu slot.
func (s *Session) PickCar(slot int) error {
	p, err := CarByIndex(slot)
	if err != nil {
		return err
	}
	return s.SelectCar(p)
}

func (s *Session) SelectCarByName(name string) error {
	p, err := CarByName(name)
	if err != nil {
		return err
	}
	return s.SelectCar(p)
}

// Tick runs one simulation step when running and reports whether it ended the run.
func (s *Session) Tick() bool {
	if s.Phase != PhaseRunning {
		return false
	}
	start := time.Now()
	c := s.Input.Snapshot()
	ended := Step(s.State, c, s.spawner, s.Metrics)
	s.Metrics.AddTick(time.Since(start).Nanoseconds())

	if ended {
		s.gameOver()
		return true
	}
	if c.Accelerate != s.throttle {
		s.throttle = c.Accelerate
		data := 0
		if c.Accelerate {
			data = 1
		}
		s.Bus.Emit(Event{Type: EventThrottle, Car: s.State.Profile.Name, Data: data})
	}
	return false
}

func (s *Session) gameOver() {
	s.Phase = PhaseGameOver
	s.FinalScore = s.State.Run.Score
	s.throttle = false
	s.State.Obstacles = s.State.Obstacles[:0]
	s.State.Opponents = s.State.Opponents[:0]
	s.log.Infow("game over",
		"car", s.State.Profile.Name,
		"score", s.State.Run.Score,
		"distance", s.State.Run.Distance,
		"metrics", s.Metrics.Snapshot(),
	)
	s.Bus.Emit(Event{Type: EventGameOver, Car: s.State.Profile.Name, Data: s.State.Run.Score})
}

// Restart leaves the game-over screen and returns to car selection.
// The run stays stopped until a car is picked again.
func (s *Session) Restart() error {
	if s.Phase != PhaseGameOver {
		return fmt.Errorf("restart in %s: %w", s.Phase, ErrInvalidPhase)
	}
	s.State.Reset()
	s.Input.Clear()
	s.Phase = PhaseSelect
	s.log.Debugw("restart")
	s.Bus.Emit(Event{Type: EventRestart})
	return nil
}
