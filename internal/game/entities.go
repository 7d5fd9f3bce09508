package game

// Player is the car under user control.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // 0..MaxSpeed, units per tick
	Acceleration  float64
	MaxSpeed      float64
}

func NewPlayer(p CarProfile, surfaceW, surfaceH float64) Player {
	return Player{
		X:            surfaceW/2 - PlayerWidth/2,
		Y:            surfaceH - PlayerBottomGap,
		Width:        PlayerWidth,
		Height:       PlayerHeight,
		Acceleration: p.Acceleration,
		MaxSpeed:     p.MaxSpeed,
	}
}

func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// MovingRect is an obstacle or opponent.
// Obstacles ignore Speed and scroll with the player.
type MovingRect struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

func (m *MovingRect) Bounds() Rect {
	return Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}
}

// RunState is the per-run scoreboard. Frozen once Running drops to false.
type RunState struct {
	Running    bool
	Score      int
	Distance   float64
	RoadOffset float64
}

// GameState owns every entity of a run.
type GameState struct {
	Profile   CarProfile
	Player    Player
	Obstacles []MovingRect
	Opponents []MovingRect
	Run       RunState

	Width, Height float64
}

func NewGameState(w, h float64) *GameState {
	if !(w > 0) {
		w = DefaultSurfaceWidth
	}
	if !(h > 0) {
		h = DefaultSurfaceHeight
	}
	return &GameState{
		Width:     w,
		Height:    h,
		Obstacles: make([]MovingRect, 0, MaxObstacles),
		Opponents: make([]MovingRect, 0, MaxOpponents),
	}
}

// Start resets the state for a new run with the given car and marks it running.
func (s *GameState) Start(p CarProfile) {
	s.Profile = p
	s.Player = NewPlayer(p, s.Width, s.Height)
	s.Obstacles = s.Obstacles[:0]
	s.Opponents = s.Opponents[:0]
	s.Run = RunState{Running: true}
}

// Reset clears everything back to the pre-selection state.
func (s *GameState) Reset() {
	s.Profile = CarProfile{}
	s.Player = Player{}
	s.Obstacles = s.Obstacles[:0]
	s.Opponents = s.Opponents[:0]
	s.Run = RunState{}
}
