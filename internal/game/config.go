package game

// Surface defaults (in surface units, one unit per canvas pixel).
// Used whenever a host cannot report its size.
const (
	DefaultSurfaceWidth  = 400
	DefaultSurfaceHeight = 600
)

// Player car geometry.
const (
	PlayerWidth      = 50.0
	PlayerHeight     = 80.0
	PlayerBottomGap  = 100.0 // distance from the surface bottom to the car's top edge
	SteerStep        = 5.0
	CoastDecel       = 0.1
	BrakeDecel       = 0.2
	ScoreDistanceDiv = 10.0
	ScoreSpeedMul    = 10.0
)

// Spawned entity geometry.
const (
	ObstacleWidth  = 50.0
	ObstacleHeight = 50.0
	OpponentWidth  = 50.0
	OpponentHeight = 80.0
)

// Spawn policy defaults.
const (
	ObstacleChance   = 0.01
	OpponentChance   = 0.005
	OpponentMinSpeed = 2.0
	OpponentMaxSpeed = 5.0
	MaxObstacles     = 32
	MaxOpponents     = 16
)

// Road layout.
const (
	RoadMargin    = 100.0
	DashPeriod    = 50.0
	DashLength    = 25.0
	DashWidth     = 5.0
	HUDTextX      = 10.0
	HUDScoreY     = 30.0
	HUDSpeedY     = 60.0
	TouchSwipeMin = 50.0
)

// Settings carries the tunables a host may override from configuration.
// The zero value is not usable; start from DefaultSettings.
type Settings struct {
	SurfaceWidth  float64
	SurfaceHeight float64

	ObstacleChance   float64
	OpponentChance   float64
	OpponentMinSpeed float64
	OpponentMaxSpeed float64
	MaxObstacles     int
	MaxOpponents     int

	Seed uint64
}

func DefaultSettings() Settings {
	return Settings{
		SurfaceWidth:     DefaultSurfaceWidth,
		SurfaceHeight:    DefaultSurfaceHeight,
		ObstacleChance:   ObstacleChance,
		OpponentChance:   OpponentChance,
		OpponentMinSpeed: OpponentMinSpeed,
		OpponentMaxSpeed: OpponentMaxSpeed,
		MaxObstacles:     MaxObstacles,
		MaxOpponents:     MaxOpponents,
	}
}

// surfaceSize returns the configured surface size, falling back to the
// defaults for non-positive values.
func (s Settings) surfaceSize() (float64, float64) {
	w, h := s.SurfaceWidth, s.SurfaceHeight
	if !(w > 0) {
		w = DefaultSurfaceWidth
	}
	if !(h > 0) {
		h = DefaultSurfaceHeight
	}
	return w, h
}
