package game

// SpawnPolicy rolls two independent Bernoulli trials per tick and appends
// the winners above the visible top edge.
type SpawnPolicy struct {
	ObstacleChance   float64
	OpponentChance   float64
	OpponentMinSpeed float64
	OpponentMaxSpeed float64
	MaxObstacles     int // <= 0 means unbounded
	MaxOpponents     int

	rng     *Rand
	metrics *RunMetrics
}

func NewSpawnPolicy(cfg Settings, metrics *RunMetrics) *SpawnPolicy {
	return &SpawnPolicy{
		ObstacleChance:   cfg.ObstacleChance,
		OpponentChance:   cfg.OpponentChance,
		OpponentMinSpeed: cfg.OpponentMinSpeed,
		OpponentMaxSpeed: cfg.OpponentMaxSpeed,
		MaxObstacles:     cfg.MaxObstacles,
		MaxOpponents:     cfg.MaxOpponents,
		rng:              NewRand(cfg.Seed ^ 0x5EA5EED),
		metrics:          metrics,
	}
}

// Spawn runs one tick of the policy against s.
func (sp *SpawnPolicy) Spawn(s *GameState) {
	if sp.rng.Chance(sp.ObstacleChance) {
		x := sp.rng.RangeF(0, s.Width-ObstacleWidth)
		if sp.MaxObstacles > 0 && len(s.Obstacles) >= sp.MaxObstacles {
			sp.metrics.IncCapped()
		} else {
			s.Obstacles = append(s.Obstacles, MovingRect{
				X: x, Y: -ObstacleHeight,
				Width: ObstacleWidth, Height: ObstacleHeight,
			})
			sp.metrics.IncObstacle()
		}
	}
	if sp.rng.Chance(sp.OpponentChance) {
		x := sp.rng.RangeF(0, s.Width-OpponentWidth)
		speed := sp.rng.RangeF(sp.OpponentMinSpeed, sp.OpponentMaxSpeed)
		if sp.MaxOpponents > 0 && len(s.Opponents) >= sp.MaxOpponents {
			sp.metrics.IncCapped()
		} else {
			s.Opponents = append(s.Opponents, MovingRect{
				X: x, Y: -OpponentHeight,
				Width: OpponentWidth, Height: OpponentHeight,
				Speed: speed,
			})
			sp.metrics.IncOpponent()
		}
	}
}
