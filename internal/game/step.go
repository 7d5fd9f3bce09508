package game

import "math"

// Spawner adds new entities to a running state once per tick.
type Spawner interface {
	Spawn(s *GameState)
}

// Step advances a running state by one tick and reports whether the tick
// ended the run. A stopped state is left untouched.
func Step(s *GameState, c Controls, spawner Spawner, metrics *RunMetrics) bool {
	if !s.Run.Running {
		return false
	}
	p := &s.Player

	// Steering.
	maxX := s.Width - p.Width
	if c.Left && p.X > 0 {
		p.X -= SteerStep
	}
	if c.Right && p.X < maxX {
		p.X += SteerStep
	}
	p.X = clampF(p.X, 0, maxX)

	// Throttle and brake are independent; both may apply in one tick.
	if c.Accelerate {
		p.Speed = math.Min(p.Speed+p.Acceleration, p.MaxSpeed)
	} else {
		p.Speed = math.Max(p.Speed-CoastDecel, 0)
	}
	if c.Brake {
		p.Speed = math.Max(p.Speed-BrakeDecel, 0)
	}
	p.Speed = clampF(p.Speed, 0, p.MaxSpeed)

	s.Run.RoadOffset += p.Speed
	if s.Run.RoadOffset > s.Height {
		s.Run.RoadOffset = 0
	}

	s.Run.Distance += p.Speed
	s.Run.Score = ComputeScore(s.Run.Distance, p.Speed)

	if spawner != nil {
		spawner.Spawn(s)
	}

	for i := range s.Obstacles {
		s.Obstacles[i].Y += p.Speed
	}
	for i := range s.Opponents {
		s.Opponents[i].Y += s.Opponents[i].Speed
	}

	var pruned int
	s.Obstacles, pruned = pruneOffscreen(s.Obstacles, s.Height)
	metrics.AddPruned(pruned)
	s.Opponents, pruned = pruneOffscreen(s.Opponents, s.Height)
	metrics.AddPruned(pruned)

	if collides(p.Bounds(), s.Obstacles) || collides(p.Bounds(), s.Opponents) {
		s.Run.Running = false
		return true
	}
	return false
}

// ComputeScore derives the score from the current distance and speed.
func ComputeScore(distance, speed float64) int {
	return int(math.Floor(distance/ScoreDistanceDiv)) + int(math.Floor(speed*ScoreSpeedMul))
}

// pruneOffscreen drops entities at or past the bottom edge, in place.
func pruneOffscreen(list []MovingRect, height float64) ([]MovingRect, int) {
	kept := list[:0]
	for _, m := range list {
		if m.Y < height {
			kept = append(kept, m)
		}
	}
	return kept, len(list) - len(kept)
}

func collides(r Rect, list []MovingRect) bool {
	for i := range list {
		if r.Intersects(list[i].Bounds()) {
			return true
		}
	}
	return false
}
