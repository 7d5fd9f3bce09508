package game

import "sync/atomic"

// RunMetrics records per-run counters for logging and debugging.
// All methods are safe on a nil receiver.
type RunMetrics struct {
	Ticks            int64
	ObstaclesSpawned int64
	OpponentsSpawned int64
	SpawnsCapped     int64 // successful trials dropped at the entity cap
	Pruned           int64
	TotalTickNs      int64
}

func (m *RunMetrics) IncObstacle() {
	if m != nil {
		atomic.AddInt64(&m.ObstaclesSpawned, 1)
	}
}

func (m *RunMetrics) IncOpponent() {
	if m != nil {
		atomic.AddInt64(&m.OpponentsSpawned, 1)
	}
}

func (m *RunMetrics) IncCapped() {
	if m != nil {
		atomic.AddInt64(&m.SpawnsCapped, 1)
	}
}

func (m *RunMetrics) AddPruned(n int) {
	if m != nil && n > 0 {
		atomic.AddInt64(&m.Pruned, int64(n))
	}
}

func (m *RunMetrics) AddTick(ns int64) {
	if m == nil {
		return
	}
	atomic.AddInt64(&m.Ticks, 1)
	atomic.AddInt64(&m.TotalTickNs, ns)
}

func (m *RunMetrics) Reset() {
	if m == nil {
		return
	}
	atomic.StoreInt64(&m.Ticks, 0)
	atomic.StoreInt64(&m.ObstaclesSpawned, 0)
	atomic.StoreInt64(&m.OpponentsSpawned, 0)
	atomic.StoreInt64(&m.SpawnsCapped, 0)
	atomic.StoreInt64(&m.Pruned, 0)
	atomic.StoreInt64(&m.TotalTickNs, 0)
}

// Snapshot returns a read-only copy keyed for structured logging.
func (m *RunMetrics) Snapshot() map[string]any {
	if m == nil {
		return map[string]any{}
	}
	tick := atomic.LoadInt64(&m.Ticks)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgMs float64
	if tick > 0 {
		avgMs = float64(total) / float64(tick) / 1e6
	}
	return map[string]any{
		"ticks":             tick,
		"obstacles_spawned": atomic.LoadInt64(&m.ObstaclesSpawned),
		"opponents_spawned": atomic.LoadInt64(&m.OpponentsSpawned),
		"spawns_capped":     atomic.LoadInt64(&m.SpawnsCapped),
		"pruned":            atomic.LoadInt64(&m.Pruned),
		"avg_tick_ms":       avgMs,
	}
}
