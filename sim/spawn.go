package sim

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyraid/ecs"
	"go.uber.org/zap"
)

// LaneSelector picks the lane a new enemy flies down.
type LaneSelector interface {
	SelectLane(lanes []float64, rng *rand.Rand) int
}

// FixedLane always selects the same lane index, clamped to the available lanes.
type FixedLane int

func (f FixedLane) SelectLane(lanes []float64, _ *rand.Rand) int {
	return min(max(int(f), 0), len(lanes)-1)
}

// RandomLane selects a lane uniformly.
type RandomLane struct{}

func (RandomLane) SelectLane(lanes []float64, rng *rand.Rand) int {
	return rng.IntN(len(lanes))
}

// SpawnPlan describes the enemy MaybeSpawn decided to create.
type SpawnPlan struct {
	Ordinal  int
	Lane     int
	Position mgl64.Vec3
}

// SpawnScheduler paces enemy creation: at most one per SpawnInterval and no
// more than EnemyCap over the whole session.
type SpawnScheduler struct {
	tuning   Tuning
	lanes    []float64
	selector LaneSelector
	rng      *rand.Rand

	lastSpawn float64
	live      int
	total     int
}

// NewSpawnScheduler creates a scheduler whose first MaybeSpawn call succeeds.
func NewSpawnScheduler(t Tuning, lanes []float64, selector LaneSelector, rng *rand.Rand) SpawnScheduler {
	return SpawnScheduler{
		tuning:    t,
		lanes:     lanes,
		selector:  selector,
		rng:       rng,
		lastSpawn: math.Inf(-1),
	}
}

// MaybeSpawn returns the next enemy to create at time now, if any.
// The first call after construction may spawn immediately.
func (s *SpawnScheduler) MaybeSpawn(now float64) (SpawnPlan, bool) {
	if s.total >= s.tuning.EnemyCap || len(s.lanes) == 0 {
		return SpawnPlan{}, false
	}
	if now-s.lastSpawn < s.tuning.SpawnInterval {
		return SpawnPlan{}, false
	}

	lane := s.selector.SelectLane(s.lanes, s.rng)
	altitude := s.tuning.MinAltitude + s.rng.Float64()*(s.tuning.MaxAltitude-s.tuning.MinAltitude)
	depth := float64(s.total+1)*s.tuning.EnemySpacing + s.tuning.EnemyBaseOffset

	plan := SpawnPlan{
		Ordinal:  s.total,
		Lane:     lane,
		Position: mgl64.Vec3{s.lanes[lane], altitude, -depth},
	}

	s.lastSpawn = now
	s.live++
	s.total++
	return plan, true
}

func (s *SpawnScheduler) despawned() {
	if s.live > 0 {
		s.live--
	}
}

// Live returns the number of enemies currently alive.
func (s *SpawnScheduler) Live() int {
	return s.live
}

// Total returns the number of enemies spawned this session.
func (s *SpawnScheduler) Total() int {
	return s.total
}

// SpawnSystem creates at most one enemy per tick.
type SpawnSystem struct {
	world *World
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.world
	plan, ok := w.Spawner.MaybeSpawn(frame.Elapsed)
	if !ok {
		return
	}

	id := w.spawnEnemy(plan)
	w.metrics.enemiesSpawned.Add(context.Background(), 1)
	w.log.Debug("enemy spawned",
		zap.Uint64("id", uint64(id)),
		zap.Int("ordinal", plan.Ordinal),
		zap.Int("lane", plan.Lane),
		zap.Float64("z", plan.Position[2]),
	)
}
