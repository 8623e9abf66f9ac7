// Package sim is the frame-driven simulation core: the player aircraft, enemy
// waves, projectiles and their collisions over a static city.
//
// A Game owns one World and an ecs.Scheduler that runs, in order, the spawn,
// movement, collision, lifecycle, camera and animation systems. Removals queued
// during a tick are applied when the tick ends.
package sim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/skyraid/asset"
	"github.com/plus3/skyraid/city"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/scene"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

type gameState uint8

const (
	stateIdle gameState = iota
	stateRunning
	stateFailed
	stateStopped
)

func (s gameState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	case stateFailed:
		return "failed"
	case stateStopped:
		return "stopped"
	}
	return "unknown"
}

// Options configures a Game. Zero fields fall back to defaults.
type Options struct {
	Tuning Tuning
	Layout *city.Layout
	// Sink receives visual add/remove calls. Defaults to a fresh scene.Graph.
	Sink  SceneSink
	Input InputProvider
	// Clock supplies the per-tick delta. Defaults to a WallClock.
	Clock  Clock
	Logger *zap.Logger
	// Meter defaults to the global OpenTelemetry meter.
	Meter metric.Meter
	// ErrorSink receives errors that stop the game from starting.
	// Defaults to logging them at error level.
	ErrorSink func(error)
	// OnImpact is called when the player starts touching an enemy or a building.
	OnImpact ImpactHandler
	// Lanes picks enemy lanes. Defaults to FixedLane(Tuning.SpawnLane), or
	// RandomLane when Tuning.RandomLanes is set.
	Lanes LaneSelector
	Rand  *rand.Rand
}

// Game is one play session.
type Game struct {
	opts    Options
	log     *zap.Logger
	metrics *metrics

	world     *World
	scheduler *ecs.Scheduler
	lifecycle *LifecycleSystem

	state  gameState
	warned gameState
	ticks  uint64
}

// NewGame validates opts and prepares a session. Nothing is created until Start.
func NewGame(opts Options) (*Game, error) {
	if opts.Tuning == (Tuning{}) {
		opts.Tuning = DefaultTuning()
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Sink == nil {
		opts.Sink = scene.NewGraph()
	}
	if opts.Input == nil {
		opts.Input = &StaticInput{}
	}
	if opts.Clock == nil {
		opts.Clock = NewWallClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Lanes == nil {
		if opts.Tuning.RandomLanes {
			opts.Lanes = RandomLane{}
		} else {
			opts.Lanes = FixedLane(opts.Tuning.SpawnLane)
		}
	}

	m, err := newMetrics(opts.Meter)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:    opts,
		log:     opts.Logger,
		metrics: m,
		warned:  stateRunning,
	}
	if g.opts.ErrorSink == nil {
		g.opts.ErrorSink = func(err error) {
			g.log.Error("game failed to start", zap.Error(err))
		}
	}
	return g, nil
}

// Start loads the model, creates the player and registers the city with the
// sink. On failure the error is also passed to the error sink and the game stays
// inert: Tick keeps returning ErrNotStarted.
func (g *Game) Start(ctx context.Context, loader asset.Loader) error {
	switch g.state {
	case stateRunning:
		return ErrAlreadyStarted
	case stateStopped:
		return ErrStopped
	}

	if g.opts.Layout == nil {
		return g.fail(ErrNoCity)
	}

	provider, err := loader.Load(ctx)
	if err != nil {
		return g.fail(fmt.Errorf("%w: %w", ErrAssetsUnavailable, err))
	}

	w := newWorld(g.opts.Tuning, g.opts.Layout, g.opts.Sink, g.log, g.metrics)
	w.Model = provider.Model()
	w.Player = newPlayer(g.opts.Tuning)
	w.Spawner = NewSpawnScheduler(g.opts.Tuning, g.opts.Layout.Lanes, g.opts.Lanes, g.opts.Rand)
	w.Animation = newAnimator(provider, g.log)
	w.Camera.Follow(w.Player.Position, g.opts.Tuning.CameraOffset, 1, 1)
	w.addStaticVisuals()

	g.lifecycle = &LifecycleSystem{world: w, Fire: NewFireControl()}

	g.scheduler = ecs.NewScheduler(w)
	g.scheduler.Register(&SpawnSystem{world: w})
	g.scheduler.Register(&MovementSystem{world: w})
	g.scheduler.Register(newCollisionSystem(w, g.opts.OnImpact))
	g.scheduler.Register(g.lifecycle)
	g.scheduler.Register(&CameraSystem{world: w})
	g.scheduler.Register(&AnimationSystem{world: w})

	g.world = w
	g.setState(stateRunning)
	g.log.Info("game started",
		zap.String("model", w.Model.Name),
		zap.Int("buildings", len(w.City.Buildings)),
		zap.Int("lanes", len(w.City.Lanes)),
	)
	return nil
}

func (g *Game) fail(err error) error {
	g.setState(stateFailed)
	g.opts.ErrorSink(err)
	return err
}

func (g *Game) setState(s gameState) {
	g.state = s
	g.warned = stateRunning
}

// Tick runs one full frame. Before Start (or after a failed Start) it logs a
// warning once and returns ErrNotStarted without touching any state. After
// Stop it is a no-op.
func (g *Game) Tick() error {
	switch g.state {
	case stateRunning:
	case stateStopped:
		return nil
	default:
		if g.warned != g.state {
			g.warned = g.state
			g.log.Warn("tick skipped", zap.Stringer("state", g.state))
		}
		return ErrNotStarted
	}

	g.world.Input = g.opts.Input.Snapshot()
	dt := g.opts.Clock.Delta()

	start := time.Now()
	g.scheduler.Once(dt)
	g.metrics.tickDuration.Record(context.Background(), time.Since(start).Seconds())
	g.ticks++
	return nil
}

// Run ticks on a fixed interval until ctx is cancelled or Stop is called.
func (g *Game) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if g.state == stateStopped {
				return nil
			}
			if err := g.Tick(); err != nil {
				return err
			}
		}
	}
}

// Stop halts the session and removes every visual it registered. Calling it
// more than once is safe.
func (g *Game) Stop() {
	if g.state == stateStopped {
		return
	}
	prev := g.state
	g.setState(stateStopped)
	if prev != stateRunning {
		return
	}

	g.world.teardown()
	g.world.Animation.Release()
	g.log.Info("game stopped",
		zap.Uint64("ticks", g.ticks),
		zap.Int("enemiesSpawned", g.world.Spawner.Total()),
		zap.Int("shots", g.lifecycle.Fire.Shots()),
	)
}

// Running reports whether the game has started and not been stopped.
func (g *Game) Running() bool {
	return g.state == stateRunning
}

// World returns the live simulation state, or nil before Start.
func (g *Game) World() *World {
	return g.world
}

// Stats returns the scheduler's per-system timings, or nil before Start.
func (g *Game) Stats() *ecs.SchedulerStats {
	if g.scheduler == nil {
		return nil
	}
	return g.scheduler.GetStats()
}
