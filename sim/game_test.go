package sim_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyraid/asset"
	"github.com/plus3/skyraid/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGameNotStarted(t *testing.T) {
	sink := newRecordingSink()
	g, err := sim.NewGame(sim.Options{Layout: testLayout(), Sink: sink})
	require.NoError(t, err)

	for range 3 {
		assert.ErrorIs(t, g.Tick(), sim.ErrNotStarted)
	}
	assert.Nil(t, g.World())
	assert.Nil(t, g.Stats())
	assert.Equal(t, 0, sink.Len())
}

func TestGameNotStartedWarnsOnce(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	g, err := sim.NewGame(sim.Options{
		Layout:    testLayout(),
		Logger:    zap.New(core),
		ErrorSink: func(error) {},
	})
	require.NoError(t, err)

	for range 5 {
		g.Tick()
	}
	assert.Equal(t, 1, logs.FilterMessage("tick skipped").Len())

	// A failed start is a new state and gets its own warning.
	g.Start(context.Background(), failingLoader{})
	for range 5 {
		g.Tick()
	}
	skipped := logs.FilterMessage("tick skipped").All()
	require.Len(t, skipped, 2)
	assert.Equal(t, "failed", skipped[1].ContextMap()["state"])
}

func TestGameStartFailure(t *testing.T) {
	var reported []error
	sink := newRecordingSink()
	g, err := sim.NewGame(sim.Options{
		Layout:    testLayout(),
		Sink:      sink,
		ErrorSink: func(err error) { reported = append(reported, err) },
	})
	require.NoError(t, err)

	err = g.Start(context.Background(), failingLoader{})
	require.ErrorIs(t, err, sim.ErrAssetsUnavailable)
	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], sim.ErrAssetsUnavailable)

	assert.ErrorIs(t, g.Tick(), sim.ErrNotStarted)
	assert.False(t, g.Running())
	assert.Equal(t, 0, sink.Len())
}

func TestGameStartWithoutCity(t *testing.T) {
	g, err := sim.NewGame(sim.Options{ErrorSink: func(error) {}})
	require.NoError(t, err)

	assert.ErrorIs(t, g.Start(context.Background(), asset.BuiltinLoader{}), sim.ErrNoCity)
	assert.ErrorIs(t, g.Tick(), sim.ErrNotStarted)
}

func TestGameInvalidTuning(t *testing.T) {
	tuning := sim.DefaultTuning()
	tuning.MaxSpeed = tuning.DefaultSpeed - 1

	_, err := sim.NewGame(sim.Options{Tuning: tuning})
	assert.ErrorIs(t, err, sim.ErrInvalidTuning)
}

func TestGameStartRegistersCity(t *testing.T) {
	g, sink := startGame(t, sim.DefaultTuning(), &sim.StaticInput{}, 0.1)
	w := g.World()

	assert.Equal(t, len(w.City.Buildings), sink.CountKind(sim.KindBuilding))
	assert.Equal(t, len(w.City.Roads), sink.CountKind(sim.KindRoad))
	assert.Equal(t, 1, sink.CountKind(sim.KindPlayer))
	assert.True(t, sink.Has(sim.PlayerID))

	assert.ErrorIs(t, g.Start(context.Background(), asset.BuiltinLoader{}), sim.ErrAlreadyStarted)
}

func TestSpawnCap(t *testing.T) {
	tuning := sim.DefaultTuning()
	tuning.EnemyCap = 3
	tuning.SpawnInterval = 1

	g, sink := startGame(t, tuning, &sim.StaticInput{}, 1)
	w := g.World()

	tick(t, g, 1)
	assert.Equal(t, 1, w.Spawner.Total())

	tick(t, g, 9)
	assert.Equal(t, 3, w.Spawner.Total())
	assert.Equal(t, 3, w.Spawner.Live())
	assert.Equal(t, 3, w.Enemies.Len())
	assert.Equal(t, 3, sink.CountKind(sim.KindEnemy))
}

func TestSpawnPlacement(t *testing.T) {
	tuning := sim.DefaultTuning()
	g, _ := startGame(t, tuning, &sim.StaticInput{}, 0)
	w := g.World()

	tick(t, g, 1)
	require.Equal(t, 1, w.Enemies.Len())

	lane, ok := w.City.Lane(tuning.SpawnLane)
	require.True(t, ok)

	for _, e := range w.Enemies.Iter() {
		assert.Equal(t, lane, e.Position[0])
		assert.GreaterOrEqual(t, e.Position[1], tuning.MinAltitude)
		assert.LessOrEqual(t, e.Position[1], tuning.MaxAltitude)
		assert.Equal(t, -(tuning.EnemySpacing + tuning.EnemyBaseOffset), e.Position[2])
		assert.Len(t, e.Parts, len(w.Model.Parts))
	}
}

func TestReloadGating(t *testing.T) {
	tuning := sim.DefaultTuning()
	tuning.EnemyCap = 0

	g, sink := startGame(t, tuning, &sim.StaticInput{Intents: sim.Intents{Shoot: true}}, 0.25)

	// Shots land at 0.25, 0.75, 1.25 and 1.75 seconds.
	tick(t, g, 8)
	assert.Equal(t, 4, sink.byKind[sim.KindProjectile])
}

func TestProjectileExpiry(t *testing.T) {
	tuning := sim.DefaultTuning()
	tuning.EnemyCap = 0

	input := &sim.ScriptedInput{Script: []sim.Intents{{Shoot: true}, {}}}
	g, sink := startGame(t, tuning, input, 0.5)
	w := g.World()

	tick(t, g, 1)
	require.Equal(t, 1, w.Projectiles.Len())
	id := w.Projectiles.Ids()[0]

	// Three more ticks age it to 1.5 seconds.
	tick(t, g, 3)
	assert.True(t, w.Projectiles.Has(id))

	// The fourth reaches 2.0 seconds exactly.
	tick(t, g, 1)
	assert.False(t, w.Projectiles.Has(id))
	assert.False(t, sink.Has(id))
	assert.Equal(t, 1, sink.removes[id])
}

func TestCollisionRemovesBoth(t *testing.T) {
	tuning := sim.DefaultTuning()
	tuning.EnemyCap = 1

	g, sink := startGame(t, tuning, &sim.StaticInput{Intents: sim.Intents{Shoot: true}}, 0.1)
	w := g.World()

	tick(t, g, 1)
	require.Equal(t, 1, w.Enemies.Len())
	enemy := w.Enemies.Ids()[0]
	w.Enemies.Get(enemy).Position = mgl64.Vec3{0, w.Player.Position[1], w.Player.Position[2] - 20}

	var hit sim.Contact
	for range 10 {
		tick(t, g, 1)
		for _, c := range w.Contacts {
			if c.Kind == sim.ContactProjectileEnemy {
				hit = c
			}
		}
		if hit.Kind != 0 {
			break
		}
	}
	require.Equal(t, sim.ContactProjectileEnemy, hit.Kind)
	assert.Equal(t, enemy, hit.B)

	assert.False(t, w.Enemies.Has(enemy))
	assert.False(t, w.Projectiles.Has(hit.A))
	assert.False(t, sink.Has(enemy))
	assert.False(t, sink.Has(hit.A))
	assert.Equal(t, 0, w.Spawner.Live())

	tick(t, g, 5)
	for id, n := range sink.removes {
		assert.Equal(t, 1, n, "entity %d removed %d times", id, n)
	}
	_, _, duplicates := sink.Stats()
	assert.Equal(t, 0, duplicates)
}

func TestEnemyExitBoundary(t *testing.T) {
	tuning := sim.DefaultTuning()
	tuning.SpawnInterval = 0

	g, sink := startGame(t, tuning, &sim.StaticInput{}, 0)
	w := g.World()

	tick(t, g, 2)
	require.Equal(t, 2, w.Enemies.Len())
	ids := w.Enemies.Ids()
	inside, outside := ids[0], ids[1]

	exit := w.Player.Position[2] + tuning.CameraOffsetMargin
	w.Enemies.Get(inside).Position[2] = exit
	w.Enemies.Get(outside).Position[2] = exit + 1e-9

	tick(t, g, 1)
	assert.True(t, w.Enemies.Has(inside))
	assert.False(t, w.Enemies.Has(outside))
	assert.Equal(t, 1, sink.removes[outside])
	assert.Equal(t, 0, sink.removes[inside])
}

func TestPlayerImpactHook(t *testing.T) {
	var impacts []sim.Contact
	sink := newRecordingSink()
	tuning := sim.DefaultTuning()

	g, err := sim.NewGame(sim.Options{
		Tuning:   tuning,
		Layout:   testLayout(),
		Sink:     sink,
		Clock:    &sim.ManualClock{},
		OnImpact: func(c sim.Contact) { impacts = append(impacts, c) },
	})
	require.NoError(t, err)
	require.NoError(t, g.Start(context.Background(), asset.BuiltinLoader{}))
	w := g.World()

	tick(t, g, 1)
	enemy := w.Enemies.Ids()[0]
	w.Enemies.Get(enemy).Position = w.Player.Position

	// Contact persists across ticks but is reported once.
	tick(t, g, 3)
	require.Len(t, impacts, 1)
	assert.Equal(t, sim.ContactPlayerEnemy, impacts[0].Kind)
	assert.Equal(t, enemy, impacts[0].B)
	assert.True(t, w.Enemies.Has(enemy))
}

func TestGameStop(t *testing.T) {
	g, sink := startGame(t, sim.DefaultTuning(), &sim.StaticInput{Intents: sim.Intents{Shoot: true}}, 0.5)
	tick(t, g, 3)
	require.Positive(t, sink.Len())

	g.Stop()
	assert.Equal(t, 0, sink.Len())
	assert.False(t, g.Running())
	for id, n := range sink.removes {
		assert.Equal(t, 1, n, "entity %d removed %d times", id, n)
	}

	g.Stop()
	assert.NoError(t, g.Tick())
	assert.ErrorIs(t, g.Start(context.Background(), asset.BuiltinLoader{}), sim.ErrStopped)
}

func TestGameRun(t *testing.T) {
	g, _ := startGame(t, sim.DefaultTuning(), &sim.StaticInput{}, 0.01)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := g.Run(ctx, time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, g.Stats().Frames)
}

func TestGameRunAfterStop(t *testing.T) {
	g, _ := startGame(t, sim.DefaultTuning(), &sim.StaticInput{}, 0.01)
	g.Stop()

	assert.NoError(t, g.Run(context.Background(), time.Millisecond))
}

func TestStatsSystemOrder(t *testing.T) {
	g, _ := startGame(t, sim.DefaultTuning(), &sim.StaticInput{}, 0.1)
	tick(t, g, 2)

	stats := g.Stats()
	names := make([]string, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		names = append(names, s.Name)
		assert.Equal(t, int64(2), s.ExecutionCount)
	}
	assert.Equal(t, []string{
		"SpawnSystem",
		"MovementSystem",
		"CollisionSystem",
		"LifecycleSystem",
		"CameraSystem",
		"AnimationSystem",
	}, names)
	assert.Equal(t, uint64(2), stats.Frames)
}
