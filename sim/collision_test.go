package sim_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyraid/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stillTuning keeps enemies parked and lets the player fire every tick.
func stillTuning() sim.Tuning {
	tuning := sim.DefaultTuning()
	tuning.EnemySpeed = 0
	tuning.ReloadInterval = 0
	return tuning
}

func countContacts(w *sim.World, kind sim.ContactKind) int {
	n := 0
	for _, c := range w.Contacts {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func TestCollisionTwoProjectilesOneEnemy(t *testing.T) {
	tuning := stillTuning()
	tuning.EnemyCap = 1

	input := &sim.StaticInput{Intents: sim.Intents{Shoot: true}}
	g, sink := startGame(t, tuning, input, 0.1)
	w := g.World()

	tick(t, g, 2)
	require.Equal(t, 1, w.Enemies.Len())
	require.Equal(t, 2, w.Projectiles.Len())
	input.Intents.Shoot = false

	target := mgl64.Vec3{500, w.Player.Position[1], w.Player.Position[2] - 50}
	enemy := w.Enemies.Ids()[0]
	w.Enemies.Get(enemy).Position = target

	shots := w.Projectiles.Ids()
	for _, id := range shots {
		p := w.Projectiles.Get(id)
		p.Position = target
		p.Velocity = mgl64.Vec3{}
	}

	tick(t, g, 1)
	assert.Equal(t, 2, countContacts(w, sim.ContactProjectileEnemy))
	assert.False(t, w.Enemies.Has(enemy))
	assert.Equal(t, 0, w.Projectiles.Len())

	assert.Equal(t, 1, sink.removes[enemy])
	for _, id := range shots {
		assert.Equal(t, 1, sink.removes[id])
	}
	_, _, duplicates := sink.Stats()
	assert.Equal(t, 0, duplicates)
}

func TestCollisionOneProjectileTwoEnemies(t *testing.T) {
	tuning := stillTuning()
	tuning.EnemyCap = 2
	tuning.SpawnInterval = 0

	input := &sim.StaticInput{Intents: sim.Intents{Shoot: true}}
	g, sink := startGame(t, tuning, input, 0.1)
	w := g.World()

	tick(t, g, 2)
	require.Equal(t, 2, w.Enemies.Len())
	require.Equal(t, 2, w.Projectiles.Len())
	input.Intents.Shoot = false

	target := mgl64.Vec3{500, w.Player.Position[1], w.Player.Position[2] - 50}
	enemies := w.Enemies.Ids()
	for _, id := range enemies {
		w.Enemies.Get(id).Position = target
	}

	shots := w.Projectiles.Ids()
	shooter, bystander := shots[0], shots[1]
	p := w.Projectiles.Get(shooter)
	p.Position = target
	p.Velocity = mgl64.Vec3{}
	p = w.Projectiles.Get(bystander)
	p.Position = mgl64.Vec3{-500, target[1], target[2]}
	p.Velocity = mgl64.Vec3{}

	tick(t, g, 1)
	assert.Equal(t, 2, countContacts(w, sim.ContactProjectileEnemy))
	assert.Equal(t, 0, w.Enemies.Len())
	assert.Equal(t, 0, w.Spawner.Live())
	assert.False(t, w.Projectiles.Has(shooter))
	assert.True(t, w.Projectiles.Has(bystander))

	assert.Equal(t, 1, sink.removes[shooter])
	for _, id := range enemies {
		assert.Equal(t, 1, sink.removes[id])
	}
	_, _, duplicates := sink.Stats()
	assert.Equal(t, 0, duplicates)
}
