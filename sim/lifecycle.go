package sim

import (
	"context"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/geom"
	"go.uber.org/zap"
)

// FireControl gates shooting on the reload interval.
type FireControl struct {
	lastShot float64
	shots    int
}

// NewFireControl returns a loaded gun: the first trigger pull always fires.
func NewFireControl() FireControl {
	return FireControl{lastShot: math.Inf(-1)}
}

// Trigger reports whether a shot may be fired at time now and, if so, records it.
func (f *FireControl) Trigger(now, reload float64) bool {
	if now-f.lastShot < reload {
		return false
	}
	f.lastShot = now
	f.shots++
	return true
}

// Shots returns the number of shots fired.
func (f *FireControl) Shots() int {
	return f.shots
}

// LifecycleSystem queues removals for hit, expired and departed entities, then
// fires a projectile if the player is shooting. Removals take effect when the
// scheduler flushes the tick's commands.
type LifecycleSystem struct {
	world *World
	Fire  FireControl
}

func (s *LifecycleSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.world
	ctx := context.Background()

	for _, c := range w.Contacts {
		if c.Kind != ContactProjectileEnemy {
			continue
		}
		if frame.Commands.Delete(c.A) {
			w.metrics.projectilesRemoved.Add(ctx, 1, attrHit)
		}
		if frame.Commands.Delete(c.B) {
			w.metrics.enemiesRemoved.Add(ctx, 1, attrHit)
			w.log.Debug("enemy destroyed", zap.Uint64("id", uint64(c.B)), zap.Uint64("projectile", uint64(c.A)))
		}
	}

	for id, p := range w.Projectiles.Iter() {
		if p.TTL <= 0 && frame.Commands.Delete(id) {
			w.metrics.projectilesRemoved.Add(ctx, 1, attrExpired)
		}
	}

	exit := w.Player.Position[2] + w.Tuning.CameraOffsetMargin
	for id, e := range w.Enemies.Iter() {
		if e.Position[2] > exit && frame.Commands.Delete(id) {
			w.metrics.enemiesRemoved.Add(ctx, 1, attrExited)
		}
	}

	if w.Input.Shoot && s.Fire.Trigger(frame.Elapsed, w.Tuning.ReloadInterval) {
		s.fire()
	}
}

func (s *LifecycleSystem) fire() {
	w := s.world
	size := w.Tuning.ProjectileSize

	id := w.spawnProjectile(Projectile{
		Position: w.Player.Nose(w.Tuning.NoseOffset),
		Velocity: Forward.Mul(w.Tuning.ProjectileSpeed),
		TTL:      w.Tuning.ProjectileTTL,
		Bounds:   geom.NewBounds(geom.NewBox(mgl64.Vec3{}, mgl64.Vec3{size, size, size})),
	})
	w.metrics.projectilesFired.Add(context.Background(), 1)
	w.log.Debug("projectile fired", zap.Uint64("id", uint64(id)))
}
