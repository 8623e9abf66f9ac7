package sim

import "github.com/plus3/skyraid/ecs"

// MovementSystem integrates the player from the tick's input snapshot, then
// advances enemies and projectiles along their fixed velocities.
type MovementSystem struct {
	world *World
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.world
	dt := frame.DeltaTime

	w.Player.Integrate(dt, w.Input, w.Tuning)
	w.Player.Drift(dt)

	for _, e := range w.Enemies.Iter() {
		e.Position[2] += w.Tuning.EnemySpeed * dt
		e.AnimTime += dt
	}

	for _, p := range w.Projectiles.Iter() {
		p.Step(dt)
	}
}
