package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyraid/ecs"
)

// Camera is the elastic chase camera. Renderers read it; the simulation never
// depends on it.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
}

// View returns the look-at matrix for the current camera state.
func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, mgl64.Vec3{0, 1, 0})
}

// Follow moves the camera a fraction of the way toward the player's chase point.
// The fraction is dt*elasticity, capped at 1 so a long frame snaps instead of overshooting.
func (c *Camera) Follow(player mgl64.Vec3, offset mgl64.Vec3, elasticity, dt float64) {
	desired := player.Add(offset)
	f := min(1, dt*elasticity)
	c.Position = c.Position.Add(desired.Sub(c.Position).Mul(f))
	c.Target = player
}

// CameraSystem trails the player after the core systems have run.
type CameraSystem struct {
	world *World
}

func (s *CameraSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.world
	w.Camera.Follow(w.Player.Position, w.Tuning.CameraOffset, w.Tuning.CameraElasticity, frame.DeltaTime)
}
