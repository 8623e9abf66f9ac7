package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/geom"
)

// Entity kinds. Each kind owns its own id space.
const (
	KindPlayer ecs.Kind = iota + 1
	KindEnemy
	KindProjectile
	KindBuilding
	KindRoad
)

// enemyYaw turns the model's nose toward +Z, facing the player.
const enemyYaw = math.Pi * 1.5

// PlayerID is the fixed id of the singleton player.
var PlayerID = ecs.NewEntityId(KindPlayer, 0, 0)

// Enemy is one hostile aircraft.
type Enemy struct {
	Position mgl64.Vec3
	Ordinal  int
	Lane     int
	// AnimTime is the animation cursor in seconds; the core only advances it.
	AnimTime float64
	// Parts holds one bounds per model part, refreshed in place each frame.
	Parts []geom.Bounds
}

// Transform returns the enemy's world transform.
func (e *Enemy) Transform(scale float64) geom.Transform {
	return geom.Transform{
		Position: e.Position,
		Rotation: geom.Yaw(enemyYaw),
		Scale:    geom.Uniform(scale),
	}
}

// RefreshBounds reapplies the world transform to every cached part box.
func (e *Enemy) RefreshBounds(transform mgl64.Mat4) {
	for i := range e.Parts {
		e.Parts[i].RefreshBounds(transform)
	}
}

// Box returns the world box enclosing every part.
func (e *Enemy) Box() geom.Box {
	return geom.Union(e.Parts)
}

// Projectile is a bullet in flight.
type Projectile struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	// TTL is the remaining lifetime in seconds.
	TTL    float64
	Bounds geom.Bounds
}

// Step advances the projectile by dt.
func (p *Projectile) Step(dt float64) {
	p.Position = p.Position.Add(p.Velocity.Mul(dt))
	p.TTL -= dt
}

// RefreshBounds translates the cached box to the current position.
func (p *Projectile) RefreshBounds() {
	p.Bounds.RefreshBounds(mgl64.Translate3D(p.Position[0], p.Position[1], p.Position[2]))
}

// BuildingID returns the id of the building at index i of the layout.
func BuildingID(i int) ecs.EntityId {
	return ecs.NewEntityId(KindBuilding, 0, uint32(i))
}

// RoadID returns the id of the road at index i of the layout.
func RoadID(i int) ecs.EntityId {
	return ecs.NewEntityId(KindRoad, 0, uint32(i))
}
