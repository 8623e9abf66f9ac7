package sim

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/geom"
	"go.uber.org/zap"
)

// ContactKind classifies a pair of intersecting boxes.
type ContactKind uint8

const (
	ContactProjectileEnemy ContactKind = iota + 1
	ContactPlayerEnemy
	ContactPlayerBuilding
)

func (k ContactKind) String() string {
	switch k {
	case 0:
		return "none"
	case ContactProjectileEnemy:
		return "projectile-enemy"
	case ContactPlayerEnemy:
		return "player-enemy"
	case ContactPlayerBuilding:
		return "player-building"
	}
	return "unknown"
}

// Contact is one intersection found during a tick. A is the projectile or the
// player; B is the enemy or building.
type Contact struct {
	A    ecs.EntityId
	B    ecs.EntityId
	Kind ContactKind
}

// ImpactHandler is notified when the player starts touching an enemy or a building.
type ImpactHandler func(Contact)

// Intersects reports whether any part of the enemy overlaps box.
func (e *Enemy) Intersects(box geom.Box) bool {
	for i := range e.Parts {
		if e.Parts[i].World.Intersects(box) {
			return true
		}
	}
	return false
}

// CollisionSystem refreshes every world box and records this tick's contacts.
// Every intersecting projectile/enemy pair is recorded; the lifecycle system
// removes both sides. Player contacts are reported once when they begin.
type CollisionSystem struct {
	world    *World
	onImpact ImpactHandler

	touching *intmap.Map[ecs.EntityId, struct{}]
	previous *intmap.Map[ecs.EntityId, struct{}]
}

func newCollisionSystem(w *World, onImpact ImpactHandler) *CollisionSystem {
	return &CollisionSystem{
		world:    w,
		onImpact: onImpact,
		touching: intmap.New[ecs.EntityId, struct{}](16),
		previous: intmap.New[ecs.EntityId, struct{}](16),
	}
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.world
	w.Contacts = w.Contacts[:0]

	w.Player.RefreshBounds()
	for _, e := range w.Enemies.Iter() {
		e.RefreshBounds(e.Transform(w.Tuning.ModelScale).Matrix())
	}
	for _, p := range w.Projectiles.Iter() {
		p.RefreshBounds()
	}

	for pid, p := range w.Projectiles.Iter() {
		for eid, e := range w.Enemies.Iter() {
			if e.Intersects(p.Bounds.World) {
				w.Contacts = append(w.Contacts, Contact{A: pid, B: eid, Kind: ContactProjectileEnemy})
			}
		}
	}

	s.previous, s.touching = s.touching, s.previous
	s.touching.Clear()

	hitbox := w.Player.Hitbox.World
	for eid, e := range w.Enemies.Iter() {
		if e.Intersects(hitbox) {
			s.impact(frame, Contact{A: PlayerID, B: eid, Kind: ContactPlayerEnemy})
		}
	}
	for _, b := range w.City.Buildings {
		if b.Bounds.Intersects(hitbox) {
			s.impact(frame, Contact{A: PlayerID, B: BuildingID(b.Index), Kind: ContactPlayerBuilding})
		}
	}
}

func (s *CollisionSystem) impact(frame *ecs.UpdateFrame, c Contact) {
	w := s.world
	w.Contacts = append(w.Contacts, c)
	s.touching.Put(c.B, struct{}{})

	if _, ongoing := s.previous.Get(c.B); ongoing {
		return
	}

	target := "enemy"
	if c.Kind == ContactPlayerBuilding {
		target = "building"
	}
	w.metrics.impact(target)
	w.log.Info("player impact",
		zap.String("target", target),
		zap.Uint64("id", uint64(c.B)),
		zap.Uint64("tick", frame.Tick),
		zap.Float64("z", w.Player.Position[2]),
	)
	if s.onImpact != nil {
		s.onImpact(c)
	}
}
