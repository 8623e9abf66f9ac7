package ecs_test

import "github.com/plus3/skyraid/ecs"

const (
	KindShip ecs.Kind = iota + 1
	KindBullet
)

// Common test entity types
type Ship struct {
	X, Y   float64
	DX, DY float64
	Health int
}

type Bullet struct {
	X, Y float64
	TTL  float64
}

// world routes removals to the pool owning the id's kind.
type world struct {
	ships   *ecs.Pool[Ship]
	bullets *ecs.Pool[Bullet]
	removed []ecs.EntityId
}

func newWorld() *world {
	return &world{
		ships:   ecs.NewPool[Ship](KindShip),
		bullets: ecs.NewPool[Bullet](KindBullet),
	}
}

func (w *world) Remove(id ecs.EntityId) bool {
	var ok bool
	switch id.Kind() {
	case KindShip:
		ok = w.ships.Delete(id)
	case KindBullet:
		ok = w.bullets.Delete(id)
	}
	if ok {
		w.removed = append(w.removed, id)
	}
	return ok
}
