package sim

import (
	"github.com/plus3/skyraid/asset"
	"github.com/plus3/skyraid/city"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/geom"
	"github.com/plus3/skyraid/scene"
	"go.uber.org/zap"
)

// SceneSink receives a call for every visual the simulation creates or destroys.
// The sink never owns simulation state.
type SceneSink interface {
	AddVisual(node scene.Node)
	RemoveVisual(node scene.Node)
}

// World is the entity state shared by every system of a Game.
type World struct {
	Tuning Tuning
	City   *city.Layout
	Model  *asset.Model

	Player      *Player
	Enemies     *ecs.Pool[Enemy]
	Projectiles *ecs.Pool[Projectile]
	Camera      Camera
	Spawner     SpawnScheduler
	Animation   Animator

	// Input is the snapshot read at the start of the current tick.
	Input Intents
	// Contacts lists the intersections found by the current tick's collision pass.
	Contacts []Contact

	sink    SceneSink
	log     *zap.Logger
	metrics *metrics
}

func newWorld(t Tuning, layout *city.Layout, sink SceneSink, log *zap.Logger, m *metrics) *World {
	return &World{
		Tuning:      t,
		City:        layout,
		Enemies:     ecs.NewPool[Enemy](KindEnemy),
		Projectiles: ecs.NewPool[Projectile](KindProjectile),
		sink:        sink,
		log:         log,
		metrics:     m,
	}
}

// Remove deletes a dynamic entity and mirrors the removal to the scene sink.
// It implements ecs.Remover for the end-of-tick flush.
func (w *World) Remove(id ecs.EntityId) bool {
	switch id.Kind() {
	case KindEnemy:
		e := w.Enemies.Get(id)
		if e == nil {
			return false
		}
		node := scene.Node{ID: id, Kind: KindEnemy, Position: e.Position}
		w.Enemies.Delete(id)
		w.Spawner.despawned()
		w.sink.RemoveVisual(node)
		return true
	case KindProjectile:
		p := w.Projectiles.Get(id)
		if p == nil {
			return false
		}
		node := scene.Node{ID: id, Kind: KindProjectile, Position: p.Position}
		w.Projectiles.Delete(id)
		w.sink.RemoveVisual(node)
		return true
	}

	w.log.Warn("remove requested for static entity", zap.Uint64("id", uint64(id)))
	return false
}

func (w *World) spawnEnemy(plan SpawnPlan) ecs.EntityId {
	parts := make([]geom.Bounds, len(w.Model.Parts))
	for i, part := range w.Model.Parts {
		parts[i] = geom.NewBounds(part.Box())
	}

	id, e := w.Enemies.Spawn(Enemy{
		Position: plan.Position,
		Ordinal:  plan.Ordinal,
		Lane:     plan.Lane,
		Parts:    parts,
	})
	e.RefreshBounds(e.Transform(w.Tuning.ModelScale).Matrix())

	w.sink.AddVisual(scene.Node{
		ID:       id,
		Kind:     KindEnemy,
		Position: e.Position,
		Size:     e.Box().Size(),
	})
	return id
}

func (w *World) spawnProjectile(p Projectile) ecs.EntityId {
	id, stored := w.Projectiles.Spawn(p)
	stored.RefreshBounds()

	w.sink.AddVisual(scene.Node{
		ID:       id,
		Kind:     KindProjectile,
		Position: stored.Position,
		Size:     stored.Bounds.Local.Size(),
	})
	return id
}

func (w *World) addStaticVisuals() {
	for _, b := range w.City.Buildings {
		w.sink.AddVisual(scene.Node{
			ID:       BuildingID(b.Index),
			Kind:     KindBuilding,
			Position: b.Position,
			Size:     b.Size,
			Variant:  b.Texture,
		})
	}
	for _, r := range w.City.Roads {
		w.sink.AddVisual(scene.Node{
			ID:       RoadID(r.Index),
			Kind:     KindRoad,
			Position: r.Position,
			Size:     [3]float64{r.Width, 0, r.Length},
		})
	}
	w.sink.AddVisual(scene.Node{
		ID:       PlayerID,
		Kind:     KindPlayer,
		Position: w.Player.Position,
		Size:     w.Player.Hitbox.World.Size(),
	})
}

// teardown removes every visual the world registered.
func (w *World) teardown() {
	for _, id := range w.Enemies.Ids() {
		w.Remove(id)
	}
	for _, id := range w.Projectiles.Ids() {
		w.Remove(id)
	}
	if w.Player != nil {
		w.sink.RemoveVisual(scene.Node{ID: PlayerID, Kind: KindPlayer, Position: w.Player.Position})
	}
	for _, r := range w.City.Roads {
		w.sink.RemoveVisual(scene.Node{ID: RoadID(r.Index), Kind: KindRoad, Position: r.Position})
	}
	for _, b := range w.City.Buildings {
		w.sink.RemoveVisual(scene.Node{ID: BuildingID(b.Index), Kind: KindBuilding, Position: b.Position})
	}
	w.Contacts = w.Contacts[:0]
}
