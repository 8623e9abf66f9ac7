package ecs

import "iter"

const (
	poolBlockSize = 64
)

// Pool stores values of a single entity kind in fixed-size blocks.
// Slots are recycled through a free list; each reuse bumps the slot generation
// so that ids handed out for a deleted entity never resolve to its successor.
type Pool[T any] struct {
	kind      Kind
	blocks    [][poolBlockSize]T
	gens      [][poolBlockSize]uint16
	filled    [][poolBlockSize]bool
	freeSlots []int
	nextIndex int
	count     int
}

// NewPool creates an empty pool for entities of the given kind.
func NewPool[T any](kind Kind) *Pool[T] {
	if kind == 0 {
		panic("ecs: pool kind must be non-zero")
	}
	return &Pool[T]{kind: kind}
}

// Kind returns the kind encoded into every id this pool hands out.
func (p *Pool[T]) Kind() Kind {
	return p.kind
}

// Spawn stores item and returns its id and a pointer to the stored copy.
func (p *Pool[T]) Spawn(item T) (EntityId, *T) {
	var index int
	if n := len(p.freeSlots); n > 0 {
		index = p.freeSlots[n-1]
		p.freeSlots = p.freeSlots[:n-1]
	} else {
		index = p.nextIndex
		p.nextIndex++
		if index/poolBlockSize >= len(p.blocks) {
			p.blocks = append(p.blocks, [poolBlockSize]T{})
			p.gens = append(p.gens, [poolBlockSize]uint16{})
			p.filled = append(p.filled, [poolBlockSize]bool{})
		}
	}

	blockIdx := index / poolBlockSize
	slotIdx := index % poolBlockSize

	p.blocks[blockIdx][slotIdx] = item
	p.filled[blockIdx][slotIdx] = true
	p.count++

	id := NewEntityId(p.kind, p.gens[blockIdx][slotIdx], uint32(index))
	return id, &p.blocks[blockIdx][slotIdx]
}

func (p *Pool[T]) slot(id EntityId) (int, int, bool) {
	if id.Kind() != p.kind {
		return 0, 0, false
	}

	index := int(id.Index())
	if index >= p.nextIndex {
		return 0, 0, false
	}

	blockIdx := index / poolBlockSize
	slotIdx := index % poolBlockSize

	if !p.filled[blockIdx][slotIdx] || p.gens[blockIdx][slotIdx] != id.Generation() {
		return 0, 0, false
	}
	return blockIdx, slotIdx, true
}

// Get returns a pointer to the value for id, or nil if id is not live.
func (p *Pool[T]) Get(id EntityId) *T {
	blockIdx, slotIdx, ok := p.slot(id)
	if !ok {
		return nil
	}
	return &p.blocks[blockIdx][slotIdx]
}

// Has reports whether id refers to a live entity in this pool.
func (p *Pool[T]) Has(id EntityId) bool {
	_, _, ok := p.slot(id)
	return ok
}

// Delete removes the entity. It returns false if id was not live.
func (p *Pool[T]) Delete(id EntityId) bool {
	blockIdx, slotIdx, ok := p.slot(id)
	if !ok {
		return false
	}

	var zero T
	p.blocks[blockIdx][slotIdx] = zero
	p.filled[blockIdx][slotIdx] = false
	p.gens[blockIdx][slotIdx]++
	p.freeSlots = append(p.freeSlots, int(id.Index()))
	p.count--
	return true
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return p.count
}

// Iter yields every live entity in slot order. Deleting the current entity
// while iterating is allowed; spawning is not.
func (p *Pool[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for i := 0; i < p.nextIndex; i++ {
			blockIdx := i / poolBlockSize
			slotIdx := i % poolBlockSize

			if !p.filled[blockIdx][slotIdx] {
				continue
			}

			id := NewEntityId(p.kind, p.gens[blockIdx][slotIdx], uint32(i))
			if !yield(id, &p.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// Ids returns a snapshot of the live ids.
func (p *Pool[T]) Ids() []EntityId {
	ids := make([]EntityId, 0, p.count)
	for id := range p.Iter() {
		ids = append(ids, id)
	}
	return ids
}
