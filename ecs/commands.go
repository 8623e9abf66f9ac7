package ecs

import "github.com/kamstrup/intmap"

// Remover applies a queued deletion. It returns false if the entity was
// already gone by the time the buffer was flushed.
type Remover interface {
	Remove(id EntityId) bool
}

// Commands provides a buffer for deferred removals that are executed at the end of a frame.
// Systems never mutate pools structurally while other systems may still be reading them.
type Commands struct {
	deletes []EntityId
	queued  *intmap.Map[EntityId, struct{}]
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{
		queued: intmap.New[EntityId, struct{}](64),
	}
}

// Delete queues an entity deletion. Queuing the same entity twice in one
// frame is a no-op and returns false.
func (c *Commands) Delete(entity EntityId) bool {
	if _, ok := c.queued.Get(entity); ok {
		return false
	}
	c.queued.Put(entity, struct{}{})
	c.deletes = append(c.deletes, entity)
	return true
}

// Pending reports whether entity is already queued for deletion this frame.
func (c *Commands) Pending(entity EntityId) bool {
	_, ok := c.queued.Get(entity)
	return ok
}

// Defer queues a function to run after all deletions are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued deletions.
func (c *Commands) Len() int {
	return len(c.deletes)
}

// Flush applies all queued commands in order and resets the buffer.
// It returns the number of entities actually removed.
func (c *Commands) Flush(remover Remover) int {
	removed := 0
	for _, id := range c.deletes {
		if remover.Remove(id) {
			removed++
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
	c.queued.Clear()
	return removed
}
