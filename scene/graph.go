// Package scene mirrors what the renderer shows: one node per visible entity.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/kamstrup/intmap"
	"github.com/plus3/skyraid/ecs"
)

// Node describes a visual the simulation asks the renderer to show.
// Dynamic entities are looked up by ID for their current transform; Position
// and Size are the values at creation time.
type Node struct {
	ID       ecs.EntityId
	Kind     ecs.Kind
	Position mgl64.Vec3
	Size     mgl64.Vec3
	// Variant selects a texture or colour; only buildings use it.
	Variant int
}

// Graph is an in-memory scene sink. Nodes are kept in a dense slice indexed
// by id so that removal is O(1) and iteration needs no allocation.
type Graph struct {
	nodes []Node
	index *intmap.Map[ecs.EntityId, int]

	added   int
	removed int
	// duplicates counts AddVisual calls for an id already present and
	// RemoveVisual calls for an id not present.
	duplicates int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index: intmap.New[ecs.EntityId, int](256),
	}
}

// AddVisual registers a node. Adding an id twice replaces the node.
func (g *Graph) AddVisual(node Node) {
	g.added++
	if i, ok := g.index.Get(node.ID); ok {
		g.duplicates++
		g.nodes[i] = node
		return
	}
	g.index.Put(node.ID, len(g.nodes))
	g.nodes = append(g.nodes, node)
}

// RemoveVisual drops a node by swapping the last node into its slot.
func (g *Graph) RemoveVisual(node Node) {
	g.removed++
	i, ok := g.index.Get(node.ID)
	if !ok {
		g.duplicates++
		return
	}

	last := len(g.nodes) - 1
	if i != last {
		g.nodes[i] = g.nodes[last]
		g.index.Put(g.nodes[i].ID, i)
	}
	g.nodes = g.nodes[:last]
	g.index.Del(node.ID)
}

// Has reports whether a node with the id is shown.
func (g *Graph) Has(id ecs.EntityId) bool {
	_, ok := g.index.Get(id)
	return ok
}

// Get returns the node for id.
func (g *Graph) Get(id ecs.EntityId) (Node, bool) {
	i, ok := g.index.Get(id)
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Nodes returns the live nodes. The slice is only valid until the next mutation.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// CountKind returns the number of live nodes of a kind.
func (g *Graph) CountKind(kind ecs.Kind) int {
	n := 0
	for i := range g.nodes {
		if g.nodes[i].Kind == kind {
			n++
		}
	}
	return n
}

// Stats reports lifetime add/remove call counts and mismatched calls.
func (g *Graph) Stats() (added, removed, duplicates int) {
	return g.added, g.removed, g.duplicates
}
